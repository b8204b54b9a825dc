package scenes

import (
	"image/color"
	"math"
	"testing"

	"github.com/decker502/tinytype/pkg/components"
)

func TestAppendParticleCounts(t *testing.T) {
	tests := []struct {
		shape        components.ParticleShape
		wantVertices int
		wantIndices  int
	}{
		{components.ShapeCircle, 1 + circleSegments, 3 * circleSegments},
		{components.ShapeSquare, 5, 12},
		{components.ShapeStar, 9, 24},
		{components.ShapeHeart, 2*(1+circleSegments) + 3, 2*3*circleSegments + 3},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			p := components.ParticleSnapshot{X: 100, Y: 50, Shape: tt.shape, Color: color.RGBA{R: 255, A: 255}}
			vs, is := appendParticle(nil, nil, p, 1, 1)
			if len(vs) != tt.wantVertices {
				t.Errorf("vertices = %d, want %d", len(vs), tt.wantVertices)
			}
			if len(is) != tt.wantIndices {
				t.Errorf("indices = %d, want %d", len(is), tt.wantIndices)
			}
			for _, idx := range is {
				if int(idx) >= len(vs) {
					t.Fatalf("index %d out of range (%d vertices)", idx, len(vs))
				}
			}
		})
	}
}

func TestAppendParticleAppends(t *testing.T) {
	a := components.ParticleSnapshot{Shape: components.ShapeSquare}
	b := components.ParticleSnapshot{X: 10, Shape: components.ShapeSquare}

	vs, is := appendParticle(nil, nil, a, 1, 1)
	vs, is = appendParticle(vs, is, b, 1, 1)

	if len(vs) != 10 || len(is) != 24 {
		t.Fatalf("vertices=%d indices=%d, want 10/24", len(vs), len(is))
	}
	// 第二个粒子的索引从第一个粒子的顶点之后开始
	for _, idx := range is[12:] {
		if idx < 5 {
			t.Errorf("second particle index %d refers to the first particle", idx)
		}
	}
}

func TestAppendParticleColorAndSource(t *testing.T) {
	p := components.ParticleSnapshot{
		Shape: components.ShapeCircle,
		Color: color.RGBA{R: 255, G: 0, B: 51, A: 255},
	}
	vs, _ := appendParticle(nil, nil, p, 1, 1)

	v := vs[0]
	if v.ColorR != 1 || v.ColorG != 0 || v.ColorB != 0.2 || v.ColorA != 1 {
		t.Errorf("color = (%v, %v, %v, %v)", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
	if v.SrcX != 1 || v.SrcY != 1 {
		t.Errorf("source = (%v, %v), want (1, 1)", v.SrcX, v.SrcY)
	}
}

func TestAppendParticleRotation(t *testing.T) {
	p := components.ParticleSnapshot{X: 0, Y: 0, Shape: components.ShapeSquare, Rotation: 45}
	vs, _ := appendParticle(nil, nil, p, 1, 1)

	// 旋转 45° 后正方形的角落在坐标轴上，距中心 10√2
	want := squareHalf * math.Sqrt2
	for _, v := range vs[1:] {
		x, y := float64(v.DstX), float64(v.DstY)
		if d := math.Hypot(x, y); math.Abs(d-want) > 1e-3 {
			t.Errorf("corner (%v, %v) at distance %v, want %v", x, y, d, want)
		}
		if math.Abs(x) > 1e-3 && math.Abs(y) > 1e-3 {
			t.Errorf("corner (%v, %v) should lie on an axis", x, y)
		}
	}
}

func TestAppendParticleCircleIgnoresRotation(t *testing.T) {
	a := components.ParticleSnapshot{X: 5, Y: 5, Shape: components.ShapeCircle}
	b := a
	b.Rotation = 90

	va, _ := appendParticle(nil, nil, a, 1, 1)
	vb, _ := appendParticle(nil, nil, b, 1, 1)
	for i := range va {
		if va[i] != vb[i] {
			t.Fatalf("vertex %d differs: %+v vs %+v", i, va[i], vb[i])
		}
	}
}
