package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/tinytype/pkg/components"
)

// 彩纸形状尺寸（像素）
const (
	circleRadius   = 12.0
	circleSegments = 16
	squareHalf     = 10.0
	heartLobe      = 7.0
)

// starPoints 八角星轮廓（相对中心，未旋转）
var starPoints = [][2]float64{
	{0, -12}, {5, -2}, {12, 0}, {5, 2}, {0, 12}, {-5, 2}, {-12, 0}, {-5, -2},
}

// heartTriangle 心形下半部分
var heartTriangle = [][2]float64{
	{-13, -2}, {0, 14}, {13, -2},
}

// appendParticle 把一个彩纸的三角形追加到顶点/索引缓冲
//
// 每个形状都是以中心为扇心的三角扇（心形为两个圆扇加一个三角形），
// 顶点颜色取自粒子颜色，源坐标指向纯白纹理的 (srcX, srcY)。
// 旋转单位为度，圆形不受旋转影响。
func appendParticle(vs []ebiten.Vertex, is []uint16, p components.ParticleSnapshot, srcX, srcY float32) ([]ebiten.Vertex, []uint16) {
	rad := p.Rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)
	rotate := func(dx, dy float64) (float64, float64) {
		return p.X + dx*cos - dy*sin, p.Y + dx*sin + dy*cos
	}

	v := vertexBuilder{vs: vs, is: is, clr: p.Color, srcX: srcX, srcY: srcY}

	switch p.Shape {
	case components.ShapeCircle:
		v.circle(p.X, p.Y, circleRadius)
	case components.ShapeSquare:
		v.fan(rotate, 0, 0, [][2]float64{
			{-squareHalf, -squareHalf}, {squareHalf, -squareHalf},
			{squareHalf, squareHalf}, {-squareHalf, squareHalf},
		})
	case components.ShapeStar:
		v.fan(rotate, 0, 0, starPoints)
	case components.ShapeHeart:
		lx, ly := rotate(-6, -6)
		rx, ry := rotate(6, -6)
		v.circle(lx, ly, heartLobe)
		v.circle(rx, ry, heartLobe)
		v.polygon(rotate, heartTriangle)
	}

	return v.vs, v.is
}

type vertexBuilder struct {
	vs   []ebiten.Vertex
	is   []uint16
	clr  color.RGBA
	srcX float32
	srcY float32
}

func (b *vertexBuilder) vertex(x, y float64) uint16 {
	idx := uint16(len(b.vs))
	b.vs = append(b.vs, ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   b.srcX,
		SrcY:   b.srcY,
		ColorR: float32(b.clr.R) / 0xff,
		ColorG: float32(b.clr.G) / 0xff,
		ColorB: float32(b.clr.B) / 0xff,
		ColorA: float32(b.clr.A) / 0xff,
	})
	return idx
}

func (b *vertexBuilder) circle(cx, cy, r float64) {
	center := b.vertex(cx, cy)
	first := uint16(len(b.vs))
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		b.vertex(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	for i := 0; i < circleSegments; i++ {
		next := first + uint16((i+1)%circleSegments)
		b.is = append(b.is, center, first+uint16(i), next)
	}
}

// fan 以 (cx, cy) 为扇心连接轮廓点（星形等星状多边形也适用）
func (b *vertexBuilder) fan(rotate func(dx, dy float64) (float64, float64), cx, cy float64, outline [][2]float64) {
	center := b.vertex(rotate(cx, cy))
	first := uint16(len(b.vs))
	for _, pt := range outline {
		b.vertex(rotate(pt[0], pt[1]))
	}
	n := uint16(len(outline))
	for i := uint16(0); i < n; i++ {
		b.is = append(b.is, center, first+i, first+(i+1)%n)
	}
}

// polygon 追加一个凸多边形（以第一个顶点为扇心）
func (b *vertexBuilder) polygon(rotate func(dx, dy float64) (float64, float64), outline [][2]float64) {
	first := uint16(len(b.vs))
	for _, pt := range outline {
		b.vertex(rotate(pt[0], pt[1]))
	}
	for i := uint16(1); i+1 < uint16(len(outline)); i++ {
		b.is = append(b.is, first, first+i, first+i+1)
	}
}
