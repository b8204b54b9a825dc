package systems

import (
	"math"
	"testing"

	"github.com/decker502/tinytype/pkg/config"
)

// TestSpawnBurstReplacesParticles 测试新的一批粒子整体替换旧的一批
func TestSpawnBurstReplacesParticles(t *testing.T) {
	ps := NewParticleSystem(newTestRand())

	ps.SpawnBurst(400, 300, config.ParticleBurstCount, 1000)
	if ps.Count() != config.ParticleBurstCount {
		t.Fatalf("Count: got %d, want %d", ps.Count(), config.ParticleBurstCount)
	}

	ps.SpawnBurst(100, 50, 5, 1200)
	if ps.Count() != 5 {
		t.Fatalf("Count after second burst: got %d, want 5", ps.Count())
	}
	for i, p := range ps.Particles() {
		if p.SpawnTime != 1200 || p.X != 100 || p.Y != 50 {
			t.Errorf("particle %d not from the latest burst: %+v", i, p)
		}
	}
}

// TestSpawnBurstRanges 测试随机参数的取值范围
func TestSpawnBurstRanges(t *testing.T) {
	ps := NewParticleSystem(newTestRand())
	ps.SpawnBurst(0, 0, 200, 0)

	for i, p := range ps.Particles() {
		speed := -p.VelocityY
		if speed < config.ParticleSpeedMin || speed > config.ParticleSpeedMax {
			t.Errorf("particle %d: speed %v out of range", i, speed)
		}
		angle := p.VelocityX / speed
		if angle < config.ParticleAngleMin-1e-9 || angle > config.ParticleAngleMax+1e-9 {
			t.Errorf("particle %d: angle %v out of cone", i, angle)
		}
		if p.Rotation < 0 || p.Rotation >= 360 {
			t.Errorf("particle %d: rotation %v out of range", i, p.Rotation)
		}
		if math.Abs(p.RotationSpeed) > config.ParticleRotSpeed {
			t.Errorf("particle %d: rotation speed %v out of range", i, p.RotationSpeed)
		}
		found := false
		for _, c := range ConfettiPalette {
			if c == p.Color {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("particle %d: color %v not in palette", i, p.Color)
		}
	}
}

// TestAdvanceAndCullKinematics 测试粒子轨迹公式
func TestAdvanceAndCullKinematics(t *testing.T) {
	ps := NewParticleSystem(newTestRand())
	ps.SpawnBurst(500, 400, 3, 2000)
	initial := append(ps.Particles()[:0:0], ps.Particles()...)

	snaps := ps.AdvanceAndCull(2500)
	if len(snaps) != 3 {
		t.Fatalf("snapshots: got %d, want 3", len(snaps))
	}

	const dt = 0.5
	for i, s := range snaps {
		p := initial[i]
		wantX := p.X + p.VelocityX*dt
		wantY := p.Y + p.VelocityY*dt + 0.5*config.ParticleGravity*dt*dt
		wantRot := p.Rotation + p.RotationSpeed*dt
		if math.Abs(s.X-wantX) > 1e-9 || math.Abs(s.Y-wantY) > 1e-9 {
			t.Errorf("particle %d: position (%v,%v), want (%v,%v)", i, s.X, s.Y, wantX, wantY)
		}
		if math.Abs(s.Rotation-wantRot) > 1e-9 {
			t.Errorf("particle %d: rotation %v, want %v", i, s.Rotation, wantRot)
		}
		if s.Color != p.Color || s.Shape != p.Shape {
			t.Errorf("particle %d: color/shape changed", i)
		}
	}

	// 刚生成时位于原点
	ps.SpawnBurst(10, 20, 1, 3000)
	snaps = ps.AdvanceAndCull(3000)
	if len(snaps) != 1 || snaps[0].X != 10 || snaps[0].Y != 20 {
		t.Errorf("at spawn time: got %+v, want origin (10,20)", snaps)
	}
}

// TestAdvanceAndCullLifetime 测试超过寿命后整批清空
func TestAdvanceAndCullLifetime(t *testing.T) {
	ps := NewParticleSystem(newTestRand())

	if snaps := ps.AdvanceAndCull(0); snaps != nil {
		t.Errorf("empty system returned %d snapshots", len(snaps))
	}

	ps.SpawnBurst(0, 0, config.ParticleBurstCount, 1000)

	if snaps := ps.AdvanceAndCull(1000 + config.ParticleLifetimeMs - 1); len(snaps) != config.ParticleBurstCount {
		t.Errorf("just before lifetime: got %d snapshots", len(snaps))
	}
	if snaps := ps.AdvanceAndCull(1000 + config.ParticleLifetimeMs); snaps != nil {
		t.Errorf("at lifetime: got %d snapshots, want none", len(snaps))
	}
	if ps.Count() != 0 {
		t.Errorf("Count after lifetime: got %d, want 0", ps.Count())
	}
}
