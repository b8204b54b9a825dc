package systems

import (
	"image/color"
	"math/rand"

	"github.com/samber/lo"

	"github.com/decker502/tinytype/pkg/components"
	"github.com/decker502/tinytype/pkg/config"
)

// ConfettiPalette 彩纸颜色
var ConfettiPalette = []color.RGBA{
	{R: 255, G: 0, B: 0, A: 255},     // red
	{R: 255, G: 165, B: 0, A: 255},   // orange
	{R: 255, G: 255, B: 0, A: 255},   // yellow
	{R: 0, G: 255, B: 0, A: 255},     // green
	{R: 0, G: 0, B: 255, A: 255},     // blue
	{R: 128, G: 0, B: 128, A: 255},   // purple
	{R: 255, G: 105, B: 180, A: 255}, // hot pink
}

// ParticleSystem 管理一批彩纸粒子
//
// 每次正确按键生成一整批（burst），新的一批整体替换旧的一批；
// 超过寿命后整批清空，不做逐个粒子的删除。
type ParticleSystem struct {
	particles []components.ParticleComponent
	snapshots []components.ParticleSnapshot
	burstTime int64
	lifetime  int64
	rng       *rand.Rand
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		particles: make([]components.ParticleComponent, 0, config.ParticleBurstCount),
		snapshots: make([]components.ParticleSnapshot, 0, config.ParticleBurstCount),
		lifetime:  config.ParticleLifetimeMs,
		rng:       rng,
	}
}

// SpawnBurst 在 (originX, originY) 生成 count 个粒子，替换当前所有粒子
func (ps *ParticleSystem) SpawnBurst(originX, originY float64, count int, now int64) {
	ps.particles = ps.particles[:0]
	ps.burstTime = now

	ps.particles = append(ps.particles, lo.Times(count, func(_ int) components.ParticleComponent {
		angle := ps.uniform(config.ParticleAngleMin, config.ParticleAngleMax)
		speed := ps.uniform(config.ParticleSpeedMin, config.ParticleSpeedMax)
		return components.ParticleComponent{
			X:             originX,
			Y:             originY,
			VelocityX:     speed * angle,
			VelocityY:     -speed,
			Rotation:      ps.uniform(0, 360),
			RotationSpeed: ps.uniform(-config.ParticleRotSpeed, config.ParticleRotSpeed),
			Color:         lo.SampleBy(ConfettiPalette, ps.rng.Intn),
			Shape:         lo.SampleBy(components.AllShapes, ps.rng.Intn),
			SpawnTime:     now,
		}
	})...)
}

// AdvanceAndCull 计算 now 时刻所有存活粒子的位置
//
// 返回的切片在下一次调用前有效。超过寿命时整批清空并返回 nil。
func (ps *ParticleSystem) AdvanceAndCull(now int64) []components.ParticleSnapshot {
	if len(ps.particles) == 0 {
		return nil
	}

	age := now - ps.burstTime
	if age >= ps.lifetime {
		ps.particles = ps.particles[:0]
		return nil
	}
	if age < 0 {
		age = 0
	}

	t := float64(age) / 1000.0
	ps.snapshots = ps.snapshots[:0]
	for i := range ps.particles {
		p := &ps.particles[i]
		ps.snapshots = append(ps.snapshots, components.ParticleSnapshot{
			X:        p.X + p.VelocityX*t,
			Y:        p.Y + p.VelocityY*t + 0.5*config.ParticleGravity*t*t,
			Rotation: p.Rotation + p.RotationSpeed*t,
			Color:    p.Color,
			Shape:    p.Shape,
		})
	}
	return ps.snapshots
}

// Count 当前粒子数量
func (ps *ParticleSystem) Count() int {
	return len(ps.particles)
}

// Particles 返回当前粒子（测试与调试用）
func (ps *ParticleSystem) Particles() []components.ParticleComponent {
	return ps.particles
}

// Clear 清空所有粒子
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

func (ps *ParticleSystem) uniform(low, high float64) float64 {
	return low + ps.rng.Float64()*(high-low)
}
