package config

// 动画时间线常量（毫秒）
// 庆祝序列按 celebrating → growing → sliding → paused 顺序排列，
// 每个阶段的边界由完成时刻累加得到
const (
	CelebrateDurationMs = 3000
	GrowDurationMs      = 500
	SlideDurationMs     = 800
	PauseDurationMs     = 500

	// EmojiFadeDurationMs 表情从滑出开始淡出到完全透明的时长
	EmojiFadeDurationMs = 500

	// ShakeDurationMs 输错后单词抖动的时长
	ShakeDurationMs = 200
	// ShakeFlipMs 抖动方向翻转周期
	ShakeFlipMs = 30
	// ShakeAmplitude 抖动最大像素偏移
	ShakeAmplitude = 10.0
)

// 缩放系数
const (
	// CelebrateScaleGain celebrating 阶段结束时的额外缩放
	CelebrateScaleGain = 0.03
	// GrowScaleGain growing 阶段结束时的额外缩放
	GrowScaleGain = 0.3
	// SlideDistanceFactor 滑出距离相对屏幕尺寸的倍数
	SlideDistanceFactor = 1.5
)

// 彩纸粒子参数
const (
	ParticleBurstCount = 25
	ParticleLifetimeMs = 1500
	ParticleAngleMin   = -0.4
	ParticleAngleMax   = 0.4
	ParticleSpeedMin   = 150.0 // 像素/秒
	ParticleSpeedMax   = 250.0
	ParticleGravity    = 200.0 // 像素/秒²
	ParticleRotSpeed   = 2.0   // 度/秒，取值范围 [-2, 2]
)

// Timings 庆祝时间线参数，测试中可替换为更短的时长
type Timings struct {
	CelebrateMs int64
	GrowMs      int64
	SlideMs     int64
	PauseMs     int64
	EmojiFadeMs int64
}

// DefaultTimings 返回默认时间线
func DefaultTimings() Timings {
	return Timings{
		CelebrateMs: CelebrateDurationMs,
		GrowMs:      GrowDurationMs,
		SlideMs:     SlideDurationMs,
		PauseMs:     PauseDurationMs,
		EmojiFadeMs: EmojiFadeDurationMs,
	}
}

// Total 整个庆祝序列的总时长
func (t Timings) Total() int64 {
	return t.CelebrateMs + t.GrowMs + t.SlideMs + t.PauseMs
}
