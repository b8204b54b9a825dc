package systems

import (
	"math"
	"math/rand"

	"github.com/samber/lo"

	"github.com/decker502/tinytype/pkg/components"
	"github.com/decker502/tinytype/pkg/config"
	"github.com/decker502/tinytype/pkg/utils"
)

// EmojiPool 庆祝表情
var EmojiPool = []string{"😊", "🎉", "🌟", "🎊", "👏", "🥳"}

// CelebrationSystem 单词完成后的庆祝序列状态机
//
// 时间线以完成时刻 t0 为起点累加各阶段时长：
//
//	celebrating [t0, t0+Dc)
//	growing     [t0+Dc, t0+Dc+Dg)
//	sliding     [t0+Dc+Dg, t0+Dc+Dg+Ds)
//	paused      [t0+Dc+Dg+Ds, t0+Dc+Dg+Ds+Dp)
//
// now >= t0+总时长 时序列结束，状态回到 idle。
// 阶段只由 now 与 t0 推导，帧率抖动不会造成阶段重叠或空隙。
type CelebrationSystem struct {
	state   components.CelebrationState
	timings config.Timings
	rng     *rand.Rand
}

// NewCelebrationSystem 创建庆祝系统
func NewCelebrationSystem(timings config.Timings, rng *rand.Rand) *CelebrationSystem {
	return &CelebrationSystem{
		timings: timings,
		rng:     rng,
	}
}

// State 返回当前庆祝状态
func (cs *CelebrationSystem) State() components.CelebrationState {
	return cs.state
}

// Active 是否正在庆祝
func (cs *CelebrationSystem) Active() bool {
	return cs.state.Active()
}

// Start 在 now 时刻开始庆祝序列，随机选定滑出方向与表情
// 已有序列进行中时不做任何事并返回 false
func (cs *CelebrationSystem) Start(now int64) bool {
	if cs.state.Active() {
		return false
	}
	cs.state = components.CelebrationState{
		Phase:     components.PhaseCelebrating,
		StartTime: now,
		Direction: lo.SampleBy(components.AllDirections, cs.rng.Intn),
		Emoji:     lo.SampleBy(EmojiPool, cs.rng.Intn),
	}
	return true
}

// Reset 回到 idle
func (cs *CelebrationSystem) Reset() {
	cs.state = components.CelebrationState{}
}

// PhaseAt 计算距完成时刻 elapsed 毫秒时所处的阶段
// 返回阶段及阶段起点（相对 t0）；elapsed >= 总时长时返回 PhaseIdle
func (cs *CelebrationSystem) PhaseAt(elapsed int64) (components.CelebrationPhase, int64) {
	return phaseAt(cs.timings, elapsed)
}

func phaseAt(tm config.Timings, elapsed int64) (components.CelebrationPhase, int64) {
	growStart := tm.CelebrateMs
	slideStart := growStart + tm.GrowMs
	pauseStart := slideStart + tm.SlideMs
	end := pauseStart + tm.PauseMs

	switch {
	case elapsed < growStart:
		return components.PhaseCelebrating, 0
	case elapsed < slideStart:
		return components.PhaseGrowing, growStart
	case elapsed < pauseStart:
		return components.PhaseSliding, slideStart
	case elapsed < end:
		return components.PhasePaused, pauseStart
	}
	return components.PhaseIdle, end
}

// Evaluate 推进状态机并计算 now 时刻的视觉参数
//
// 参数：
//   - now: 本帧时间戳（毫秒）
//   - screenW, screenH: 屏幕尺寸（滑出距离按方向取宽或高）
//
// 返回：
//   - components.CelebrationVisual: 缩放、偏移、表情透明度
//   - bool: 序列是否在本次调用中结束（调用方据此切换到下一个单词）
func (cs *CelebrationSystem) Evaluate(now int64, screenW, screenH int) (components.CelebrationVisual, bool) {
	if !cs.state.Active() {
		return components.NeutralVisual(), false
	}

	elapsed := now - cs.state.StartTime
	if elapsed < 0 {
		elapsed = 0
	}

	phase, phaseStart := phaseAt(cs.timings, elapsed)
	if phase == components.PhaseIdle {
		cs.Reset()
		return components.NeutralVisual(), true
	}
	cs.state.Phase = phase

	visual := components.CelebrationVisual{
		Scale:      1.0,
		Emoji:      cs.state.Emoji,
		EmojiAlpha: 1.0,
	}
	inPhase := elapsed - phaseStart

	switch phase {
	case components.PhaseCelebrating:
		visual.Scale = 1.0 + config.CelebrateScaleGain*fraction(inPhase, cs.timings.CelebrateMs)
	case components.PhaseGrowing:
		visual.Scale = 1.0 + config.GrowScaleGain*fraction(inPhase, cs.timings.GrowMs)
	case components.PhaseSliding:
		visual.OffsetX, visual.OffsetY = cs.slideOffset(fraction(inPhase, cs.timings.SlideMs), screenW, screenH)
	case components.PhasePaused:
		visual.OffsetX, visual.OffsetY = cs.slideOffset(1.0, screenW, screenH)
	}

	// 表情从 sliding 开始淡出
	slideStart := cs.timings.CelebrateMs + cs.timings.GrowMs
	if elapsed > slideStart {
		visual.EmojiAlpha = emojiAlpha(elapsed-slideStart, cs.timings.EmojiFadeMs)
	}

	return visual, false
}

// slideOffset 按滑出进度计算偏移，距离取整到像素
func (cs *CelebrationSystem) slideOffset(frac float64, screenW, screenH int) (float64, float64) {
	extent := screenW
	if cs.state.Direction.Vertical() {
		extent = screenH
	}
	dist := math.Trunc(frac * config.SlideDistanceFactor * float64(extent))

	switch cs.state.Direction {
	case components.SlideUp:
		return 0, -dist
	case components.SlideDown:
		return 0, dist
	case components.SlideLeft:
		return -dist, 0
	case components.SlideRight:
		return dist, 0
	}
	return 0, 0
}

func fraction(elapsed, duration int64) float64 {
	if duration <= 0 {
		return 1
	}
	return utils.Clamp01(float64(elapsed) / float64(duration))
}

// emojiAlpha 线性淡出，下限为 0（按 255 级取整，与渲染精度一致）
func emojiAlpha(sinceFade, fadeMs int64) float64 {
	if fadeMs <= 0 {
		return 0
	}
	level := 255 - int(255*float64(sinceFade)/float64(fadeMs))
	if level < 0 {
		level = 0
	}
	return float64(level) / 255
}
