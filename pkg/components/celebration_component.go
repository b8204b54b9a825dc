package components

// CelebrationPhase 庆祝序列的阶段
type CelebrationPhase int

const (
	PhaseIdle CelebrationPhase = iota
	PhaseCelebrating
	PhaseGrowing
	PhaseSliding
	PhasePaused
)

// String 返回阶段名称
func (p CelebrationPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCelebrating:
		return "celebrating"
	case PhaseGrowing:
		return "growing"
	case PhaseSliding:
		return "sliding"
	case PhasePaused:
		return "paused"
	}
	return "unknown"
}

// SlideDirection 单词滑出方向
type SlideDirection int

const (
	SlideUp SlideDirection = iota
	SlideDown
	SlideLeft
	SlideRight
)

// AllDirections 所有可选滑出方向（随机抽取用）
var AllDirections = []SlideDirection{SlideUp, SlideDown, SlideLeft, SlideRight}

// String 返回方向名称
func (d SlideDirection) String() string {
	switch d {
	case SlideUp:
		return "up"
	case SlideDown:
		return "down"
	case SlideLeft:
		return "left"
	case SlideRight:
		return "right"
	}
	return "unknown"
}

// Vertical 是否为竖直方向
func (d SlideDirection) Vertical() bool {
	return d == SlideUp || d == SlideDown
}

// CelebrationState 当前庆祝序列
// 单词完成时创建（Phase 离开 idle），paused 阶段结束时重置为 idle
type CelebrationState struct {
	Phase     CelebrationPhase
	StartTime int64 // 单词完成时刻 t0（毫秒）
	Direction SlideDirection
	Emoji     string
}

// Active 是否有庆祝序列在进行
func (c *CelebrationState) Active() bool {
	return c.Phase != PhaseIdle
}

// CelebrationVisual 庆祝序列在某一时刻的视觉参数
type CelebrationVisual struct {
	Scale      float64 // 单词缩放
	OffsetX    float64 // 滑出偏移（像素）
	OffsetY    float64
	Emoji      string  // 空字符串表示不显示
	EmojiAlpha float64 // 表情透明度 0~1
}

// NeutralVisual 无庆祝时的视觉参数
func NeutralVisual() CelebrationVisual {
	return CelebrationVisual{Scale: 1.0}
}
