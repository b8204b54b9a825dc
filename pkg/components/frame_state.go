package components

// FrameState 每帧 Update 产出的渲染快照
// Draw 只读取快照，不采样时钟，也不修改会话状态
type FrameState struct {
	Now int64

	Word      []rune // 当前目标单词
	Typed     int    // 已输入字符数
	LastWrong rune   // 0 表示没有

	Celebration CelebrationVisual
	ShakeOffset float64

	Particles []ParticleSnapshot

	WPM int
}
