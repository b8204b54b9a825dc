package components

// MetricsState 会话统计
type MetricsState struct {
	SessionStart int64 // 会话开始时刻（毫秒），创建后不变
	Completed    int   // 已完成单词数，单调递增
}

// ShakeState 输错时的单词抖动
type ShakeState struct {
	Start  int64
	Active bool
}
