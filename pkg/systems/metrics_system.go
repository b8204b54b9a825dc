package systems

import "github.com/decker502/tinytype/pkg/components"

// MetricsSystem 会话统计（WPM）
type MetricsSystem struct {
	state components.MetricsState
}

// NewMetricsSystem 创建统计系统，会话开始于 start
func NewMetricsSystem(start int64) *MetricsSystem {
	return &MetricsSystem{
		state: components.MetricsState{SessionStart: start},
	}
}

// RecordCompletion 记录完成一个单词
func (m *MetricsSystem) RecordCompletion() {
	m.state.Completed++
}

// Completed 已完成单词数
func (m *MetricsSystem) Completed() int {
	return m.state.Completed
}

// State 返回统计状态
func (m *MetricsSystem) State() components.MetricsState {
	return m.state
}

// WordsPerMinute 计算 now 时刻的每分钟单词数（向下取整）
// 经过时间为 0 时返回 0
func (m *MetricsSystem) WordsPerMinute(now int64) int {
	elapsed := now - m.state.SessionStart
	if elapsed <= 0 {
		return 0
	}
	return int(int64(m.state.Completed) * 60000 / elapsed)
}
