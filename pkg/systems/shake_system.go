package systems

import (
	"github.com/decker502/tinytype/pkg/components"
	"github.com/decker502/tinytype/pkg/config"
)

// ShakeSystem 输错时单词的左右抖动
type ShakeSystem struct {
	state components.ShakeState
}

// NewShakeSystem 创建抖动系统
func NewShakeSystem() *ShakeSystem {
	return &ShakeSystem{}
}

// Trigger 从 now 开始抖动
func (s *ShakeSystem) Trigger(now int64) {
	s.state = components.ShakeState{Start: now, Active: true}
}

// Stop 立即停止抖动
func (s *ShakeSystem) Stop() {
	s.state.Active = false
}

// Offset 计算 now 时刻的水平偏移（像素）
// 幅度随时间线性增大，每 ShakeFlipMs 毫秒翻转方向；持续 ShakeDurationMs 后归零
func (s *ShakeSystem) Offset(now int64) float64 {
	if !s.state.Active {
		return 0
	}
	elapsed := now - s.state.Start
	if elapsed >= config.ShakeDurationMs {
		s.state.Active = false
		return 0
	}
	if elapsed < 0 {
		return 0
	}

	sign := 1.0
	if (now/config.ShakeFlipMs)%2 == 0 {
		sign = -1.0
	}
	return float64(int(config.ShakeAmplitude * float64(elapsed) / config.ShakeDurationMs * sign))
}
