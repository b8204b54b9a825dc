// Package clock 提供单调毫秒时间源
//
// 游戏中所有计时（庆祝动画、粒子寿命、抖动、WPM）都基于同一个毫秒时间戳，
// 每帧只采样一次，由 Frame Driver 分发给各个系统。
package clock

import "time"

// Clock 单调毫秒时间源
type Clock interface {
	// Now 返回自时钟创建以来经过的毫秒数（单调不减）
	Now() int64
}

// SystemClock 基于 time.Now 的单调时钟
// time.Time 自带 monotonic reading，Sub 不受系统时间调整影响
type SystemClock struct {
	start time.Time
}

// NewSystemClock 创建从当前时刻开始计时的系统时钟
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now 返回自创建以来经过的毫秒数
func (c *SystemClock) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock 手动推进的时钟，用于测试
type ManualClock struct {
	now int64
}

// NewManualClock 创建起始于 start 毫秒的手动时钟
func NewManualClock(start int64) *ManualClock {
	return &ManualClock{now: start}
}

// Now 返回当前设定的毫秒数
func (c *ManualClock) Now() int64 {
	return c.now
}

// Set 设置当前时间，早于当前值的时间会被忽略以保持单调性
func (c *ManualClock) Set(ms int64) {
	if ms > c.now {
		c.now = ms
	}
}

// Advance 将时间向前推进 d 毫秒（负值忽略）
func (c *ManualClock) Advance(d int64) {
	if d > 0 {
		c.now += d
	}
}
