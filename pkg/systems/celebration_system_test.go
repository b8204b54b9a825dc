package systems

import (
	"math"
	"testing"

	"github.com/decker502/tinytype/pkg/components"
	"github.com/decker502/tinytype/pkg/config"
)

const (
	testScreenW = 1000
	testScreenH = 600
)

// TestCelebrationStart 测试开始庆祝
func TestCelebrationStart(t *testing.T) {
	cs := NewCelebrationSystem(config.DefaultTimings(), newTestRand())

	if cs.Active() {
		t.Fatal("new system should be idle")
	}
	if !cs.Start(1000) {
		t.Fatal("Start should succeed when idle")
	}
	if cs.Start(1200) {
		t.Error("Start should be rejected while a sequence is in flight")
	}

	state := cs.State()
	if state.Phase != components.PhaseCelebrating || state.StartTime != 1000 {
		t.Errorf("state: got %+v", state)
	}

	found := false
	for _, e := range EmojiPool {
		if e == state.Emoji {
			found = true
		}
	}
	if !found {
		t.Errorf("emoji %q not from pool", state.Emoji)
	}
}

// TestCelebrationPhaseBoundaries 测试阶段边界单调且无重叠
func TestCelebrationPhaseBoundaries(t *testing.T) {
	cs := NewCelebrationSystem(config.DefaultTimings(), newTestRand())

	tests := []struct {
		elapsed int64
		phase   components.CelebrationPhase
		start   int64
	}{
		{0, components.PhaseCelebrating, 0},
		{2999, components.PhaseCelebrating, 0},
		{3000, components.PhaseGrowing, 3000},
		{3499, components.PhaseGrowing, 3000},
		{3500, components.PhaseSliding, 3500},
		{4299, components.PhaseSliding, 3500},
		{4300, components.PhasePaused, 4300},
		{4799, components.PhasePaused, 4300},
		{4800, components.PhaseIdle, 4800},
	}

	for _, tt := range tests {
		phase, start := cs.PhaseAt(tt.elapsed)
		if phase != tt.phase || start != tt.start {
			t.Errorf("PhaseAt(%d) = (%v, %d), want (%v, %d)", tt.elapsed, phase, start, tt.phase, tt.start)
		}
	}

	// 逐毫秒扫描：阶段只前进不后退
	prev := components.PhaseCelebrating
	for e := int64(0); e <= 5000; e++ {
		phase, _ := cs.PhaseAt(e)
		if phase == components.PhaseIdle {
			if e < 4800 {
				t.Fatalf("idle too early at %d", e)
			}
			continue
		}
		if phase < prev {
			t.Fatalf("phase went backwards at %d: %v -> %v", e, prev, phase)
		}
		prev = phase
	}
}

// TestCelebrationVisuals 测试各阶段的视觉参数
func TestCelebrationVisuals(t *testing.T) {
	cs := NewCelebrationSystem(config.DefaultTimings(), newTestRand())
	cs.Start(0)
	dir := cs.State().Direction

	extent := float64(testScreenW)
	if dir.Vertical() {
		extent = testScreenH
	}
	signX, signY := 0.0, 0.0
	switch dir {
	case components.SlideUp:
		signY = -1
	case components.SlideDown:
		signY = 1
	case components.SlideLeft:
		signX = -1
	case components.SlideRight:
		signX = 1
	}

	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

	// celebrating 中点
	v, done := cs.Evaluate(1500, testScreenW, testScreenH)
	if done || !near(v.Scale, 1.015) || v.OffsetX != 0 || v.OffsetY != 0 || v.EmojiAlpha != 1 {
		t.Errorf("celebrating midpoint: %+v done=%v", v, done)
	}
	if cs.State().Phase != components.PhaseCelebrating {
		t.Errorf("phase: got %v", cs.State().Phase)
	}

	// growing 中点
	v, _ = cs.Evaluate(3250, testScreenW, testScreenH)
	if !near(v.Scale, 1.15) || v.EmojiAlpha != 1 {
		t.Errorf("growing midpoint: %+v", v)
	}
	if cs.State().Phase != components.PhaseGrowing {
		t.Errorf("phase: got %v", cs.State().Phase)
	}

	// sliding 中点：偏移为 0.5 * 1.5 * extent，缩放回到 1.0
	v, _ = cs.Evaluate(3900, testScreenW, testScreenH)
	wantDist := math.Trunc(0.5 * 1.5 * extent)
	if v.Scale != 1.0 || !near(v.OffsetX, signX*wantDist) || !near(v.OffsetY, signY*wantDist) {
		t.Errorf("sliding midpoint: %+v, want dist %v along %v", v, wantDist, dir)
	}
	if cs.State().Phase != components.PhaseSliding {
		t.Errorf("phase: got %v", cs.State().Phase)
	}

	// paused：保持完全滑出距离，表情已淡出
	v, _ = cs.Evaluate(4500, testScreenW, testScreenH)
	fullDist := 1.5 * extent
	if !near(v.OffsetX, signX*fullDist) || !near(v.OffsetY, signY*fullDist) {
		t.Errorf("paused: %+v, want full dist %v", v, fullDist)
	}
	if v.EmojiAlpha != 0 {
		t.Errorf("paused emoji alpha: got %v, want 0", v.EmojiAlpha)
	}
	if cs.State().Phase != components.PhasePaused {
		t.Errorf("phase: got %v", cs.State().Phase)
	}
}

// TestCelebrationEmojiFade 测试表情从 sliding 开始线性淡出
func TestCelebrationEmojiFade(t *testing.T) {
	cs := NewCelebrationSystem(config.DefaultTimings(), newTestRand())
	cs.Start(0)

	tests := []struct {
		now  int64
		want float64
	}{
		{3499, 1},
		{3500, 1},
		{3750, float64(255-127) / 255},
		{4000, 0},
		{4200, 0},
	}
	for _, tt := range tests {
		v, _ := cs.Evaluate(tt.now, testScreenW, testScreenH)
		if math.Abs(v.EmojiAlpha-tt.want) > 1e-9 {
			t.Errorf("now=%d: alpha %v, want %v", tt.now, v.EmojiAlpha, tt.want)
		}
		if v.Emoji == "" {
			t.Errorf("now=%d: emoji cleared too early", tt.now)
		}
	}
}

// TestCelebrationEndsExactly 测试恰好在 t0+总时长 时结束并回到 idle
func TestCelebrationEndsExactly(t *testing.T) {
	tm := config.DefaultTimings()
	cs := NewCelebrationSystem(tm, newTestRand())
	cs.Start(10000)

	if _, done := cs.Evaluate(10000+tm.Total()-1, testScreenW, testScreenH); done {
		t.Fatal("finished one millisecond early")
	}

	v, done := cs.Evaluate(10000+tm.Total(), testScreenW, testScreenH)
	if !done {
		t.Fatal("expected sequence to finish at t0+total")
	}
	if cs.Active() || cs.State().Phase != components.PhaseIdle {
		t.Errorf("state after finish: %+v", cs.State())
	}
	if v != components.NeutralVisual() {
		t.Errorf("visual after finish: %+v, want neutral", v)
	}

	// 结束后只报告一次
	if _, done := cs.Evaluate(10000+tm.Total()+16, testScreenW, testScreenH); done {
		t.Error("done reported twice")
	}
}

// TestCelebrationFrameJitter 测试大跨度帧间隔（跳过整个阶段）仍正确结束
func TestCelebrationFrameJitter(t *testing.T) {
	cs := NewCelebrationSystem(config.DefaultTimings(), newTestRand())
	cs.Start(0)

	if _, done := cs.Evaluate(100, testScreenW, testScreenH); done {
		t.Fatal("unexpected finish")
	}
	// 一帧直接跳到 paused 之后
	if _, done := cs.Evaluate(9000, testScreenW, testScreenH); !done {
		t.Fatal("expected finish after a long stall")
	}
}

// TestCelebrationDirectionsCovered 测试四个方向都会被选中
func TestCelebrationDirectionsCovered(t *testing.T) {
	cs := NewCelebrationSystem(config.DefaultTimings(), newTestRand())
	seen := make(map[components.SlideDirection]bool)
	for i := 0; i < 200; i++ {
		cs.Start(int64(i))
		seen[cs.State().Direction] = true
		cs.Reset()
	}
	if len(seen) != len(components.AllDirections) {
		t.Errorf("directions seen: %v", seen)
	}
}
