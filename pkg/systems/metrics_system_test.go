package systems

import "testing"

// TestWordsPerMinute 测试 WPM 计算
func TestWordsPerMinute(t *testing.T) {
	m := NewMetricsSystem(5000)

	if got := m.WordsPerMinute(5000); got != 0 {
		t.Errorf("at session start: got %d, want 0", got)
	}
	if got := m.WordsPerMinute(65000); got != 0 {
		t.Errorf("no completions: got %d, want 0", got)
	}

	for i := 0; i < 3; i++ {
		m.RecordCompletion()
	}
	if m.Completed() != 3 {
		t.Fatalf("Completed: got %d, want 3", m.Completed())
	}

	tests := []struct {
		now  int64
		want int
	}{
		{5000, 0},
		{65000, 3}, // 1 分钟
		{35000, 6}, // 半分钟
		{95000, 2}, // 1.5 分钟 → 2
		{5001, 180000},
	}
	for _, tt := range tests {
		if got := m.WordsPerMinute(tt.now); got != tt.want {
			t.Errorf("WordsPerMinute(%d) = %d, want %d", tt.now, got, tt.want)
		}
	}

	if m.State().SessionStart != 5000 {
		t.Errorf("SessionStart changed: %d", m.State().SessionStart)
	}
}
