package utils

import (
	"math"
	"testing"
)

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 1.0, 1.3, 0.0, 1.0},
		{"终点", 1.0, 1.3, 1.0, 1.3},
		{"中点", 0, 100, 0.5, 50},
		{"反向", 10, 0, 0.25, 7.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}

// TestClamp01 测试范围限制
func TestClamp01(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.4, 0.4},
		{1, 1},
		{3, 1},
	}

	for _, tt := range tests {
		if got := Clamp01(tt.input); got != tt.expected {
			t.Errorf("Clamp01(%v) = %v, 期望 %v", tt.input, got, tt.expected)
		}
	}

	if EaseLinear(0.3) != 0.3 {
		t.Error("EaseLinear 应该返回输入值")
	}
}

// TestAlphaToByte 测试透明度转换
func TestAlphaToByte(t *testing.T) {
	if got := AlphaToByte(1); got != 255 {
		t.Errorf("AlphaToByte(1) = %d, 期望 255", got)
	}
	if got := AlphaToByte(0); got != 0 {
		t.Errorf("AlphaToByte(0) = %d, 期望 0", got)
	}
	if got := AlphaToByte(2); got != 255 {
		t.Errorf("AlphaToByte(2) = %d, 期望 255", got)
	}
	if got := AlphaToByte(0.5); got != 128 {
		t.Errorf("AlphaToByte(0.5) = %d, 期望 128", got)
	}
}
