package utils

// 插值与范围限制工具
//
// 庆祝时间线中的缩放、滑出和淡出都是线性的，这里只保留用得到的函数。

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// AlphaToByte 将 0~1 的透明度转换为 0~255
func AlphaToByte(alpha float64) uint8 {
	return uint8(Clamp01(alpha)*255 + 0.5)
}
