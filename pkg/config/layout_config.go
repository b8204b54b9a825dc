package config

// 布局配置常量
// 所有尺寸均为相对屏幕尺寸的比例，屏幕尺寸由 ebiten Layout 的外部尺寸决定

const (
	// MainFontRatio 目标单词字号占屏幕高度的比例
	MainFontRatio = 0.13

	// WPMFontRatio WPM 文字字号占屏幕高度的比例
	WPMFontRatio = 0.02

	// WrongFontRatio 错误字母提示字号占屏幕高度的比例
	WrongFontRatio = 0.045

	// EmojiFontRatio 庆祝表情字号占屏幕高度的比例（再乘以当前缩放）
	EmojiFontRatio = 0.07

	// LetterSpacingRatio 字母间距占屏幕宽度的比例（再乘以当前缩放）
	LetterSpacingRatio = 0.02

	// WPMMargin WPM 文字距右上角的像素边距
	WPMMargin = 20.0

	// WrongLetterGap 错误字母与单词底部之间的像素间距
	WrongLetterGap = 10.0

	// EmojiGap 表情与单词顶部之间的像素间距
	EmojiGap = 30.0
)

// 窗口模式下的默认窗口尺寸（全屏时使用显示器尺寸）
const (
	WindowWidth  = 1280
	WindowHeight = 720
)

// ScaledFontSize 根据屏幕高度计算字号，最小 1 像素
func ScaledFontSize(screenHeight int, ratio float64) float64 {
	size := float64(screenHeight) * ratio
	if size < 1 {
		return 1
	}
	return size
}
