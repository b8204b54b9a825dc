// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyEvents 当前帧收集到的键盘输入
type KeyEvents struct {
	// Chars 本帧输入的字符（按输入顺序）
	Chars []rune
	// Quit 是否按下了 Escape
	Quit bool
	// ToggleFullscreen 是否按下了 F11
	ToggleFullscreen bool
}

// CollectKeyEvents 读取本帧的键盘输入
// buf 用于复用字符切片，避免每帧分配
func CollectKeyEvents(buf []rune) KeyEvents {
	return KeyEvents{
		Chars:            ebiten.AppendInputChars(buf[:0]),
		Quit:             inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ToggleFullscreen: inpututil.IsKeyJustPressed(ebiten.KeyF11),
	}
}
