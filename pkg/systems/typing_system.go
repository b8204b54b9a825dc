package systems

import (
	"unicode"

	"github.com/decker502/tinytype/pkg/components"
)

// TypingSystem 处理按键与当前单词的匹配
//
// 只负责输入进度本身；粒子、音效、庆祝等副作用由 Session 根据返回结果触发。
type TypingSystem struct {
	progress components.TypingProgress
}

// NewTypingSystem 创建输入系统
func NewTypingSystem() *TypingSystem {
	return &TypingSystem{
		progress: components.TypingProgress{Typed: make([]rune, 0, 16)},
	}
}

// Progress 返回当前进度（只读使用）
func (s *TypingSystem) Progress() *components.TypingProgress {
	return &s.progress
}

// OnKeypress 处理一次按键
//
// 参数：
//   - key: 按键对应的字符
//   - word: 当前目标单词
//   - locked: 是否正在庆祝（庆祝期间忽略输入）
//
// 返回：
//   - components.KeyOutcome: 处理结果
//   - bool: 本次按键是否完成了整个单词
func (s *TypingSystem) OnKeypress(key rune, word []rune, locked bool) (components.KeyOutcome, bool) {
	if locked || !isAlphanumeric(key) {
		return components.KeyIgnored, false
	}

	pos := len(s.progress.Typed)
	if pos >= len(word) {
		// 单词已满（庆祝门控下不应出现），不再匹配
		return components.KeyIgnored, false
	}

	expected := word[pos]
	if !sameLetter(key, expected) {
		s.progress.LastWrong = key
		return components.KeyIncorrect, false
	}

	// 使用单词本身的大小写
	s.progress.Typed = append(s.progress.Typed, expected)
	s.progress.LastWrong = 0
	return components.KeyCorrect, len(s.progress.Typed) == len(word)
}

// Reset 切换单词时清空进度
func (s *TypingSystem) Reset() {
	s.progress.Reset()
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func sameLetter(a, b rune) bool {
	return unicode.ToLower(a) == unicode.ToLower(b)
}
