package components

// TypingProgress 当前单词的输入进度
//
// 不变量：Typed 始终是当前单词的前缀（大小写不敏感比较），
// 且字符取自单词本身的大小写而非按键的大小写。
type TypingProgress struct {
	Typed     []rune // 已正确输入的前缀
	LastWrong rune   // 最近一次输错的字符，0 表示没有
}

// HasWrong 是否存在输错提示
func (p *TypingProgress) HasWrong() bool {
	return p.LastWrong != 0
}

// Reset 清空进度（切换到新单词时调用）
func (p *TypingProgress) Reset() {
	p.Typed = p.Typed[:0]
	p.LastWrong = 0
}

// KeyOutcome 一次按键的处理结果
type KeyOutcome int

const (
	// KeyIgnored 非字母数字，或正在庆祝
	KeyIgnored KeyOutcome = iota
	// KeyCorrect 匹配下一个期望字符
	KeyCorrect
	// KeyIncorrect 字母数字但不匹配
	KeyIncorrect
)

// String 返回结果名称
func (o KeyOutcome) String() string {
	switch o {
	case KeyCorrect:
		return "correct"
	case KeyIncorrect:
		return "incorrect"
	}
	return "ignored"
}
