package systems

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/decker502/tinytype/pkg/config"
)

// DigitFallback 单词表缺失或为空时使用的固定序列 "0".."9"
func DigitFallback() []string {
	return lo.Times(10, strconv.Itoa)
}

// WordBank 候选单词序列及"下一个"选择策略
//
// 不变量：len(words) > 0 且 0 <= index < len(words)。
// 单词加载后不再修改。
type WordBank struct {
	words []string
	index int
	rng   *rand.Rand
}

// LoadWordBank 从原始行构建单词库
//
// 处理步骤：
//  1. 去掉首尾空白并过滤空行
//  2. 按大小写策略转换
//  3. 打乱顺序
//
// 如果没有可用的行，使用 DigitFallback()（固定顺序，不打乱）。
func LoadWordBank(rawLines []string, policy config.CasePolicy, rng *rand.Rand) *WordBank {
	words := lo.FilterMap(rawLines, func(line string, _ int) (string, bool) {
		w := strings.TrimSpace(line)
		return policy.Apply(w), w != ""
	})

	if len(words) == 0 {
		return newWordBank(lo.Map(DigitFallback(), func(w string, _ int) string {
			return policy.Apply(w)
		}), rng)
	}

	rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	return newWordBank(words, rng)
}

func newWordBank(words []string, rng *rand.Rand) *WordBank {
	return &WordBank{
		words: words,
		index: 0,
		rng:   rng,
	}
}

// Current 返回当前单词
func (b *WordBank) Current() string {
	return b.words[b.index]
}

// CurrentIndex 返回当前索引
func (b *WordBank) CurrentIndex() int {
	return b.index
}

// Len 返回单词数量
func (b *WordBank) Len() int {
	return len(b.words)
}

// Words 返回单词副本（按当前顺序）
func (b *WordBank) Words() []string {
	return append([]string(nil), b.words...)
}

// Advance 选出下一个单词并返回其索引
//
// 多于一个单词时，在排除 previous 的其余索引中均匀抽取，保证不会连续重复；
// 只有一个单词时按顺序循环（结果总是同一个索引）。
func (b *WordBank) Advance(previous int) int {
	n := len(b.words)
	switch {
	case n == 1:
		b.index = (previous + 1) % n
	case previous < 0 || previous >= n:
		b.index = b.rng.Intn(n)
	default:
		next := b.rng.Intn(n - 1)
		if next >= previous {
			next++
		}
		b.index = next
	}
	return b.index
}
