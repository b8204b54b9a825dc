package config

import (
	"fmt"
	"strings"
)

// CasePolicy 单词加载时的大小写规范化策略
type CasePolicy string

const (
	CaseUpper    CasePolicy = "upper"
	CaseLower    CasePolicy = "lower"
	CasePreserve CasePolicy = "preserve"
)

// ParseCasePolicy 解析大小写策略（不区分大小写）
// 空字符串视为 upper；未知取值返回 upper 和错误
func ParseCasePolicy(s string) (CasePolicy, error) {
	switch CasePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", CaseUpper:
		return CaseUpper, nil
	case CaseLower:
		return CaseLower, nil
	case CasePreserve:
		return CasePreserve, nil
	}
	return CaseUpper, fmt.Errorf("unknown force_case %q", s)
}

// Apply 按策略转换单词
func (p CasePolicy) Apply(word string) string {
	switch p {
	case CaseUpper:
		return strings.ToUpper(word)
	case CaseLower:
		return strings.ToLower(word)
	}
	return word
}
