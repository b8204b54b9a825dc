package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidColor 颜色字符串不是 #RRGGBB 格式
var ErrInvalidColor = errors.New("invalid hex color")

// Palette 解析后的配色（不透明 RGBA）
type Palette struct {
	Background      color.RGBA
	TargetLetter    color.RGBA
	TypedLetter     color.RGBA
	RemainingLetter color.RGBA
	IncorrectLetter color.RGBA
	WPMText         color.RGBA
}

// ParseHexColor 解析 "#RRGGBB" 或 "RRGGBB"
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// Palette 将颜色配置解析为 RGBA
// 非法颜色使用对应的默认颜色（Normalize 之后不会出现）
func (c *Config) Palette() Palette {
	defaults := DefaultColors()
	resolve := func(value, def string) color.RGBA {
		if rgba, err := ParseHexColor(value); err == nil {
			return rgba
		}
		rgba, _ := ParseHexColor(def)
		return rgba
	}

	return Palette{
		Background:      resolve(c.Colors.Background, defaults.Background),
		TargetLetter:    resolve(c.Colors.TargetLetter, defaults.TargetLetter),
		TypedLetter:     resolve(c.Colors.TypedLetter, defaults.TypedLetter),
		RemainingLetter: resolve(c.Colors.RemainingLetter, defaults.RemainingLetter),
		IncorrectLetter: resolve(c.Colors.IncorrectLetter, defaults.IncorrectLetter),
		WPMText:         resolve(c.Colors.WPMText, defaults.WPMText),
	}
}
