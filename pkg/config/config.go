// Package config 提供游戏配置的加载与校验
//
// 配置文件默认为 config.toml，也接受 .yaml/.yml。
// 任何加载失败都不是致命错误：调用方记录日志后使用 DefaultConfig()。
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat 配置文件扩展名不受支持
var ErrUnsupportedFormat = errors.New("unsupported config format")

// logger 每次从全局 logger 派生，保证 main 中替换输出后仍然生效
func logger() *zerolog.Logger {
	l := log.With().Str("module", "config").Logger()
	return &l
}

// Config 游戏配置（对应 config.toml 的各个 section）
type Config struct {
	Display  DisplayConfig  `toml:"display" yaml:"display"`
	Gameplay GameplayConfig `toml:"gameplay" yaml:"gameplay"`
	Colors   ColorConfig    `toml:"colors" yaml:"colors"`
	Font     FontConfig     `toml:"font" yaml:"font"`
	Audio    AudioConfig    `toml:"audio" yaml:"audio"`
	Effects  EffectsConfig  `toml:"effects" yaml:"effects"`
}

// DisplayConfig 显示设置
type DisplayConfig struct {
	AntiAliasing bool `toml:"anti_aliasing" yaml:"anti_aliasing"` // 文字与图形抗锯齿
	Fullscreen   bool `toml:"fullscreen" yaml:"fullscreen"`       // 启动时全屏
}

// GameplayConfig 玩法设置
type GameplayConfig struct {
	ForceCase string `toml:"force_case" yaml:"force_case"` // upper / lower / preserve
}

// ColorConfig 颜色设置，均为十六进制字符串（如 "#F5E6FF"）
type ColorConfig struct {
	Background      string `toml:"background" yaml:"background"`
	TargetLetter    string `toml:"target_letter" yaml:"target_letter"`
	TypedLetter     string `toml:"typed_letter" yaml:"typed_letter"`
	RemainingLetter string `toml:"remaining_letter" yaml:"remaining_letter"`
	IncorrectLetter string `toml:"incorrect_letter" yaml:"incorrect_letter"`
	WPMText         string `toml:"wpm_text" yaml:"wpm_text"`
}

// FontConfig 字体设置
type FontConfig struct {
	Family string `toml:"family" yaml:"family"` // 对应 assets/fonts/<family>.ttf
}

// AudioConfig 音频设置
type AudioConfig struct {
	SoundEnabled bool `toml:"sound_enabled" yaml:"sound_enabled"`
}

// EffectsConfig 特效设置
type EffectsConfig struct {
	ConfettiEnabled bool `toml:"confetti_enabled" yaml:"confetti_enabled"`
}

// DefaultConfig 返回内置默认配置
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			AntiAliasing: false,
			Fullscreen:   true,
		},
		Gameplay: GameplayConfig{
			ForceCase: string(CaseUpper),
		},
		Colors: DefaultColors(),
		Font: FontConfig{
			Family: "Quicksand-Bold",
		},
		Audio: AudioConfig{
			SoundEnabled: true,
		},
		Effects: EffectsConfig{
			ConfettiEnabled: true,
		},
	}
}

// DefaultColors 返回默认配色
func DefaultColors() ColorConfig {
	return ColorConfig{
		Background:      "#F5E6FF",
		TargetLetter:    "#FF1493",
		TypedLetter:     "#00CED1",
		RemainingLetter: "#B0B0B0",
		IncorrectLetter: "#FF6B6B",
		WPMText:         "#9370DB",
	}
}

// Load 从文件加载配置
//
// 文件中缺失的键保留默认值；非法取值（颜色、大小写策略）回退为默认值并记录警告。
//
// 返回：
//   - *Config: 解析后的配置（出错时为 nil）
//   - error: 读取或解析失败
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	logger().Info().Str("path", path).Msg("config loaded")
	return cfg, nil
}

// Decode 按格式解析配置数据，format 为文件扩展名（".toml"、".yaml"、".yml"）
func Decode(data []byte, format string) (*Config, error) {
	cfg := DefaultConfig()

	switch strings.ToLower(format) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	for _, problem := range cfg.Normalize() {
		logger().Warn().Err(problem).Msg("invalid config value replaced by default")
	}
	return cfg, nil
}

// LoadOrDefault 加载配置，失败时返回默认配置并记录警告（ConfigLoadFailure 本地恢复）
// path 为空时直接返回默认配置
func LoadOrDefault(path string) *Config {
	if path == "" {
		logger().Debug().Msg("no config file, using defaults")
		return DefaultConfig()
	}
	cfg, err := Load(path)
	if err != nil {
		logger().Warn().Err(err).Msg("using default config")
		return DefaultConfig()
	}
	return cfg
}

// Normalize 将非法取值替换为默认值，返回发现的问题列表
func (c *Config) Normalize() []error {
	var problems []error

	policy, err := ParseCasePolicy(c.Gameplay.ForceCase)
	if err != nil {
		problems = append(problems, err)
	}
	c.Gameplay.ForceCase = string(policy)

	defaults := DefaultColors()
	fields := []struct {
		name  string
		value *string
		def   string
	}{
		{"background", &c.Colors.Background, defaults.Background},
		{"target_letter", &c.Colors.TargetLetter, defaults.TargetLetter},
		{"typed_letter", &c.Colors.TypedLetter, defaults.TypedLetter},
		{"remaining_letter", &c.Colors.RemainingLetter, defaults.RemainingLetter},
		{"incorrect_letter", &c.Colors.IncorrectLetter, defaults.IncorrectLetter},
		{"wpm_text", &c.Colors.WPMText, defaults.WPMText},
	}
	for _, f := range fields {
		if _, err := ParseHexColor(*f.value); err != nil {
			problems = append(problems, fmt.Errorf("colors.%s: %w", f.name, err))
			*f.value = f.def
		}
	}

	if strings.TrimSpace(c.Font.Family) == "" {
		c.Font.Family = DefaultConfig().Font.Family
	}

	return problems
}

// CasePolicy 返回已校验的大小写策略
func (c *Config) CasePolicy() CasePolicy {
	policy, _ := ParseCasePolicy(c.Gameplay.ForceCase)
	return policy
}
