package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/decker502/tinytype/pkg/app"
	"github.com/decker502/tinytype/pkg/config"
	"github.com/decker502/tinytype/pkg/embedded"
)

const (
	envLogLevel = "LOG_LEVEL"
	envConfig   = "TINYTYPE_CONFIG"
	envWords    = "TINYTYPE_WORDS"
	envAssets   = "TINYTYPE_ASSETS"
)

var (
	configPath = flag.String("config", "", "配置文件路径（.toml / .yaml），默认 config.toml")
	wordsPath  = flag.String("words", "", "单词表文件路径（每行一个单词）")
	assetsDir  = flag.String("assets", "", "资源覆盖目录（fonts/、sounds/ 等）")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	windowed   = flag.Bool("windowed", false, "以窗口模式启动")
)

func main() {
	flag.Parse()

	// .env 可选，不存在时忽略
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		setupLogger(false)
		log.Warn().Err(err).Msg("failed to load .env")
	}
	setupLogger(*verbose)

	embedded.Init(assetsFS)

	cfg := app.Config{
		ConfigPath: firstNonEmpty(*configPath, os.Getenv(envConfig), defaultConfigPath()),
		WordsPath:  firstNonEmpty(*wordsPath, os.Getenv(envWords)),
		AssetsDir:  firstNonEmpty(*assetsDir, os.Getenv(envAssets)),
		Windowed:   *windowed,
	}
	log.Debug().
		Str("config", cfg.ConfigPath).
		Str("words", cfg.WordsPath).
		Str("assets", cfg.AssetsDir).
		Bool("windowed", cfg.Windowed).
		Msg("starting")

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("游戏初始化失败")
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Typing Game for Toddlers")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal().Err(err).Msg("game loop error")
	}
}

// setupLogger 配置全局 zerolog：控制台输出到 stderr，级别来自 -verbose 或 LOG_LEVEL
func setupLogger(verbose bool) {
	level := zerolog.InfoLevel
	if s := os.Getenv(envLogLevel); s != "" {
		if parsed, err := zerolog.ParseLevel(s); err == nil {
			level = parsed
		}
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().
		Timestamp().
		Logger()
}

// defaultConfigPath 当前目录下的 config.toml（不存在时由 app 回退到默认配置）
func defaultConfigPath() string {
	if _, err := os.Stat("config.toml"); err == nil {
		return "config.toml"
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
