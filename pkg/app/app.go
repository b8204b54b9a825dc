// Package app 提供游戏应用的核心包装器
//
// 该包把启动时的组装（配置、资源、单词表、会话、场景）从 main 包提取出来，
// main.go 只负责命令行参数、日志和 ebiten.RunGame。
package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/decker502/tinytype/pkg/clock"
	"github.com/decker502/tinytype/pkg/config"
	"github.com/decker502/tinytype/pkg/embedded"
	"github.com/decker502/tinytype/pkg/game"
	"github.com/decker502/tinytype/pkg/scenes"
	"github.com/decker502/tinytype/pkg/systems"
	"github.com/decker502/tinytype/pkg/utils"
)

const (
	// AppName gdata 用户数据目录名
	AppName = "tinytype"
	// sampleRate 音频上下文采样率
	sampleRate = 48000
	// windowResetFrames 退出全屏后等待几帧再恢复窗口大小
	windowResetFrames = 3
)

// Config 定义应用启动配置
type Config struct {
	// ConfigPath 配置文件路径（.toml / .yaml），为空或读取失败时使用默认配置
	ConfigPath string
	// WordsPath 单词表文件路径，为空时依次使用用户数据目录和内置单词表
	WordsPath string
	// AssetsDir 资源覆盖目录（结构与内置 assets/ 相同），可为空
	AssetsDir string
	// Windowed 强制窗口模式（覆盖配置中的 fullscreen）
	Windowed bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene  game.Scene
	keyBuf []rune

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数

	log zerolog.Logger
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 除字体全部不可用外，任何资源问题都只记录警告，游戏照常启动。
func NewApp(cfg Config) (*App, error) {
	l := appLogger()

	gameCfg := loadGameConfig(cfg)
	if cfg.AssetsDir != "" {
		embedded.SetOverrideDir(cfg.AssetsDir)
		l.Info().Str("dir", cfg.AssetsDir).Msg("asset override directory")
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(sampleRate)

	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadManifest(game.ManifestPath); err != nil {
		l.Warn().Err(err).Msg("resource manifest unavailable, using conventional paths")
	}

	audioManager := game.NewAudioManager(resourceManager, gameCfg.Audio.SoundEnabled)
	audioManager.Preload(game.AllCues...)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	bank := systems.LoadWordBank(loadWordLines(cfg), gameCfg.CasePolicy(), rng)

	clk := clock.NewSystemClock()
	session := game.NewSession(bank, clk.Now(), game.SessionOptions{
		Rand:            rng,
		Timings:         config.DefaultTimings(),
		ConfettiEnabled: gameCfg.Effects.ConfettiEnabled,
		Cues:            audioManager,
	})

	fontSource := resourceManager.FontSourceOrDefault(gameCfg.Font.Family)
	if fontSource == nil {
		return nil, fmt.Errorf("no usable font for family %q", gameCfg.Font.Family)
	}
	scene := scenes.NewTypingScene(session, clk, gameCfg, fontSource)

	ebiten.SetFullscreen(gameCfg.Display.Fullscreen)

	return newApp(scene), nil
}

func newApp(scene game.Scene) *App {
	return &App{
		scene: scene,
		log:   appLogger(),
	}
}

func appLogger() zerolog.Logger {
	return log.With().Str("module", "app").Logger()
}

// loadGameConfig 读取配置文件，失败时回退到默认配置
func loadGameConfig(cfg Config) *config.Config {
	gameCfg := config.LoadOrDefault(cfg.ConfigPath)
	if cfg.Windowed {
		gameCfg.Display.Fullscreen = false
	}
	return gameCfg
}

// loadWordLines 按优先级读取单词表；全部失败时返回 nil（由 WordBank 回退到数字）
func loadWordLines(cfg Config) []string {
	l := appLogger()

	source := game.WordSource{
		Path:      cfg.WordsPath,
		AssetPath: game.WordsAssetPath,
	}
	if userData, err := gdata.Open(gdata.Config{AppName: AppName}); err != nil {
		l.Warn().Err(err).Msg("user data directory unavailable")
	} else {
		source.UserData = userData
	}

	lines, err := source.Load()
	if err != nil {
		l.Warn().Err(err).Msg("no word list found, using digits")
		return nil
	}
	return lines
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	events := utils.CollectKeyEvents(a.keyBuf)
	a.keyBuf = events.Chars
	return a.handle(events)
}

// handle 处理一帧的输入事件并推进场景
// 按下 Escape 时返回 ebiten.Termination，游戏循环正常退出
func (a *App) handle(events utils.KeyEvents) error {
	if events.Quit {
		a.log.Info().Msg("quit requested")
		return ebiten.Termination
	}

	a.tickWindowReset()
	if events.ToggleFullscreen {
		a.toggleFullscreen()
	}

	a.scene.Update(events.Chars)
	return nil
}

func (a *App) toggleFullscreen() {
	if !ebiten.IsFullscreen() {
		ebiten.SetFullscreen(true)
		return
	}

	// 退出全屏
	ebiten.SetFullscreen(false)
	if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
	// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
	a.pendingWindowSizeReset = true
	a.windowSizeResetCountdown = windowResetFrames
	a.log.Debug().Int("frames", windowResetFrames).Msg("exit fullscreen, window size reset pending")
}

func (a *App) tickWindowReset() {
	if !a.pendingWindowSizeReset {
		return
	}
	a.windowSizeResetCountdown--
	if a.windowSizeResetCountdown <= 0 {
		ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
		a.pendingWindowSizeReset = false
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 逻辑尺寸跟随窗口（或显示器）尺寸，所有布局按比例计算
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.scene.SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
