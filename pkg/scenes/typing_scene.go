package scenes

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/decker502/tinytype/pkg/clock"
	"github.com/decker502/tinytype/pkg/components"
	"github.com/decker502/tinytype/pkg/config"
	"github.com/decker502/tinytype/pkg/game"
)

const (
	// frameBudgetMs 60 FPS 下一帧的时长
	frameBudgetMs = 1000 / 60
	// overrunFrames 超过多少帧的间隔视为卡顿
	overrunFrames = 3
	// overrunLogInterval 卡顿警告的最小间隔
	overrunLogInterval = time.Second
)

var (
	// whiteImage 彩纸三角形使用的纯白纹理
	whiteImage = ebiten.NewImage(3, 3)
	// whiteSubImage 取中心像素，避免采样到边缘
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// TypingScene 打字游戏的唯一场景
//
// 每帧 Update 只采样一次时钟：本帧所有按键与会话推进共享同一个 now。
// Draw 只读取最近一次 Update 产出的快照。
type TypingScene struct {
	session    *game.Session
	clock      clock.Clock
	palette    config.Palette
	antiAlias  bool
	fontSource *text.GoTextFaceSource

	width, height int

	frame   *components.FrameState
	lastNow int64
	started bool

	overrunLimiter *rate.Limiter

	// 顶点缓冲（保留容量，避免每帧分配）
	vertices []ebiten.Vertex
	indices  []uint16

	log zerolog.Logger
}

var _ game.Scene = (*TypingScene)(nil)

// NewTypingScene 创建打字场景
//
// 参数：
//   - session: 游戏会话
//   - clk: 毫秒时钟
//   - cfg: 游戏配置（颜色与抗锯齿）
//   - fontSource: 字体；为 nil 时不绘制文字
func NewTypingScene(session *game.Session, clk clock.Clock, cfg *config.Config, fontSource *text.GoTextFaceSource) *TypingScene {
	w, h := session.ScreenSize()
	return &TypingScene{
		session:        session,
		clock:          clk,
		palette:        cfg.Palette(),
		antiAlias:      cfg.Display.AntiAliasing,
		fontSource:     fontSource,
		width:          w,
		height:         h,
		overrunLimiter: rate.NewLimiter(rate.Every(overrunLogInterval), 1),
		log:            log.With().Str("module", "scene").Str("session", session.ID()).Logger(),
	}
}

// SetScreenSize 更新屏幕尺寸并同步给会话
func (s *TypingScene) SetScreenSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.session.SetScreenSize(width, height)
}

// Frame 最近一次 Update 的快照（尚未 Update 时为 nil）
func (s *TypingScene) Frame() *components.FrameState {
	return s.frame
}

// Update 处理本帧按键并推进会话
func (s *TypingScene) Update(keys []rune) {
	now := s.clock.Now()
	s.checkOverrun(now)

	for _, key := range keys {
		s.session.HandleKey(now, key)
	}
	s.frame = s.session.Update(now)
}

func (s *TypingScene) checkOverrun(now int64) {
	if s.started {
		if gap := now - s.lastNow; gap > overrunFrames*frameBudgetMs && s.overrunLimiter.Allow() {
			s.log.Warn().Int64("gap_ms", gap).Msg("frame overrun")
		}
	}
	s.lastNow = now
	s.started = true
}

// Draw 绘制背景、单词、错误字母、彩纸、表情和 WPM
func (s *TypingScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.palette.Background)
	if s.frame == nil {
		return
	}

	s.drawParticles(screen, s.frame.Particles)

	if s.fontSource == nil {
		return
	}
	faces := newTypingFaces(s.fontSource, s.height, s.frame.Celebration.Scale)
	layout := layoutTyping(s.frame, faces, s.palette, s.width, s.height)

	for i := range layout.Letters {
		s.drawText(screen, &layout.Letters[i], faces.Main)
	}
	if layout.Wrong != nil {
		s.drawText(screen, layout.Wrong, faces.Wrong)
	}
	if layout.Emoji != nil {
		s.drawText(screen, layout.Emoji, faces.Emoji)
	}
	s.drawText(screen, &layout.WPM, faces.WPM)
}

func (s *TypingScene) drawText(screen *ebiten.Image, t *placedText, face text.Face) {
	op := &text.DrawOptions{}
	if t.Scale != 1 {
		op.GeoM.Scale(t.Scale, t.Scale)
		if s.antiAlias {
			op.Filter = ebiten.FilterLinear
		}
	}
	op.GeoM.Translate(t.X, t.Y)
	op.ColorScale.ScaleWithColor(t.Color)
	if t.Alpha < 1 {
		op.ColorScale.ScaleAlpha(float32(t.Alpha))
	}
	text.Draw(screen, t.Text, face, op)
}

// drawParticles 把所有彩纸合并成一次 DrawTriangles
func (s *TypingScene) drawParticles(screen *ebiten.Image, particles []components.ParticleSnapshot) {
	if len(particles) == 0 {
		return
	}

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for _, p := range particles {
		s.vertices, s.indices = appendParticle(s.vertices, s.indices, p, 1, 1)
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = s.antiAlias
	screen.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}
