package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/decker502/tinytype/pkg/components"
	"github.com/decker502/tinytype/pkg/config"
	"github.com/decker502/tinytype/pkg/systems"
)

// SessionOptions 会话参数
type SessionOptions struct {
	// Rand 随机源；为 nil 时使用当前时间作种子
	Rand *rand.Rand
	// Timings 庆祝时间线；零值使用 config.DefaultTimings()
	Timings config.Timings
	// ConfettiEnabled 按对字母时是否喷出彩纸
	ConfettiEnabled bool
	// Cues 音效播放器，可为 nil
	Cues CuePlayer
}

// Session 一次游戏会话
//
// Session 持有全部可变状态（单词表、输入进度、粒子、庆祝、抖动、统计），
// 由帧驱动在同一个 goroutine 中调用：每帧先对本帧的每个按键调用 HandleKey，
// 再调用一次 Update。两者使用同一个 now。
type Session struct {
	id string

	bank        *systems.WordBank
	word        []rune
	typing      *systems.TypingSystem
	particles   *systems.ParticleSystem
	celebration *systems.CelebrationSystem
	shake       *systems.ShakeSystem
	metrics     *systems.MetricsSystem

	cues     CuePlayer
	confetti bool

	screenW, screenH int

	frame components.FrameState
	log   zerolog.Logger
}

// NewSession 创建会话
//
// 参数：
//   - bank: 已加载的单词表（至少一个单词）
//   - start: 会话开始时刻（毫秒，作为 WPM 计时起点）
//   - opts: 其他参数
func NewSession(bank *systems.WordBank, start int64, opts SessionOptions) *Session {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	timings := opts.Timings
	if timings == (config.Timings{}) {
		timings = config.DefaultTimings()
	}

	id := uuid.NewString()
	s := &Session{
		id:          id,
		bank:        bank,
		word:        []rune(bank.Current()),
		typing:      systems.NewTypingSystem(),
		particles:   systems.NewParticleSystem(rng),
		celebration: systems.NewCelebrationSystem(timings, rng),
		shake:       systems.NewShakeSystem(),
		metrics:     systems.NewMetricsSystem(start),
		cues:        opts.Cues,
		confetti:    opts.ConfettiEnabled,
		screenW:     config.WindowWidth,
		screenH:     config.WindowHeight,
		log:         logger("session").With().Str("session", id).Logger(),
	}

	s.log.Info().Int("words", bank.Len()).Str("word", bank.Current()).Msg("session started")
	return s
}

// ID 会话标识（出现在每条会话日志中）
func (s *Session) ID() string {
	return s.id
}

// SetScreenSize 更新屏幕尺寸（粒子原点与滑出距离依赖它）
func (s *Session) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.screenW, s.screenH = w, h
}

// ScreenSize 返回当前屏幕尺寸
func (s *Session) ScreenSize() (int, int) {
	return s.screenW, s.screenH
}

// Word 当前目标单词
func (s *Session) Word() string {
	return string(s.word)
}

// Progress 当前输入进度
func (s *Session) Progress() components.TypingProgress {
	return *s.typing.Progress()
}

// Celebration 当前庆祝状态
func (s *Session) Celebration() components.CelebrationState {
	return s.celebration.State()
}

// Completed 已完成单词数
func (s *Session) Completed() int {
	return s.metrics.Completed()
}

// ParticleCount 当前存活的彩纸数量
func (s *Session) ParticleCount() int {
	return s.particles.Count()
}

// HandleKey 处理一个键入字符
//
// 按对：在屏幕中心喷出彩纸（若启用）并播放 chime；
// 若因此完成整个单词，则计数、开始庆祝并播放 complete。
// 按错：开始抖动并播放 boop。
// 庆祝期间或非字母数字字符：忽略。
func (s *Session) HandleKey(now int64, key rune) components.KeyOutcome {
	outcome, completed := s.typing.OnKeypress(key, s.word, s.celebration.Active())

	switch outcome {
	case components.KeyCorrect:
		s.shake.Stop()
		if s.confetti {
			s.particles.SpawnBurst(float64(s.screenW/2), float64(s.screenH/2), config.ParticleBurstCount, now)
		}
		s.play(CueChime)

		if completed {
			s.metrics.RecordCompletion()
			s.celebration.Start(now)
			s.play(CueComplete)
			s.log.Info().
				Str("word", string(s.word)).
				Int("completed", s.metrics.Completed()).
				Str("emoji", s.celebration.State().Emoji).
				Str("direction", s.celebration.State().Direction.String()).
				Msg("word completed")
		}

	case components.KeyIncorrect:
		s.shake.Trigger(now)
		s.play(CueBoop)
		s.log.Debug().Str("key", string(key)).Str("word", string(s.word)).Msg("wrong key")
	}

	return outcome
}

func (s *Session) play(cue Cue) {
	if s.cues != nil {
		s.cues.Play(cue)
	}
}

// Update 推进到 now 并返回本帧的渲染快照
//
// 庆祝序列在本帧结束时切换到新单词：新单词的进度为空、没有错误字母、
// 变换为单位变换，并在同一帧的快照中呈现。
// 返回的指针在下一次 Update 前有效。
func (s *Session) Update(now int64) *components.FrameState {
	visual, done := s.celebration.Evaluate(now, s.screenW, s.screenH)
	if done {
		s.nextWord()
	}

	progress := s.typing.Progress()

	shakeOffset := 0.0
	if progress.HasWrong() {
		shakeOffset = s.shake.Offset(now)
	}

	s.frame = components.FrameState{
		Now:         now,
		Word:        s.word,
		Typed:       len(progress.Typed),
		LastWrong:   progress.LastWrong,
		Celebration: visual,
		ShakeOffset: shakeOffset,
		Particles:   s.particles.AdvanceAndCull(now),
		WPM:         s.metrics.WordsPerMinute(now),
	}
	return &s.frame
}

// Frame 返回最近一次 Update 的快照
func (s *Session) Frame() *components.FrameState {
	return &s.frame
}

func (s *Session) nextWord() {
	previous := s.bank.CurrentIndex()
	s.bank.Advance(previous)
	s.word = []rune(s.bank.Current())
	s.typing.Reset()
	s.shake.Stop()

	s.log.Debug().Str("word", s.bank.Current()).Msg("next word")
}
