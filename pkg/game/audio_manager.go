package game

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
)

// Cue 音效提示名称，同时也是资源清单中的音效 ID
type Cue string

const (
	// CueChime 按对一个字母
	CueChime Cue = "chime"
	// CueBoop 按错字母
	CueBoop Cue = "boop"
	// CueComplete 完成整个单词
	CueComplete Cue = "complete"
)

// AllCues 游戏使用的全部音效
var AllCues = []Cue{CueChime, CueBoop, CueComplete}

// defaultSoundVolume 音效默认音量
const defaultSoundVolume = 0.8

// CuePlayer 音效播放接口
//
// Session 只依赖这个接口，测试中可替换为记录调用的假实现。
type CuePlayer interface {
	// Play 播放音效，返回是否真正发出了声音
	Play(cue Cue) bool
}

// AudioManager 音效管理器
// 职责：
//   - 通过 ResourceManager 加载并缓存每个音效的播放器
//   - 遵循配置中的 sound_enabled 开关
//   - 缺失的音效只在首次使用时警告一次，之后静默跳过
type AudioManager struct {
	resourceManager *ResourceManager
	enabled         bool
	volume          float64
	players         map[Cue]*audio.Player // 音效 -> 播放器
	missing         map[Cue]bool          // 加载失败的音效
	log             zerolog.Logger
}

// NewAudioManager 创建新的音效管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件，可为 nil 表示无音频）
//   - enabled: 是否启用音效（config 中的 audio.sound_enabled）
func NewAudioManager(rm *ResourceManager, enabled bool) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		enabled:         enabled,
		volume:          defaultSoundVolume,
		players:         make(map[Cue]*audio.Player),
		missing:         make(map[Cue]bool),
		log:             *logger("audio"),
	}
}

// Enabled 返回音效是否启用
func (am *AudioManager) Enabled() bool {
	return am.enabled
}

// SetEnabled 开关音效
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// SetVolume 设置音效音量 (0.0 ~ 1.0)，超出范围的值会被截断
func (am *AudioManager) SetVolume(volume float64) {
	switch {
	case volume < 0:
		volume = 0
	case volume > 1:
		volume = 1
	}
	am.volume = volume
	for _, player := range am.players {
		player.SetVolume(volume)
	}
}

// Play 播放音效
// 音效单次播放，重复触发时从头开始
//
// 返回：
//   - bool: 是否成功播放（音效禁用或文件缺失时为 false）
func (am *AudioManager) Play(cue Cue) bool {
	if !am.enabled {
		return false
	}

	player := am.player(cue)
	if player == nil {
		return false
	}

	player.SetVolume(am.volume)
	if err := player.Rewind(); err != nil {
		am.log.Warn().Err(err).Str("cue", string(cue)).Msg("failed to rewind sound")
	}
	player.Play()
	return true
}

// Preload 预加载音效，避免首次播放时的延迟
func (am *AudioManager) Preload(cues ...Cue) {
	loaded := 0
	for _, cue := range cues {
		if am.player(cue) != nil {
			loaded++
		}
	}
	am.log.Debug().Int("loaded", loaded).Int("requested", len(cues)).Msg("sounds preloaded")
}

// Available 返回音效是否可以播放（不考虑 enabled 开关）
func (am *AudioManager) Available(cue Cue) bool {
	return am.player(cue) != nil
}

// player 获取或加载音效播放器
func (am *AudioManager) player(cue Cue) *audio.Player {
	if player, ok := am.players[cue]; ok {
		return player
	}
	if am.missing[cue] || am.resourceManager == nil {
		return nil
	}

	player, err := am.resourceManager.LoadCue(string(cue))
	if err != nil {
		am.missing[cue] = true
		am.log.Warn().Err(err).Str("cue", string(cue)).Msg("sound disabled")
		return nil
	}

	am.players[cue] = player
	return player
}
