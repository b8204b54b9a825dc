package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/decker502/tinytype/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrAssetMissing is returned when a font or sound cannot be found in any
// asset location. Callers treat it as non-fatal.
var ErrAssetMissing = errors.New("asset missing")

// ManifestPath is the default location of the resource manifest.
const ManifestPath = "assets/config/resources.yaml"

// soundExtensions lists the formats tried, in order, when a cue has no
// manifest entry.
var soundExtensions = []string{".wav", ".ogg", ".mp3"}

// logger 每次从全局 logger 派生，保证 main 中替换输出后仍然生效
func logger(module string) *zerolog.Logger {
	l := log.With().Str("module", module).Logger()
	return &l
}

// ResourceManager is responsible for locating, decoding and caching the
// game's fonts and sound cues.
//
// Asset lookup order:
//   - The manifest entry for the id, if a manifest was loaded
//   - The conventional location (assets/fonts/<family>.ttf, assets/sounds/<cue>.wav ...)
//
// Every read goes through the embedded package, so a directory passed to
// embedded.SetOverrideDir shadows the built-in assets file by file.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. It is meant to be used from the
// game loop goroutine, or fully preloaded before the loop starts.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadManifest(ManifestPath); err != nil {
//	    log.Warn().Err(err).Msg("using conventional asset paths")
//	}
//	source := rm.FontSourceOrDefault("Quicksand-Bold")
type ResourceManager struct {
	audioContext    *audio.Context                    // nil disables audio decoding
	fontSourceCache map[string]*text.GoTextFaceSource // family -> source
	defaultFont     *text.GoTextFaceSource            // lazily parsed goregular
	audioCache      map[string]*audio.Player          // asset path -> player

	manifest *ResourceManifest
	soundMap map[string]string // cue id -> asset path
	fontMap  map[string]string // family -> asset path
}

// NewResourceManager creates a ResourceManager. audioContext may be nil, in
// which case every LoadCue call fails and the game runs silently.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext:    audioContext,
		fontSourceCache: make(map[string]*text.GoTextFaceSource),
		audioCache:      make(map[string]*audio.Player),
		soundMap:        make(map[string]string),
		fontMap:         make(map[string]string),
	}
}

// LoadManifest parses the YAML resource manifest at manifestPath and builds
// the id -> path lookup tables. Calling it again replaces the previous
// manifest.
func (rm *ResourceManager) LoadManifest(manifestPath string) error {
	data, err := embedded.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to read resource manifest %s: %w", manifestPath, err)
	}

	manifest, err := ParseResourceManifest(data)
	if err != nil {
		return fmt.Errorf("%s: %w", manifestPath, err)
	}

	rm.manifest = manifest
	rm.buildResourceMap()

	logger("resources").Debug().
		Str("path", manifestPath).
		Int("sounds", len(rm.soundMap)).
		Int("fonts", len(rm.fontMap)).
		Msg("resource manifest loaded")
	return nil
}

// buildResourceMap flattens the manifest into the lookup tables.
func (rm *ResourceManager) buildResourceMap() {
	rm.soundMap = make(map[string]string, len(rm.manifest.Sounds))
	rm.fontMap = make(map[string]string, len(rm.manifest.Fonts))

	base := rm.manifest.BasePath
	if base == "" {
		base = "assets"
	}
	for _, s := range rm.manifest.Sounds {
		rm.soundMap[s.ID] = buildFullPath(base, s.Path)
	}
	for _, f := range rm.manifest.Fonts {
		rm.fontMap[f.ID] = buildFullPath(base, f.Path)
	}
}

// FontPath resolves a font family to an asset path, or "" when no file
// exists for it.
func (rm *ResourceManager) FontPath(family string) string {
	if p, ok := rm.fontMap[family]; ok && embedded.Exists(p) {
		return p
	}
	conventional := path.Join("assets", "fonts", family+".ttf")
	if embedded.Exists(conventional) {
		return conventional
	}
	return ""
}

// LoadFontSource loads and caches the font source for family.
// Returns an error wrapping ErrAssetMissing if no file exists for it.
func (rm *ResourceManager) LoadFontSource(family string) (*text.GoTextFaceSource, error) {
	if cached, ok := rm.fontSourceCache[family]; ok {
		return cached, nil
	}

	p := rm.FontPath(family)
	if p == "" {
		return nil, fmt.Errorf("font %q: %w", family, ErrAssetMissing)
	}

	data, err := embedded.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", p, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", p, err)
	}

	rm.fontSourceCache[family] = source
	return source, nil
}

// DefaultFontSource returns the built-in fallback font (Go Regular).
func (rm *ResourceManager) DefaultFontSource() (*text.GoTextFaceSource, error) {
	if rm.defaultFont != nil {
		return rm.defaultFont, nil
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create default font source: %w", err)
	}
	rm.defaultFont = source
	return source, nil
}

// FontSourceOrDefault loads family, falling back to the built-in font when
// it is missing or broken. The fallback is logged as a warning.
func (rm *ResourceManager) FontSourceOrDefault(family string) *text.GoTextFaceSource {
	source, err := rm.LoadFontSource(family)
	if err == nil {
		return source
	}

	logger("resources").Warn().Err(err).Str("family", family).Msg("using built-in font")
	source, err = rm.DefaultFontSource()
	if err != nil {
		logger("resources").Error().Err(err).Msg("built-in font unusable")
		return nil
	}
	return source
}

// CuePath resolves a sound cue to an asset path.
// The second return value is false when no file exists for the cue.
func (rm *ResourceManager) CuePath(cue string) (string, bool) {
	if p, ok := rm.soundMap[cue]; ok && embedded.Exists(p) {
		return p, true
	}
	for _, ext := range soundExtensions {
		p := path.Join("assets", "sounds", cue+ext)
		if embedded.Exists(p) {
			return p, true
		}
	}
	// Flat layout: assets/<cue>.wav
	p := path.Join("assets", cue+".wav")
	if embedded.Exists(p) {
		return p, true
	}
	return "", false
}

// LoadCue loads a one-shot sound effect for cue and caches the player.
// Supported formats: WAV (.wav), OGG Vorbis (.ogg) and MP3 (.mp3). Streams
// are resampled to the audio context's sample rate.
func (rm *ResourceManager) LoadCue(cue string) (*audio.Player, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("sound %q: no audio context", cue)
	}

	p, ok := rm.CuePath(cue)
	if !ok {
		return nil, fmt.Errorf("sound %q: %w", cue, ErrAssetMissing)
	}

	if cached, exists := rm.audioCache[p]; exists {
		return cached, nil
	}

	data, err := embedded.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound file %s: %w", p, err)
	}

	stream, err := rm.decode(p, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", p, err)
	}

	rm.audioCache[p] = player
	return player, nil
}

func (rm *ResourceManager) decode(p string, reader *bytes.Reader) (io.ReadSeeker, error) {
	sampleRate := rm.audioContext.SampleRate()

	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", p, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", p, err)
		}
		return s, nil
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", p, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .ogg, .mp3)", ext)
	}
}
