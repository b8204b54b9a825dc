package game

import (
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ResourceManifest represents the root structure of the resource manifest
// (assets/config/resources.yaml). It maps logical sound cue and font family
// names to file paths so that replacement assets can be dropped in without
// code changes.
//
// Example YAML:
//
//	version: "1.0"
//	base_path: assets
//	sounds:
//	  - id: chime
//	    path: sounds/chime.wav
//	fonts:
//	  - id: Quicksand-Bold
//	    path: fonts/Quicksand-Bold.ttf
type ResourceManifest struct {
	Version  string          `yaml:"version"`
	BasePath string          `yaml:"base_path"`
	Sounds   []SoundResource `yaml:"sounds"`
	Fonts    []FontResource  `yaml:"fonts"`
}

// SoundResource represents a single sound cue definition.
type SoundResource struct {
	ID   string `yaml:"id"`   // Cue name (chime, boop, complete)
	Path string `yaml:"path"` // Relative file path from base_path
}

// FontResource represents a single font family definition.
type FontResource struct {
	ID   string `yaml:"id"`   // Font family name as used in config.toml
	Path string `yaml:"path"` // Relative file path from base_path
}

// ParseResourceManifest decodes manifest YAML.
// An entry without id or path is rejected so that typos surface at startup.
func ParseResourceManifest(data []byte) (*ResourceManifest, error) {
	var manifest ResourceManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse resource manifest: %w", err)
	}

	for i, s := range manifest.Sounds {
		if s.ID == "" || s.Path == "" {
			return nil, fmt.Errorf("sound entry %d: id and path are required", i)
		}
	}
	for i, f := range manifest.Fonts {
		if f.ID == "" || f.Path == "" {
			return nil, fmt.Errorf("font entry %d: id and path are required", i)
		}
	}

	return &manifest, nil
}

// buildFullPath constructs the full asset path for a manifest entry.
// It combines the base path with the entry's relative path.
//
// Example:
//
//	buildFullPath("assets", "sounds/chime.wav") // "assets/sounds/chime.wav"
func buildFullPath(basePath, relativePath string) string {
	relativePath = strings.TrimPrefix(relativePath, "/")
	if basePath == "" {
		return path.Clean(relativePath)
	}
	return path.Join(basePath, relativePath)
}
