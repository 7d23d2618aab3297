package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/lixenwraith/vi-reversi/input"
	"github.com/lixenwraith/vi-reversi/render"
)

// DefaultPath is read when no -config flag is given and the file exists
const DefaultPath = "vi-reversi.toml"

// Backend names
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Config is the startup configuration
// Board size, opening position and first player are fixed and not configurable.
type Config struct {
	Keymap     string `toml:"keymap" env:"REVERSI_KEYMAP" env-default:"ijkl" env-description:"key binding preset: ijkl, vi, arrows"`
	KeymapFile string `toml:"keymap_file" env:"REVERSI_KEYMAP_FILE" env-description:"TOML file with key binding overrides"`
	Glyphs     string `toml:"glyphs" env:"REVERSI_GLYPHS" env-default:"ascii" env-description:"stone glyph set: ascii, unicode"`
	Backend    string `toml:"backend" env:"REVERSI_BACKEND" env-default:"ansi" env-description:"terminal backend: ansi, tcell"`
	Sound      bool   `toml:"sound" env:"REVERSI_SOUND" env-default:"false" env-description:"play placement tones"`
	ShowTurn   bool   `toml:"show_turn" env:"REVERSI_SHOW_TURN" env-default:"false" env-description:"print whose turn it is under the board"`
}

// Load reads path when given, or DefaultPath when present, then the environment
// An explicit path that does not exist is an error; a missing default is not.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if explicit || !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown preset names
func (c *Config) Validate() error {
	if !slices.Contains(input.PresetNames(), c.Keymap) {
		return fmt.Errorf("keymap %q: must be one of %v", c.Keymap, input.PresetNames())
	}
	if !slices.Contains(render.GlyphSetNames(), c.Glyphs) {
		return fmt.Errorf("glyphs %q: must be one of %v", c.Glyphs, render.GlyphSetNames())
	}
	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("backend %q: must be %q or %q", c.Backend, BackendANSI, BackendTcell)
	}
	return nil
}

// KeyTable builds the key table: preset, then the optional override file
func (c *Config) KeyTable() (*input.KeyTable, error) {
	kt, err := input.Preset(c.Keymap)
	if err != nil {
		return nil, err
	}
	if c.KeymapFile == "" {
		return kt, nil
	}

	data, err := os.ReadFile(c.KeymapFile)
	if err != nil {
		return nil, fmt.Errorf("read keymap %s: %w", c.KeymapFile, err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", c.KeymapFile, err)
	}
	return input.MergeKeyTable(kt, override), nil
}

// Renderer builds the renderer for the configured glyph set
func (c *Config) Renderer() (*render.Renderer, error) {
	g, err := render.Glyphs(c.Glyphs)
	if err != nil {
		return nil, err
	}
	r := render.New(g)
	r.ShowTurn = c.ShowTurn
	return r, nil
}

// Usage describes the environment variables, for -help output
func Usage() (string, error) {
	return cleanenv.GetDescription(&Config{}, nil)
}
