// Package config loads run settings from defaults, an optional TOML file and
// SHAPEMOTION_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/lixenwraith/shape-motion/core"
	"github.com/lixenwraith/shape-motion/game"
	"github.com/lixenwraith/shape-motion/render"
)

// EnvPrefix namespaces environment overrides
const EnvPrefix = "SHAPEMOTION"

// Config holds every tunable of a run
type Config struct {
	ScreenWidth     int    `toml:"screen_width" envconfig:"SCREEN_WIDTH"`
	ScreenHeight    int    `toml:"screen_height" envconfig:"SCREEN_HEIGHT"`
	TickRate        int    `toml:"tick_rate" envconfig:"TICK_RATE"`
	Level           string `toml:"level" envconfig:"LEVEL"`
	DirtyRegion     string `toml:"dirty_region" envconfig:"DIRTY_REGION"`
	Background      string `toml:"background" envconfig:"BACKGROUND"`
	BuzzerClockHz   int    `toml:"buzzer_clock_hz" envconfig:"BUZZER_CLOCK_HZ"`
	FenceTonePeriod int    `toml:"fence_tone_period" envconfig:"FENCE_TONE_PERIOD"`
	Mute            bool   `toml:"mute" envconfig:"MUTE"`
	Debug           bool   `toml:"debug" envconfig:"DEBUG"`
	LogDir          string `toml:"log_dir" envconfig:"LOG_DIR"`
	Seed            uint64 `toml:"seed" envconfig:"SEED"`
	SpeedJitter     int    `toml:"speed_jitter" envconfig:"SPEED_JITTER"`
	KeyHoldMs       int    `toml:"key_hold_ms" envconfig:"KEY_HOLD_MS"`
	WelcomeMs       int    `toml:"welcome_ms" envconfig:"WELCOME_MS"`
}

// Default returns the settings of the 128x160 LCD build
func Default() Config {
	return Config{
		ScreenWidth:     128,
		ScreenHeight:    160,
		TickRate:        15,
		Level:           "classic",
		DirtyRegion:     "union",
		Background:      "#ffffff",
		BuzzerClockHz:   2_000_000,
		FenceTonePeriod: 550,
		LogDir:          "logs",
		KeyHoldMs:       180,
		WelcomeMs:       2000,
	}
}

// Load layers the TOML file at path (skipped when empty) and the environment over defaults
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg as TOML, creating parent directories
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate %d must be positive", c.TickRate))
	}
	if lv, err := game.Lookup(c.Level, c.ScreenWidth, c.ScreenHeight); err != nil {
		errs = append(errs, err)
	} else if c.ScreenWidth > 0 && c.ScreenHeight > 0 {
		if err := lv.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := render.ParseDirtyMode(c.DirtyRegion); err != nil {
		errs = append(errs, err)
	}
	if _, err := core.ParseRGB(c.Background); err != nil {
		errs = append(errs, err)
	}
	if c.FenceTonePeriod < 0 {
		errs = append(errs, fmt.Errorf("fence_tone_period %d must not be negative", c.FenceTonePeriod))
	}
	if c.SpeedJitter < 0 {
		errs = append(errs, fmt.Errorf("speed_jitter %d must not be negative", c.SpeedJitter))
	}
	if c.KeyHoldMs <= 0 {
		errs = append(errs, fmt.Errorf("key_hold_ms %d must be positive", c.KeyHoldMs))
	}
	return errors.Join(errs...)
}

// TickInterval returns the period of the motion tick
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// KeyHold returns how long a key press holds its button
func (c Config) KeyHold() time.Duration {
	return time.Duration(c.KeyHoldMs) * time.Millisecond
}

// WelcomeDuration returns how long the welcome splash waits for a key
func (c Config) WelcomeDuration() time.Duration {
	return time.Duration(c.WelcomeMs) * time.Millisecond
}

// BackgroundColor returns the parsed background, white when invalid
func (c Config) BackgroundColor() core.RGB {
	rgb, err := core.ParseRGB(c.Background)
	if err != nil {
		return core.RGBWhite
	}
	return rgb
}

// DirtyMode returns the parsed dirty region mode
func (c Config) DirtyMode() render.DirtyMode {
	m, _ := render.ParseDirtyMode(c.DirtyRegion)
	return m
}
