// Package config resolves runtime settings from defaults, a YAML file, .env and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/lixenwraith/lucky-draw/components"
	"github.com/lixenwraith/lucky-draw/constants"
	"github.com/lixenwraith/lucky-draw/i18n"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "LUCKYDRAW_"

// Config holds every tunable of a draw
type Config struct {
	FrameInterval       time.Duration `yaml:"frame_interval" env:"FRAME_INTERVAL"`
	QualifyThreshold    time.Duration `yaml:"qualify_threshold" env:"QUALIFY_THRESHOLD"`
	SettleDelay         time.Duration `yaml:"settle_delay" env:"SETTLE_DELAY"`
	CountdownFrom       int           `yaml:"countdown_from" env:"COUNTDOWN_FROM"`
	CountdownTick       time.Duration `yaml:"countdown_tick" env:"COUNTDOWN_TICK"`
	MessageDuration     time.Duration `yaml:"message_duration" env:"MESSAGE_DURATION"`
	CelebrationDuration time.Duration `yaml:"celebration_duration" env:"CELEBRATION_DURATION"`

	ConfettiCount  int    `yaml:"confetti_count" env:"CONFETTI_COUNT"`
	ParticlePolicy string `yaml:"particle_policy" env:"PARTICLE_POLICY"`

	ContactRadius float64 `yaml:"contact_radius" env:"CONTACT_RADIUS"`
	PulseGrowth   float64 `yaml:"pulse_growth" env:"PULSE_GROWTH"`
	CellWidth     float64 `yaml:"cell_width" env:"CELL_WIDTH"`
	CellHeight    float64 `yaml:"cell_height" env:"CELL_HEIGHT"`

	Locale string  `yaml:"locale" env:"LOCALE"`
	Sound  bool    `yaml:"sound" env:"SOUND"`
	Volume float64 `yaml:"volume" env:"VOLUME"`

	Keymap string `yaml:"keymap" env:"KEYMAP"`
	Debug  bool   `yaml:"debug" env:"DEBUG"`
	LogDir string `yaml:"log_dir" env:"LOG_DIR"`
}

// Default returns the canonical settings
func Default() Config {
	return Config{
		FrameInterval:       constants.FrameUpdateInterval,
		QualifyThreshold:    constants.QualifyThreshold,
		SettleDelay:         constants.SettleDelay,
		CountdownFrom:       constants.CountdownFrom,
		CountdownTick:       constants.CountdownTick,
		MessageDuration:     constants.MessageDuration,
		CelebrationDuration: constants.CelebrationDuration,
		ConfettiCount:       constants.ConfettiCount,
		ParticlePolicy:      components.PolicyRemove.String(),
		ContactRadius:       constants.ContactRadius,
		PulseGrowth:         constants.PulseGrowth,
		CellWidth:           constants.CellWidth,
		CellHeight:          constants.CellHeight,
		Locale:              "en",
		Sound:               true,
		Volume:              0.5,
		LogDir:              "logs",
	}
}

// Load layers an optional YAML file, an optional .env file and the environment over the defaults
// An empty path skips the file; a missing .env is not an error
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the draw cannot run with
func (c Config) Validate() error {
	var errs []error

	durations := []struct {
		name string
		d    time.Duration
	}{
		{"frame_interval", c.FrameInterval},
		{"qualify_threshold", c.QualifyThreshold},
		{"settle_delay", c.SettleDelay},
		{"countdown_tick", c.CountdownTick},
		{"message_duration", c.MessageDuration},
		{"celebration_duration", c.CelebrationDuration},
	}
	for _, d := range durations {
		if d.d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", d.name, d.d))
		}
	}

	if c.CountdownFrom < 1 {
		errs = append(errs, fmt.Errorf("countdown_from must be at least 1, got %d", c.CountdownFrom))
	}
	if c.ConfettiCount < 0 {
		errs = append(errs, fmt.Errorf("confetti_count must not be negative, got %d", c.ConfettiCount))
	}
	if _, ok := components.ParsePolicy(c.ParticlePolicy); !ok {
		errs = append(errs, fmt.Errorf("particle_policy must be remove or wrap, got %q", c.ParticlePolicy))
	}
	if c.ContactRadius <= 0 || c.PulseGrowth < 0 {
		errs = append(errs, fmt.Errorf("contact_radius must be positive and pulse_growth non-negative"))
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("cell_width and cell_height must be positive"))
	}
	if !i18n.Supported(c.Locale) {
		errs = append(errs, fmt.Errorf("locale %q is not supported", c.Locale))
	}
	if c.Volume < 0 || c.Volume > 1 {
		errs = append(errs, fmt.Errorf("volume must be within [0, 1], got %v", c.Volume))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Policy returns the parsed particle policy, Validate guarantees it is known
func (c Config) Policy() components.ParticlePolicy {
	p, _ := components.ParsePolicy(c.ParticlePolicy)
	return p
}
