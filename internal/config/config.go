package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. GENIUS_DRIVER.
const EnvPrefix = "GENIUS_"

var ErrInvalid = errors.New("invalid config")

type Matrix struct {
	Width      int  `yaml:"width" env:"WIDTH"`
	Height     int  `yaml:"height" env:"HEIGHT"`
	Serpentine bool `yaml:"serpentine" env:"SERPENTINE"`
}

type SPI struct {
	Dev     string `yaml:"dev" env:"DEV"`           // periph port name, "" for the first
	SpeedHz int    `yaml:"speed_hz" env:"SPEED_HZ"` // e.g. 2500000
}

// Pins are periph gpioreg names.
type Pins struct {
	ButtonA string `yaml:"button_a" env:"BUTTON_A"`
	ButtonB string `yaml:"button_b" env:"BUTTON_B"`
	BuzzerA string `yaml:"buzzer_a" env:"BUZZER_A"`
	BuzzerB string `yaml:"buzzer_b" env:"BUZZER_B"`
}

type Feedback struct {
	DisplayMs int `yaml:"display_ms" env:"DISPLAY_MS"`
}

type Power struct {
	WhiteCap float64 `yaml:"white_cap" env:"WHITE_CAP"`
	BudgetMA float64 `yaml:"budget_ma" env:"BUDGET_MA"`
	ChanMA   float64 `yaml:"chan_ma" env:"CHAN_MA"`
}

type Preview struct {
	Enabled bool   `yaml:"enabled" env:"ENABLED"`
	Addr    string `yaml:"addr" env:"ADDR"`
}

type Config struct {
	Driver     string  `yaml:"driver" env:"DRIVER"` // "spi" | "sim"
	Brightness float64 `yaml:"brightness" env:"BRIGHTNESS"`
	LogLevel   string  `yaml:"log_level" env:"LOG_LEVEL"`
	Seed       int64   `yaml:"seed,omitempty" env:"SEED"` // 0 draws a fresh seed per game

	Matrix   Matrix   `yaml:"matrix" envPrefix:"MATRIX_"`
	SPI      SPI      `yaml:"spi" envPrefix:"SPI_"`
	Pins     Pins     `yaml:"pins" envPrefix:"PINS_"`
	Feedback Feedback `yaml:"feedback" envPrefix:"FEEDBACK_"`
	Power    Power    `yaml:"power" envPrefix:"POWER_"`
	Preview  Preview  `yaml:"preview" envPrefix:"PREVIEW_"`
}

// Default matches the 5x5 board: matrix on SPI, buttons on GPIO5/6, buzzers
// on GPIO10/21.
func Default() *Config {
	return &Config{
		Driver:     "spi",
		Brightness: 0.35,
		LogLevel:   "info",
		Matrix:     Matrix{Width: 5, Height: 5, Serpentine: true},
		SPI:        SPI{SpeedHz: 2500000},
		Pins:       Pins{ButtonA: "GPIO5", ButtonB: "GPIO6", BuzzerA: "GPIO10", BuzzerB: "GPIO21"},
		Feedback:   Feedback{DisplayMs: 500},
		Power:      Power{WhiteCap: 1.5, BudgetMA: 500, ChanMA: 20},
		Preview:    Preview{Addr: ":8080"},
	}
}

// Load reads path over the defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadOrDefault is Load, falling back to Default when path does not exist.
func LoadOrDefault(path string) (*Config, bool, error) {
	c, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// LoadDotEnv loads files (default .env) into the environment without
// overriding variables already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overlays GENIUS_* environment variables onto c.
func ApplyEnv(c *Config) error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Driver {
	case "spi", "sim":
	default:
		return fmt.Errorf("%w: driver %q (want spi or sim)", ErrInvalid, c.Driver)
	}
	if c.Brightness < 0 || c.Brightness > 1 {
		return fmt.Errorf("%w: brightness %.2f outside 0..1", ErrInvalid, c.Brightness)
	}
	if c.Matrix.Width <= 0 || c.Matrix.Height <= 0 {
		return fmt.Errorf("%w: matrix %dx%d", ErrInvalid, c.Matrix.Width, c.Matrix.Height)
	}
	if c.Feedback.DisplayMs < 0 {
		return fmt.Errorf("%w: display_ms %d", ErrInvalid, c.Feedback.DisplayMs)
	}
	return nil
}
