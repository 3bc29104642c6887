package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Save backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Settings holds application settings read from config.yml and LADDERS_* env vars.
type Settings struct {
	LogLevel  string `yaml:"log-level" env:"LADDERS_LOG_LEVEL" env-default:"info"`
	DBPath    string `yaml:"db-path" env:"LADDERS_DB_PATH" env-default:"~/.ladders/ladders.db"`
	LogPath   string `yaml:"log-path" env:"LADDERS_LOG_PATH" env-default:"~/.ladders/ladders.log"`
	Layout    string `yaml:"layout" env:"LADDERS_LAYOUT" env-default:"classic"`
	DiceSides int    `yaml:"dice-sides" env:"LADDERS_DICE_SIDES" env-default:"0"`
	Save      Save   `yaml:"save"`
	Timing    Timing `yaml:"timing"`
}

// Save selects where the single save slot lives.
type Save struct {
	Backend   string `yaml:"backend" env:"LADDERS_SAVE_BACKEND" env-default:"file"`
	Path      string `yaml:"path" env:"LADDERS_SAVE_PATH" env-default:"~/.ladders/savegame.json"`
	RedisAddr string `yaml:"redis-addr" env:"LADDERS_REDIS_ADDR" env-default:"localhost:6379"`
	RedisKey  string `yaml:"redis-key" env:"LADDERS_REDIS_KEY" env-default:"ladders:savegame"`
}

// Timing controls UI pacing in milliseconds.
type Timing struct {
	BotDelayMS  int `yaml:"bot-delay-ms" env:"LADDERS_BOT_DELAY_MS" env-default:"1000"`
	StepDelayMS int `yaml:"step-delay-ms" env:"LADDERS_STEP_DELAY_MS" env-default:"120"`
	DiceFrames  int `yaml:"dice-frames" env:"LADDERS_DICE_FRAMES" env-default:"8"`
	DiceFrameMS int `yaml:"dice-frame-ms" env:"LADDERS_DICE_FRAME_MS" env-default:"60"`
}

// BotDelay returns the pause before a bot rolls.
func (t Timing) BotDelay() time.Duration {
	return time.Duration(t.BotDelayMS) * time.Millisecond
}

// StepDelay returns the delay between token steps.
func (t Timing) StepDelay() time.Duration {
	return time.Duration(t.StepDelayMS) * time.Millisecond
}

// DiceFrame returns the delay between dice animation frames.
func (t Timing) DiceFrame() time.Duration {
	return time.Duration(t.DiceFrameMS) * time.Millisecond
}

// LoadSettings reads settings from path, or from ~/.ladders/config.yml when path is empty.
// A missing file is not an error: defaults and environment variables apply.
func LoadSettings(path string) (Settings, error) {
	var s Settings

	explicit := path != ""
	if !explicit {
		path = userConfigPath("config.yml")
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &s); err != nil {
				return s, fmt.Errorf("failed to read settings %s: %w", path, err)
			}
			return s, s.Validate()
		} else if explicit || !errors.Is(err, fs.ErrNotExist) {
			return s, fmt.Errorf("failed to read settings %s: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(&s); err != nil {
		return s, fmt.Errorf("failed to read settings from env: %w", err)
	}
	return s, s.Validate()
}

// Validate checks enumerated and numeric fields.
func (s Settings) Validate() error {
	switch s.Save.Backend {
	case BackendFile, BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("unknown save backend %q (want file, sqlite or redis)", s.Save.Backend)
	}
	if s.DiceSides < 0 {
		return fmt.Errorf("dice-sides must not be negative")
	}
	if s.Timing.BotDelayMS < 0 || s.Timing.StepDelayMS < 0 || s.Timing.DiceFrameMS < 0 || s.Timing.DiceFrames < 0 {
		return fmt.Errorf("timing values must not be negative")
	}
	return nil
}

// Usage returns the env var help text for settings.
func Usage() string {
	var s Settings
	text, err := cleanenv.GetDescription(&s, nil)
	if err != nil {
		return ""
	}
	return text
}
