package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Game struct {
		DailyCap        int     `yaml:"daily_cap"`
		CooldownSeconds int     `yaml:"cooldown_seconds"`
		DigSeconds      int     `yaml:"dig_seconds"`
		IntroReward     float64 `yaml:"intro_reward"`
		EmptyRefill     float64 `yaml:"empty_refill"`
	} `yaml:"game"`
	State struct {
		EconomyFile string `yaml:"economy_file"`
		AbuseFile   string `yaml:"abuse_file"`
	} `yaml:"state"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		SnapshotCron string `yaml:"snapshot_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("DAILY_CAP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Game.DailyCap = n
		}
	}
	if v := os.Getenv("COOLDOWN_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Game.CooldownSeconds = n
		}
	}
	if v := os.Getenv("DIG_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Game.DigSeconds = n
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SNAPSHOT_CRON"); v != "" {
		cfg.Schedule.SnapshotCron = v
	}

	// Defaults
	if cfg.Game.DailyCap == 0 {
		cfg.Game.DailyCap = 20
	}
	if cfg.Game.CooldownSeconds == 0 {
		cfg.Game.CooldownSeconds = 90
	}
	if cfg.Game.DigSeconds == 0 {
		cfg.Game.DigSeconds = 10
	}
	if cfg.Game.IntroReward == 0 {
		cfg.Game.IntroReward = 2.5
	}
	if cfg.Game.EmptyRefill == 0 {
		cfg.Game.EmptyRefill = 5
	}
	if cfg.State.EconomyFile == "" {
		cfg.State.EconomyFile = "data/economy_state.json"
	}
	if cfg.State.AbuseFile == "" {
		cfg.State.AbuseFile = "data/abuse_state.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/treasuredig.db"
	}
	if cfg.Schedule.SnapshotCron == "" {
		cfg.Schedule.SnapshotCron = "0 0 0 * * *"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and sane.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.Game.DailyCap < 1 {
		return fmt.Errorf("game.daily_cap must be positive")
	}
	if c.Game.CooldownSeconds < 0 {
		return fmt.Errorf("game.cooldown_seconds must not be negative")
	}
	if c.Game.DigSeconds < 1 {
		return fmt.Errorf("game.dig_seconds must be positive")
	}
	if c.Game.IntroReward < 0 || c.Game.EmptyRefill < 0 {
		return fmt.Errorf("game rewards must not be negative")
	}
	return nil
}
