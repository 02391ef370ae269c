// Package config loads and validates the lotto-oracle configuration from a
// YAML file with environment variable overrides (LOTTO_ORACLE_ prefix).
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/lotto-oracle/lotto-oracle/internal/models"
)

// Config represents the complete application configuration.
type Config struct {
	Lottery    LotteryConfig    `mapstructure:"lottery"`
	Prediction PredictionConfig `mapstructure:"prediction"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Telegram   TelegramConfig   `mapstructure:"telegram"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// LotteryConfig describes the number domain and the analysis windows.
// All windows are draw counts, not durations.
type LotteryConfig struct {
	MaxNumber     int `mapstructure:"max_number"`     // upper bound N of the number domain [1, N]
	RecencyWindow int `mapstructure:"recency_window"` // draws that receive 2x frequency weight
	HotWindow     int `mapstructure:"hot_window"`     // window for hot-number detection
	ColdWindow    int `mapstructure:"cold_window"`    // window for cold/due support counts
	AvoidWindow   int `mapstructure:"avoid_window"`   // window for overdrawn-number detection
}

// PredictionConfig holds the scoring weight vector and selection parameters.
type PredictionConfig struct {
	Weights           models.PredictionWeights `mapstructure:"weights"`
	SelectionAttempts int                      `mapstructure:"selection_attempts"` // bound on constrained sampling retries
	RankDecay         float64                  `mapstructure:"rank_decay"`         // per-rank sampling weight decay, in (0, 1)
}

// StorageConfig holds draw-history storage configuration.
type StorageConfig struct {
	DBPath   string `mapstructure:"db_path"`   // SQLite database path, ":memory:" allowed
	MaxDraws int    `mapstructure:"max_draws"` // rotation cap on stored draws
}

// TelegramConfig holds Telegram notification configuration.
type TelegramConfig struct {
	BotToken       string        `mapstructure:"bot_token"`
	ChatID         string        `mapstructure:"chat_id"`
	Enabled        bool          `mapstructure:"enabled"`
	MaxRetries     int           `mapstructure:"max_retries"`
	RetryDelayBase time.Duration `mapstructure:"retry_delay_base"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	setDefaults(v)

	v.SetEnvPrefix("LOTTO_ORACLE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options.
func setDefaults(v *viper.Viper) {
	// Lottery defaults: a 6/49 game with the standard analysis windows
	v.SetDefault("lottery.max_number", 49)
	v.SetDefault("lottery.recency_window", 100)
	v.SetDefault("lottery.hot_window", 15)
	v.SetDefault("lottery.cold_window", 20)
	v.SetDefault("lottery.avoid_window", 10)

	// Prediction defaults
	w := models.DefaultWeights()
	v.SetDefault("prediction.weights.frequency", w.Frequency)
	v.SetDefault("prediction.weights.recency", w.Recency)
	v.SetDefault("prediction.weights.gaps", w.Gaps)
	v.SetDefault("prediction.weights.patterns", w.Patterns)
	v.SetDefault("prediction.weights.distribution", w.Distribution)
	v.SetDefault("prediction.weights.correlation", w.Correlation)
	v.SetDefault("prediction.selection_attempts", 1000)
	v.SetDefault("prediction.rank_decay", 0.8)

	// Storage defaults
	v.SetDefault("storage.db_path", "./data/lotto-oracle.db")
	v.SetDefault("storage.max_draws", 5000)

	// Telegram defaults
	v.SetDefault("telegram.enabled", false)
	v.SetDefault("telegram.max_retries", 3)
	v.SetDefault("telegram.retry_delay_base", "1s")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Validate checks that all configuration values are valid.
func (c *Config) Validate() error {
	if c.Lottery.MaxNumber < models.MainNumbers {
		return fmt.Errorf("lottery.max_number must be at least %d", models.MainNumbers)
	}
	if c.Lottery.RecencyWindow < 1 {
		return fmt.Errorf("lottery.recency_window must be at least 1")
	}
	if c.Lottery.HotWindow < 1 {
		return fmt.Errorf("lottery.hot_window must be at least 1")
	}
	if c.Lottery.ColdWindow < 1 {
		return fmt.Errorf("lottery.cold_window must be at least 1")
	}
	if c.Lottery.AvoidWindow < 1 {
		return fmt.Errorf("lottery.avoid_window must be at least 1")
	}

	if err := c.Prediction.Weights.Validate(); err != nil {
		return fmt.Errorf("prediction.weights: %w", err)
	}
	if c.Prediction.SelectionAttempts < 1 {
		return fmt.Errorf("prediction.selection_attempts must be at least 1")
	}
	if c.Prediction.RankDecay <= 0 || c.Prediction.RankDecay >= 1 {
		return fmt.Errorf("prediction.rank_decay must be in (0, 1)")
	}

	if c.Storage.DBPath == "" {
		return fmt.Errorf("storage.db_path is required")
	}
	if c.Storage.MaxDraws < 1 {
		return fmt.Errorf("storage.max_draws must be at least 1")
	}

	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram is enabled")
		}
		if c.Telegram.ChatID == "" {
			return fmt.Errorf("telegram.chat_id is required when telegram is enabled")
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}
