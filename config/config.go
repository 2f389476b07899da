package config

import (
	"fmt"
	"time"
	"tokenwatch/common"
	"tokenwatch/notify"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Telegram struct {
		BotToken string `mapstructure:"bot_token" validate:"required"`
		ChatID   string `mapstructure:"chat_id" validate:"required"`
		APIURL   string `mapstructure:"api_url" validate:"required,url"`
	} `mapstructure:"telegram"`
	Notifier struct {
		ThresholdDays        int `mapstructure:"threshold_days" validate:"gte=0"`
		CheckIntervalSeconds int `mapstructure:"check_interval_seconds" validate:"gte=1"`
	} `mapstructure:"notifier"`
	Database struct {
		Path string `mapstructure:"path" validate:"required"`
	} `mapstructure:"database"`
}

var validate = validator.New()

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"telegram.bot_token":              "TELEGRAM_BOT_TOKEN",
	"telegram.chat_id":                "TELEGRAM_CHAT_ID",
	"telegram.api_url":                "TELEGRAM_API_URL",
	"notifier.threshold_days":         "NOTIFICATION_THRESHOLD_DAYS",
	"notifier.check_interval_seconds": "CHECK_INTERVAL_SECONDS",
	"database.path":                   "DATABASE_PATH",
}

// Load builds the configuration from the environment, preceded by an
// optional .env file in the working directory. Load only fails on values
// that cannot be parsed; missing Telegram credentials are legal here because
// the store-only commands never use them. The daemon checks them via
// Validate before starting.
func Load() (*Config, error) {
	// Values already present in the environment win over the .env file.
	// A missing file is not an error.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("telegram.api_url", notify.DefaultAPIURL)
	v.SetDefault("notifier.threshold_days", 1)
	v.SetDefault("notifier.check_interval_seconds", 3600)
	v.SetDefault("database.path", "tokenwatch.db")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, common.NewConfigurationError(fmt.Sprintf("failed to bind %s", env), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, common.NewConfigurationError("failed to parse configuration from environment", err)
	}

	return &cfg, nil
}

// Validate checks the fields the daemon cannot run without.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return common.NewConfigurationError("missing or invalid daemon configuration", err)
	}
	return nil
}

// CheckInterval returns the sweep interval as a duration.
func (c *Config) CheckInterval() time.Duration {
	return time.Duration(c.Notifier.CheckIntervalSeconds) * time.Second
}
