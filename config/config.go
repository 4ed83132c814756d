package config

import (
	"drawbot/model"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads the configuration from a .env file, the environment and an
// optional config.yaml, in that order of increasing precedence for viper.
func Load() (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	viper.SetDefault("CRON_SCHEDULE", "0 4 * * *")
	viper.SetDefault("FORUM_CHANNEL_NAME", "daily-drawings")
	viper.SetDefault("CHAT_CHANNEL_NAME", "general")
	viper.SetDefault("DB_PATH", "data/drawbot.db")
	viper.SetDefault("ROUND_TIMEOUT_SECONDS", 300)

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// AutomaticEnv alone does not populate Unmarshal; bind the keys we use.
	for _, key := range []string{
		"BOT_TOKEN", "LOG_CHANNEL_ID", "CRON_SCHEDULE",
		"FORUM_CHANNEL_NAME", "CHAT_CHANNEL_NAME", "MOD_ROLES",
		"DB_PATH", "ROUND_TIMEOUT_SECONDS", "DISABLE_COMMAND_UNREGISTER",
	} {
		if err := viper.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env key %s: %w", key, err)
		}
	}

	var cfg model.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable not set")
	}
	if cfg.LogChannelID == "" {
		log.Println("Warning: LOG_CHANNEL_ID not set, channel logging will be disabled")
	}

	return &cfg, nil
}
