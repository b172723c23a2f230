package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	BotToken      string
	ChatID        int64 // fixed recipient for SIP reminders
	NewsAPIKey    string
	OpenAIKey     string
	PortfolioPath string
	DBPath        string
	ReminderTime  string // wall-clock HH:MM for the daily reminder pass
	Port          string
	LogLevel      string
	LogPretty     bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:      os.Getenv("BOT_TOKEN"),
		ChatID:        getEnvAsInt64("CHAT_ID", 0),
		NewsAPIKey:    os.Getenv("NEWS_API_KEY"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		PortfolioPath: getEnv("PORTFOLIO_PATH", "./data/portfolio.json"),
		DBPath:        getEnv("DB_PATH", "./data/bot.db"),
		ReminderTime:  getEnv("REMINDER_TIME", "09:00"),
		Port:          getEnv("PORT", "9095"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogPretty:     getEnvAsBool("LOG_PRETTY", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.ChatID == 0 {
		return fmt.Errorf("CHAT_ID is required")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
