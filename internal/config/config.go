package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API      APIConfig
	State    StateConfig
	Redis    RedisConfig
	LogLevel string
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type StateConfig struct {
	// Dir holds the persisted UI state and session files.
	Dir       string
	TypingTTL time.Duration
}

type RedisConfig struct {
	// Addr switches theme persistence from the local file to redis when set.
	Addr     string
	Password string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:3000/api"),
			Timeout: getDuration("API_TIMEOUT", 30*time.Second),
		},
		State: StateConfig{
			Dir:       getEnv("STATE_DIR", defaultStateDir()),
			TypingTTL: getDuration("TYPING_TTL", 0),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func (c *Config) SessionFile() string {
	return filepath.Join(c.State.Dir, "session.json")
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".chatboard"
	}
	return filepath.Join(home, ".chatboard")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
