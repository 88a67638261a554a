package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	SQLitePath     string
	TasksDBPath    string
	DefaultSession string
	CountryCode    string
	SendTimeout    time.Duration
	AllowedOrigins []string
}

// Load reads configuration from the environment, with a local .env file as a
// convenience for development. Every knob has a default so the gateway runs
// with zero configuration.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:           getenv("PORT", "4000"),
		SQLitePath:     getenv("SQLITE_PATH", "./data/whatsapp.db"),
		TasksDBPath:    getenv("TASKS_DB_PATH", "./data/tasks.db"),
		DefaultSession: getenv("DEFAULT_SESSION", "primary"),
		CountryCode:    getenv("DEFAULT_COUNTRY_CODE", "91"),
		SendTimeout:    getdur("SEND_TIMEOUT", 30*time.Second),
		AllowedOrigins: getlist("ALLOWED_ORIGINS"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getdur(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func getlist(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
