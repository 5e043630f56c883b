// README: Config loader with env defaults for HTTP, completion providers, maps, DB, Redis and logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
)

// AIConfig holds the completion provider settings. Keys are secrets and must never be logged.
type AIConfig struct {
	Provider      string
	OpenRouterKey string
	OpenRouterURL string
	Model         string
	Referer       string
	Title         string
	Timeout       time.Duration
	GeminiKey     string
	GeminiModel   string
}

type LogConfig struct {
	Level  string
	Format string
}

type Config struct {
	HTTP struct {
		Addr string
	}
	AI   AIConfig
	Maps struct {
		APIKey string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Log LogConfig
}

// LoadDotEnv loads the given .env files into the process environment. Missing files are
// skipped; variables already set in the environment win.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("config: load %s: %w", p, err)
		}
	}
	return nil
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRAVEL_HTTP_ADDR", ":8080")

	cfg.AI.Provider = strings.ToLower(envOrDefault("TRAVEL_AI_PROVIDER", ProviderOpenRouter))
	cfg.AI.OpenRouterKey = os.Getenv("OPENROUTER_API_KEY")
	cfg.AI.OpenRouterURL = strings.TrimRight(envOrDefault("TRAVEL_OPENROUTER_URL", "https://openrouter.ai/api/v1"), "/")
	cfg.AI.Model = envOrDefault("TRAVEL_AI_MODEL", "openai/gpt-3.5-turbo")
	cfg.AI.Referer = envOrDefault("TRAVEL_AI_REFERER", "http://localhost:5173")
	cfg.AI.Title = envOrDefault("TRAVEL_AI_TITLE", "Travel Planner")
	cfg.AI.Timeout = time.Duration(envOrDefaultInt("TRAVEL_AI_TIMEOUT_SECONDS", 60)) * time.Second
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.GeminiModel = envOrDefault("TRAVEL_GEMINI_MODEL", "gemini-2.0-flash")

	cfg.Maps.APIKey = os.Getenv("TRAVEL_MAPS_API_KEY")
	cfg.DB.DSN = os.Getenv("TRAVEL_DB_DSN")
	cfg.Redis.Addr = os.Getenv("TRAVEL_REDIS_ADDR")

	cfg.Log.Level = envOrDefault("TRAVEL_LOG_LEVEL", "info")
	cfg.Log.Format = envOrDefault("TRAVEL_LOG_FORMAT", "text")

	switch cfg.AI.Provider {
	case ProviderOpenRouter:
		if cfg.AI.OpenRouterKey == "" {
			return cfg, errors.New("environment variable OPENROUTER_API_KEY is required")
		}
	case ProviderGemini:
		if cfg.AI.GeminiKey == "" {
			return cfg, errors.New("environment variable GEMINI_API_KEY is required")
		}
	default:
		return cfg, fmt.Errorf("unknown TRAVEL_AI_PROVIDER %q", cfg.AI.Provider)
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
