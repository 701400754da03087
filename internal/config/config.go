package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort   string
	LogLevel  slog.Level
	LogFormat string

	SpellBaseURL      string
	GrammarBaseURL    string
	StyleBaseURL      string
	CodeSpellBaseURL  string
	AnalyzerAPIKey    string
	DictionaryBaseURL string

	DBPath string

	ChunkSize      int
	MinChunkSize   int
	MaxConcurrency int
	ChunkTimeout   time.Duration
	MaxTextLen     int
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the numeric ones.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	// Check current directory first, then walk up to find project root (where go.mod is)
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIPort:           getEnv("API_PORT", "9000"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		SpellBaseURL:      getEnv("SPELL_BASE_URL", "http://localhost:8080"),
		GrammarBaseURL:    getEnv("GRAMMAR_BASE_URL", "http://localhost:8081"),
		StyleBaseURL:      getEnv("STYLE_BASE_URL", "http://localhost:8082"),
		CodeSpellBaseURL:  getEnv("CODESPELL_BASE_URL", "http://localhost:8083"),
		AnalyzerAPIKey:    getEnv("ANALYZER_API_KEY", ""),
		DictionaryBaseURL: getEnv("DICTIONARY_BASE_URL", ""),
		DBPath:            getEnv("DB_PATH", "./data/spellcheck.db"),
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.ChunkSize, err = getEnvInt("CHECK_CHUNK_SIZE", 10000); err != nil {
		return nil, err
	}
	if cfg.MinChunkSize, err = getEnvInt("CHECK_MIN_CHUNK_SIZE", 1000); err != nil {
		return nil, err
	}
	if cfg.MaxConcurrency, err = getEnvInt("CHECK_MAX_CONCURRENCY", 3); err != nil {
		return nil, err
	}
	if cfg.MaxTextLen, err = getEnvInt("CHECK_MAX_TEXT_LEN", 2_000_000); err != nil {
		return nil, err
	}

	timeoutMs, err := getEnvInt("CHECK_CHUNK_TIMEOUT_MS", 0)
	if err != nil {
		return nil, err
	}
	cfg.ChunkTimeout = time.Duration(timeoutMs) * time.Millisecond

	if cfg.ChunkSize <= 0 {
		return nil, fmt.Errorf("CHECK_CHUNK_SIZE must be greater than 0")
	}
	if cfg.MaxConcurrency <= 0 {
		return nil, fmt.Errorf("CHECK_MAX_CONCURRENCY must be greater than 0")
	}

	// Create ./data directory if it doesn't exist (for the DB file)
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// parseLogLevel converts a level name to a slog.Level.
func parseLogLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", s)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value.
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return n, nil
}
