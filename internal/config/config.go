package config

import (
	"fmt"
	"os"
)

type Config struct {
	AppEnv           string
	Port             string
	LogLevel         string
	LogFormat        string
	DatabaseURL      string
	ConfigPath       string
	RedditClientID   string
	RedditSecret     string
	RedditUserAgent  string
	RedditUsername   string
	RedditPassword   string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		ConfigPath:      getEnv("CONFIG_PATH", "config.yaml"),
		RedditClientID:  getEnv("REDDIT_CLIENT_ID", ""),
		RedditSecret:    getEnv("REDDIT_CLIENT_SECRET", ""),
		RedditUserAgent: getEnv("REDDIT_USER_AGENT", ""),
		RedditUsername:  getEnv("REDDIT_USERNAME", ""),
		RedditPassword:  getEnv("REDDIT_PASSWORD", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	// Script credentials: all four must be set together. Without them the
	// fetcher falls back to the unauthenticated read-only API.
	authVars := []string{cfg.RedditClientID, cfg.RedditSecret, cfg.RedditUsername, cfg.RedditPassword}
	anySet, allSet := false, true
	for _, v := range authVars {
		if v == "" {
			allSet = false
		} else {
			anySet = true
		}
	}
	if anySet && !allSet {
		return nil, fmt.Errorf("REDDIT_CLIENT_ID, REDDIT_CLIENT_SECRET, REDDIT_USERNAME and REDDIT_PASSWORD must be set together")
	}
	if anySet && cfg.RedditUserAgent == "" {
		return nil, fmt.Errorf("REDDIT_USER_AGENT is required when Reddit credentials are set")
	}

	return cfg, nil
}

// HasRedditCredentials reports whether script-type API credentials are configured.
func (c *Config) HasRedditCredentials() bool {
	return c.RedditClientID != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
