package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mico/crypto-sentiment-analysis/internal/domain"
	"gopkg.in/yaml.v3"
)

const defaultPostsLimit = 100

// AppConfig is the domain configuration loaded from the YAML file.
type AppConfig struct {
	Subreddits   []string            `yaml:"subreddits"`
	CoinKeywords domain.KeywordTable `yaml:"coin_keywords"`
	GeneralTerms []string            `yaml:"general_terms"`
	PostsLimit   int                 `yaml:"posts_limit"`
}

// LoadAppConfig reads and validates the YAML domain configuration.
// Tickers with no usable alias are kept out of the table with a warning; the
// extractor stays total over whatever configuration reaches it.
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(cfg.Subreddits) == 0 {
		return nil, fmt.Errorf("config file %s: subreddits must not be empty", path)
	}
	if len(cfg.CoinKeywords) == 0 {
		return nil, fmt.Errorf("config file %s: coin_keywords must not be empty", path)
	}
	if cfg.PostsLimit <= 0 {
		cfg.PostsLimit = defaultPostsLimit
	}

	for ticker, aliases := range cfg.CoinKeywords {
		if !hasUsableAlias(aliases) {
			slog.Warn("Skipping ticker with no usable alias", "ticker", ticker)
			delete(cfg.CoinKeywords, ticker)
		}
	}

	return &cfg, nil
}

func hasUsableAlias(aliases []string) bool {
	for _, alias := range aliases {
		if alias != "" {
			return true
		}
	}
	return false
}
