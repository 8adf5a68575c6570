package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `
subreddits:
  - cryptocurrency
  - bitcoin
coin_keywords:
  BTC: [BTC, BITCOIN]
  ETH: [ETH, ETHEREUM]
general_terms:
  - crypto
  - altcoin
posts_limit: 50
`)

	cfg, err := LoadAppConfig(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"cryptocurrency", "bitcoin"}, cfg.Subreddits)
	assert.Equal(t, []string{"BTC", "BITCOIN"}, cfg.CoinKeywords["BTC"])
	assert.Equal(t, []string{"crypto", "altcoin"}, cfg.GeneralTerms)
	assert.Equal(t, 50, cfg.PostsLimit)
}

func TestLoadAppConfig_DefaultPostsLimit(t *testing.T) {
	path := writeConfigFile(t, `
subreddits: [cryptocurrency]
coin_keywords:
  BTC: [BTC]
`)

	cfg, err := LoadAppConfig(path)

	require.NoError(t, err)
	assert.Equal(t, defaultPostsLimit, cfg.PostsLimit)
}

func TestLoadAppConfig_DropsTickersWithoutAliases(t *testing.T) {
	path := writeConfigFile(t, `
subreddits: [cryptocurrency]
coin_keywords:
  BTC: [BTC]
  BROKEN: []
  BLANK: [""]
`)

	cfg, err := LoadAppConfig(path)

	require.NoError(t, err)
	assert.Contains(t, cfg.CoinKeywords, "BTC")
	assert.NotContains(t, cfg.CoinKeywords, "BROKEN")
	assert.NotContains(t, cfg.CoinKeywords, "BLANK")
}

func TestLoadAppConfig_MissingFile(t *testing.T) {
	_, err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadAppConfig_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "subreddits: [unterminated")

	_, err := LoadAppConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadAppConfig_EmptySubreddits(t *testing.T) {
	path := writeConfigFile(t, `
subreddits: []
coin_keywords:
  BTC: [BTC]
`)

	_, err := LoadAppConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "subreddits must not be empty")
}

func TestLoadAppConfig_EmptyKeywords(t *testing.T) {
	path := writeConfigFile(t, `
subreddits: [cryptocurrency]
coin_keywords: {}
`)

	_, err := LoadAppConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "coin_keywords must not be empty")
}
