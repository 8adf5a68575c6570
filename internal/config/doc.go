// Package config loads runtime configuration.
//
// Two layers: environment variables for deployment concerns (database URL,
// Reddit API credentials, port, logging) and a YAML file for the domain
// configuration (subreddits, coin keyword table, general search terms).
package config
