// Package coins implements coin-mention extraction over free text.
//
// A Matcher is compiled once from an immutable KeywordTable and matches aliases
// as whole words, case-insensitively. Extraction is a pure function: no shared
// state, safe for concurrent use.
package coins

import (
	"regexp"
	"sort"

	"github.com/mico/crypto-sentiment-analysis/internal/domain"
)

// tickerPattern pairs a ticker with the compiled patterns of its aliases.
type tickerPattern struct {
	ticker   string
	patterns []*regexp.Regexp
}

// Matcher holds per-alias compiled patterns for a keyword table.
type Matcher struct {
	tickers []tickerPattern
}

// NewMatcher compiles a matcher from the given keyword table. Tickers with no
// non-empty alias are skipped rather than failing the whole table; a table that
// yields no usable tickers still produces a valid (always-empty) matcher.
func NewMatcher(table domain.KeywordTable) *Matcher {
	m := &Matcher{tickers: make([]tickerPattern, 0, len(table))}

	for _, ticker := range sortedTickers(table) {
		tp := tickerPattern{ticker: ticker}
		for _, alias := range table[ticker] {
			if alias == "" {
				continue
			}
			tp.patterns = append(tp.patterns, compileAlias(alias))
		}
		if len(tp.patterns) == 0 {
			continue
		}
		m.tickers = append(m.tickers, tp)
	}

	return m
}

// compileAlias builds a case-insensitive whole-word pattern for an alias.
// The alias must be bounded by non-alphanumeric characters or string edges on
// both sides, so a short ticker never matches inside a longer word ("ADA" must
// not match "ADAPTATION") while punctuation neighbours still do ("SOL:").
func compileAlias(alias string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[^0-9A-Za-z])` + regexp.QuoteMeta(alias) + `(?:[^0-9A-Za-z]|$)`)
}

// Tickers returns the tickers this matcher can produce, sorted.
func (m *Matcher) Tickers() []string {
	tickers := make([]string, 0, len(m.tickers))
	for _, tp := range m.tickers {
		tickers = append(tickers, tp.ticker)
	}
	return tickers
}

// Extract returns the sorted set of tickers mentioned in the given title and
// body. Title and body are matched as one concatenated text, so the result is
// identical whether an alias appears in either field. The result is never nil.
func (m *Matcher) Extract(title, body string) []string {
	text := title + " " + body
	mentioned := make([]string, 0)

	for _, tp := range m.tickers {
		for _, pattern := range tp.patterns {
			if pattern.MatchString(text) {
				mentioned = append(mentioned, tp.ticker)
				break
			}
		}
	}

	return mentioned
}

// ExtractMentions is a convenience wrapper for one-off extraction. Callers on a
// hot path should compile a Matcher once and reuse it.
func ExtractMentions(title, body string, table domain.KeywordTable) []string {
	return NewMatcher(table).Extract(title, body)
}

func sortedTickers(table domain.KeywordTable) []string {
	tickers := table.Tickers()
	sort.Strings(tickers)
	return tickers
}
