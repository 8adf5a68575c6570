package domain

// KeywordTable maps a ticker symbol to the alias strings that imply a mention
// of it. Loaded once from configuration and treated as immutable afterwards;
// it is always passed explicitly, never held as process-wide state.
type KeywordTable map[string][]string

// Tickers returns the configured ticker symbols in unspecified order.
func (t KeywordTable) Tickers() []string {
	tickers := make([]string, 0, len(t))
	for ticker := range t {
		tickers = append(tickers, ticker)
	}
	return tickers
}
