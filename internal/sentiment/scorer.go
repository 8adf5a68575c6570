package sentiment

import govader "github.com/jonreiter/govader"

// Scorer produces compound polarity scores using the VADER lexicon.
// Stateless after construction; safe for concurrent use.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewScorer builds a Scorer with the default VADER lexicon.
func NewScorer() *Scorer {
	return &Scorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound polarity of text in [-1, 1].
func (s *Scorer) Score(text string) float64 {
	return s.analyzer.PolarityScores(text).Compound
}
