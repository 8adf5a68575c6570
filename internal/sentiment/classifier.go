package sentiment

import "github.com/mico/crypto-sentiment-analysis/internal/domain"

// Thresholds for the neutral band. Scores inside [-0.05, +0.05], boundaries
// included, are Neutral.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Classify maps a compound polarity score in [-1, 1] to a sentiment category.
// Total over all finite inputs; deterministic; no hidden state.
func Classify(score float64) domain.Category {
	switch {
	case score > positiveThreshold:
		return domain.Positive
	case score < negativeThreshold:
		return domain.Negative
	default:
		return domain.Neutral
	}
}
