package sentiment

import (
	"math"
	"testing"

	"github.com/mico/crypto-sentiment-analysis/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  domain.Category
	}{
		{"clearly positive", 0.5, domain.Positive},
		{"just above neutral band", 0.06, domain.Positive},
		{"upper boundary is neutral", 0.05, domain.Neutral},
		{"zero", 0.0, domain.Neutral},
		{"lower boundary is neutral", -0.05, domain.Neutral},
		{"just below neutral band", -0.06, domain.Negative},
		{"clearly negative", -0.8, domain.Negative},
		{"maximum score", 1.0, domain.Positive},
		{"minimum score", -1.0, domain.Negative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.score))
		})
	}
}

func TestClassify_TotalOverFinites(t *testing.T) {
	// Out-of-range finite inputs still classify rather than error.
	assert.Equal(t, domain.Positive, Classify(42))
	assert.Equal(t, domain.Negative, Classify(-42))
	assert.Equal(t, domain.Positive, Classify(math.Nextafter(0.05, 1)))
}

func TestClassify_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, domain.Neutral, Classify(0.03))
	}
}
