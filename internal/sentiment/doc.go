// Package sentiment maps lexicon polarity scores to sentiment categories.
//
// Classify is a pure function over the compound score; the score itself comes
// from a Scorer (VADER lexicon). Keeping the two apart means any scoring engine
// can be substituted without touching classification.
package sentiment
