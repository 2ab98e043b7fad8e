// Package sentiment scores single utterances and reduces a conversation's
// score sequence to an overall label and a mood-trend narrative.
package sentiment

import (
	"math"
	"sentiment-chatbot/domain"
	"strings"

	"github.com/jonreiter/govader"
)

// Label thresholds on the compound score. Every label in the system,
// per message or per conversation, is derived with these two bounds.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// Scorer turns an utterance into a bounded polarity and its label.
// Implementations must be deterministic for identical input.
type Scorer interface {
	Score(text string) domain.Sentiment
}

// VaderScorer scores with the VADER lexicon and rules.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the VADER compound score with its label. Blank text is Neutral.
func (s *VaderScorer) Score(text string) domain.Sentiment {
	if strings.TrimSpace(text) == "" {
		return domain.Sentiment{Label: domain.Neutral}
	}
	compound := clamp(round4(s.analyzer.PolarityScores(text).Compound))
	return domain.Sentiment{Label: LabelFromScore(compound), Compound: compound}
}

// LabelFromScore maps a polarity onto the three-way label.
func LabelFromScore(score float64) domain.Label {
	switch {
	case score >= PositiveThreshold:
		return domain.Positive
	case score <= NegativeThreshold:
		return domain.Negative
	default:
		return domain.Neutral
	}
}

// round4 keeps four decimals, the precision VADER reports compounds with.
func round4(score float64) float64 {
	return math.Round(score*1e4) / 1e4
}

func clamp(score float64) float64 {
	return min(1, max(-1, score))
}
