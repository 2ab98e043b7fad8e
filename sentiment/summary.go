package sentiment

import (
	"fmt"
	"math"
	"sentiment-chatbot/domain"
	"strings"

	"github.com/samber/lo"
)

const (
	NotEnoughData = "Not enough data to determine mood trend."
	MixedShifts   = "Mood trend shows mixed shifts over time."
	Fluctuating   = "Tone fluctuated frequently with mixed emotional shifts."

	ImprovedSignificantly = "Tone improved significantly — conversation moved from negative to positive."
	ImprovedSlightly      = "Tone improved slightly — started negative but recovered to neutral."
	DeclinedSignificantly = "Tone declined significantly — conversation turned from positive to negative."
	LessPositive          = "Tone became less positive — conversation softened to neutral."

	// NoMessages is the trend reported for a conversation ended without any turn.
	NoMessages = "No messages to analyze."
)

// Summarize returns the overall label of a conversation. Every score is
// weighted by its own magnitude so strong messages count more.
func Summarize(scores []float64) domain.Label {
	totalWeight := lo.SumBy(scores, func(s float64) float64 { return math.Abs(s) })
	if totalWeight == 0 {
		return domain.Neutral
	}
	weighted := lo.SumBy(scores, func(s float64) float64 { return s * math.Abs(s) })
	return LabelFromScore(weighted / totalWeight)
}

// Trend describes how the tone moved across the conversation. Rules are
// evaluated in order and the first match wins.
func Trend(scores []float64) string {
	if len(scores) < 2 {
		return NotEnoughData
	}

	labels := lo.Map(scores, func(s float64, _ int) domain.Label { return LabelFromScore(s) })
	if len(lo.Uniq(labels)) == 1 {
		return fmt.Sprintf("Tone remained consistently %s throughout the conversation.", lower(labels[0]))
	}

	start, end := labels[0], labels[len(labels)-1]
	transitions := 0
	for i := 1; i < len(labels); i++ {
		if labels[i] != labels[i-1] {
			transitions++
		}
	}

	switch {
	case start == domain.Negative && end == domain.Positive:
		return ImprovedSignificantly
	case start == domain.Negative && end == domain.Neutral:
		return ImprovedSlightly
	case start == domain.Positive && end == domain.Negative:
		return DeclinedSignificantly
	case start == domain.Positive && end == domain.Neutral:
		return LessPositive
	case transitions >= 3:
		return Fluctuating
	case start != end && transitions == 1:
		return fmt.Sprintf("Tone shifted from %s to %s.", lower(start), lower(end))
	}

	mid := labels[len(labels)/2]
	if start != mid || mid != end {
		return fmt.Sprintf("Conversation started %s, shifted to %s midway, and ended %s.",
			lower(start), lower(mid), lower(end))
	}
	return MixedShifts
}

// Conclusion is the one-line verdict shown next to the overall label.
func Conclusion(label domain.Label) string {
	switch label {
	case domain.Positive:
		return "General satisfaction."
	case domain.Negative:
		return "General dissatisfaction."
	default:
		return "Balanced emotional tone."
	}
}

// Summary derives the end-of-conversation fields from the score sequence.
func Summary(scores []float64) domain.Summary {
	if len(scores) == 0 {
		return domain.Summary{Overall: domain.Neutral, Trend: NoMessages, Conclusion: Conclusion(domain.Neutral)}
	}
	overall := Summarize(scores)
	return domain.Summary{Overall: overall, Trend: Trend(scores), Conclusion: Conclusion(overall)}
}

func lower(label domain.Label) string {
	return strings.ToLower(string(label))
}
