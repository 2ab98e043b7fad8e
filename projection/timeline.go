// Package projection builds read-only views over a conversation.
// It never mutates the conversation it is built from.
package projection

import (
	"fmt"
	"io"
	"sentiment-chatbot/domain"
	"sentiment-chatbot/sentiment"
	"strings"

	"github.com/samber/lo"
)

// Point is the sentiment of one message in the timeline.
type Point struct {
	Index int
	Score float64
	Label domain.Label
}

// Timeline holds the per-message mood of a conversation
type Timeline struct {
	Owner  string
	Points []Point
}

func NewTimeline(owner string) *Timeline {
	return &Timeline{
		Owner:  owner,
		Points: nil,
	}
}

// FromConversation projects every turn of conv, in order.
func FromConversation(conv *domain.Conversation) *Timeline {
	t := NewTimeline(conv.ID.String())
	for _, turn := range conv.Turns() {
		t.Consume(turn)
	}
	return t
}

// Consume appends a turn. Its label is derived again from the score so the
// chart always agrees with the thresholds.
func (t *Timeline) Consume(turn domain.Turn) {
	t.Points = append(t.Points, Point{
		Index: len(t.Points) + 1,
		Score: turn.Score,
		Label: sentiment.LabelFromScore(turn.Score),
	})
}

var bands = []domain.Label{domain.Positive, domain.Neutral, domain.Negative}

// Render prints one row per label and one column per message.
func (t *Timeline) Render(w io.Writer) error {
	if len(t.Points) == 0 {
		_, err := fmt.Fprintln(w, sentiment.NoMessages)
		return err
	}

	width := len(domain.Positive)
	for _, band := range bands {
		cells := lo.Map(t.Points, func(p Point, _ int) string {
			if p.Label == band {
				return "●"
			}
			return "·"
		})
		if _, err := fmt.Fprintf(w, "%-*s | %s\n", width, band, strings.Join(cells, " ")); err != nil {
			return err
		}
	}

	indices := lo.Map(t.Points, func(p Point, _ int) string { return fmt.Sprint(p.Index % 10) })
	_, err := fmt.Fprintf(w, "%-*s | %s\n", width, "", strings.Join(indices, " "))
	return err
}
