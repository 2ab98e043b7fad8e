package domain

import (
	"sentiment-chatbot/errors"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Conversation owns an ordered turn sequence. The summary stays nil
// until End is called and is never recomputed afterwards.
type Conversation struct {
	ID        uuid.UUID
	StartedAt time.Time
	EndedAt   time.Time
	Summary   *Summary
	turns     []Turn
}

func NewConversation(at time.Time) *Conversation {
	return &Conversation{
		ID:        uuid.New(),
		StartedAt: at,
	}
}

// RestoreConversation rebuilds an already ended conversation, e.g. from disk.
func RestoreConversation(id uuid.UUID, startedAt, endedAt time.Time, turns []Turn, summary *Summary) *Conversation {
	return &Conversation{
		ID:        id,
		StartedAt: startedAt,
		EndedAt:   endedAt,
		Summary:   summary,
		turns:     turns,
	}
}

func (c *Conversation) AddTurn(turn Turn) error {
	if c.IsEnded() {
		return errors.ErrConversationEnded
	}
	c.turns = append(c.turns, turn)
	return nil
}

// End freezes the conversation with its derived summary.
func (c *Conversation) End(summary Summary, at time.Time) error {
	if c.IsEnded() {
		return errors.ErrConversationEnded
	}
	c.Summary = &summary
	c.EndedAt = at
	return nil
}

func (c *Conversation) IsEnded() bool {
	return c.Summary != nil
}

// Turns returns a copy so callers cannot mutate the history.
func (c *Conversation) Turns() []Turn {
	return append([]Turn(nil), c.turns...)
}

func (c *Conversation) Len() int {
	return len(c.turns)
}

// Scores returns the per-message compound scores in turn order.
func (c *Conversation) Scores() []float64 {
	return lo.Map(c.turns, func(t Turn, _ int) float64 { return t.Score })
}

// Redacted returns a copy whose user texts went through censor.
func (c *Conversation) Redacted(censor func(string) string) *Conversation {
	cp := *c
	cp.turns = lo.Map(c.turns, func(t Turn, _ int) Turn {
		t.UserText = censor(t.UserText)
		return t
	})
	if c.Summary != nil {
		summary := *c.Summary
		cp.Summary = &summary
	}
	return &cp
}
