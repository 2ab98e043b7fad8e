package domain

import (
	"sentiment-chatbot/errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConversation_AddTurn_And_End(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()
	conv := NewConversation(now)

	req.NoError(conv.AddTurn(Turn{UserText: "hello", Score: 0.4, Label: Positive}))
	req.NoError(conv.AddTurn(Turn{UserText: "bad", Score: -0.5, Label: Negative}))
	req.Equal([]float64{0.4, -0.5}, conv.Scores())
	req.False(conv.IsEnded())
	req.Nil(conv.Summary)

	summary := Summary{Overall: Negative, Trend: "whatever"}
	req.NoError(conv.End(summary, now.Add(time.Minute)))
	req.True(conv.IsEnded())
	req.Equal(summary, *conv.Summary)

	// Then the conversation is frozen
	req.ErrorIs(conv.AddTurn(Turn{UserText: "late"}), errors.ErrConversationEnded)
	req.ErrorIs(conv.End(Summary{Overall: Positive}, now), errors.ErrConversationEnded)
	req.Equal(2, conv.Len())
}

func TestConversation_Turns_ReturnsCopy(t *testing.T) {
	req := require.New(t)
	conv := NewConversation(time.Now())
	req.NoError(conv.AddTurn(Turn{UserText: "hello"}))

	turns := conv.Turns()
	turns[0].UserText = "mutated"
	req.Equal("hello", conv.Turns()[0].UserText)
}

func TestConversation_Redacted(t *testing.T) {
	req := require.New(t)
	conv := NewConversation(time.Now())
	req.NoError(conv.AddTurn(Turn{UserText: "secret word"}))

	redacted := conv.Redacted(strings.ToUpper)
	req.Equal("SECRET WORD", redacted.Turns()[0].UserText)
	req.Equal("secret word", conv.Turns()[0].UserText)
	req.Equal(conv.ID, redacted.ID)
}
