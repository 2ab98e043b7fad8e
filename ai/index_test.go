package ai

import (
	"sentiment-chatbot/domain"
	"sentiment-chatbot/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func testCorpus() domain.Corpus {
	return domain.Corpus{Intents: []domain.Intent{
		{
			Tag:       "greeting",
			Patterns:  []string{"hello", "hi there", "good morning"},
			Responses: []string{"Hello!", "Hi, how can I help?"},
		},
		{
			Tag:       "goodbye",
			Patterns:  []string{"bye", "see you later"},
			Responses: []string{"Goodbye!"},
		},
		{
			Tag:       "refund",
			Patterns:  []string{"I want a refund", "my order arrived broken"},
			Responses: []string{"I'm sorry about that, let me look at your order."},
		},
	}}
}

func TestNewIndex(t *testing.T) {
	req := require.New(t)
	index, err := NewIndex(testCorpus())
	req.NoError(err)
	req.Equal(7, index.Len())
	req.Positive(index.Vocabulary().Dimension())

	_, err = NewIndex(domain.Corpus{})
	req.ErrorIs(err, errors.ErrEmptyCorpus)

	_, err = NewIndex(domain.Corpus{Intents: []domain.Intent{
		{Tag: "noise", Patterns: []string{"?!"}, Responses: []string{"ok"}},
	}})
	req.ErrorIs(err, errors.ErrEmptyVocabulary)
}

func TestIndex_Match(t *testing.T) {
	index, err := NewIndex(testCorpus())
	require.NoError(t, err)

	tests := []struct {
		name          string
		text          string
		minConfidence float64
		tag           string
		fallback      bool
	}{
		{"Exact pattern", "hello", DefaultMinConfidence, "greeting", false},
		{"Case and punctuation are ignored", "HELLO!!", DefaultMinConfidence, "greeting", false},
		{"Partial overlap", "see you", DefaultMinConfidence, "goodbye", false},
		{"Refund request", "can I get a refund please", DefaultMinConfidence, "refund", false},
		{"Nonsense falls back", "sdlfkjsdlfkjweoiruwoeiur", DefaultMinConfidence, "", true},
		{"Nonsense with zero threshold takes the first pattern", "sdlfkjsdlfkjweoiruwoeiur", 0, "greeting", false},
		{"Near unreachable threshold falls back", "see you", 0.99, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			match := index.Match(tt.text, tt.minConfidence)
			req.Equal(tt.fallback, match.Fallback)
			req.Equal(tt.tag, match.Tag)
			req.GreaterOrEqual(match.Score, 0.0)
			req.LessOrEqual(match.Score, 1.0+1e-9)
		})
	}
}

func TestIndex_Match_ExactPatternScoresOne(t *testing.T) {
	req := require.New(t)
	index, err := NewIndex(testCorpus())
	req.NoError(err)

	match := index.Match("my order arrived broken", DefaultMinConfidence)
	req.Equal("refund", match.Tag)
	req.Equal("my order arrived broken", match.Pattern)
	req.InDelta(1.0, match.Score, 1e-9)
}

func TestIndex_Match_ThresholdIsInclusive(t *testing.T) {
	req := require.New(t)
	index, err := NewIndex(testCorpus())
	req.NoError(err)

	first := index.Match("see you", 0)
	req.False(first.Fallback)

	again := index.Match("see you", first.Score)
	req.False(again.Fallback)
	req.Equal(first, again)
}

func TestIndex_Match_TieKeepsEarliestPattern(t *testing.T) {
	req := require.New(t)
	index, err := NewIndex(domain.Corpus{Intents: []domain.Intent{
		{Tag: "first", Patterns: []string{"hello"}, Responses: []string{"a"}},
		{Tag: "second", Patterns: []string{"hello"}, Responses: []string{"b"}},
	}})
	req.NoError(err)

	for i := 0; i < 5; i++ {
		req.Equal("first", index.Match("hello", DefaultMinConfidence).Tag)
	}
}
