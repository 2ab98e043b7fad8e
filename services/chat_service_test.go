package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sentiment-chatbot/ai"
	"sentiment-chatbot/bot"
	"sentiment-chatbot/domain"
	"sentiment-chatbot/errors"
	"sentiment-chatbot/export"
	"sentiment-chatbot/mocks"
	"sentiment-chatbot/moderation"
	"sentiment-chatbot/search"
	"sentiment-chatbot/sentiment"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fixedScorer returns canned scores keyed by text, 0 otherwise
type fixedScorer map[string]float64

func (f fixedScorer) Score(text string) domain.Sentiment {
	score := f[text]
	return domain.Sentiment{Label: sentiment.LabelFromScore(score), Compound: score}
}

func newService(t *testing.T, scorer sentiment.Scorer, repo *mocks.MockIConversationRepository, index *mocks.MockITurnIndex) *ChatService {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	b, err := bot.Initialize(log, filepath.Join("testdata", "intents.json"), ai.DefaultMinConfidence, bot.NewRandomChooser(1))
	require.NoError(t, err)
	mod, err := moderation.NewModerator([]string{"scam"}, '*', log)
	require.NoError(t, err)

	// Typed nil mocks must not end up as non-nil interfaces
	svc := NewChatService(log, b, scorer, mod, nil, nil)
	if repo != nil {
		svc.repository = repo
	}
	if index != nil {
		svc.index = index
	}
	return svc
}

func TestIsQuitCommand(t *testing.T) {
	req := require.New(t)
	for _, input := range []string{"/quit", "quit", "EXIT", "  Quit  "} {
		req.True(IsQuitCommand(input), "input=%s", input)
	}
	for _, input := range []string{"", "quitting", "please exit", "/find quit"} {
		req.False(IsQuitCommand(input), "input=%s", input)
	}
}

func TestChatService_PostMessage_BlankInputIsNotRecorded(t *testing.T) {
	req := require.New(t)
	svc := newService(t, fixedScorer{}, nil, nil)
	conv := svc.NewConversation()

	turn, err := svc.PostMessage(conv, "   ")
	req.NoError(err)
	req.Equal(bot.EmptyInputReply, turn.BotReply)
	req.Equal(domain.Neutral, turn.Label)
	req.Zero(conv.Len())
}

func TestChatService_PostMessage_RecordsTurn(t *testing.T) {
	req := require.New(t)
	svc := newService(t, fixedScorer{"Where is my order": -0.4}, nil, nil)
	conv := svc.NewConversation()

	turn, err := svc.PostMessage(conv, "  Where is my order  ")
	req.NoError(err)
	req.Equal("Where is my order", turn.UserText)
	req.Equal("order_status", turn.Tag)
	req.Equal(domain.Negative, turn.Label)
	req.Equal(-0.4, turn.Score)
	req.NotEmpty(turn.BotReply)
	req.Equal([]domain.Turn{turn}, conv.Turns())
}

func TestChatService_EndConversation(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		scores   fixedScorer
		expected domain.Summary
	}{
		{
			name:     "No message",
			messages: nil,
			scores:   fixedScorer{},
			expected: domain.Summary{Overall: domain.Neutral, Trend: sentiment.NoMessages, Conclusion: "Balanced emotional tone."},
		},
		{
			name:     "Single positive message",
			messages: []string{"Thank you so much"},
			scores:   fixedScorer{"Thank you so much": 0.6},
			expected: domain.Summary{Overall: domain.Positive, Trend: sentiment.NotEnoughData, Conclusion: "General satisfaction."},
		},
		{
			name:     "Negative then positive",
			messages: []string{"This is terrible", "Thanks"},
			scores:   fixedScorer{"This is terrible": -0.5, "Thanks": 0.9},
			expected: domain.Summary{Overall: domain.Positive, Trend: sentiment.ImprovedSignificantly, Conclusion: "General satisfaction."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			svc := newService(t, tt.scores, nil, nil)
			conv := svc.NewConversation()
			for _, message := range tt.messages {
				_, err := svc.PostMessage(conv, message)
				req.NoError(err)
			}

			summary, err := svc.EndConversation(conv)
			req.NoError(err)
			req.Equal(tt.expected, summary)
			req.True(conv.IsEnded())
			req.Equal(tt.expected, *conv.Summary)
		})
	}
}

func TestChatService_EndConversation_Twice(t *testing.T) {
	req := require.New(t)
	svc := newService(t, fixedScorer{}, nil, nil)
	conv := svc.NewConversation()

	_, err := svc.EndConversation(conv)
	req.NoError(err)
	_, err = svc.EndConversation(conv)
	req.ErrorIs(err, errors.ErrConversationEnded)

	_, err = svc.PostMessage(conv, "hello")
	req.ErrorIs(err, errors.ErrConversationEnded)
}

func TestChatService_EndConversation_StoresRedactedRecord(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIConversationRepository(ctrl)
	index := mocks.NewMockITurnIndex(ctrl)
	svc := newService(t, fixedScorer{"This is a scam": -0.6}, repo, index)
	conv := svc.NewConversation()

	_, err := svc.PostMessage(conv, "This is a scam")
	req.NoError(err)

	var stored export.Record
	repo.EXPECT().Store(gomock.Any()).DoAndReturn(func(record export.Record) error {
		stored = record
		return nil
	})
	index.EXPECT().IndexConversation(gomock.Any()).DoAndReturn(func(c *domain.Conversation) error {
		req.Equal("This is a ****", c.Turns()[0].UserText)
		return nil
	})

	_, err = svc.EndConversation(conv)
	req.NoError(err)
	req.Equal(conv.ID, stored.ID)
	req.Len(stored.History, 1)
	req.Equal("This is a ****", stored.History[0].UserText)
	req.Equal(domain.Negative.String(), stored.Overall)
	// The live conversation keeps the raw text
	req.Equal("This is a scam", conv.Turns()[0].UserText)
}

func TestChatService_EndConversation_EmptyIsStoredNotIndexed(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIConversationRepository(ctrl)
	index := mocks.NewMockITurnIndex(ctrl)
	svc := newService(t, fixedScorer{}, repo, index)

	repo.EXPECT().Store(gomock.Any()).Return(nil)
	index.EXPECT().IndexConversation(gomock.Any()).Times(0)

	_, err := svc.EndConversation(svc.NewConversation())
	req.NoError(err)
}

func TestChatService_EndConversation_StoreFailureKeepsSummary(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIConversationRepository(ctrl)
	svc := newService(t, fixedScorer{"Thanks": 0.5}, repo, nil)
	conv := svc.NewConversation()
	_, err := svc.PostMessage(conv, "Thanks")
	req.NoError(err)

	storeErr := fmt.Errorf("disk full")
	repo.EXPECT().Store(gomock.Any()).Return(storeErr)

	summary, err := svc.EndConversation(conv)
	req.ErrorIs(err, storeErr)
	req.Equal(domain.Positive, summary.Overall)
	req.True(conv.IsEnded())
}

func TestChatService_Search(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	index := mocks.NewMockITurnIndex(ctrl)
	svc := newService(t, fixedScorer{}, nil, index)
	ctx := context.Background()

	hits := []search.Hit{{ConversationID: "abc", UserText: "refund please"}}
	index.EXPECT().
		Search(ctx, search.Query{RawInput: "/find refund --label negative", Terms: "refund", Label: "negative", Limit: 10}).
		Return(hits, nil)

	actual, err := svc.Search(ctx, "/find refund --label negative")
	req.NoError(err)
	req.Equal(hits, actual)
}

func TestChatService_WithoutStorage(t *testing.T) {
	req := require.New(t)
	svc := newService(t, fixedScorer{}, nil, nil)

	hits, err := svc.Search(context.Background(), "/find anything")
	req.NoError(err)
	req.Nil(hits)

	records, cursor, err := svc.GetConversations(nil)
	req.NoError(err)
	req.Nil(records)
	req.Nil(cursor)
}
