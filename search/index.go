//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=../mocks/mock_turn_index.go -package=mocks

// Package search indexes ended conversations turn by turn so the history
// can be searched by words and sentiment label.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"sentiment-chatbot/domain"
	"strconv"
	"strings"

	"github.com/blugelabs/bluge"
)

const (
	fieldID             = "_id"
	fieldConversationID = "conversation_id"
	fieldTurn           = "turn"
	fieldUserText       = "user_text"
	fieldBotReply       = "bot_reply"
	fieldLabel          = "label"
	fieldScore          = "score"
)

type ITurnIndex interface {
	IndexConversation(conv *domain.Conversation) error
	Search(ctx context.Context, query Query) ([]Hit, error)
}

// Hit is one matching turn.
type Hit struct {
	ID             string
	ConversationID string
	Turn           int
	UserText       string
	BotReply       string
	Label          string
	Score          float64 // sentiment compound of the turn
	Relevance      float64
}

type TurnIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewTurnIndex(writer *bluge.Writer, log *slog.Logger) *TurnIndex {
	return &TurnIndex{writer: writer, log: log}
}

// IndexConversation adds every turn of the conversation in one batch.
// Document IDs are "{conversation_id}:{turn}" so reindexing replaces them.
func (x *TurnIndex) IndexConversation(conv *domain.Conversation) error {
	batch := bluge.NewBatch()
	for i, turn := range conv.Turns() {
		doc := bluge.NewDocument(fmt.Sprintf("%s:%d", conv.ID, i)).
			AddField(bluge.NewKeywordField(fieldConversationID, conv.ID.String()).StoreValue()).
			AddField(bluge.NewKeywordField(fieldTurn, strconv.Itoa(i)).StoreValue()).
			AddField(bluge.NewTextField(fieldUserText, turn.UserText).StoreValue()).
			AddField(bluge.NewTextField(fieldBotReply, turn.BotReply).StoreValue()).
			AddField(bluge.NewKeywordField(fieldLabel, strings.ToLower(turn.Label.String())).StoreValue()).
			AddField(bluge.NewKeywordField(fieldScore, strconv.FormatFloat(turn.Score, 'f', -1, 64)).StoreValue())
		batch.Update(doc.ID(), doc)
	}
	if err := x.writer.Batch(batch); err != nil {
		return fmt.Errorf("index conversation %s: %w", conv.ID, err)
	}
	x.log.Debug("Conversation indexed", "conversation_id", conv.ID, "turns", conv.Len())
	return nil
}

// Search returns the turns matching the query, most relevant first.
func (x *TurnIndex) Search(ctx context.Context, query Query) ([]Hit, error) {
	reader, err := x.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("open index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	limit := query.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	request := bluge.NewTopNSearch(limit, buildQuery(query))
	matches, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query.RawInput, err)
	}

	var hits []Hit
	match, err := matches.Next()
	for err == nil && match != nil {
		hit := Hit{Relevance: match.Score}
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case fieldID:
				hit.ID = string(value)
			case fieldConversationID:
				hit.ConversationID = string(value)
			case fieldTurn:
				hit.Turn, _ = strconv.Atoi(string(value))
			case fieldUserText:
				hit.UserText = string(value)
			case fieldBotReply:
				hit.BotReply = string(value)
			case fieldLabel:
				hit.Label = string(value)
			case fieldScore:
				hit.Score, _ = strconv.ParseFloat(string(value), 64)
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		hits = append(hits, hit)
		match, err = matches.Next()
	}
	if err != nil {
		return nil, err
	}
	return hits, nil
}

func buildQuery(query Query) bluge.Query {
	var text bluge.Query = bluge.NewMatchAllQuery()
	if query.Terms != "" {
		text = bluge.NewBooleanQuery().
			AddShould(bluge.NewMatchQuery(query.Terms).SetField(fieldUserText)).
			AddShould(bluge.NewMatchQuery(query.Terms).SetField(fieldBotReply)).
			SetMinShould(1)
	}
	if query.Label == "" {
		return text
	}
	return bluge.NewBooleanQuery().
		AddMust(text).
		AddMust(bluge.NewTermQuery(query.Label).SetField(fieldLabel))
}
