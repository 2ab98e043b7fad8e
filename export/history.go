// Package export writes conversations out: the plain-text transcript, the
// JSON history used to reload them and tabular analysis views.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"sentiment-chatbot/domain"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// TurnRecord keeps the historical field names of the history file.
type TurnRecord struct {
	UserText string    `json:"User_text"`
	BotReply string    `json:"Bot_reply"`
	Label    string    `json:"label"`
	Score    float64   `json:"score"`
	Tag      string    `json:"tag,omitempty"`
	Lang     string    `json:"lang,omitempty"`
	At       time.Time `json:"at"`
}

// Record is the structured serialization of one ended conversation.
type Record struct {
	ID         uuid.UUID    `json:"id"`
	StartedAt  time.Time    `json:"started_at"`
	EndedAt    time.Time    `json:"ended_at"`
	History    []TurnRecord `json:"history"`
	Overall    string       `json:"overall"`
	Trend      string       `json:"trend"`
	Conclusion string       `json:"conclusion,omitempty"`
}

func FromConversation(conv *domain.Conversation) Record {
	record := Record{
		ID:        conv.ID,
		StartedAt: conv.StartedAt,
		EndedAt:   conv.EndedAt,
		History: lo.Map(conv.Turns(), func(t domain.Turn, _ int) TurnRecord {
			return TurnRecord{
				UserText: t.UserText,
				BotReply: t.BotReply,
				Label:    t.Label.String(),
				Score:    t.Score,
				Tag:      t.Tag,
				Lang:     t.Lang,
				At:       t.At,
			}
		}),
	}
	if conv.Summary != nil {
		record.Overall = conv.Summary.Overall.String()
		record.Trend = conv.Summary.Trend
		record.Conclusion = conv.Summary.Conclusion
	}
	return record
}

// Conversation reloads the record. The stored summary is kept as is.
func (r Record) Conversation() *domain.Conversation {
	turns := lo.Map(r.History, func(t TurnRecord, _ int) domain.Turn {
		return domain.Turn{
			UserText: t.UserText,
			BotReply: t.BotReply,
			Label:    domain.Label(t.Label),
			Score:    t.Score,
			Tag:      t.Tag,
			Lang:     t.Lang,
			At:       t.At,
		}
	})
	var summary *domain.Summary
	if r.Overall != "" {
		summary = &domain.Summary{
			Overall:    domain.Label(r.Overall),
			Trend:      r.Trend,
			Conclusion: r.Conclusion,
		}
	}
	return domain.RestoreConversation(r.ID, r.StartedAt, r.EndedAt, turns, summary)
}

func WriteHistory(w io.Writer, records []Record) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	return nil
}

func ReadHistory(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return records, nil
}
