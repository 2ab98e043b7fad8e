//go:generate go run go.uber.org/mock/mockgen -source=conversation.go -destination=../mocks/mock_conversation_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sentiment-chatbot/errors"
	"sentiment-chatbot/export"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	chatPrefix  = "chat:"
	indexPrefix = "chatid:"
)

type IConversationRepository interface {
	Store(record export.Record) error
	Get(id uuid.UUID) (export.Record, error)
	GetConversations(cursor *string) ([]export.Record, *string, error)
}

type ConversationRepository struct {
	db                 *badger.DB
	log                *slog.Logger
	limitConversations *int
}

func NewConversationRepository(db *badger.DB, log *slog.Logger, limitConversations *int) ConversationRepository {
	return ConversationRepository{db: db, log: log, limitConversations: limitConversations}
}

// Store persists an ended conversation.
// The key is formatted as "chat:{ended_at_padded}:{uuid}" so that a prefix
// scan walks conversations chronologically (19-digit zero padding keeps the
// lexicographical order) and two conversations ending at the same
// nanosecond do not collide. A second key "chatid:{uuid}" points to it.
func (r ConversationRepository) Store(record export.Record) error {
	key := fmt.Sprintf("%s%019d:%s", chatPrefix, record.EndedAt.UnixNano(), record.ID)
	bytes, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(key), bytes); err != nil {
			return err
		}
		return txn.Set([]byte(indexPrefix+record.ID.String()), []byte(key))
	})
}

// Get returns one conversation by ID.
func (r ConversationRepository) Get(id uuid.UUID) (export.Record, error) {
	var record export.Record
	err := r.db.View(func(txn *badger.Txn) error {
		ref, err := txn.Get([]byte(indexPrefix + id.String()))
		if err != nil {
			return err
		}
		key, err := ref.ValueCopy(nil)
		if err != nil {
			return err
		}
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &record)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return export.Record{}, fmt.Errorf("%w: %s", errors.ErrConversationNotFound, id)
	}
	return record, err
}

// GetConversations returns conversations newest first, one page at a time.
// The returned cursor is the key suffix of the last conversation read and
// resumes the scan just after it. It is nil once the listing is exhausted.
func (r ConversationRepository) GetConversations(cursor *string) ([]export.Record, *string, error) {
	var records []export.Record
	var lastKey string
	hasMore := false
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(chatPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Seek past the newest possible key, then walk backwards
			seekKey = append([]byte(chatPrefix), []byte("9999999999999999999")...)
		default:
			seekKey = append([]byte(chatPrefix), []byte(*cursor)...)
		}

		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()) == string(seekKey) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limitConversations != nil && len(records) == *r.limitConversations {
				r.log.Debug("Maximum of conversations reached", "limit", *r.limitConversations)
				hasMore = true
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefix):])
			err := item.Value(func(value []byte) error {
				var record export.Record
				if err := json.Unmarshal(value, &record); err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if !hasMore {
		return records, nil, nil
	}
	return records, &lastKey, nil
}
