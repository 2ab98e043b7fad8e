package main

import (
	"fmt"
	"log"
	"os"
	"sentiment-chatbot/export"
	"sentiment-chatbot/projection"
	"sentiment-chatbot/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

func main() {
	// 1. Load config
	_ = godotenv.Load()
	config, err := LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Open Badger in Read-Only mode
	// BypassLockGuard allows reading while a chatbot holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	repository := repositories.NewConversationRepository(db, logger, lo.ToPtr(config.Limit))

	// 3. One conversation in detail
	if config.ConversationID != "" {
		id, err := uuid.Parse(config.ConversationID)
		if err != nil {
			log.Fatalf("Invalid conversation id %q: %v", config.ConversationID, err)
		}
		record, err := repository.Get(id)
		if err != nil {
			log.Fatalf("Failed to read conversation: %v", err)
		}
		conv := record.Conversation()
		fmt.Printf("Conversation %s (%s)\n", record.ID, record.EndedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("Overall: %s. %s\nMood trend: %s\n\n", record.Overall, record.Conclusion, record.Trend)
		_ = projection.FromConversation(conv).Render(os.Stdout)
		fmt.Println()
		export.RenderAnalysis(os.Stdout, conv)
		return
	}

	// 4. Listing, newest first
	var cursor *string
	if config.Cursor != "" {
		cursor = &config.Cursor
	}
	records, next, err := repository.GetConversations(cursor)
	if err != nil {
		log.Fatalf("Failed to list conversations: %v", err)
	}
	if len(records) == 0 {
		fmt.Println("No stored conversation.")
		return
	}
	export.RenderHistory(os.Stdout, records)
	if next != nil {
		fmt.Printf("\nNext page: HISTORY_CURSOR=%s\n", *next)
	}
}
