package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sentiment-chatbot/bot"
	"sentiment-chatbot/domain"
	"sentiment-chatbot/export"
	"sentiment-chatbot/internal"
	"sentiment-chatbot/moderation"
	"sentiment-chatbot/projection"
	"sentiment-chatbot/repositories"
	"sentiment-chatbot/search"
	"sentiment-chatbot/sentiment"
	"sentiment-chatbot/services"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the shell.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const historyCommand = "/history"

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chatbot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and drives one console conversation. Returning
// instead of exiting lets the deferred closes of Badger and Bluge run.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Bot
	var chooser bot.Chooser
	if config.RandomSeed != nil {
		chooser = bot.NewRandomChooser(uint64(*config.RandomSeed))
	}
	chatbot, err := bot.Initialize(log, config.CorpusPath, config.MinConfidence, chooser)
	if err != nil {
		return exitConfig, err
	}
	moderator, err := moderation.NewModerator(config.CensoredWordList(), charReplacement, log)
	if err != nil {
		return exitConfig, fmt.Errorf("moderator init failed: %w", err)
	}

	// 3. Storage (BadgerDB + Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Debug("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		log.Debug("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	service := services.NewChatService(log,
		chatbot,
		sentiment.NewVaderScorer(),
		moderator,
		repositories.NewConversationRepository(db, log, config.LimitConversations),
		search.NewTurnIndex(blugeWriter, log),
	)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Conversation
	conv := service.NewConversation()
	converse(ctx, service, conv, os.Stdin, os.Stdout)

	summary, err := service.EndConversation(conv)
	printSummary(os.Stdout, conv, summary)
	if err != nil {
		log.Error("Conversation not persisted", "error", err)
	}

	transcriptPath, historyPath, err := export.SaveFiles(config.ExportDir, service.Redact(conv), time.Now())
	if err != nil {
		return exitRuntime, fmt.Errorf("export failed: %w", err)
	}
	fmt.Printf("Chat exported successfully: %s\n", transcriptPath)
	log.Info("History written", "path", historyPath)
	return exitOK, nil
}

// converse reads user lines until a quit command, end of input or a signal.
func converse(ctx context.Context, service *services.ChatService, conv *domain.Conversation, in io.Reader, out io.Writer) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := readLines(ctx, in)

	fmt.Fprintln(out, "Chatbot ready. Type '/quit' to exit.")
	fmt.Fprintln(out)
	for {
		fmt.Fprint(out, "User: ")
		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return
			}
			line = l
		}

		switch {
		case services.IsQuitCommand(line):
			return
		case search.IsFind(line):
			printHits(ctx, out, service, line)
			continue
		case strings.EqualFold(strings.TrimSpace(line), historyCommand):
			printHistory(out, service)
			continue
		}

		turn, err := service.PostMessage(conv, line)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		if turn.UserText != "" {
			fmt.Fprintf(out, "→ Sentiment: %s (compound=%.3f)\n", colorLabel(turn.Label), turn.Score)
		}
		fmt.Fprintf(out, "Bot: %s\n\n", turn.BotReply)
	}
}

// readLines streams the lines of in until it is exhausted or ctx is done.
// The channel is closed when the reader goroutine exits.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

func printSummary(out io.Writer, conv *domain.Conversation, summary domain.Summary) {
	fmt.Fprintln(out, "\n----- Conversation summary -----")
	fmt.Fprintf(out, "Overall conversation sentiment: %s\n", colorLabel(summary.Overall))
	fmt.Fprintf(out, "Conclusion: %s\n", summary.Conclusion)
	fmt.Fprintf(out, "Mood trend: %s\n\n", summary.Trend)
	if conv.Len() == 0 {
		return
	}
	_ = projection.FromConversation(conv).Render(out)
	fmt.Fprintln(out)
	export.RenderAnalysis(out, conv)
}

func printHits(ctx context.Context, out io.Writer, service *services.ChatService, line string) {
	hits, err := service.Search(ctx, line)
	if err != nil {
		fmt.Fprintf(out, "Search failed: %v\n\n", err)
		return
	}
	if len(hits) == 0 {
		fmt.Fprintln(out, "No matching messages.")
		fmt.Fprintln(out)
		return
	}
	for _, hit := range hits {
		fmt.Fprintf(out, "[%s #%d] %s (%s %.3f)\n", hit.ConversationID[:8], hit.Turn, hit.UserText, hit.Label, hit.Score)
	}
	fmt.Fprintln(out)
}

func printHistory(out io.Writer, service *services.ChatService) {
	records, _, err := service.GetConversations(nil)
	if err != nil {
		fmt.Fprintf(out, "History unavailable: %v\n\n", err)
		return
	}
	export.RenderHistory(out, records)
	fmt.Fprintln(out)
}

func colorLabel(label domain.Label) string {
	switch label {
	case domain.Positive:
		return color.Green.Sprint(label)
	case domain.Negative:
		return color.Red.Sprint(label)
	default:
		return color.Yellow.Sprint(label)
	}
}
