package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sentiment-chatbot/domain"
	"strconv"
	"strings"
	"time"
)

const transcriptHeader = "=== Chat Transcript ==="

var ruleLine = strings.Repeat("-", 40)

// WriteTranscript writes the human readable transcript of a conversation.
func WriteTranscript(w io.Writer, conv *domain.Conversation) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n\n", transcriptHeader)
	for _, turn := range conv.Turns() {
		fmt.Fprintf(bw, "User: %s\n", turn.UserText)
		fmt.Fprintf(bw, "Sentiment: %s (compound=%s)\n", turn.Label, formatScore(turn.Score))
		fmt.Fprintf(bw, "Bot: %s\n", turn.BotReply)
		fmt.Fprintln(bw, ruleLine)
	}
	return bw.Flush()
}

// formatScore prints the shortest form of a score, always with a decimal point.
func formatScore(score float64) string {
	s := strconv.FormatFloat(score, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// TranscriptFilename names the export after the export time.
func TranscriptFilename(at time.Time) string {
	return fmt.Sprintf("chat_export_%s.txt", at.Format("20060102_150405"))
}

// SaveFiles writes the transcript and the JSON history of a conversation
// into dir and returns both paths.
func SaveFiles(dir string, conv *domain.Conversation, at time.Time) (string, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create export dir: %w", err)
	}

	transcriptPath := filepath.Join(dir, TranscriptFilename(at))
	if err := writeFile(transcriptPath, func(w io.Writer) error { return WriteTranscript(w, conv) }); err != nil {
		return "", "", err
	}

	historyPath := filepath.Join(dir, fmt.Sprintf("history_%s.json", conv.ID))
	if err := writeFile(historyPath, func(w io.Writer) error {
		return WriteHistory(w, []Record{FromConversation(conv)})
	}); err != nil {
		return "", "", err
	}
	return transcriptPath, historyPath, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
