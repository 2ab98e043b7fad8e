// Package bot resolves user text to an intent and picks the reply.
// Resolution is deterministic; only the choice among equivalent replies
// goes through the Chooser.
package bot

import (
	"fmt"
	"log/slog"
	"sentiment-chatbot/ai"
	"sentiment-chatbot/corpus"
	"sentiment-chatbot/domain"
	"sentiment-chatbot/errors"
	"strings"
	"time"
)

const (
	// EmptyInputReply answers blank input without touching the matcher.
	EmptyInputReply = "Please say something."
	// UnknownTagReply answers a resolved tag that has no response list.
	UnknownTagReply = "Sorry."
)

// FallbackReplies are used when no pattern is similar enough.
var FallbackReplies = []string{
	"Sorry, I didn't understand. Could you rephrase?",
	"I'm not sure I follow — can you tell me more?",
}

// Response is a reply along with the match that produced it.
type Response struct {
	Text  string
	Match ai.Match
	Blank bool
}

// Bot is an immutable handle over a loaded corpus.
type Bot struct {
	log           *slog.Logger
	index         *ai.Index
	responses     map[string][]string
	minConfidence float64
	chooser       Chooser
}

// Initialize loads the corpus file and builds the bot. Corpus problems
// wrap errors.ErrCorpusLoad.
func Initialize(log *slog.Logger, corpusPath string, minConfidence float64, chooser Chooser) (*Bot, error) {
	c, err := corpus.Load(log, corpusPath)
	if err != nil {
		return nil, err
	}
	return New(log, c, minConfidence, chooser)
}

// New vectorizes every corpus pattern. A nil chooser draws from a time-seeded source.
func New(log *slog.Logger, c domain.Corpus, minConfidence float64, chooser Chooser) (*Bot, error) {
	if minConfidence < 0 || minConfidence > 1 {
		return nil, fmt.Errorf("%w: got %v", errors.ErrInvalidConfidence, minConfidence)
	}
	start := time.Now()
	index, err := ai.NewIndex(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrCorpusLoad, err)
	}
	if chooser == nil {
		chooser = NewRandomChooser(uint64(time.Now().UnixNano()))
	}
	log.Info("Corpus indexed",
		"intents", len(c.Intents),
		"patterns", index.Len(),
		"vocabulary", index.Vocabulary().Dimension(),
		"min_confidence", minConfidence,
		"duration", time.Since(start))
	return &Bot{
		log:           log,
		index:         index,
		responses:     c.Responses(),
		minConfidence: minConfidence,
		chooser:       chooser,
	}, nil
}

func (b *Bot) MinConfidence() float64 {
	return b.minConfidence
}

// Resolve returns the deterministic part of a reply: the matched tag or a fallback.
func (b *Bot) Resolve(text string) ai.Match {
	return b.index.Match(text, b.minConfidence)
}

// Reply never fails: blank input, fallbacks and unknown tags all have a reply.
func (b *Bot) Reply(text string) string {
	return b.Respond(text).Text
}

func (b *Bot) Respond(text string) Response {
	if strings.TrimSpace(text) == "" {
		return Response{Text: EmptyInputReply, Blank: true}
	}

	match := b.Resolve(text)
	if match.Fallback {
		b.log.Debug("No confident match", "score", match.Score, "min_confidence", b.minConfidence)
		return Response{Text: b.pick(FallbackReplies), Match: match}
	}

	responses, ok := b.responses[match.Tag]
	if !ok || len(responses) == 0 {
		b.log.Warn("Resolved tag has no responses", "tag", match.Tag)
		return Response{Text: UnknownTagReply, Match: match}
	}
	b.log.Debug("Intent resolved", "tag", match.Tag, "pattern", match.Pattern, "score", match.Score)
	return Response{Text: b.pick(responses), Match: match}
}

func (b *Bot) pick(candidates []string) string {
	return candidates[b.chooser.Choose(len(candidates))]
}
