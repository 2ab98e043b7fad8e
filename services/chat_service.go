package services

import (
	"context"
	"fmt"
	"log/slog"
	"sentiment-chatbot/bot"
	"sentiment-chatbot/domain"
	"sentiment-chatbot/export"
	"sentiment-chatbot/moderation"
	"sentiment-chatbot/repositories"
	"sentiment-chatbot/search"
	"sentiment-chatbot/sentiment"
	"strings"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/samber/lo"
)

// QuitCommands end the conversation instead of being answered.
var QuitCommands = []string{"/quit", "quit", "exit"}

type IChatService interface {
	NewConversation() *domain.Conversation
	PostMessage(conv *domain.Conversation, text string) (domain.Turn, error)
	EndConversation(conv *domain.Conversation) (domain.Summary, error)
	Search(ctx context.Context, input string) ([]search.Hit, error)
	GetConversations(cursor *string) ([]export.Record, *string, error)
}

// Responder is the reply side of the bot.
type Responder interface {
	Respond(text string) bot.Response
}

type ChatService struct {
	log        *slog.Logger
	responder  Responder
	scorer     sentiment.Scorer
	moderator  *moderation.Moderator
	repository repositories.IConversationRepository
	index      search.ITurnIndex
	now        func() time.Time
}

// NewChatService wires the conversation loop. The moderator, repository and
// index are optional: nil disables masking, persistence and search.
func NewChatService(
	log *slog.Logger,
	responder Responder,
	scorer sentiment.Scorer,
	moderator *moderation.Moderator,
	repository repositories.IConversationRepository,
	index search.ITurnIndex,
) *ChatService {
	return &ChatService{
		log:        log,
		responder:  responder,
		scorer:     scorer,
		moderator:  moderator,
		repository: repository,
		index:      index,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// IsQuitCommand reports whether the input ends the conversation.
func IsQuitCommand(text string) bool {
	return lo.Contains(QuitCommands, strings.ToLower(strings.TrimSpace(text)))
}

func (s *ChatService) NewConversation() *domain.Conversation {
	conv := domain.NewConversation(s.now())
	s.log.Debug("Conversation started", "conversation_id", conv.ID)
	return conv
}

// PostMessage answers one user message and records the turn. Blank input
// is answered but not recorded.
func (s *ChatService) PostMessage(conv *domain.Conversation, text string) (domain.Turn, error) {
	text = strings.TrimSpace(text)
	response := s.responder.Respond(text)
	if response.Blank {
		return domain.Turn{BotReply: response.Text, Label: domain.Neutral, At: s.now()}, nil
	}

	score := s.scorer.Score(text)
	turn := domain.Turn{
		UserText: text,
		BotReply: response.Text,
		Label:    score.Label,
		Score:    score.Compound,
		Tag:      response.Match.Tag,
		Lang:     s.detectLang(text),
		At:       s.now(),
	}
	if err := conv.AddTurn(turn); err != nil {
		return domain.Turn{}, err
	}
	s.log.Debug("Turn recorded",
		"conversation_id", conv.ID,
		"tag", turn.Tag,
		"label", turn.Label,
		"score", turn.Score)
	return turn, nil
}

// EndConversation computes the summary once and freezes the conversation.
// The redacted conversation is then stored and indexed; a persistence
// failure is returned together with the already computed summary.
func (s *ChatService) EndConversation(conv *domain.Conversation) (domain.Summary, error) {
	summary := sentiment.Summary(conv.Scores())
	if err := conv.End(summary, s.now()); err != nil {
		return domain.Summary{}, err
	}
	s.log.Info("Conversation ended",
		"conversation_id", conv.ID,
		"turns", conv.Len(),
		"overall", summary.Overall,
		"trend", summary.Trend)

	redacted := s.Redact(conv)
	if s.repository != nil {
		if err := s.repository.Store(export.FromConversation(redacted)); err != nil {
			return summary, fmt.Errorf("store conversation %s: %w", conv.ID, err)
		}
	}
	if s.index != nil && redacted.Len() > 0 {
		if err := s.index.IndexConversation(redacted); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

// Redact masks censored words in the user texts of a copy of conv.
func (s *ChatService) Redact(conv *domain.Conversation) *domain.Conversation {
	return conv.Redacted(s.moderator.Mask)
}

// Search runs a /find command against the indexed history.
func (s *ChatService) Search(ctx context.Context, input string) ([]search.Hit, error) {
	if s.index == nil {
		return nil, nil
	}
	return s.index.Search(ctx, search.NewSearchQuery(input))
}

func (s *ChatService) GetConversations(cursor *string) ([]export.Record, *string, error) {
	if s.repository == nil {
		return nil, nil, nil
	}
	return s.repository.GetConversations(cursor)
}

// detectLang tags the turn language. The VADER lexicon is English, so
// scores of other languages are mostly neutral.
func (s *ChatService) detectLang(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	lang := info.Lang.Iso6391()
	if lang != "en" {
		s.log.Debug("Non English message, sentiment may be unreliable", "lang", lang)
	}
	return lang
}
