package domain

import "time"

// Turn is one user message with the bot answer and the message sentiment.
// Turns are immutable once appended to a conversation.
type Turn struct {
	UserText string
	BotReply string
	Label    Label
	Score    float64
	Tag      string // resolved intent, empty on fallback
	Lang     string // ISO 639-1 code, empty when undetected
	At       time.Time
}
