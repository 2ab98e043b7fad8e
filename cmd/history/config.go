package main

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" default:"data/badger"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"WARN"`
	// HISTORY_CONVERSATION_ID prints the analysis of a single conversation
	ConversationID string `envconfig:"HISTORY_CONVERSATION_ID"`
	// HISTORY_LIMIT caps the number of listed conversations
	Limit int `envconfig:"HISTORY_LIMIT" default:"20"`
	// HISTORY_CURSOR resumes the listing after a previously printed cursor
	Cursor string `envconfig:"HISTORY_CURSOR"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
