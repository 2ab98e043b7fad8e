package internal

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

type Config struct {
	CorpusPath         string  `env:"CORPUS_PATH,default=intents.json" validate:"required"`
	MinConfidence      float64 `env:"MIN_CONFIDENCE,default=0.3" validate:"gte=0,lte=1"`
	LogLevel           string  `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath     string  `env:"BADGER_FILEPATH,default=data/badger" validate:"required"`
	BlugeFilepath      string  `env:"BLUGE_FILEPATH,default=data/bluge" validate:"required"`
	ExportDir          string  `env:"EXPORT_DIR,default=." validate:"required"`
	CensoredWords      string  `env:"CENSORED_WORDS"`
	CharReplacement    string  `env:"CHARACTER_REPLACEMENT,default=*"`
	LimitConversations *int    `env:"LIMIT_CONVERSATIONS" validate:"omitempty,gt=0"`
	RandomSeed         *int    `env:"RANDOM_SEED"`
}

// Validate checks the decoded values the env tags cannot express.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := CharacterRune(c.CharReplacement); err != nil {
		return err
	}
	return nil
}

// CensoredWordList splits the comma separated CENSORED_WORDS value.
func (c Config) CensoredWordList() []string {
	return lo.FilterMap(strings.Split(c.CensoredWords, ","), func(word string, _ int) (string, bool) {
		word = strings.TrimSpace(word)
		return word, word != ""
	})
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
