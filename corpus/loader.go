// Package corpus loads and validates the intent catalog the bot answers from.
package corpus

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sentiment-chatbot/domain"
	"sentiment-chatbot/domain/mimetypes"
	"sentiment-chatbot/errors"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// Load reads the intent document at path. Every failure wraps ErrCorpusLoad.
func Load(log *slog.Logger, path string) (domain.Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Corpus{}, fmt.Errorf("%w: %w", errors.ErrCorpusLoad, err)
	}
	corpus, err := Parse(data)
	if err != nil {
		return domain.Corpus{}, err
	}
	log.Debug("Corpus loaded", "path", path, "intents", len(corpus.Intents))
	return corpus, nil
}

// Parse decodes and validates an intent document.
func Parse(data []byte) (domain.Corpus, error) {
	if detected := mimetypes.Detect(data); !detected.Is(mimetypes.ApplicationJSON) {
		return domain.Corpus{}, fmt.Errorf("%w: %w (detected %s)", errors.ErrCorpusLoad, errors.ErrNotJSON, detected)
	}

	var corpus domain.Corpus
	if err := json.Unmarshal(data, &corpus); err != nil {
		return domain.Corpus{}, fmt.Errorf("%w: %w", errors.ErrCorpusLoad, err)
	}
	if err := Validate(corpus); err != nil {
		return domain.Corpus{}, fmt.Errorf("%w: %w", errors.ErrCorpusLoad, err)
	}
	return corpus, nil
}

// Validate checks the corpus invariants: at least one intent, every intent
// tagged with patterns and responses, tags unique.
func Validate(corpus domain.Corpus) error {
	if len(corpus.Intents) == 0 {
		return errors.ErrEmptyCorpus
	}
	if err := validate.Struct(corpus); err != nil {
		return err
	}
	tags := lo.Map(corpus.Intents, func(i domain.Intent, _ int) string { return i.Tag })
	if duplicates := lo.FindDuplicates(tags); len(duplicates) > 0 {
		return fmt.Errorf("%w: %v", errors.ErrDuplicateTag, duplicates)
	}
	return nil
}
