package errors

import "fmt"

var (
	ErrCorpusLoad           = fmt.Errorf("corpus load failed")
	ErrEmptyCorpus          = fmt.Errorf("corpus contains no intents")
	ErrEmptyVocabulary      = fmt.Errorf("no tokens found in corpus patterns")
	ErrDuplicateTag         = fmt.Errorf("duplicate intent tag")
	ErrNotJSON              = fmt.Errorf("corpus source is not a JSON document")
	ErrInvalidConfidence    = fmt.Errorf("min confidence must be within [0, 1]")
	ErrConversationEnded    = fmt.Errorf("conversation already ended")
	ErrConversationNotFound = fmt.Errorf("conversation not found")
)
