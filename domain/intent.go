// Package domain contains core concepts of the chatbot.
// Intents are the static catalog the bot answers from, turns and
// conversations are the per-session history the sentiment engine reduces.
package domain

// Intent groups the example patterns a user may type with the canned
// responses the bot picks from once the intent is resolved.
type Intent struct {
	Tag       string   `json:"tag" validate:"required"`
	Patterns  []string `json:"patterns" validate:"min=1,dive,required"`
	Responses []string `json:"responses" validate:"min=1,dive,required"`
}

// Corpus is the whole intent catalog, in file order.
type Corpus struct {
	Intents []Intent `json:"intents" validate:"min=1,dive"`
}

// Responses maps every tag to its response list.
func (c Corpus) Responses() map[string][]string {
	responses := make(map[string][]string, len(c.Intents))
	for _, intent := range c.Intents {
		responses[intent.Tag] = intent.Responses
	}
	return responses
}
