package search

import (
	"strconv"
	"strings"
)

const (
	FindCommand  = "/find"
	defaultLimit = 10
)

// Query represents the structured parameters of a history search.
// It decouples the raw chat input from the index requirements.
type Query struct {
	RawInput string // The original message from the user
	Terms    string // The text to match against turns
	Label    string // Lowercase sentiment label filter, empty for any
	Limit    int    // Maximum number of hits
}

// IsFind reports whether the chat input is a search command.
func IsFind(input string) bool {
	fields := strings.Fields(input)
	return len(fields) > 0 && strings.EqualFold(fields[0], FindCommand)
}

// NewSearchQuery parses a raw string with command-line style arguments.
// Example: /find refund late --label negative --limit 5
func NewSearchQuery(input string) Query {
	query := Query{
		RawInput: input,
		Limit:    defaultLimit,
	}

	parts := strings.Fields(input)
	var textTerms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		// Flags always take a value: --label negative, --limit 5
		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			key := strings.TrimPrefix(part, "--")
			val := parts[i+1]

			switch key {
			case "label":
				query.Label = strings.ToLower(val)
			case "limit":
				if limit, err := strconv.Atoi(val); err == nil && limit > 0 {
					query.Limit = limit
				}
			}
			i++
			continue
		}

		if !strings.HasPrefix(part, "/") {
			textTerms = append(textTerms, part)
		}
	}

	query.Terms = strings.Join(textTerms, " ")
	return query
}
