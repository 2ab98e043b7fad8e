// Package moderation masks configured words in user text before it is
// persisted or exported. Matching and scoring always see the raw text.
package moderation

import (
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

type Moderator struct {
	matcher      *goahocorasick.Machine
	censoredChar rune
	log          *slog.Logger
}

type mapping struct {
	normalized []rune
	origIdx    []int
}

// NewModerator builds the Aho-Corasick automaton over the normalized
// censored words. Entries that normalize to nothing are skipped, and an
// empty dictionary yields a pass-through moderator.
func NewModerator(censoredWords []string, censoredChar rune, log *slog.Logger) (*Moderator, error) {
	words := lo.Uniq(lo.FilterMap(censoredWords, func(word string, _ int) (string, bool) {
		normalized := string(normalize(word).normalized)
		return normalized, normalized != ""
	}))
	mod := &Moderator{censoredChar: censoredChar, log: log}
	if len(words) == 0 {
		log.Debug("Moderation disabled, no censored words")
		return mod, nil
	}

	patterns := lo.Map(words, func(word string, _ int) []rune { return []rune(word) })
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	mod.matcher = m
	log.Debug("Moderation enabled", "words", len(words))
	return mod, nil
}

// Censor masks every censored word occurrence in the original text while
// preserving spacing and punctuation around it. It returns the masked text
// and the matched dictionary words, nil when nothing matched.
func (m *Moderator) Censor(original string) (string, []string) {
	if m == nil || m.matcher == nil {
		return original, nil
	}
	text := normalize(original)
	if len(text.normalized) == 0 {
		return original, nil
	}

	spans := m.matcher.MultiPatternSearch(text.normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	var words []string
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)
		if normStart < 0 || normEnd > len(text.origIdx) {
			continue
		}
		origStart := text.origIdx[normStart]
		origEnd := text.origIdx[normEnd-1] + 1
		for i := origStart; i < origEnd; i++ {
			origRunes[i] = m.censoredChar
		}
		words = append(words, string(span.Word))
	}
	if len(words) > 0 {
		m.log.Debug("Censored words", "count", len(words))
	}
	return string(origRunes), words
}

// Mask is Censor without the matched words.
func (m *Moderator) Mask(original string) string {
	masked, _ := m.Censor(original)
	return masked
}

// leet folds common leet speak characters back to letters.
var leet = map[rune]rune{
	'4': 'a', '@': 'a',
	'3': 'e', '€': 'e',
	'1': 'i', '!': 'i', '|': 'i',
	'0': 'o',
	'5': 's', '$': 's',
}

// normalize keeps the searchable runes, lower cased and leet folded, and
// remembers the original rune index of each one.
func normalize(input string) mapping {
	var out mapping
	for i, r := range []rune(input) {
		if folded, ok := leet[r]; ok {
			r = folded
		}
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		out.normalized = append(out.normalized, unicode.ToLower(r))
		out.origIdx = append(out.origIdx, i)
	}
	return out
}
