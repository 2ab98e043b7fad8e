package ai

import (
	"fmt"
	"sentiment-chatbot/domain"
	"sentiment-chatbot/errors"
)

// DefaultMinConfidence is the similarity under which a query falls back.
const DefaultMinConfidence = 0.3

type entry struct {
	pattern string
	tag     string
	vector  Vector
}

// Index is the read-only corpus index: every pattern in corpus order with
// its owning tag and pre-computed vector. It is safe for concurrent use.
type Index struct {
	vectorizer *Vectorizer
	entries    []entry
}

// Match is the resolution of a query against the index.
type Match struct {
	Tag      string
	Pattern  string
	Score    float64
	Fallback bool
}

// NewIndex fits the vectorizer on all corpus patterns and vectorizes them.
func NewIndex(corpus domain.Corpus) (*Index, error) {
	var entries []entry
	for _, intent := range corpus.Intents {
		for _, pattern := range intent.Patterns {
			entries = append(entries, entry{pattern: pattern, tag: intent.Tag})
		}
	}
	if len(entries) == 0 {
		return nil, errors.ErrEmptyCorpus
	}

	patterns := make([]string, len(entries))
	for i, e := range entries {
		patterns[i] = e.pattern
	}
	vectorizer, err := Fit(patterns)
	if err != nil {
		return nil, fmt.Errorf("fit vectorizer: %w", err)
	}
	for i := range entries {
		entries[i].vector = vectorizer.Transform(entries[i].pattern)
	}
	return &Index{vectorizer: vectorizer, entries: entries}, nil
}

// Len returns the number of indexed patterns.
func (x *Index) Len() int {
	return len(x.entries)
}

// Vocabulary returns the fitted vectorizer.
func (x *Index) Vocabulary() *Vectorizer {
	return x.vectorizer
}

// Match vectorizes the query and returns the most similar pattern.
// Ties keep the earliest pattern. A best score strictly below
// minConfidence is reported as a fallback.
func (x *Index) Match(text string, minConfidence float64) Match {
	return x.MatchVector(x.vectorizer.Transform(text), minConfidence)
}

func (x *Index) MatchVector(query Vector, minConfidence float64) Match {
	bestIdx, bestScore := 0, Cosine(query, x.entries[0].vector)
	for i := 1; i < len(x.entries); i++ {
		if score := Cosine(query, x.entries[i].vector); score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	if bestScore < minConfidence {
		return Match{Score: bestScore, Fallback: true}
	}
	best := x.entries[bestIdx]
	return Match{Tag: best.tag, Pattern: best.pattern, Score: bestScore}
}
