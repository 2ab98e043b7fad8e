package ai

import (
	"math"
	"regexp"
	"sentiment-chatbot/errors"
	"sort"
	"strings"
)

// tokenPattern matches runs of Unicode word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Vector is a sparse feature vector. Indices are kept ascending so that
// every reduction over it sums in the same order.
type Vector struct {
	Indices []int
	Values  []float64
}

func (v Vector) IsZero() bool {
	return len(v.Indices) == 0
}

// Norm returns the Euclidean length of the vector.
func (v Vector) Norm() float64 {
	sum := 0.0
	for _, value := range v.Values {
		sum += value * value
	}
	return math.Sqrt(sum)
}

// Vectorizer provides methods to transform text into TF-IDF features.
// The vocabulary and IDF weights are fitted once and never refitted.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// Fit builds the vocabulary and smoothed IDF weights from the pattern texts.
// Terms are ordered lexicographically so dimension indices are stable.
func Fit(documents []string) (*Vectorizer, error) {
	df := make(map[string]int)
	for _, doc := range documents {
		seen := make(map[string]struct{})
		for _, token := range Tokenize(doc) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			df[token]++
		}
	}
	if len(df) == 0 {
		return nil, errors.ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(documents))
	v := &Vectorizer{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
	}
	for i, term := range terms {
		v.vocabulary[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return v, nil
}

// Dimension returns the vocabulary size.
func (v *Vectorizer) Dimension() int {
	return len(v.idf)
}

// Transform maps text onto the fitted vocabulary. Unknown tokens are
// dropped; a text without any known token yields the zero vector.
func (v *Vectorizer) Transform(text string) Vector {
	counts := make(map[int]int)
	for _, token := range Tokenize(text) {
		if idx, ok := v.vocabulary[token]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return Vector{}
	}

	indices := make([]int, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	vec := Vector{Indices: indices, Values: make([]float64, len(indices))}
	for i, idx := range indices {
		vec.Values[i] = float64(counts[idx]) * v.idf[idx]
	}

	// L2 normalize
	if norm := vec.Norm(); norm > 0 {
		for i := range vec.Values {
			vec.Values[i] /= norm
		}
	}
	return vec
}

// Tokenize lowercases the text and splits it into word tokens.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// Cosine returns the cosine similarity of two sparse vectors, 0 when
// either of them is the zero vector.
func Cosine(a, b Vector) float64 {
	if a.IsZero() || b.IsZero() {
		return 0
	}
	dot := 0.0
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			dot += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return dot / (a.Norm() * b.Norm())
}
