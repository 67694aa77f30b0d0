// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

package detection

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/kelompokcp/smsguard/pkg/textnorm"
)

// tokenPattern matches word tokens of two or more letters, digits, or
// underscores. Single-character tokens are deliberately dropped.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Vectorizer converts raw SMS text into L2-normalized TF-IDF feature vectors
// over a frozen vocabulary.
//
// # Frozen Vocabulary
//
// The vocabulary (term -> column index) is produced by the offline training
// pipeline and must match the model's feature count exactly. Terms outside
// the vocabulary contribute nothing to the vector; a fully out-of-vocabulary
// message vectorizes to the zero vector.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
	fitted     bool
}

/*
NewVectorizer creates a vectorizer over the given frozen vocabulary.

Description: Validates that the vocabulary indices form a dense range
0..len-1 with no duplicates, so the feature vector has no holes and lines up
column-for-column with the trained model.

Parameters:
  - vocabulary: map[string]int (Term -> column index)

Returns:
  - *Vectorizer: Unfitted vectorizer; call Fit before Transform
  - error: Empty vocabulary, out-of-range index, or duplicate index
*/
func NewVectorizer(vocabulary map[string]int) (*Vectorizer, error) {
	if len(vocabulary) == 0 {
		return nil, fmt.Errorf("detection: vocabulary is empty")
	}

	seen := make([]bool, len(vocabulary))
	for term, index := range vocabulary {
		if index < 0 || index >= len(vocabulary) {
			return nil, fmt.Errorf("detection: vocabulary index %d for term %q out of range [0, %d)", index, term, len(vocabulary))
		}
		if seen[index] {
			return nil, fmt.Errorf("detection: duplicate vocabulary index %d (term %q)", index, term)
		}
		seen[index] = true
	}

	return &Vectorizer{vocabulary: vocabulary}, nil
}

// NumFeatures returns the dimensionality of produced vectors.
func (vectorizer *Vectorizer) NumFeatures() int {
	return len(vectorizer.vocabulary)
}

/*
Fit computes smoothed inverse document frequencies from the given corpus.

Description: For each vocabulary term, idf = ln((1 + n) / (1 + df)) + 1 where
n is the corpus size and df is the number of documents containing the term.
The smoothing means terms absent from the corpus still get a finite, positive
weight, which is what allows fitting against a tiny placeholder corpus: every
vocabulary term ends up usable, just with a uniform weight.

Parameters:
  - documents: []string (Fitting corpus; must be non-empty)

Returns:
  - error: Empty corpus
*/
func (vectorizer *Vectorizer) Fit(documents []string) error {
	if len(documents) == 0 {
		return fmt.Errorf("detection: cannot fit on an empty corpus")
	}

	documentFrequency := make([]int, len(vectorizer.vocabulary))
	for _, document := range documents {
		inDocument := make(map[int]bool)
		for _, token := range tokenize(document) {
			if index, ok := vectorizer.vocabulary[token]; ok {
				inDocument[index] = true
			}
		}
		for index := range inDocument {
			documentFrequency[index]++
		}
	}

	corpusSize := float64(len(documents))
	vectorizer.idf = make([]float64, len(vectorizer.vocabulary))
	for index, frequency := range documentFrequency {
		vectorizer.idf[index] = math.Log((1+corpusSize)/(1+float64(frequency))) + 1
	}

	vectorizer.fitted = true
	return nil
}

/*
Transform vectorizes one message into an L2-normalized TF-IDF vector.

Description: Raw term counts are multiplied by the fitted idf weights, then
the whole vector is scaled to unit Euclidean length. A message with no
in-vocabulary tokens yields the zero vector (which cannot be normalized and
is returned as-is).

Parameters:
  - text: string (Raw message; normalized and tokenized internally)

Returns:
  - []float64: Feature vector of length NumFeatures()
  - error: Transform called before Fit
*/
func (vectorizer *Vectorizer) Transform(text string) ([]float64, error) {
	if !vectorizer.fitted {
		return nil, fmt.Errorf("detection: vectorizer used before fitting")
	}

	vector := make([]float64, len(vectorizer.vocabulary))
	for _, token := range tokenize(text) {
		if index, ok := vectorizer.vocabulary[token]; ok {
			vector[index]++
		}
	}

	var sumOfSquares float64
	for index := range vector {
		vector[index] *= vectorizer.idf[index]
		sumOfSquares += vector[index] * vector[index]
	}

	if sumOfSquares > 0 {
		norm := math.Sqrt(sumOfSquares)
		for index := range vector {
			vector[index] /= norm
		}
	}

	return vector, nil
}

// tokenize normalizes the text (accent folding, lowercasing) and extracts
// word tokens.
func tokenize(text string) []string {
	normalized := textnorm.Normalize(strings.TrimSpace(text))
	return tokenPattern.FindAllString(normalized, -1)
}
