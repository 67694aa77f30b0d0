// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

package detection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVocabulary() map[string]int {
	return map[string]int{
		"selamat":  0,
		"menang":   1,
		"hadiah":   2,
		"transfer": 3,
		"dummy":    4,
		"data":     5,
	}
}

func newFittedVectorizer(t *testing.T) *Vectorizer {
	t.Helper()
	vectorizer, err := NewVectorizer(testVocabulary())
	require.NoError(t, err)
	require.NoError(t, vectorizer.Fit([]string{"dummy data"}))
	return vectorizer
}

func TestNewVectorizer_ValidatesVocabulary(t *testing.T) {
	testCases := []struct {
		name       string
		vocabulary map[string]int
	}{
		{name: "empty", vocabulary: map[string]int{}},
		{name: "negative index", vocabulary: map[string]int{"a": -1, "b": 0}},
		{name: "index out of range", vocabulary: map[string]int{"a": 0, "b": 2}},
		{name: "duplicate index", vocabulary: map[string]int{"a": 0, "b": 0}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := NewVectorizer(testCase.vocabulary)
			require.Error(t, err)
		})
	}
}

func TestVectorizer_TransformBeforeFitFails(t *testing.T) {
	vectorizer, err := NewVectorizer(testVocabulary())
	require.NoError(t, err)

	_, err = vectorizer.Transform("selamat menang")
	require.Error(t, err)
}

func TestVectorizer_FitEmptyCorpusFails(t *testing.T) {
	vectorizer, err := NewVectorizer(testVocabulary())
	require.NoError(t, err)

	require.Error(t, vectorizer.Fit(nil))
}

func TestVectorizer_SmoothedIDF(t *testing.T) {
	vectorizer := newFittedVectorizer(t)

	// Fitting corpus is the single document "dummy data": terms present in
	// it get idf ln(2/2)+1 = 1, absent terms get ln(2/1)+1.
	assert.InDelta(t, 1.0, vectorizer.idf[testVocabulary()["dummy"]], 1e-9)
	assert.InDelta(t, 1.0, vectorizer.idf[testVocabulary()["data"]], 1e-9)
	assert.InDelta(t, math.Log(2)+1, vectorizer.idf[testVocabulary()["selamat"]], 1e-9)
}

func TestVectorizer_TransformIsL2Normalized(t *testing.T) {
	vectorizer := newFittedVectorizer(t)

	vector, err := vectorizer.Transform("selamat menang menang hadiah")
	require.NoError(t, err)
	require.Len(t, vector, vectorizer.NumFeatures())

	var sumOfSquares float64
	for _, value := range vector {
		sumOfSquares += value * value
	}
	assert.InDelta(t, 1.0, sumOfSquares, 1e-9)

	// "menang" appears twice with the same idf as "selamat", so its weight
	// must be exactly double.
	assert.InDelta(t, 2*vector[0], vector[1], 1e-9)
}

func TestVectorizer_OutOfVocabularyYieldsZeroVector(t *testing.T) {
	vectorizer := newFittedVectorizer(t)

	vector, err := vectorizer.Transform("completely unknown words here")
	require.NoError(t, err)

	for index, value := range vector {
		assert.Zero(t, value, "index %d", index)
	}
}

func TestVectorizer_NormalizationAndCase(t *testing.T) {
	vectorizer := newFittedVectorizer(t)

	upper, err := vectorizer.Transform("SELAMAT MENANG")
	require.NoError(t, err)
	accented, err := vectorizer.Transform("sélamat mênang")
	require.NoError(t, err)

	assert.InDeltaSlice(t, upper, accented, 1e-9)
	assert.Positive(t, upper[0])
}

func TestTokenize_DropsShortTokens(t *testing.T) {
	tokens := tokenize("a bc d ef 1 23")
	assert.Equal(t, []string{"bc", "ef", "23"}, tokens)
}
