// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeClassModel() *LinearModel {
	// One weight row per class; each row fires on its own feature.
	return &LinearModel{
		Classes: []int{0, 1, 2},
		Weights: [][]float64{
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
		},
		Intercepts: []float64{0, 0, 0},
	}
}

func TestLinearModel_Validate(t *testing.T) {
	require.NoError(t, threeClassModel().Validate())

	testCases := []struct {
		name  string
		model *LinearModel
	}{
		{name: "too few classes", model: &LinearModel{Classes: []int{0}}},
		{
			name: "wrong row count",
			model: &LinearModel{
				Classes:    []int{0, 1, 2},
				Weights:    [][]float64{{1}, {1}},
				Intercepts: []float64{0, 0},
			},
		},
		{
			name: "ragged weight rows",
			model: &LinearModel{
				Classes:    []int{0, 1, 2},
				Weights:    [][]float64{{1, 0}, {0, 1}, {1}},
				Intercepts: []float64{0, 0, 0},
			},
		},
		{
			name: "intercept count mismatch",
			model: &LinearModel{
				Classes:    []int{0, 1, 2},
				Weights:    [][]float64{{1}, {1}, {1}},
				Intercepts: []float64{0},
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Error(t, testCase.model.Validate())
		})
	}
}

func TestLinearModel_PredictMulticlass(t *testing.T) {
	model := threeClassModel()

	testCases := []struct {
		name     string
		features []float64
		expected int
	}{
		{name: "first class wins", features: []float64{0.9, 0.1, 0.1}, expected: 0},
		{name: "second class wins", features: []float64{0.1, 0.9, 0.1}, expected: 1},
		{name: "third class wins", features: []float64{0.1, 0.1, 0.9}, expected: 2},
		{name: "tie resolves to earliest row", features: []float64{0.5, 0.5, 0.5}, expected: 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			label, err := model.Predict(testCase.features)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, label)
		})
	}
}

func TestLinearModel_PredictBinary(t *testing.T) {
	// Binary models carry a single decision row: positive score selects the
	// second class.
	model := &LinearModel{
		Classes:    []int{0, 1},
		Weights:    [][]float64{{1, -1}},
		Intercepts: []float64{0},
	}
	require.NoError(t, model.Validate())

	positive, err := model.Predict([]float64{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, positive)

	negative, err := model.Predict([]float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 0, negative)
}

func TestLinearModel_PredictFeatureMismatch(t *testing.T) {
	model := threeClassModel()

	_, err := model.Predict([]float64{1, 2})
	require.Error(t, err)
}

func TestLinearModel_InterceptsShiftDecision(t *testing.T) {
	model := threeClassModel()
	model.Intercepts = []float64{0, 0.95, 0}

	// The bias lets the second class win a feature vector that favors the first.
	label, err := model.Predict([]float64{0.9, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, label)
}
