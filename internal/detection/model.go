// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

package detection

import "fmt"

// Model scores a feature vector and returns the winning class label.
//
// # Why an interface?
//
// The service layer only needs "vector in, label out". Tests inject spy
// models to assert the call pattern, and the artifact loader returns the
// concrete [LinearModel] decoded from disk.
type Model interface {
	Predict(features []float64) (int, error)
	NumFeatures() int
}

// LinearModel is a frozen one-vs-rest linear classifier.
//
// Each class has a weight row and an intercept; prediction is an argmax over
// the per-class decision scores. The struct fields are exported because the
// model file is a gob encoding of this exact shape.
type LinearModel struct {
	// Classes holds the integer label for each weight row, in row order.
	Classes []int

	// Weights is one row of per-feature coefficients per class.
	Weights [][]float64

	// Intercepts is the bias term per class, aligned with Weights.
	Intercepts []float64
}

// Validate checks the decoded model for internal consistency.
func (model *LinearModel) Validate() error {
	if len(model.Classes) < 2 {
		return fmt.Errorf("detection: model must have at least 2 classes, got %d", len(model.Classes))
	}

	// Binary models are stored with a single decision row.
	expectedRows := len(model.Classes)
	if len(model.Classes) == 2 {
		expectedRows = 1
	}

	if len(model.Weights) != expectedRows {
		return fmt.Errorf("detection: model has %d weight rows, want %d", len(model.Weights), expectedRows)
	}
	if len(model.Intercepts) != expectedRows {
		return fmt.Errorf("detection: model has %d intercepts, want %d", len(model.Intercepts), expectedRows)
	}

	features := len(model.Weights[0])
	if features == 0 {
		return fmt.Errorf("detection: model weight rows are empty")
	}
	for row, weights := range model.Weights {
		if len(weights) != features {
			return fmt.Errorf("detection: weight row %d has %d features, want %d", row, len(weights), features)
		}
	}

	return nil
}

// NumFeatures returns the feature dimensionality the model was trained on.
func (model *LinearModel) NumFeatures() int {
	if len(model.Weights) == 0 {
		return 0
	}
	return len(model.Weights[0])
}

/*
Predict returns the class label with the highest decision score.

Description: For multiclass models, each row scores its own class and the
argmax wins; ties resolve to the earliest row. A binary model carries a
single decision row: a positive score selects Classes[1], otherwise
Classes[0].

Parameters:
  - features: []float64 (Must have length NumFeatures())

Returns:
  - int: Winning class label
  - error: Feature-count mismatch
*/
func (model *LinearModel) Predict(features []float64) (int, error) {
	if len(features) != model.NumFeatures() {
		return 0, fmt.Errorf("detection: got %d features, model expects %d", len(features), model.NumFeatures())
	}

	if len(model.Classes) == 2 {
		if model.decisionScore(0, features) > 0 {
			return model.Classes[1], nil
		}
		return model.Classes[0], nil
	}

	bestRow := 0
	bestScore := model.decisionScore(0, features)
	for row := 1; row < len(model.Weights); row++ {
		if score := model.decisionScore(row, features); score > bestScore {
			bestRow, bestScore = row, score
		}
	}

	return model.Classes[bestRow], nil
}

// decisionScore computes the linear score for one weight row.
func (model *LinearModel) decisionScore(row int, features []float64) float64 {
	score := model.Intercepts[row]
	for index, weight := range model.Weights[row] {
		score += weight * features[index]
	}
	return score
}
