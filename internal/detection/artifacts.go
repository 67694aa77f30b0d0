// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

package detection

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
)

// fitCorpus is the placeholder corpus used to initialize idf weights.
//
// The vocabulary is frozen and the model's coefficients already encode the
// training data, so the runtime vectorizer only needs *some* valid idf
// vector. Fitting on this tiny corpus reproduces the weights the model was
// exported against; changing it would silently skew every prediction.
var fitCorpus = []string{"dummy data"}

// Artifacts bundles the two frozen files the classifier needs.
type Artifacts struct {
	Vectorizer *Vectorizer
	Model      *LinearModel
}

/*
LoadArtifacts reads and cross-validates the frozen model and vocabulary.

Description: The vocabulary is a JSON object of term -> column index; the
model is a gob-encoded [LinearModel]. Loading fails hard on any problem —
a classifier that cannot load its artifacts must not serve traffic.

Parameters:
  - modelPath: string (Gob-encoded LinearModel)
  - vocabularyPath: string (JSON term -> index mapping)

Returns:
  - *Artifacts: Fitted vectorizer and validated model, dimensions matching
  - error: Read, decode, validation, or dimension-mismatch failures
*/
func LoadArtifacts(modelPath, vocabularyPath string) (*Artifacts, error) {
	vocabulary, err := loadVocabulary(vocabularyPath)
	if err != nil {
		return nil, err
	}

	vectorizer, err := NewVectorizer(vocabulary)
	if err != nil {
		return nil, err
	}
	if err := vectorizer.Fit(fitCorpus); err != nil {
		return nil, err
	}

	model, err := loadModel(modelPath)
	if err != nil {
		return nil, err
	}

	if model.NumFeatures() != vectorizer.NumFeatures() {
		return nil, fmt.Errorf("detection: model expects %d features but vocabulary has %d terms",
			model.NumFeatures(), vectorizer.NumFeatures())
	}

	return &Artifacts{Vectorizer: vectorizer, Model: model}, nil
}

// loadVocabulary decodes the term -> index mapping from JSON.
func loadVocabulary(path string) (map[string]int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("detection: read vocabulary %s: %w", path, err)
	}

	var vocabulary map[string]int
	if err := json.Unmarshal(raw, &vocabulary); err != nil {
		return nil, fmt.Errorf("detection: decode vocabulary %s: %w", path, err)
	}

	return vocabulary, nil
}

// loadModel decodes and validates the gob-encoded linear model.
func loadModel(path string) (*LinearModel, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("detection: open model %s: %w", path, err)
	}
	defer file.Close()

	var model LinearModel
	if err := gob.NewDecoder(file).Decode(&model); err != nil {
		return nil, fmt.Errorf("detection: decode model %s: %w", path, err)
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}

	return &model, nil
}
