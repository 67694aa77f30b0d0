// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

package detection

import (
	"context"
	"encoding/gob"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeVocabulary(t *testing.T, dir string, vocabulary map[string]int) string {
	t.Helper()
	path := filepath.Join(dir, "vocabulary.json")
	raw, err := json.Marshal(vocabulary)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	return path
}

func writeModel(t *testing.T, dir string, model *LinearModel) string {
	t.Helper()
	path := filepath.Join(dir, "model_fraud.gob")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, gob.NewEncoder(file).Encode(model))
	require.NoError(t, file.Close())
	return path
}

func TestLoadArtifacts_Success(t *testing.T) {
	dir := t.TempDir()
	vocabularyPath := writeVocabulary(t, dir, testVocabulary())
	modelPath := writeModel(t, dir, &LinearModel{
		Classes: []int{0, 1, 2},
		Weights: [][]float64{
			{0, 0, 0, 0, 1, 1},
			{1, 1, 1, 1, 0, 0},
			{0, 0, 0, 0, 0, 0},
		},
		Intercepts: []float64{0, 0, 0},
	})

	artifacts, err := LoadArtifacts(modelPath, vocabularyPath)
	require.NoError(t, err)
	assert.Equal(t, 6, artifacts.Vectorizer.NumFeatures())
	assert.Equal(t, 6, artifacts.Model.NumFeatures())

	// The loaded bundle classifies end to end.
	service := NewService(artifacts.Vectorizer, artifacts.Model)
	result, err := service.Classify(context.Background(), "selamat menang hadiah transfer")
	require.NoError(t, err)
	assert.Equal(t, CategoryFraud, result.Category)
}

func TestLoadArtifacts_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	vocabularyPath := writeVocabulary(t, dir, testVocabulary())

	_, err := LoadArtifacts(filepath.Join(dir, "missing.gob"), vocabularyPath)
	require.Error(t, err)

	_, err = LoadArtifacts(filepath.Join(dir, "missing.gob"), filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestLoadArtifacts_MalformedVocabulary(t *testing.T) {
	dir := t.TempDir()
	vocabularyPath := filepath.Join(dir, "vocabulary.json")
	require.NoError(t, os.WriteFile(vocabularyPath, []byte(`["not","a","map"]`), 0o600))
	modelPath := writeModel(t, dir, threeClassModel())

	_, err := LoadArtifacts(modelPath, vocabularyPath)
	require.Error(t, err)
}

func TestLoadArtifacts_DimensionMismatch(t *testing.T) {
	dir := t.TempDir()
	vocabularyPath := writeVocabulary(t, dir, testVocabulary()) // 6 terms
	modelPath := writeModel(t, dir, threeClassModel())          // 3 features

	_, err := LoadArtifacts(modelPath, vocabularyPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "features")
}

func TestLoadArtifacts_InvalidModel(t *testing.T) {
	dir := t.TempDir()
	vocabularyPath := writeVocabulary(t, dir, testVocabulary())
	modelPath := writeModel(t, dir, &LinearModel{Classes: []int{0}})

	_, err := LoadArtifacts(modelPath, vocabularyPath)
	require.Error(t, err)
}
