// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

package detection

import (
	"context"
	"strings"
)

// # Classification Outcomes

// Status distinguishes a real classification from a rejected empty prompt.
type Status string

const (
	// StatusClassified means the model produced a verdict.
	StatusClassified Status = "CLASSIFIED"

	// StatusEmptyMessage means the input was blank and the model was never
	// consulted. This is a normal outcome, not an error.
	StatusEmptyMessage Status = "EMPTY_MESSAGE"
)

// Result is the outcome of one classification request.
type Result struct {
	Status   Status   `json:"status"`
	Category Category `json:"category,omitempty"`
	Advisory string   `json:"advisory,omitempty"`
	Message  string   `json:"message,omitempty"`
}

// MaxMessageLength caps accepted SMS text, in Unicode characters. Real SMS
// concatenation tops out well below this; the cap only bounds request size.
const MaxMessageLength = 2000

// # Application Service

// Service runs the classification use case over the frozen artifacts.
type Service struct {
	vectorizer *Vectorizer
	model      Model
}

// NewService creates a classification service from loaded artifacts.
func NewService(vectorizer *Vectorizer, model Model) *Service {
	return &Service{vectorizer: vectorizer, model: model}
}

/*
Classify categorizes one SMS message.

Description: Blank input (empty or whitespace-only) short-circuits to an
EMPTY_MESSAGE result without touching the model. Otherwise the message is
vectorized and scored, and the winning label is mapped to its category and
advisory text.

Parameters:
  - context: context.Context
  - message: string (Raw SMS text)

Returns:
  - *Result: Classification outcome
  - error: ErrUnrecognizedLabel for an unknown model label, or internal failures
*/
func (service *Service) Classify(context context.Context, message string) (*Result, error) {
	if strings.TrimSpace(message) == "" {
		return &Result{
			Status:  StatusEmptyMessage,
			Message: "Please enter an SMS message to check.",
		}, nil
	}

	features, err := service.vectorizer.Transform(message)
	if err != nil {
		return nil, err
	}

	label, err := service.model.Predict(features)
	if err != nil {
		return nil, err
	}

	category, known := CategoryForLabel(label)
	if !known {
		return nil, ErrUnrecognizedLabel
	}

	return &Result{
		Status:   StatusClassified,
		Category: category,
		Advisory: category.Advisory(),
	}, nil
}
