// Copyright (c) 2026 SMS Guard. All rights reserved.
// Author: kelompok6.smartapps@gmail.com

/*
Package detection implements the SMS classification core of SMS Guard.

A frozen TF-IDF vectorizer turns an incoming message into a feature vector and
a frozen linear model maps that vector to one of three categories: NORMAL,
FRAUD, or PROMO. Both artifacts are trained offline and loaded read-only at
startup; this package never learns.
*/
package detection

import (
	"net/http"

	"github.com/kelompokcp/smsguard/internal/platform/apperr"
)

// # Categories

// Category is the classification verdict for an SMS message.
type Category string

const (
	// CategoryNormal marks ordinary personal or transactional messages.
	CategoryNormal Category = "NORMAL"

	// CategoryFraud marks scam attempts: fake prizes, transfer requests,
	// phishing links.
	CategoryFraud Category = "FRAUD"

	// CategoryPromo marks legitimate marketing and promotional broadcasts.
	CategoryPromo Category = "PROMO"
)

// labelCategories maps the model's integer class labels to categories.
// The ordering is fixed by the offline training pipeline.
var labelCategories = map[int]Category{
	0: CategoryNormal,
	1: CategoryFraud,
	2: CategoryPromo,
}

// ErrUnrecognizedLabel is returned when the loaded model emits a class label
// outside the known set. It signals an artifact/code version mismatch rather
// than bad user input, but the request itself is what cannot be processed.
var ErrUnrecognizedLabel = apperr.New(
	"UNRECOGNIZED_LABEL",
	"The classifier produced an unrecognized result",
	http.StatusUnprocessableEntity,
)

// CategoryForLabel resolves a raw model label to its category.
func CategoryForLabel(label int) (Category, bool) {
	category, ok := labelCategories[label]
	return category, ok
}

// Advisory returns the user-facing guidance for a category.
func (c Category) Advisory() string {
	switch c {
	case CategoryFraud:
		return "This message looks like a scam. Do not reply, do not transfer money, and do not open any links."
	case CategoryPromo:
		return "This message is promotional. It is likely harmless, but verify offers directly with the sender's official channels."
	case CategoryNormal:
		return "This message looks like a normal SMS."
	}
	return ""
}
