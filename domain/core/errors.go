package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Dataset errors
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrClassTooSmall    = errors.New("class has fewer samples than fold count")
	ErrNotBinary        = errors.New("label vector is not binary")
	ErrShapeMismatch    = errors.New("feature matrix and label vector shapes disagree")

	// Evaluation errors
	ErrNotFitted      = errors.New("model has not been fitted")
	ErrEmptyCurve     = errors.New("ROC curve has no points")
	ErrFoldCount      = errors.New("fold count must be at least 2")
	ErrDegenerateFold = errors.New("fold contains a single class")
)

// Error constructors with context
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

func NewStratificationError(class int, count, folds int) error {
	return fmt.Errorf("%w: class %d has %d samples, need at least %d", ErrClassTooSmall, class, count, folds)
}

// IsDataError reports whether err stems from unusable input data.
func IsDataError(err error) bool {
	return errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrClassTooSmall) ||
		errors.Is(err, ErrNotBinary) ||
		errors.Is(err, ErrShapeMismatch)
}
