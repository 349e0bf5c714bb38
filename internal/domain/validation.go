package domain

import "strings"

// MaxTemplateNameLength is the longest accepted workout template name,
// measured after trimming surrounding whitespace.
const MaxTemplateNameLength = 100

// ValidationErrorKind is the closed set of validation failures surfaced to
// collaborators. Each kind identifies the offending field so UIs can point
// at it directly.
type ValidationErrorKind string

const (
	ErrKindDuplicateTemplateName ValidationErrorKind = "duplicate_template_name"
	ErrKindEmptyTemplateName     ValidationErrorKind = "empty_template_name"
	ErrKindTemplateNameTooLong   ValidationErrorKind = "template_name_too_long"
	ErrKindNegativeReps          ValidationErrorKind = "negative_reps"
	ErrKindZeroReps              ValidationErrorKind = "zero_reps"
	ErrKindNegativeSetCount      ValidationErrorKind = "negative_set_count"
	ErrKindZeroSets              ValidationErrorKind = "zero_sets"
	ErrKindNegativeWeight        ValidationErrorKind = "negative_weight"
	ErrKindInvalidPosition       ValidationErrorKind = "invalid_position"
	ErrKindCustom                ValidationErrorKind = "custom"
)

// ValidationError is a recoverable, field-identifying failure raised by
// in-app edits. The triggering mutation is rejected and the prior valid
// state preserved by the caller.
type ValidationError struct {
	Kind    ValidationErrorKind `json:"kind"`
	Message string              `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(kind ValidationErrorKind, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}

// NewCustomValidationError wraps a free-form message in the generic kind.
func NewCustomValidationError(message string) *ValidationError {
	return newValidationError(ErrKindCustom, message)
}

// NewInvalidPositionError is raised for ordering positions that are zero or
// negative.
func NewInvalidPositionError() *ValidationError {
	return newValidationError(ErrKindInvalidPosition, "position must be greater than zero")
}

// ValidateCompletedSet checks a recorded set's values and returns the first
// violation with its field-specific kind, or nil when the set is usable.
// Weight zero is fine (bodyweight work).
func ValidateCompletedSet(reps int, weight, position float64) *ValidationError {
	switch {
	case reps < 0:
		return newValidationError(ErrKindNegativeReps, "reps cannot be negative")
	case reps == 0:
		return newValidationError(ErrKindZeroReps, "at least one rep is required")
	}
	if weight < 0 {
		return newValidationError(ErrKindNegativeWeight, "weight cannot be negative")
	}
	if !IsValidPosition(position) {
		return NewInvalidPositionError()
	}
	return nil
}

// --- Pure predicates ---

// IsValidReps reports whether a rep count is usable (at least 1).
func IsValidReps(reps int) bool {
	return reps >= 1
}

// IsValidSetCount reports whether a set count is usable (at least 1).
func IsValidSetCount(sets int) bool {
	return sets >= 1
}

// IsValidWeight reports whether a weight is usable: absent (bodyweight) or
// zero/positive.
func IsValidWeight(weight *float64) bool {
	return weight == nil || *weight >= 0
}

// IsValidPosition reports whether an ordering position is usable. Positions
// are fractional and strictly positive so new items can be inserted between
// existing ones.
func IsValidPosition(position float64) bool {
	return position > 0
}

// --- Batch validation ---

// ParameterCheck is the result of validating a full set of planned exercise
// parameters. Errors holds every violation, not just the first, so batch
// editors can show all problems at once.
type ParameterCheck struct {
	IsValid bool               `json:"isValid"`
	Errors  []*ValidationError `json:"errors,omitempty"`
}

// ValidateExerciseParameters checks all four numeric fields of a planned
// exercise in one pass.
func ValidateExerciseParameters(setCount, reps int, weight *float64, position float64) ParameterCheck {
	var errs []*ValidationError

	switch {
	case setCount < 0:
		errs = append(errs, newValidationError(ErrKindNegativeSetCount, "set count cannot be negative"))
	case setCount == 0:
		errs = append(errs, newValidationError(ErrKindZeroSets, "at least one set is required"))
	}

	switch {
	case reps < 0:
		errs = append(errs, newValidationError(ErrKindNegativeReps, "reps cannot be negative"))
	case reps == 0:
		errs = append(errs, newValidationError(ErrKindZeroReps, "at least one rep is required"))
	}

	if !IsValidWeight(weight) {
		errs = append(errs, newValidationError(ErrKindNegativeWeight, "weight cannot be negative"))
	}

	if !IsValidPosition(position) {
		errs = append(errs, newValidationError(ErrKindInvalidPosition, "position must be greater than zero"))
	}

	return ParameterCheck{IsValid: len(errs) == 0, Errors: errs}
}

// --- Template name rules ---

// NormalizeTemplateName trims the whitespace that is ignored for both
// length and uniqueness checks.
func NormalizeTemplateName(name string) string {
	return strings.TrimSpace(name)
}

// ValidateTemplateNameFormat checks the store-independent name rules:
// non-empty after trimming and at most MaxTemplateNameLength characters.
// Uniqueness against existing templates is checked separately because it
// needs a store query.
func ValidateTemplateNameFormat(name string) *ValidationError {
	trimmed := NormalizeTemplateName(name)
	if trimmed == "" {
		return newValidationError(ErrKindEmptyTemplateName, "template name cannot be empty")
	}
	if len(trimmed) > MaxTemplateNameLength {
		return newValidationError(ErrKindTemplateNameTooLong, "template name cannot exceed 100 characters")
	}
	return nil
}

// NewDuplicateTemplateNameError is raised when another template already uses
// the name under case-insensitive comparison.
func NewDuplicateTemplateNameError(name string) *ValidationError {
	return newValidationError(ErrKindDuplicateTemplateName, "a template named \""+name+"\" already exists")
}
