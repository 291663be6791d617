package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Summary errors
var (
	ErrEmptyTranscript         = errors.New("meeting transcript is required")
	ErrInvalidSummaryStructure = errors.New("invalid summary structure from AI")
)

// Credential errors
var (
	ErrAPIKeyRequired      = errors.New("API key is required")
	ErrAPIKeyFormat        = errors.New("API key must start with 'sk-'")
	ErrCredentialNotFound  = errors.New("no API key has been saved")
	ErrCredentialStoreDown = errors.New("credential store unavailable")
)

// ParseError reports model output that is not valid JSON. Raw holds the
// unparsed content for diagnostics.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse AI response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StructureError reports parsed output that does not have the summary shape.
// It matches ErrInvalidSummaryStructure under errors.Is.
type StructureError struct {
	Missing    []string
	Violations []string
	Err        error
}

func (e *StructureError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Violations) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.Violations, "; "))
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if len(parts) == 0 {
		return ErrInvalidSummaryStructure.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidSummaryStructure, strings.Join(parts, "; "))
}

func (e *StructureError) Is(target error) bool {
	return target == ErrInvalidSummaryStructure
}

func (e *StructureError) Unwrap() error {
	return e.Err
}
