package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Pipeline errors
	ErrSourceUnavailable  ErrorCode = "SOURCE_UNAVAILABLE"
	ErrPartialContent     ErrorCode = "PARTIAL_CONTENT"
	ErrModelUnavailable   ErrorCode = "MODEL_UNAVAILABLE"
	ErrModelOutputInvalid ErrorCode = "MODEL_OUTPUT_INVALID"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors

func NewValidationError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

// NewSourceUnavailableError signals that the note source rejected the request
// or was unreachable.
func NewSourceUnavailableError(err error) *DomainError {
	return NewError(ErrSourceUnavailable, "Note source is unavailable", err)
}

// NewPartialContentError marks a single page whose content fetch failed.
// It is absorbed by the extractor (the note degrades to empty content) and
// never reaches an HTTP client.
func NewPartialContentError(pageID string, err error) *DomainError {
	return NewError(ErrPartialContent, fmt.Sprintf("Failed to fetch content for page %s", pageID), err)
}

// NewModelUnavailableError signals a transport or auth failure against the
// model provider.
func NewModelUnavailableError(err error) *DomainError {
	return NewError(ErrModelUnavailable, "Model provider is unavailable", err)
}

// NewModelOutputInvalidError signals that the model returned text that is not
// a valid quiz: unparsable JSON or a schema violation. The whole quiz is
// rejected rather than dropping malformed questions.
func NewModelOutputInvalidError(err error) *DomainError {
	return NewError(ErrModelOutputInvalid, "Model returned an invalid quiz", err)
}

// IsPipelineError reports whether err is one of the regeneration-aborting
// failures that must surface to HTTP callers as a single generic failure.
func IsPipelineError(err *DomainError) bool {
	switch err.Code {
	case ErrSourceUnavailable, ErrModelUnavailable, ErrModelOutputInvalid:
		return true
	}
	return false
}
