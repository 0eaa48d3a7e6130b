package apperror

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownProduct    = errors.New("unknown product")
	ErrTopicNotFound     = errors.New("topic not found")
	ErrChatNotFound      = errors.New("chat session not found")
	ErrAssetNotFound     = errors.New("asset not found")
	ErrViewNotFound      = errors.New("chat view not found")
	ErrViewClosed        = errors.New("chat view closed")
	ErrUnsupportedFile   = errors.New("unsupported file type")
	ErrCorruptCollection = errors.New("stored collection is not a JSON array")
)

// ValidationError carries per-field messages for user input that was
// rejected before any state changed.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, m := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, m))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// RedirectError tells the caller to go somewhere else instead of rendering
// a broken view, e.g. back to the product dashboard.
type RedirectError struct {
	To     string
	Reason error
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("redirect to %s: %v", e.To, e.Reason)
}

func (e *RedirectError) Unwrap() error {
	return e.Reason
}
