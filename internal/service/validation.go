package service

import (
	"strings"

	"ai-realestate-be/internal/pkg/apperror"
)

// singleLine trims value and checks that it is non-empty and has no line
// breaks. Controllers validate the same rules with struct tags; services
// repeat the check so no caller can persist bad input.
func singleLine(fields map[string]string, name, value string, required bool) string {
	v := strings.TrimSpace(value)
	switch {
	case required && v == "":
		fields[name] = "is required"
	case strings.ContainsAny(v, "\r\n"):
		fields[name] = "must be a single line"
	}
	return v
}

func validationResult(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &apperror.ValidationError{Fields: fields}
}
