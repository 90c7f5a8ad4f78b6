// Package validation collects per-field input errors so handlers can
// report every problem in a request at once.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	pincodeRegex = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	phoneRegex   = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	emailRegex   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is returned by services when input fails validation.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a failure.
func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// Err returns nil when nothing was recorded so callers can `return v.Err()`.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Required records an error when value is blank, and a length error when
// it exceeds max runes.
func (e *Errors) Required(field, value string, max int) {
	value = strings.TrimSpace(value)
	if value == "" {
		e.Add(field, field+" is required")
		return
	}
	e.MaxLen(field, value, max)
}

func (e *Errors) MaxLen(field, value string, max int) {
	if utf8.RuneCountInString(strings.TrimSpace(value)) > max {
		e.Add(field, field+" is too long")
	}
}

func IsPincode(s string) bool {
	return pincodeRegex.MatchString(strings.TrimSpace(s))
}

func IsPhone(s string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(s))
}

func IsEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}
