package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrMalformed   = errors.New("malformed request")
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError carries the client-facing message for a missing resource.
// Use errors.Is(err, ErrNotFound) for checks; the message itself becomes
// the problem-details detail string.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// MalformedRequestError marks a request that breaks the programming contract
// (missing route parameter, absent form field). It is not a user-correctable
// validation failure: the client gets a fixed message, never a field error
// list.
type MalformedRequestError struct {
	Message string
}

func (e *MalformedRequestError) Error() string {
	return e.Message
}

func (e *MalformedRequestError) Unwrap() error {
	return ErrMalformed
}

// ValidationResult collects user-input validation messages for a single
// request. FormErrors holds messages not attributable to one field;
// FieldErrors maps a field name to its ordered message list. All lists
// empty means the input is valid. The struct doubles as the wire shape of
// a 400 response body, so the slices are kept non-nil.
type ValidationResult struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// NewValidationResult creates an empty result with an empty message list
// registered for each named field, so the serialized form always carries
// every field key.
func NewValidationResult(fields ...string) *ValidationResult {
	fe := make(map[string][]string, len(fields))
	for _, f := range fields {
		fe[f] = []string{}
	}
	return &ValidationResult{
		FormErrors:  []string{},
		FieldErrors: fe,
	}
}

// AddFormError appends a message not attributable to a single field.
func (v *ValidationResult) AddFormError(msg string) {
	v.FormErrors = append(v.FormErrors, msg)
}

// AddFieldError appends a message to the named field's list.
func (v *ValidationResult) AddFieldError(field, msg string) {
	v.FieldErrors[field] = append(v.FieldErrors[field], msg)
}

// HasErrors reports whether any form-level or field-level message was
// recorded.
func (v *ValidationResult) HasErrors() bool {
	if len(v.FormErrors) > 0 {
		return true
	}
	for _, msgs := range v.FieldErrors {
		if len(msgs) > 0 {
			return true
		}
	}
	return false
}

func (v *ValidationResult) Error() string {
	parts := make([]string, 0, len(v.FieldErrors)+1)
	if len(v.FormErrors) > 0 {
		parts = append(parts, "form: "+strings.Join(v.FormErrors, "; "))
	}

	fields := make([]string, 0, len(v.FieldErrors))
	for field := range v.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		if msgs := v.FieldErrors[field]; len(msgs) > 0 {
			parts = append(parts, field+": "+strings.Join(msgs, "; "))
		}
	}

	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (v *ValidationResult) Unwrap() error {
	return ErrValidation
}
