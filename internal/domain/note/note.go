package note

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/dkarlsen/notes-service/internal/domain"
)

// Field length limits. These are part of the client contract: the limit
// value appears verbatim in validation messages.
const (
	TitleMaxLength   = 100
	ContentMaxLength = 10000
)

// msgRequired is the validation message for an empty field.
const msgRequired = "This is required"

// Note is a user-owned text record. ID is an opaque string key assigned
// at creation.
type Note struct {
	ID        string
	Owner     string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NotFound builds the error returned when no note matches the given id.
// The message is client-facing and rendered verbatim by the error layer.
func NotFound(id string) *domain.NotFoundError {
	return &domain.NotFoundError{
		Message: fmt.Sprintf("No note with the id %q exists.", id),
	}
}

// ValidateFields checks title and content against the edit rules and
// returns a *domain.ValidationResult (wrapping domain.ErrValidation) when
// either field fails, or nil when both pass. Both fields are always
// evaluated; a single field never collects more than one message because
// the emptiness and length checks are mutually exclusive.
func ValidateFields(title, content string) error {
	res := domain.NewValidationResult("title", "content")

	for _, msg := range fieldMessages("Title", title, TitleMaxLength) {
		res.AddFieldError("title", msg)
	}
	for _, msg := range fieldMessages("Content", content, ContentMaxLength) {
		res.AddFieldError("content", msg)
	}

	if res.HasErrors() {
		return res
	}
	return nil
}

// fieldMessages applies the per-field rules: empty beats over-long, and a
// value within [1, max] runes is clean. The raw value is checked, not a
// trimmed copy, so whitespace-only input counts as present.
func fieldMessages(label, value string, max int) []string {
	if value == "" {
		return []string{msgRequired}
	}
	if utf8.RuneCountInString(value) > max {
		return []string{fmt.Sprintf("%s must be %d characters or less.", label, max)}
	}
	return nil
}
