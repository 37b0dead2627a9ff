package commit

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxDescriptionLength is the longest subject line description accepted, in characters.
const MaxDescriptionLength = 50

var (
	ErrEmptyDescription   = errors.New("description cannot be empty")
	ErrDescriptionTooLong = fmt.Errorf("description must not exceed %d characters", MaxDescriptionLength)
)

// Record holds the fields collected for one commit message.
// Optional fields use the empty string for "absent".
type Record struct {
	Type           string
	Scope          string
	Description    string
	Body           string
	BreakingChange string
	Issues         string
}

// ValidateDescription rejects blank descriptions and descriptions longer than
// MaxDescriptionLength. The length check applies to the raw, untrimmed input.
func ValidateDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyDescription
	}
	if utf8.RuneCountInString(s) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

// Optional trims s and returns it, or "" when nothing but whitespace remains.
func Optional(s string) string {
	return strings.TrimSpace(s)
}

// Validate reports whether r can be composed into a message.
func (r Record) Validate() error {
	if _, ok := LookupType(r.Type); !ok {
		return fmt.Errorf("unknown commit type %q", r.Type)
	}
	return ValidateDescription(r.Description)
}
