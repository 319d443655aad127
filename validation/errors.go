package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies which rule a value broke.
type Kind string

const (
	Empty         Kind = "empty"
	TooLong       Kind = "too_long"
	ForbiddenWord Kind = "forbidden_word"
	TooMany       Kind = "too_many"
	TagTooLong    Kind = "tag_too_long"
	Duplicate     Kind = "duplicate"
	MaxReached    Kind = "max_reached"
	Invalid       Kind = "invalid"
)

// Error is a client-side validation failure for one field.
type Error struct {
	Field string
	Kind  Kind
	Word  string // matched denylist term for ForbiddenWord, offending tag for tag rules
	Limit int
}

func (e *Error) Error() string {
	switch e.Kind {
	case Empty:
		return fmt.Sprintf("%s is required", e.Field)
	case TooLong:
		return fmt.Sprintf("%s must be at most %d characters", e.Field, e.Limit)
	case ForbiddenWord:
		return fmt.Sprintf("%s contains a forbidden word: %q", e.Field, e.Word)
	case TooMany:
		return fmt.Sprintf("at most %d %s are allowed", e.Limit, e.Field)
	case TagTooLong:
		return fmt.Sprintf("each tag must be at most %d characters", e.Limit)
	case Duplicate:
		return fmt.Sprintf("tag %q was already added", e.Word)
	case MaxReached:
		return fmt.Sprintf("at most %d tags can be added", e.Limit)
	}
	return fmt.Sprintf("%s is invalid", e.Field)
}

// Errors maps a form field to its first failure. An empty map means the
// form can be submitted.
type Errors map[string]*Error

// Error implements error.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, e[f].Error())
	}
	return strings.Join(msgs, "; ")
}

// Err returns nil when there are no failures.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
