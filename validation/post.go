package validation

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/kyunghoonkook/directional/consts"
)

// Form field names
const (
	FieldTitle = "title"
	FieldBody  = "body"
	FieldTags  = "tags"
)

// CheckForbiddenWords returns the first denylist term contained in text,
// compared case-insensitively, or "" if none.
func CheckForbiddenWords(text string) string {
	lower := strings.ToLower(text)
	for _, word := range consts.ForbiddenWords {
		if strings.Contains(lower, strings.ToLower(word)) {
			return word
		}
	}
	return ""
}

func validateText(field, text string, limit int) error {
	if strings.TrimSpace(text) == "" {
		return &Error{Field: field, Kind: Empty}
	}
	if utf8.RuneCountInString(text) > limit {
		return &Error{Field: field, Kind: TooLong, Limit: limit}
	}
	if word := CheckForbiddenWords(text); word != "" {
		return &Error{Field: field, Kind: ForbiddenWord, Word: word}
	}
	return nil
}

// ValidateTitle checks emptiness, the 80 character bound and the denylist.
func ValidateTitle(title string) error {
	return validateText(FieldTitle, title, consts.MaxTitleLength)
}

// ValidateBody checks emptiness, the 2000 character bound and the denylist.
func ValidateBody(body string) error {
	return validateText(FieldBody, body, consts.MaxBodyLength)
}

// ValidateTags is the submit-time check: count first, then per-tag length.
// Tags are not matched against the denylist.
func ValidateTags(tags []string) error {
	if len(tags) > consts.MaxTags {
		return &Error{Field: FieldTags, Kind: TooMany, Limit: consts.MaxTags}
	}
	for _, tag := range tags {
		if utf8.RuneCountInString(tag) > consts.MaxTagLength {
			return &Error{Field: FieldTags, Kind: TagTooLong, Word: tag, Limit: consts.MaxTagLength}
		}
	}
	return nil
}

// ValidatePost runs every field validator and collects failures per field.
func ValidatePost(title, body string, tags []string) Errors {
	errs := Errors{}
	collect(errs, FieldTitle, ValidateTitle(title))
	collect(errs, FieldBody, ValidateBody(body))
	collect(errs, FieldTags, ValidateTags(tags))
	return errs
}

// ValidatePatch validates only the fields that are set.
func ValidatePatch(title, body *string, tags *[]string) Errors {
	errs := Errors{}
	if title != nil {
		collect(errs, FieldTitle, ValidateTitle(*title))
	}
	if body != nil {
		collect(errs, FieldBody, ValidateBody(*body))
	}
	if tags != nil {
		collect(errs, FieldTags, ValidateTags(*tags))
	}
	return errs
}

func collect(errs Errors, field string, err error) {
	if err == nil {
		return
	}
	var ve *Error
	if errors.As(err, &ve) {
		errs[field] = ve
		return
	}
	errs[field] = &Error{Field: field, Kind: Invalid}
}

// KindOf returns the kind of a validation error, "" for anything else.
func KindOf(err error) Kind {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return ""
}
