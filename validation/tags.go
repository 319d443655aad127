package validation

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/kyunghoonkook/directional/consts"
)

// TagSet is the interactive add-time guard used while a post is edited.
// It is stricter than ValidateTags: duplicates are refused and the set can
// never grow past the limit.
type TagSet struct {
	tags []string
}

// NewTagSet starts from existing tags, e.g. those of a post being edited.
func NewTagSet(tags ...string) *TagSet {
	return &TagSet{tags: slices.Clone(tags)}
}

// Add trims tag and appends it. An empty tag is ignored without error.
func (s *TagSet) Add(tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil
	}
	if slices.Contains(s.tags, tag) {
		return &Error{Field: FieldTags, Kind: Duplicate, Word: tag}
	}
	if len(s.tags) >= consts.MaxTags {
		return &Error{Field: FieldTags, Kind: MaxReached, Limit: consts.MaxTags}
	}
	if utf8.RuneCountInString(tag) > consts.MaxTagLength {
		return &Error{Field: FieldTags, Kind: TagTooLong, Word: tag, Limit: consts.MaxTagLength}
	}
	s.tags = append(s.tags, tag)
	return nil
}

// Remove drops every occurrence of tag.
func (s *TagSet) Remove(tag string) {
	s.tags = slices.DeleteFunc(s.tags, func(t string) bool { return t == tag })
}

// Tags returns a copy of the current tags.
func (s *TagSet) Tags() []string {
	return slices.Clone(s.tags)
}

// Len number of tags.
func (s *TagSet) Len() int {
	return len(s.tags)
}
