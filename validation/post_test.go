package validation

import (
	"strings"
	"testing"

	"github.com/kyunghoonkook/directional/types"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		kind  Kind
		word  string
	}{
		{"ok", "Hello board", "", ""},
		{"empty", "", Empty, ""},
		{"blank", "   \t", Empty, ""},
		{"exactly 80", strings.Repeat("a", 80), "", ""},
		{"81 chars", strings.Repeat("a", 81), TooLong, ""},
		{"too long with forbidden word", strings.Repeat("텔레그램", 21), TooLong, ""},
		{"forbidden", "join our 텔레그램 channel", ForbiddenWord, "텔레그램"},
		{"forbidden inside word", "프놈펜시티 tour", ForbiddenWord, "프놈펜"},
		{"first in denylist order", "텔레그램 and 캄보디아", ForbiddenWord, "캄보디아"},
		{"hangul counted per character", strings.Repeat("가", 80), "", ""},
	}

	for _, tt := range tests {
		err := ValidateTitle(tt.title)
		if tt.kind == "" {
			if err != nil {
				t.Errorf("%s: expected no error, got %v", tt.name, err)
			}
			continue
		}
		ve, ok := err.(*Error)
		if !ok {
			t.Fatalf("%s: expected *Error, got %T", tt.name, err)
		}
		if ve.Kind != tt.kind {
			t.Errorf("%s: expected kind %s, got %s", tt.name, tt.kind, ve.Kind)
		}
		if ve.Word != tt.word {
			t.Errorf("%s: expected word %q, got %q", tt.name, tt.word, ve.Word)
		}
		if ve.Field != FieldTitle {
			t.Errorf("%s: expected field title, got %q", tt.name, ve.Field)
		}
	}
}

func TestValidateBody(t *testing.T) {
	if err := ValidateBody(strings.Repeat("b", 2000)); err != nil {
		t.Errorf("expected 2000 chars to pass, got %v", err)
	}
	if KindOf(ValidateBody(strings.Repeat("b", 2001))) != TooLong {
		t.Errorf("expected TooLong for 2001 chars")
	}
	if KindOf(ValidateBody("")) != Empty {
		t.Errorf("expected Empty for empty body")
	}
	if KindOf(ValidateBody("불법체류 문의")) != ForbiddenWord {
		t.Errorf("expected ForbiddenWord in body")
	}
}

func TestForbiddenWordCaseInsensitive(t *testing.T) {
	// The denylist is Hangul, so case folding must not break containment for
	// mixed-script text.
	if got := CheckForbiddenWords("ABC텔레그램XYZ"); got != "텔레그램" {
		t.Errorf("expected match, got %q", got)
	}
	if got := CheckForbiddenWords("nothing to see"); got != "" {
		t.Errorf("expected no match, got %q", got)
	}
}

func TestValidateTags(t *testing.T) {
	if err := ValidateTags(nil); err != nil {
		t.Errorf("expected no error for no tags, got %v", err)
	}
	if err := ValidateTags([]string{"a", "b", "c", "d", "e"}); err != nil {
		t.Errorf("expected 5 tags to pass, got %v", err)
	}

	six := []string{"a", "b", "c", "d", "e", "f"}
	if KindOf(ValidateTags(six)) != TooMany {
		t.Errorf("expected TooMany for 6 tags")
	}

	long := strings.Repeat("x", 25)
	if KindOf(ValidateTags([]string{"ok", long})) != TagTooLong {
		t.Errorf("expected TagTooLong")
	}

	// count is checked before length
	mixed := []string{long, "b", "c", "d", "e", "f"}
	if KindOf(ValidateTags(mixed)) != TooMany {
		t.Errorf("expected TooMany to win over TagTooLong")
	}

	// tags are exempt from the denylist
	if err := ValidateTags([]string{"텔레그램"}); err != nil {
		t.Errorf("expected tags to skip the denylist, got %v", err)
	}

	// duplicates are only refused at add time
	if err := ValidateTags([]string{"go", "go"}); err != nil {
		t.Errorf("expected duplicates to pass the submit-time check, got %v", err)
	}
}

func TestValidatePost(t *testing.T) {
	errs := ValidatePost("", strings.Repeat("b", 2001), []string{"a", "b", "c", "d", "e", "f"})
	if len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(errs), errs)
	}
	if errs[FieldTitle].Kind != Empty || errs[FieldBody].Kind != TooLong || errs[FieldTags].Kind != TooMany {
		t.Errorf("unexpected kinds: %v", errs)
	}
	if errs.Err() == nil {
		t.Errorf("expected non-nil error")
	}

	if err := ValidatePost("title", "body", []string{"go"}).Err(); err != nil {
		t.Errorf("expected valid post, got %v", err)
	}
}

func TestTagSet(t *testing.T) {
	s := NewTagSet("go")

	if err := s.Add("  rust "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Add("   "); err != nil {
		t.Errorf("blank tag should be ignored, got %v", err)
	}
	if KindOf(s.Add("go")) != Duplicate {
		t.Errorf("expected Duplicate")
	}
	if KindOf(s.Add(strings.Repeat("x", 25))) != TagTooLong {
		t.Errorf("expected TagTooLong")
	}

	for _, tag := range []string{"a", "b", "c"} {
		if err := s.Add(tag); err != nil {
			t.Fatalf("unexpected error adding %q: %v", tag, err)
		}
	}
	if KindOf(s.Add("d")) != MaxReached {
		t.Errorf("expected MaxReached at 5 tags")
	}
	// a duplicate is reported before the limit
	if KindOf(s.Add("a")) != Duplicate {
		t.Errorf("expected Duplicate before MaxReached")
	}

	s.Remove("rust")
	if s.Len() != 4 {
		t.Errorf("expected 4 tags after remove, got %d", s.Len())
	}
	if got := s.Tags(); got[0] != "go" || got[1] != "a" {
		t.Errorf("unexpected order %v", got)
	}
	if err := ValidateTags(s.Tags()); err != nil {
		t.Errorf("tags accepted at add time must pass submit time, got %v", err)
	}
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(&types.LoginRequest{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Errorf("expected email error, got %v", errs)
	}
	if _, ok := errs["password"]; !ok {
		t.Errorf("expected password error, got %v", errs)
	}

	if errs := ValidateStruct(&types.LoginRequest{Email: "alice@example.com", Password: "x"}); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}

	errs = ValidateStruct(&types.PostCreateRequest{Title: "t", Body: "b", Category: "OTHER"})
	if msg := errs["category"]; !strings.Contains(msg, "NOTICE QNA FREE") {
		t.Errorf("expected oneof message, got %q", msg)
	}
}
