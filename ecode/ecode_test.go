package ecode

import (
	"errors"
	"fmt"
	"testing"
)

func TestFromStatus(t *testing.T) {
	tests := []struct {
		status  int
		body    string
		code    Code
		message string
	}{
		{401, "whatever", AuthExpired, Text(AuthExpired)},
		{400, "title too long", BadRequest, "title too long"},
		{400, "", BadRequest, Text(BadRequest)},
		{404, "missing", NotFound, Text(NotFound)},
		{500, "boom", ServerErr, Text(ServerErr)},
		{503, "", ServerErr, Text(ServerErr)},
		{409, "conflict", Unknown, "conflict"},
		{403, "", Unknown, Text(Unknown)},
	}

	for _, tt := range tests {
		e := FromStatus(tt.status, tt.body)
		if e.Code != tt.code {
			t.Errorf("status %d: expected code %v, got %v", tt.status, tt.code, e.Code)
		}
		if e.Message != tt.message {
			t.Errorf("status %d: expected message %q, got %q", tt.status, tt.message, e.Message)
		}
		if e.Status != tt.status {
			t.Errorf("status %d: expected status to be kept, got %d", tt.status, e.Status)
		}
	}
}

func TestCodeOf(t *testing.T) {
	if CodeOf(nil) != OK {
		t.Errorf("expected OK for nil error")
	}
	if CodeOf(errors.New("plain")) != Unknown {
		t.Errorf("expected Unknown for foreign error")
	}

	wrapped := fmt.Errorf("list posts: %w", New(NotFound))
	if !Is(wrapped, NotFound) {
		t.Errorf("expected wrapped error to carry NotFound")
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	e := Wrap(NetworkErr, cause)
	if !errors.Is(e, cause) {
		t.Errorf("expected cause in chain")
	}
	if e.Message != Text(NetworkErr) {
		t.Errorf("expected default message, got %q", e.Message)
	}
}

func TestSetLanguage(t *testing.T) {
	defer SetLanguage("en")

	SetLanguage("ko")
	if Text(NotFound) != "요청한 데이터를 찾을 수 없습니다." {
		t.Errorf("unexpected korean message %q", Text(NotFound))
	}

	SetLanguage("xx")
	if Text(NotFound) != "요청한 데이터를 찾을 수 없습니다." {
		t.Errorf("unknown language should be ignored")
	}
}
