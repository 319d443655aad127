package ecode

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// Code classifies a failure.
type Code int

const (
	OK          Code = 0
	Unknown     Code = -1   // Fallback, unparseable or unexpected failure
	AuthExpired Code = -101 // 401, session must be dropped
	Validation  Code = -200 // Rejected client-side, never sent
	BadRequest  Code = -400 // 400
	NotFound    Code = -404 // 404
	ServerErr   Code = -500 // 5xx
	NetworkErr  Code = -504 // No response received, including timeouts
)

var messages = map[string]map[Code]string{
	"en": {
		OK:          "ok",
		Unknown:     "An unknown error occurred.",
		AuthExpired: "Your session has expired. Please log in again.",
		Validation:  "The input is invalid.",
		BadRequest:  "The request is invalid.",
		NotFound:    "The requested data could not be found.",
		ServerErr:   "A server error occurred. Please try again later.",
		NetworkErr:  "Please check your network connection.",
	},
	"ko": {
		OK:          "성공",
		Unknown:     "알 수 없는 오류가 발생했습니다.",
		AuthExpired: "인증이 만료되었습니다. 다시 로그인해주세요.",
		Validation:  "입력값이 올바르지 않습니다.",
		BadRequest:  "잘못된 요청입니다.",
		NotFound:    "요청한 데이터를 찾을 수 없습니다.",
		ServerErr:   "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요.",
		NetworkErr:  "네트워크 연결을 확인해주세요.",
	},
}

var (
	mu       sync.RWMutex
	language = "en"
)

// SetLanguage switches the message table, unknown languages are ignored.
func SetLanguage(lang string) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := messages[lang]; ok {
		language = lang
	}
}

// Text returns the default message for a code.
func Text(code Code) string {
	mu.RLock()
	defer mu.RUnlock()
	if msg, ok := messages[language][code]; ok {
		return msg
	}
	return messages[language][Unknown]
}

// String returns the code name.
func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case AuthExpired:
		return "auth_expired"
	case Validation:
		return "validation"
	case BadRequest:
		return "bad_request"
	case NotFound:
		return "not_found"
	case ServerErr:
		return "server_error"
	case NetworkErr:
		return "network_error"
	}
	return "unknown"
}

// Error is the normalized failure surfaced by every layer above the transport.
type Error struct {
	Code    Code
	Status  int // HTTP status, 0 when no response was received
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error with the code's default message unless one is given.
func New(code Code, message ...string) *Error {
	msg := Text(code)
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	return &Error{Code: code, Message: msg}
}

// Wrap creates an error for code that keeps cause in the chain.
func Wrap(code Code, cause error, message ...string) *Error {
	e := New(code, message...)
	e.Err = cause
	return e
}

// FromStatus maps an HTTP error response to an Error. bodyMessage is the
// server supplied message, if the body carried one.
func FromStatus(status int, bodyMessage string) *Error {
	var e *Error
	switch {
	case status == http.StatusUnauthorized:
		e = New(AuthExpired)
	case status == http.StatusBadRequest:
		e = New(BadRequest, bodyMessage)
	case status == http.StatusNotFound:
		e = New(NotFound)
	case status >= http.StatusInternalServerError:
		e = New(ServerErr)
	default:
		e = New(Unknown, bodyMessage)
	}
	e.Status = status
	return e
}

// CodeOf extracts the code of err, Unknown for foreign errors and OK for nil.
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Unknown
}

// Is reports whether err carries code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// Errorf builds an Unknown error with a formatted message.
func Errorf(format string, args ...any) *Error {
	return New(Unknown, fmt.Sprintf(format, args...))
}
