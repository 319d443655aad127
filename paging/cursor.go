package paging

import (
	"encoding/base64"
	"errors"
	"strconv"
)

// ErrInvalidCursor is returned for cursors not produced by EncodeCursor
var ErrInvalidCursor = errors.New("invalid cursor")

// MaxLimit upper bound for a page
const MaxLimit = 100

// NormalizeLimit ensures that limit is within an acceptable range
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// EncodeCursor encodes a position to an opaque cursor string
func EncodeCursor(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte("o:" + strconv.Itoa(offset)))
}

// DecodeCursor decodes a cursor string to a position
func DecodeCursor(cursor string) (int, error) {
	b, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil || len(b) < 3 || string(b[:2]) != "o:" {
		return 0, ErrInvalidCursor
	}
	offset, err := strconv.Atoi(string(b[2:]))
	if err != nil || offset < 0 {
		return 0, ErrInvalidCursor
	}
	return offset, nil
}
