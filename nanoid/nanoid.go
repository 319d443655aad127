package nanoid

import (
	"github.com/kyunghoonkook/directional/consts"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	defaultSize = 16
)

func getSize(l ...int) int {
	size := defaultSize
	if len(l) > 0 {
		size = l[0]
	}
	return size
}

// Lower generate optional length nanoid, use const by default
func Lower(l ...int) string {
	size := getSize(l...)
	return gonanoid.MustGenerate(consts.NumLower, size)
}

// RequestID generates an outgoing request id
func RequestID() string {
	return gonanoid.MustGenerate(consts.RequestIDAlphabet, consts.RequestIDSize)
}
