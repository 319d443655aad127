// Package version exposes build metadata for the directional binary.
//
// Set it at build time with ldflags:
//
//	go build -ldflags "\
//	  -X github.com/kyunghoonkook/directional/version.Version=1.2.3 \
//	  -X github.com/kyunghoonkook/directional/version.Revision=abc1234 \
//	  -X 'github.com/kyunghoonkook/directional/version.BuiltAt=$(date)'"
//
// Without ldflags the module build info is used where available.
package version
