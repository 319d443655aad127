package paging

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/kyunghoonkook/directional/consts"
	"github.com/kyunghoonkook/directional/types"
	"github.com/kyunghoonkook/directional/validation"
)

// Params post list parameters
type Params struct {
	types.PostListParams
}

// DefaultParams returns limit 10, newest first, no filter and no cursor
func DefaultParams() Params {
	return Params{types.PostListParams{
		Limit: consts.DefaultPageLimit,
		Sort:  types.SortByCreatedAt,
		Order: types.Descending,
	}}
}

// Key is the canonical serialization of p. Equal params give equal keys.
func (p Params) Key() string {
	values, err := query.Values(p.PostListParams)
	if err != nil {
		return fmt.Sprintf("%+v", p.PostListParams)
	}
	return values.Encode()
}

// Validate checks the sort, order and category domains and the cursor pair
func (p Params) Validate() error {
	if errs := validation.ValidateStruct(p.PostListParams); errs != nil {
		fields := make([]string, 0, len(errs))
		for field, msg := range errs {
			fields = append(fields, field+": "+msg)
		}
		sort.Strings(fields)
		return errors.New(strings.Join(fields, "; "))
	}
	if p.Limit < 0 {
		return errors.New("limit must not be negative")
	}
	if p.NextCursor != "" && p.PrevCursor != "" {
		return errors.New("nextCursor and prevCursor are mutually exclusive")
	}
	return nil
}

// HasCursor reports whether p points past the first page
func (p Params) HasCursor() bool {
	return p.NextCursor != "" || p.PrevCursor != ""
}

func (p Params) resetCursors() Params {
	p.NextCursor = ""
	p.PrevCursor = ""
	return p
}
