package paging

import (
	"strings"
	"sync"

	"github.com/kyunghoonkook/directional/types"
)

// CategoryAll clears the category filter
const CategoryAll = "ALL"

// Controller list parameter state
type Controller struct {
	mu     sync.Mutex
	params Params
	last   *types.PostListResponse
}

// NewController creates a controller starting at DefaultParams, or at p when given
func NewController(p ...Params) *Controller {
	params := DefaultParams()
	if len(p) > 0 {
		params = p[0]
	}
	return &Controller{params: params}
}

// Params returns the current parameters
func (c *Controller) Params() Params {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.params
}

// Page returns the last observed page for the current parameters, nil if none
func (c *Controller) Page() *types.PostListResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// update applies fn to a copy of the params, clears both cursors and drops the last page
func (c *Controller) update(fn func(p *Params)) Params {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := c.params.resetCursors()
	fn(&p)
	c.params = p
	c.last = nil
	return p
}

func (c *Controller) SetSearch(search string) Params {
	return c.update(func(p *Params) { p.Search = strings.TrimSpace(search) })
}

// SetCategory filters by category, "" or ALL clears the filter
func (c *Controller) SetCategory(category string) Params {
	return c.update(func(p *Params) {
		if category == "" || category == CategoryAll {
			p.Category = ""
			return
		}
		p.Category = types.Category(category)
	})
}

func (c *Controller) SetSort(sort types.SortField) Params {
	return c.update(func(p *Params) { p.Sort = sort })
}

func (c *Controller) SetOrder(order types.Order) Params {
	return c.update(func(p *Params) { p.Order = order })
}

// SetRange filters by creation date, empty bounds are open
func (c *Controller) SetRange(from, to string) Params {
	return c.update(func(p *Params) {
		p.From = from
		p.To = to
	})
}

func (c *Controller) SetLimit(limit int) Params {
	return c.update(func(p *Params) { p.Limit = limit })
}

// Reset returns to DefaultParams
func (c *Controller) Reset() Params {
	return c.update(func(p *Params) { *p = DefaultParams() })
}

// Observe records page as the result for p. It is ignored, returning false,
// when p is no longer the current parameter set.
func (c *Controller) Observe(p Params, page *types.PostListResponse) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p != c.params || page == nil {
		return false
	}
	c.last = page
	return true
}

func (c *Controller) HasNext() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last != nil && c.last.NextCursor != nil
}

func (c *Controller) HasPrev() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last != nil && c.last.PrevCursor != nil
}

// NextPage moves to the page after the last observed one. It is a no-op
// returning false when that page has no next cursor.
func (c *Controller) NextPage() (Params, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil || c.last.NextCursor == nil {
		return c.params, false
	}
	c.params.NextCursor = *c.last.NextCursor
	c.params.PrevCursor = ""
	c.last = nil
	return c.params, true
}

// PrevPage moves to the page before the last observed one
func (c *Controller) PrevPage() (Params, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil || c.last.PrevCursor == nil {
		return c.params, false
	}
	c.params.PrevCursor = *c.last.PrevCursor
	c.params.NextCursor = ""
	c.last = nil
	return c.params, true
}
