// Package paging holds the post list parameter state and the cursor helpers.
//
// A Controller owns the current list parameters. Every filter, sort or range
// change returns parameters with both cursors cleared, so a new query always
// starts from the first page. Moving between pages is only possible when the
// last observed page carries a non-nil cursor in that direction:
//
//	c := paging.NewController()
//	p := c.SetCategory("QNA")
//	page, _ := posts.List(ctx, p.PostListParams)
//	c.Observe(p, page)
//	if next, ok := c.NextPage(); ok {
//	    // fetch next
//	}
//
// Results fetched for parameters that are no longer current are dropped by
// Observe.
package paging
