package query

import (
	"context"
	"strings"
	"time"

	"github.com/kyunghoonkook/directional/ecode"
	"github.com/kyunghoonkook/directional/paging"
	"github.com/kyunghoonkook/directional/types"
	"github.com/kyunghoonkook/directional/validation"
)

// Stale times of the post queries
const (
	ListStaleTime   = 30 * time.Second
	DetailStaleTime = 0
)

// PostsAPI is the post transport, satisfied by *api.Posts
type PostsAPI interface {
	List(ctx context.Context, params types.PostListParams) (*types.PostListResponse, error)
	Get(ctx context.Context, id string) (*types.Post, error)
	Create(ctx context.Context, req types.PostCreateRequest) (*types.Post, error)
	Update(ctx context.Context, id string, req types.PostUpdateRequest) (*types.Post, error)
	Delete(ctx context.Context, id string) (*types.DeleteResponse, error)
	DeleteAll(ctx context.Context) (*types.DeleteResponse, error)
}

// Posts cached post queries and invalidating mutations
type Posts struct {
	c             *Client
	api           PostsAPI
	listStaleTime time.Duration
}

// NewPosts creates the post facade. listStaleTime <= 0 uses ListStaleTime.
func NewPosts(c *Client, api PostsAPI, listStaleTime ...time.Duration) *Posts {
	p := &Posts{c: c, api: api, listStaleTime: ListStaleTime}
	if len(listStaleTime) > 0 && listStaleTime[0] > 0 {
		p.listStaleTime = listStaleTime[0]
	}
	return p
}

// List returns the page for params
func (p *Posts) List(ctx context.Context, params paging.Params) (*types.PostListResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, ecode.Wrap(ecode.Validation, err, err.Error())
	}
	return Get(ctx, p.c, PostListKey(params), Options{StaleTime: p.listStaleTime},
		func(ctx context.Context) (*types.PostListResponse, error) {
			return p.api.List(ctx, params.PostListParams)
		})
}

// Get returns a single post, always refetched
func (p *Posts) Get(ctx context.Context, id string) (*types.Post, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ecode.New(ecode.Validation, "post id is required")
	}
	return Get(ctx, p.c, PostDetailKey(id), Options{StaleTime: DetailStaleTime},
		func(ctx context.Context) (*types.Post, error) {
			return p.api.Get(ctx, id)
		})
}

// Create validates and creates a post, then invalidates the lists
func (p *Posts) Create(ctx context.Context, req types.PostCreateRequest) (*types.Post, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}
	post, err := p.api.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	p.c.Invalidate(PostListsKey())
	return post, nil
}

// Update validates the set fields and patches a post, then invalidates the lists and the detail
func (p *Posts) Update(ctx context.Context, id string, req types.PostUpdateRequest) (*types.Post, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ecode.New(ecode.Validation, "post id is required")
	}
	if err := validateUpdate(req); err != nil {
		return nil, err
	}
	post, err := p.api.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	p.c.Invalidate(PostListsKey())
	p.c.Invalidate(PostDetailKey(id))
	return post, nil
}

// Delete deletes a post, then invalidates the lists
func (p *Posts) Delete(ctx context.Context, id string) (*types.DeleteResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ecode.New(ecode.Validation, "post id is required")
	}
	resp, err := p.api.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	p.c.Invalidate(PostListsKey())
	return resp, nil
}

// DeleteAll deletes every post, then invalidates everything under posts
func (p *Posts) DeleteAll(ctx context.Context) (*types.DeleteResponse, error) {
	resp, err := p.api.DeleteAll(ctx)
	if err != nil {
		return nil, err
	}
	p.c.Invalidate(PostsKey())
	return resp, nil
}

func validateCreate(req types.PostCreateRequest) error {
	if errs := validation.ValidatePost(req.Title, req.Body, req.Tags); len(errs) > 0 {
		return ecode.Wrap(ecode.Validation, errs, errs.Error())
	}
	if errs := validation.ValidateStruct(req); errs != nil {
		return ecode.Wrap(ecode.Validation, nil, firstMessage(errs))
	}
	return nil
}

func validateUpdate(req types.PostUpdateRequest) error {
	if req.Empty() {
		return ecode.New(ecode.Validation, "nothing to update")
	}
	errs := validation.ValidatePatch(req.Title, req.Body, req.Tags)
	if len(errs) > 0 {
		return ecode.Wrap(ecode.Validation, errs, errs.Error())
	}
	if msgs := validation.ValidateStruct(req); msgs != nil {
		return ecode.Wrap(ecode.Validation, nil, firstMessage(msgs))
	}
	return nil
}

func firstMessage(msgs map[string]string) string {
	for _, field := range []string{"category", "title", "body", "tags"} {
		if m, ok := msgs[field]; ok {
			return m
		}
	}
	for _, m := range msgs {
		return m
	}
	return ecode.Text(ecode.Validation)
}
