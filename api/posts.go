package api

import (
	"context"
	"net/url"

	"github.com/kyunghoonkook/directional/types"
)

// Posts post endpoints
type Posts struct {
	r Requester
}

// NewPosts creates the post endpoints
func NewPosts(r Requester) *Posts { return &Posts{r: r} }

func postPath(id string) string {
	return "/posts/" + url.PathEscape(id)
}

// List returns one page of posts
func (p *Posts) List(ctx context.Context, params types.PostListParams) (*types.PostListResponse, error) {
	var resp types.PostListResponse
	if err := p.r.Get(ctx, "/posts", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Get returns a single post
func (p *Posts) Get(ctx context.Context, id string) (*types.Post, error) {
	var post types.Post
	if err := p.r.Get(ctx, postPath(id), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Create creates a post
func (p *Posts) Create(ctx context.Context, req types.PostCreateRequest) (*types.Post, error) {
	var post types.Post
	if err := p.r.Post(ctx, "/posts", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Update patches the set fields of a post
func (p *Posts) Update(ctx context.Context, id string, req types.PostUpdateRequest) (*types.Post, error) {
	var post types.Post
	if err := p.r.Patch(ctx, postPath(id), req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete deletes a post
func (p *Posts) Delete(ctx context.Context, id string) (*types.DeleteResponse, error) {
	var resp types.DeleteResponse
	if err := p.r.Delete(ctx, postPath(id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteAll deletes every post of the current user
func (p *Posts) DeleteAll(ctx context.Context) (*types.DeleteResponse, error) {
	var resp types.DeleteResponse
	if err := p.r.Delete(ctx, "/posts", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
