package api

import (
	"context"

	"github.com/kyunghoonkook/directional/client"
)

// Requester is the transport the api functions are written against,
// satisfied by *client.Client.
type Requester interface {
	Get(ctx context.Context, path string, params any, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Patch(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string, out any) error
}

var _ Requester = (*client.Client)(nil)

// API groups the typed endpoints
type API struct {
	Auth   *Auth
	Posts  *Posts
	Charts *Charts
}

// New creates the api over r
func New(r Requester) *API {
	return &API{
		Auth:   &Auth{r: r},
		Posts:  &Posts{r: r},
		Charts: &Charts{r: r},
	}
}
