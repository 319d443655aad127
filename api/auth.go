package api

import (
	"context"

	"github.com/kyunghoonkook/directional/types"
)

// Auth authentication endpoints
type Auth struct {
	r Requester
}

// NewAuth creates the auth endpoints
func NewAuth(r Requester) *Auth { return &Auth{r: r} }

// Login exchanges credentials for a token and user profile
func (a *Auth) Login(ctx context.Context, req types.LoginRequest) (*types.LoginResponse, error) {
	var resp types.LoginResponse
	if err := a.r.Post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health probes the api liveness endpoint
func (a *Auth) Health(ctx context.Context) error {
	return a.r.Get(ctx, "/health", nil, nil)
}
