package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kyunghoonkook/directional/consts"
	"github.com/kyunghoonkook/directional/types"
)

// Credentials persists the auth token and user profile under fixed keys.
type Credentials struct {
	store Store
}

// NewCredentials wraps a store.
func NewCredentials(store Store) *Credentials {
	return &Credentials{store: store}
}

// Token returns the persisted token or "" when absent or unreadable.
func (c *Credentials) Token(ctx context.Context) string {
	token, err := c.store.Get(ctx, consts.TokenKey)
	if err != nil {
		return ""
	}
	return token
}

// User returns the persisted user, nil when absent or not decodable.
func (c *Credentials) User(ctx context.Context) *types.User {
	raw, err := c.store.Get(ctx, consts.UserKey)
	if err != nil || raw == "" {
		return nil
	}
	var user types.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

// Save replaces both values in one write.
func (c *Credentials) Save(ctx context.Context, token string, user types.User) error {
	if token == "" {
		return errors.New("storage: refusing to save an empty token")
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return c.store.Set(ctx, map[string]string{
		consts.TokenKey: token,
		consts.UserKey:  string(raw),
	})
}

// Clear removes both values together.
func (c *Credentials) Clear(ctx context.Context) error {
	return c.store.Delete(ctx, consts.TokenKey, consts.UserKey)
}
