package session

import (
	"github.com/google/wire"
	"github.com/kyunghoonkook/directional/config"
	"github.com/kyunghoonkook/directional/storage"
)

// ProviderSet is the wire provider set for the session package
var ProviderSet = wire.NewSet(ProvideSession)

// ProvideSession creates the session with the configured login path.
// It still has to be bootstrapped.
func ProvideSession(store storage.Store, auth AuthAPI, nav Navigator, api *config.API) *Session {
	var opts []Option
	if api != nil {
		opts = append(opts, WithLoginPath(api.LoginPath))
	}
	return New(store, auth, nav, opts...)
}
