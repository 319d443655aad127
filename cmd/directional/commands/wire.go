//go:build wireinject
// +build wireinject

package commands

import (
	"io"

	"github.com/google/wire"
	"github.com/kyunghoonkook/directional/api"
	"github.com/kyunghoonkook/directional/client"
	"github.com/kyunghoonkook/directional/config"
	"github.com/kyunghoonkook/directional/logging/logger"
	"github.com/kyunghoonkook/directional/logging/observes"
	"github.com/kyunghoonkook/directional/query"
	"github.com/kyunghoonkook/directional/session"
	"github.com/kyunghoonkook/directional/storage"
)

// initializeApp wires the stack for a command running at loc
func initializeApp(opts *globalOptions, loc route, errOut io.Writer, out *renderer) (*app, func(), error) {
	panic(wire.Build(
		// Config providers
		loadConfig,
		config.ProviderSet,

		// Logging and tracing
		logger.ProviderSet,
		provideTracerOption,
		observes.ProviderSet,

		// Session storage
		storage.ProviderSet,
		wire.Bind(new(client.TokenSource), new(*storage.Credentials)),

		// Remote api
		client.ProviderSet,
		api.ProviderSet,

		provideNavigator,
		wire.Bind(new(session.Navigator), new(*navigator)),
		wire.Bind(new(session.AuthAPI), new(*api.Auth)),
		session.ProviderSet,
		wire.Bind(new(query.PostsAPI), new(*api.Posts)),
		wire.Bind(new(query.ChartsAPI), new(*api.Charts)),
		query.ProviderSet,

		// Application constructor
		newApp,
	))
}
