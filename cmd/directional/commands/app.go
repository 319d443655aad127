package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kyunghoonkook/directional/api"
	"github.com/kyunghoonkook/directional/client"
	"github.com/kyunghoonkook/directional/config"
	"github.com/kyunghoonkook/directional/ecode"
	"github.com/kyunghoonkook/directional/logging/logger"
	"github.com/kyunghoonkook/directional/logging/observes"
	"github.com/kyunghoonkook/directional/query"
	"github.com/kyunghoonkook/directional/session"
	"github.com/kyunghoonkook/directional/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errNotLoggedIn is returned by private commands without a session
var errNotLoggedIn = errors.New("not logged in, run `directional login`")

// app is the wiring of one command invocation
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	api     *api.API
	session *session.Session
	posts   *query.Posts
	charts  *query.Charts
	nav     *navigator
	out     *renderer
}

// route is the location a command stands for, e.g. /posts
type route string

func loadConfig(opts *globalOptions) (*config.Config, error) {
	cfg, err := config.LoadConfig(viper.New(), opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.baseURL != "" {
		cfg.API.BaseURL = opts.baseURL
	}
	if opts.lang != "" {
		ecode.SetLanguage(opts.lang)
	}
	return cfg, nil
}

func provideTracerOption(cfg *config.Config, obs *config.Observes) *observes.TracerOption {
	return &observes.TracerOption{
		URL:          obs.TracerURL,
		Name:         cfg.AppName,
		Version:      version.GetVersionInfo().Version,
		Environment:  cfg.RunMode,
		SamplingRate: obs.SamplingRate,
	}
}

func provideNavigator(errOut io.Writer, loc route, api *config.API) *navigator {
	return newNavigator(errOut, string(loc), api.LoginPath)
}

// newApp assembles the app and routes client 401s into the session
func newApp(cfg *config.Config, l *logger.Logger, c *client.Client, a *api.API, s *session.Session, posts *query.Posts, charts *query.Charts, nav *navigator, out *renderer) *app {
	c.SetUnauthorizedHandler(s.HandleUnauthorized)
	return &app{
		cfg:     cfg,
		log:     l,
		api:     a,
		session: s,
		posts:   posts,
		charts:  charts,
		nav:     nav,
		out:     out,
	}
}

// requireAuth fails private commands while the session is anonymous
func (a *app) requireAuth() error {
	if !a.session.IsAuthenticated() {
		return errNotLoggedIn
	}
	return nil
}

// withApp runs fn against a wired app, private commands require a session
func withApp(cmd *cobra.Command, opts *globalOptions, location string, private bool, fn func(ctx context.Context, a *app) error) error {
	logger.SetVersion(version.GetVersionInfo().Version)
	out := &renderer{w: cmd.OutOrStdout(), json: opts.json}
	a, cleanup, err := initializeApp(opts, route(location), cmd.ErrOrStderr(), out)
	if err != nil {
		return err
	}
	defer cleanup()
	a.session.Bootstrap(cmd.Context())
	a.log.Debugf(cmd.Context(), "%s at %s, session %s", cmd.Name(), location, a.session.State())
	if private {
		if err := a.requireAuth(); err != nil {
			return err
		}
	}
	return fn(cmd.Context(), a)
}
