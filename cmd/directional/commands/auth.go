package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/kyunghoonkook/directional/consts"
	"github.com/kyunghoonkook/directional/session"
	"github.com/kyunghoonkook/directional/types"
	"github.com/spf13/cobra"
)

func newLoginCommand(opts *globalOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, consts.LoginPath, false, func(ctx context.Context, a *app) error {
				user, err := a.session.Login(ctx, email, password)
				if err != nil {
					return err
				}
				if a.out.json {
					return a.out.User(user)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", user.Email)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", consts.DefaultEmail, "account email")
	cmd.Flags().StringVarP(&password, "password", "p", consts.DefaultPassword, "account password")
	return cmd
}

func newLogoutCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, "/", false, func(ctx context.Context, a *app) error {
				if err := a.session.Logout(ctx); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "logged out")
				return err
			})
		},
	}
}

func newWhoamiCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, "/", true, func(ctx context.Context, a *app) error {
				user := a.session.User()
				if err := a.out.User(user); err != nil {
					return err
				}
				if a.out.json {
					return nil
				}
				exp, err := a.session.TokenExpiry()
				if errors.Is(err, session.ErrNoExpiry) {
					return nil
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "token expires %s\n", types.FormatTime(exp))
				return err
			})
		},
	}
}

func newHealthCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the api is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, "/", false, func(ctx context.Context, a *app) error {
				if err := a.api.Auth.Health(ctx); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", a.cfg.API.BaseURL)
				return err
			})
		},
	}
}
