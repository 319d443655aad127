package commands

import (
	"github.com/spf13/cobra"
)

// globalOptions persistent flags shared by every command
type globalOptions struct {
	configFile string
	baseURL    string
	lang       string
	json       bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "directional",
		Short:         "Bulletin board and coffee chart client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "conf", "c", "", "config file path")
	flags.StringVar(&opts.baseURL, "base-url", "", "api base url, overrides api.base_url")
	flags.StringVar(&opts.lang, "lang", "", "error message language (en, ko)")
	flags.BoolVar(&opts.json, "json", false, "print results as json")

	rootCmd.AddCommand(
		newLoginCommand(opts),
		newLogoutCommand(opts),
		newWhoamiCommand(opts),
		newHealthCommand(opts),
		newPostsCommand(opts),
		newChartsCommand(opts),
		newMockCommand(opts),
		NewVersionCommand(),
	)

	return rootCmd
}
