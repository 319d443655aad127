package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

const visualizationPath = "/visualization"

var chartNames = []string{"coffee", "mood", "brands"}

func newChartsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "charts [coffee|mood|brands]",
		Short:     "Show the coffee dashboards, all of them without an argument",
		ValidArgs: chartNames,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := chartNames
			if len(args) == 1 {
				names = args
			}
			return withApp(cmd, opts, visualizationPath, true, func(ctx context.Context, a *app) error {
				for i, name := range names {
					if i > 0 && !a.out.json {
						fmt.Fprintln(cmd.OutOrStdout())
					}
					if err := renderChart(ctx, a, name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func renderChart(ctx context.Context, a *app, name string) error {
	switch name {
	case "coffee":
		res, err := a.charts.CoffeeConsumption(ctx)
		if err != nil {
			return err
		}
		return a.out.CoffeeConsumption(res)
	case "mood":
		res, err := a.charts.WeeklyMoodTrend(ctx)
		if err != nil {
			return err
		}
		return a.out.WeeklyMood(res)
	case "brands":
		res, err := a.charts.TopCoffeeBrands(ctx)
		if err != nil {
			return err
		}
		return a.out.TopBrands(res)
	}
	return fmt.Errorf("unknown chart %q", name)
}
