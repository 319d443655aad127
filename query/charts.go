package query

import (
	"context"

	"github.com/kyunghoonkook/directional/types"
)

// Chart cache names
const (
	ChartCoffeeConsumption = "coffee-consumption"
	ChartWeeklyMood        = "weekly-mood"
	ChartTopBrands         = "top-brands"
)

// ChartsAPI is the chart transport, satisfied by *api.Charts
type ChartsAPI interface {
	CoffeeConsumption(ctx context.Context) (*types.CoffeeConsumptionResponse, error)
	WeeklyMoodTrend(ctx context.Context) (types.WeeklyMoodTrendResponse, error)
	TopCoffeeBrands(ctx context.Context) (types.TopCoffeeBrandsResponse, error)
}

// Charts chart queries. Chart data never goes stale.
type Charts struct {
	c   *Client
	api ChartsAPI
}

func NewCharts(c *Client, api ChartsAPI) *Charts {
	return &Charts{c: c, api: api}
}

func (ch *Charts) CoffeeConsumption(ctx context.Context) (*types.CoffeeConsumptionResponse, error) {
	return Get(ctx, ch.c, ChartKey(ChartCoffeeConsumption), Options{StaleTime: Infinite}, ch.api.CoffeeConsumption)
}

func (ch *Charts) WeeklyMoodTrend(ctx context.Context) (types.WeeklyMoodTrendResponse, error) {
	return Get(ctx, ch.c, ChartKey(ChartWeeklyMood), Options{StaleTime: Infinite}, ch.api.WeeklyMoodTrend)
}

func (ch *Charts) TopCoffeeBrands(ctx context.Context) (types.TopCoffeeBrandsResponse, error) {
	return Get(ctx, ch.c, ChartKey(ChartTopBrands), Options{StaleTime: Infinite}, ch.api.TopCoffeeBrands)
}
