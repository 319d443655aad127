package api

import (
	"context"

	"github.com/kyunghoonkook/directional/types"
)

// Charts chart data endpoints
type Charts struct {
	r Requester
}

// NewCharts creates the chart endpoints
func NewCharts(r Requester) *Charts { return &Charts{r: r} }

func (c *Charts) CoffeeConsumption(ctx context.Context) (*types.CoffeeConsumptionResponse, error) {
	var resp types.CoffeeConsumptionResponse
	if err := c.r.Get(ctx, "/mock/coffee-consumption", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Charts) WeeklyMoodTrend(ctx context.Context) (types.WeeklyMoodTrendResponse, error) {
	var resp types.WeeklyMoodTrendResponse
	if err := c.r.Get(ctx, "/mock/weekly-mood-trend", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Charts) TopCoffeeBrands(ctx context.Context) (types.TopCoffeeBrandsResponse, error) {
	var resp types.TopCoffeeBrandsResponse
	if err := c.r.Get(ctx, "/mock/top-coffee-brands", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
