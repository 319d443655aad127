package types

// CoffeeDataPoint one sample of a team's coffee series
type CoffeeDataPoint struct {
	Cups         float64 `json:"cups"`
	Bugs         float64 `json:"bugs"`
	Productivity float64 `json:"productivity"`
}

// CoffeeTeam team series
type CoffeeTeam struct {
	Team   string            `json:"team"`
	Series []CoffeeDataPoint `json:"series"`
}

// CoffeeConsumptionResponse /mock/coffee-consumption
type CoffeeConsumptionResponse struct {
	Teams []CoffeeTeam `json:"teams"`
}

// WeeklyMoodItem one week of mood shares
type WeeklyMoodItem struct {
	Week     string  `json:"week"`
	Happy    float64 `json:"happy"`
	Tired    float64 `json:"tired"`
	Stressed float64 `json:"stressed"`
}

// WeeklyMoodTrendResponse /mock/weekly-mood-trend
type WeeklyMoodTrendResponse = []WeeklyMoodItem

// TopCoffeeBrandItem brand popularity
type TopCoffeeBrandItem struct {
	Brand      string  `json:"brand"`
	Popularity float64 `json:"popularity"`
}

// TopCoffeeBrandsResponse /mock/top-coffee-brands
type TopCoffeeBrandsResponse = []TopCoffeeBrandItem
