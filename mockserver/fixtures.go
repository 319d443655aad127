package mockserver

import (
	"fmt"
	"time"

	"github.com/kyunghoonkook/directional/consts"
	"github.com/kyunghoonkook/directional/types"
)

// DefaultAccounts the logins accepted by a fresh server
func DefaultAccounts() []Account {
	return []Account{
		{User: types.User{ID: "u_alice", Email: consts.DefaultEmail}, Password: consts.DefaultPassword},
		{User: types.User{ID: "u_bob", Email: "bob@example.com"}, Password: "bob1234"},
	}
}

var seedTitles = []struct {
	title    string
	category types.Category
	tags     []string
}{
	{"Office move schedule", types.CategoryNotice, []string{"office"}},
	{"How do I reset my VPN token?", types.CategoryQnA, []string{"vpn", "it"}},
	{"Lunch recommendations near the station", types.CategoryFree, []string{"lunch"}},
	{"Quarterly all-hands agenda", types.CategoryNotice, []string{"allhands"}},
	{"Best way to profile Go services?", types.CategoryQnA, []string{"go", "pprof"}},
	{"Weekend hiking club", types.CategoryFree, []string{"hiking", "club"}},
	{"Security training is mandatory", types.CategoryNotice, []string{"security"}},
	{"Coffee machine on 3F is broken", types.CategoryFree, []string{"coffee"}},
	{"Where are the design tokens documented?", types.CategoryQnA, []string{"design"}},
	{"Holiday calendar published", types.CategoryNotice, nil},
	{"Book club: next pick", types.CategoryFree, []string{"books"}},
	{"Can we get a second monitor?", types.CategoryQnA, []string{"hardware"}},
}

// seedPosts spreads the sample posts over the days before now, per account
func seedPosts(accounts []Account, now time.Time) []types.Post {
	posts := make([]types.Post, 0, len(accounts)*len(seedTitles)*2)
	for _, a := range accounts {
		n := 0
		for round := 0; round < 2; round++ {
			for _, s := range seedTitles {
				n++
				title := s.title
				if round > 0 {
					title = fmt.Sprintf("%s (%d)", s.title, round+1)
				}
				posts = append(posts, types.Post{
					ID:        fmt.Sprintf("%s_p%02d", a.User.ID, n),
					UserID:    a.User.ID,
					Title:     title,
					Body:      fmt.Sprintf("Details for %q posted by %s.", s.title, a.User.Email),
					Category:  s.category,
					Tags:      append([]string(nil), s.tags...),
					CreatedAt: now.Add(-time.Duration(n) * 6 * time.Hour).UTC().Truncate(time.Second),
				})
			}
		}
	}
	return posts
}

func coffeeConsumption() types.CoffeeConsumptionResponse {
	teams := []struct {
		name  string
		bugs  float64
		boost float64
	}{
		{"Frontend", 9, 52},
		{"Backend", 11, 48},
		{"AI", 7, 55},
	}
	resp := types.CoffeeConsumptionResponse{Teams: make([]types.CoffeeTeam, 0, len(teams))}
	for _, t := range teams {
		team := types.CoffeeTeam{Team: t.name}
		for cups := 1; cups <= 6; cups++ {
			team.Series = append(team.Series, types.CoffeeDataPoint{
				Cups:         float64(cups),
				Bugs:         t.bugs - float64(cups),
				Productivity: t.boost + float64(cups)*6,
			})
		}
		resp.Teams = append(resp.Teams, team)
	}
	return resp
}

func weeklyMoodTrend() types.WeeklyMoodTrendResponse {
	return types.WeeklyMoodTrendResponse{
		{Week: "2024-W10", Happy: 54, Tired: 31, Stressed: 15},
		{Week: "2024-W11", Happy: 48, Tired: 35, Stressed: 17},
		{Week: "2024-W12", Happy: 42, Tired: 33, Stressed: 25},
		{Week: "2024-W13", Happy: 58, Tired: 28, Stressed: 14},
		{Week: "2024-W14", Happy: 61, Tired: 26, Stressed: 13},
		{Week: "2024-W15", Happy: 50, Tired: 30, Stressed: 20},
	}
}

func topCoffeeBrands() types.TopCoffeeBrandsResponse {
	return types.TopCoffeeBrandsResponse{
		{Brand: "Starbucks", Popularity: 38},
		{Brand: "Blue Bottle", Popularity: 22},
		{Brand: "Mega Coffee", Popularity: 18},
		{Brand: "Paul Bassett", Popularity: 12},
		{Brand: "Ediya", Popularity: 10},
	}
}
