package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/kyunghoonkook/directional/consts"
	"github.com/kyunghoonkook/directional/types"
)

// renderer prints command results as tables or json
type renderer struct {
	w    io.Writer
	json bool
}

func (r *renderer) writeJSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func categoryLabel(c types.Category) string {
	if label, ok := consts.CategoryLabels[string(c)]; ok {
		return label
	}
	return string(c)
}

func (r *renderer) User(u *types.User) error {
	if r.json {
		return r.writeJSON(u)
	}
	_, err := fmt.Fprintf(r.w, "%s (%s)\n", u.Email, u.ID)
	return err
}

// PostList prints one page followed by its cursors
func (r *renderer) PostList(page *types.PostListResponse) error {
	if r.json {
		return r.writeJSON(page)
	}
	if len(page.Items) == 0 {
		_, err := fmt.Fprintln(r.w, "no posts")
		return err
	}
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tTITLE\tTAGS\tCREATED")
	for _, p := range page.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			p.ID, categoryLabel(p.Category), p.Title, strings.Join(p.Tags, ","), types.FormatTime(p.CreatedAt))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if page.PrevCursor != nil {
		fmt.Fprintf(r.w, "prev: %s\n", *page.PrevCursor)
	}
	if page.NextCursor != nil {
		fmt.Fprintf(r.w, "next: %s\n", *page.NextCursor)
	}
	return nil
}

func (r *renderer) Post(p *types.Post) error {
	if r.json {
		return r.writeJSON(p)
	}
	fmt.Fprintf(r.w, "[%s] %s\n", categoryLabel(p.Category), p.Title)
	fmt.Fprintf(r.w, "id: %s  author: %s  created: %s\n", p.ID, p.UserID, types.FormatTime(p.CreatedAt))
	if len(p.Tags) > 0 {
		fmt.Fprintf(r.w, "tags: #%s\n", strings.Join(p.Tags, " #"))
	}
	_, err := fmt.Fprintf(r.w, "\n%s\n", p.Body)
	return err
}

func (r *renderer) Deleted(res *types.DeleteResponse) error {
	if r.json {
		return r.writeJSON(res)
	}
	_, err := fmt.Fprintf(r.w, "deleted %d post(s)\n", res.Deleted)
	return err
}

func (r *renderer) CoffeeConsumption(res *types.CoffeeConsumptionResponse) error {
	if r.json {
		return r.writeJSON(res)
	}
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TEAM\tCUPS\tBUGS\tPRODUCTIVITY")
	for _, team := range res.Teams {
		for _, p := range team.Series {
			fmt.Fprintf(tw, "%s\t%g\t%g\t%g\n", team.Team, p.Cups, p.Bugs, p.Productivity)
		}
	}
	return tw.Flush()
}

func (r *renderer) WeeklyMood(res types.WeeklyMoodTrendResponse) error {
	if r.json {
		return r.writeJSON(res)
	}
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WEEK\tHAPPY\tTIRED\tSTRESSED")
	for _, m := range res {
		fmt.Fprintf(tw, "%s\t%g%%\t%g%%\t%g%%\n", m.Week, m.Happy, m.Tired, m.Stressed)
	}
	return tw.Flush()
}

func (r *renderer) TopBrands(res types.TopCoffeeBrandsResponse) error {
	if r.json {
		return r.writeJSON(res)
	}
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BRAND\tPOPULARITY")
	for _, b := range res {
		fmt.Fprintf(tw, "%s\t%g\n", b.Brand, b.Popularity)
	}
	return tw.Flush()
}
