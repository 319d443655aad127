package query

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/kyunghoonkook/directional/ecode"
	"github.com/kyunghoonkook/directional/paging"
	"github.com/kyunghoonkook/directional/types"
	"github.com/kyunghoonkook/directional/validation"
)

type fakePosts struct {
	mu      sync.Mutex
	calls   map[string]int
	failing error
}

func newFakePosts() *fakePosts { return &fakePosts{calls: map[string]int{}} }

func (f *fakePosts) hit(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.failing
}

func (f *fakePosts) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakePosts) List(_ context.Context, p types.PostListParams) (*types.PostListResponse, error) {
	if err := f.hit("list"); err != nil {
		return nil, err
	}
	return &types.PostListResponse{Items: []types.Post{{ID: "1", Title: p.Search}}}, nil
}

func (f *fakePosts) Get(_ context.Context, id string) (*types.Post, error) {
	if err := f.hit("get"); err != nil {
		return nil, err
	}
	return &types.Post{ID: id}, nil
}

func (f *fakePosts) Create(_ context.Context, req types.PostCreateRequest) (*types.Post, error) {
	if err := f.hit("create"); err != nil {
		return nil, err
	}
	return &types.Post{ID: "new", Title: req.Title}, nil
}

func (f *fakePosts) Update(_ context.Context, id string, req types.PostUpdateRequest) (*types.Post, error) {
	if err := f.hit("update"); err != nil {
		return nil, err
	}
	return &types.Post{ID: id}, nil
}

func (f *fakePosts) Delete(context.Context, string) (*types.DeleteResponse, error) {
	if err := f.hit("delete"); err != nil {
		return nil, err
	}
	return &types.DeleteResponse{OK: true, Deleted: 1}, nil
}

func (f *fakePosts) DeleteAll(context.Context) (*types.DeleteResponse, error) {
	if err := f.hit("deleteAll"); err != nil {
		return nil, err
	}
	return &types.DeleteResponse{OK: true, Deleted: 3}, nil
}

func validCreate() types.PostCreateRequest {
	return types.PostCreateRequest{Title: "hello", Body: "world", Category: types.CategoryFree, Tags: []string{"go"}}
}

func TestListCachedPerParams(t *testing.T) {
	api := newFakePosts()
	posts := NewPosts(NewClient(nil), api)
	ctx := context.Background()

	p := paging.DefaultParams()
	_, _ = posts.List(ctx, p)
	_, _ = posts.List(ctx, p)
	if api.count("list") != 1 {
		t.Errorf("expected cached list, got %d loads", api.count("list"))
	}

	other := p
	other.Search = "coffee"
	page, err := posts.List(ctx, other)
	if err != nil || page.Items[0].Title != "coffee" {
		t.Fatalf("unexpected page %+v %v", page, err)
	}
	if api.count("list") != 2 {
		t.Errorf("different params should load, got %d", api.count("list"))
	}
}

func TestListRejectsInvalidParams(t *testing.T) {
	api := newFakePosts()
	posts := NewPosts(NewClient(nil), api)

	p := paging.DefaultParams()
	p.Order = "sideways"
	if _, err := posts.List(context.Background(), p); !ecode.Is(err, ecode.Validation) {
		t.Errorf("expected validation error, got %v", err)
	}
	if api.count("list") != 0 {
		t.Errorf("invalid params must not reach the api")
	}
}

func TestCreateInvalidatesLists(t *testing.T) {
	api := newFakePosts()
	qc := NewClient(nil)
	posts := NewPosts(qc, api)
	ctx := context.Background()

	first := paging.DefaultParams()
	second := paging.DefaultParams()
	second.Category = types.CategoryQnA
	second.Search = "coffee"
	lists := []paging.Params{first, second}

	for _, p := range lists {
		if _, err := posts.List(ctx, p); err != nil {
			t.Fatalf("list: %v", err)
		}
	}
	_, _ = posts.Get(ctx, "1")
	if api.count("list") != 2 {
		t.Fatalf("expected one load per params, got %d", api.count("list"))
	}

	if _, err := posts.Create(ctx, validCreate()); err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, p := range lists {
		if !qc.State(PostListKey(p)).Stale {
			t.Errorf("create should invalidate list %s", p.Key())
		}
	}

	for _, p := range lists {
		if _, err := posts.List(ctx, p); err != nil {
			t.Fatalf("list: %v", err)
		}
	}
	if api.count("list") != 4 {
		t.Errorf("expected every cached list to refetch after create, got %d loads", api.count("list"))
	}
}

func TestUpdateInvalidatesListAndDetail(t *testing.T) {
	api := newFakePosts()
	qc := NewClient(nil)
	posts := NewPosts(qc, api)
	ctx := context.Background()

	_, _ = posts.List(ctx, paging.DefaultParams())
	_, _ = qc.Fetch(ctx, PostDetailKey("1"), Options{StaleTime: Infinite}, func(context.Context) (any, error) { return "p", nil })
	_, _ = qc.Fetch(ctx, PostDetailKey("2"), Options{StaleTime: Infinite}, func(context.Context) (any, error) { return "p", nil })

	title := "new title"
	if _, err := posts.Update(ctx, "1", types.PostUpdateRequest{Title: &title}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !qc.State(PostListKey(paging.DefaultParams())).Stale || !qc.State(PostDetailKey("1")).Stale {
		t.Errorf("update should invalidate lists and its detail")
	}
	if qc.State(PostDetailKey("2")).Stale {
		t.Errorf("update must not touch other details")
	}
}

func TestFailedMutationDoesNotInvalidate(t *testing.T) {
	api := newFakePosts()
	qc := NewClient(nil)
	posts := NewPosts(qc, api)
	ctx := context.Background()

	_, _ = posts.List(ctx, paging.DefaultParams())
	api.failing = ecode.New(ecode.ServerErr)

	if _, err := posts.Create(ctx, validCreate()); !ecode.Is(err, ecode.ServerErr) {
		t.Fatalf("expected server error, got %v", err)
	}
	if _, err := posts.Delete(ctx, "1"); err == nil {
		t.Fatalf("expected delete error")
	}
	if qc.State(PostListKey(paging.DefaultParams())).Stale {
		t.Errorf("failed mutation must not invalidate")
	}
	if api.count("create") != 1 || api.count("delete") != 1 {
		t.Errorf("mutations must not be retried: %v", api.calls)
	}
}

func TestMutationValidationBlocksNetwork(t *testing.T) {
	api := newFakePosts()
	posts := NewPosts(NewClient(nil), api)
	ctx := context.Background()

	req := validCreate()
	req.Title = "join our 텔레그램 channel"
	_, err := posts.Create(ctx, req)
	if !ecode.Is(err, ecode.Validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var errs validation.Errors
	if !errors.As(err, &errs) || errs[validation.FieldTitle].Kind != validation.ForbiddenWord {
		t.Errorf("expected title forbidden word, got %v", err)
	}

	req = validCreate()
	req.Category = "BLOG"
	if _, err := posts.Create(ctx, req); !ecode.Is(err, ecode.Validation) {
		t.Errorf("expected category validation error, got %v", err)
	}

	body := strings.Repeat("a", 2001)
	if _, err := posts.Update(ctx, "1", types.PostUpdateRequest{Body: &body}); !ecode.Is(err, ecode.Validation) {
		t.Errorf("expected body validation error, got %v", err)
	}
	if _, err := posts.Update(ctx, "1", types.PostUpdateRequest{}); !ecode.Is(err, ecode.Validation) {
		t.Errorf("expected empty update to be rejected, got %v", err)
	}
	if _, err := posts.Delete(ctx, " "); !ecode.Is(err, ecode.Validation) {
		t.Errorf("expected id validation error, got %v", err)
	}

	for _, op := range []string{"create", "update", "delete"} {
		if api.count(op) != 0 {
			t.Errorf("%s reached the api despite validation failure", op)
		}
	}
}

func TestDeleteAllInvalidatesPosts(t *testing.T) {
	api := newFakePosts()
	qc := NewClient(nil)
	posts := NewPosts(qc, api)
	ctx := context.Background()

	_, _ = qc.Fetch(ctx, PostDetailKey("1"), Options{StaleTime: Infinite}, func(context.Context) (any, error) { return "p", nil })
	_, _ = qc.Fetch(ctx, ChartKey(ChartTopBrands), Options{StaleTime: Infinite}, func(context.Context) (any, error) { return "c", nil })

	resp, err := posts.DeleteAll(ctx)
	if err != nil || resp.Deleted != 3 {
		t.Fatalf("unexpected %v %v", resp, err)
	}
	if !qc.State(PostDetailKey("1")).Stale {
		t.Errorf("delete all should invalidate every post entry")
	}
	if qc.State(ChartKey(ChartTopBrands)).Stale {
		t.Errorf("delete all must not touch charts")
	}
}

type fakeCharts struct{ calls int }

func (f *fakeCharts) CoffeeConsumption(context.Context) (*types.CoffeeConsumptionResponse, error) {
	f.calls++
	return &types.CoffeeConsumptionResponse{Teams: []types.CoffeeTeam{{Team: "Frontend"}}}, nil
}

func (f *fakeCharts) WeeklyMoodTrend(context.Context) (types.WeeklyMoodTrendResponse, error) {
	f.calls++
	return types.WeeklyMoodTrendResponse{{Week: "2024-W01"}}, nil
}

func (f *fakeCharts) TopCoffeeBrands(context.Context) (types.TopCoffeeBrandsResponse, error) {
	f.calls++
	return types.TopCoffeeBrandsResponse{{Brand: "Starbucks"}}, nil
}

func TestChartsNeverStale(t *testing.T) {
	api := &fakeCharts{}
	charts := NewCharts(NewClient(nil), api)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := charts.CoffeeConsumption(ctx); err != nil {
			t.Fatalf("coffee: %v", err)
		}
		if _, err := charts.WeeklyMoodTrend(ctx); err != nil {
			t.Fatalf("mood: %v", err)
		}
		brands, err := charts.TopCoffeeBrands(ctx)
		if err != nil || brands[0].Brand != "Starbucks" {
			t.Fatalf("brands: %v %v", brands, err)
		}
	}
	if api.calls != 3 {
		t.Errorf("expected each chart loaded once, got %d", api.calls)
	}
}
