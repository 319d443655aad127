package mockserver

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kyunghoonkook/directional/nanoid"
	"github.com/kyunghoonkook/directional/paging"
	"github.com/kyunghoonkook/directional/resp"
	"github.com/kyunghoonkook/directional/types"
	"github.com/kyunghoonkook/directional/validation"
)

func newID() string {
	return nanoid.Lower(12)
}

// listQuery parsed list parameters
type listQuery struct {
	limit    int
	sort     types.SortField
	order    types.Order
	category types.Category
	search   string
	from     time.Time
	to       time.Time // exclusive
	next     string
	prev     string
}

func parseListQuery(c *gin.Context) (*listQuery, *resp.Exception) {
	q := &listQuery{
		sort:     types.SortField(c.DefaultQuery("sort", string(types.SortByCreatedAt))),
		order:    types.Order(c.DefaultQuery("order", string(types.Descending))),
		category: types.Category(c.Query("category")),
		search:   strings.ToLower(strings.TrimSpace(c.Query("search"))),
		next:     c.Query("nextCursor"),
		prev:     c.Query("prevCursor"),
	}

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, resp.BadRequest("limit must be a number")
		}
		q.limit = n
	}
	q.limit = paging.NormalizeLimit(q.limit)

	if !q.sort.Valid() {
		return nil, resp.BadRequest("sort must be createdAt or title")
	}
	if !q.order.Valid() {
		return nil, resp.BadRequest("order must be asc or desc")
	}
	if q.category != "" && !q.category.Valid() {
		return nil, resp.BadRequest("category must be one of NOTICE, QNA, FREE")
	}
	if q.next != "" && q.prev != "" {
		return nil, resp.BadRequest("nextCursor and prevCursor are mutually exclusive")
	}

	if raw := c.Query("from"); raw != "" {
		t, err := types.ParseLocalTime(raw)
		if err != nil {
			return nil, resp.BadRequest("from must be a date")
		}
		q.from = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := types.ParseLocalTime(raw)
		if err != nil {
			return nil, resp.BadRequest("to must be a date")
		}
		if len(raw) <= len("2006-01-02") {
			t = t.AddDate(0, 0, 1)
		}
		q.to = t
	}
	return q, nil
}

func (q *listQuery) match(p types.Post) bool {
	if q.category != "" && p.Category != q.category {
		return false
	}
	if q.search != "" &&
		!strings.Contains(strings.ToLower(p.Title), q.search) &&
		!strings.Contains(strings.ToLower(p.Body), q.search) {
		return false
	}
	if !q.from.IsZero() && p.CreatedAt.Before(q.from) {
		return false
	}
	if !q.to.IsZero() && !p.CreatedAt.Before(q.to) {
		return false
	}
	return true
}

func (q *listQuery) compare(a, b types.Post) int {
	var c int
	switch q.sort {
	case types.SortByTitle:
		c = strings.Compare(a.Title, b.Title)
	default:
		c = a.CreatedAt.Compare(b.CreatedAt)
	}
	if c == 0 {
		c = strings.Compare(a.ID, b.ID)
	}
	if q.order == types.Descending {
		return -c
	}
	return c
}

func (s *Server) listPosts(c *gin.Context) {
	q, ex := parseListQuery(c)
	if ex != nil {
		resp.Fail(c.Writer, ex)
		return
	}
	user := currentUser(c)

	s.mu.RLock()
	items := make([]types.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if p.UserID == user.ID && q.match(p) {
			items = append(items, p)
		}
	}
	s.mu.RUnlock()
	slices.SortFunc(items, q.compare)

	start := 0
	switch {
	case q.next != "":
		offset, err := paging.DecodeCursor(q.next)
		if err != nil {
			resp.Fail(c.Writer, resp.BadRequest("invalid nextCursor"))
			return
		}
		start = offset
	case q.prev != "":
		end, err := paging.DecodeCursor(q.prev)
		if err != nil {
			resp.Fail(c.Writer, resp.BadRequest("invalid prevCursor"))
			return
		}
		start = max(end-q.limit, 0)
	}
	start = min(start, len(items))
	end := min(start+q.limit, len(items))

	page := types.PostListResponse{Items: items[start:end]}
	if end < len(items) {
		next := paging.EncodeCursor(end)
		page.NextCursor = &next
	}
	if start > 0 {
		prev := paging.EncodeCursor(start)
		page.PrevCursor = &prev
	}
	resp.Success(c.Writer, page)
}

// findLocked returns the index of the user's post id, -1 if absent
func (s *Server) findLocked(userID, id string) int {
	return slices.IndexFunc(s.posts, func(p types.Post) bool {
		return p.ID == id && p.UserID == userID
	})
}

func (s *Server) getPost(c *gin.Context) {
	user := currentUser(c)
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.findLocked(user.ID, c.Param("id"))
	if i < 0 {
		resp.Fail(c.Writer, resp.NotFound("post not found"))
		return
	}
	resp.Success(c.Writer, s.posts[i])
}

func (s *Server) createPost(c *gin.Context) {
	var req types.PostCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("invalid request body"))
		return
	}
	if errs := validation.ValidatePost(req.Title, req.Body, req.Tags); len(errs) > 0 {
		resp.Fail(c.Writer, resp.BadRequest(errs.Error(), fieldErrors(errs)))
		return
	}
	if !req.Category.Valid() {
		resp.Fail(c.Writer, resp.BadRequest("category must be one of NOTICE, QNA, FREE"))
		return
	}

	post := types.Post{
		ID:        newID(),
		UserID:    currentUser(c).ID,
		Title:     strings.TrimSpace(req.Title),
		Body:      strings.TrimSpace(req.Body),
		Category:  req.Category,
		Tags:      normalizeTags(req.Tags),
		CreatedAt: s.now().UTC(),
	}
	s.mu.Lock()
	s.posts = append(s.posts, post)
	s.mu.Unlock()
	resp.Success(c.Writer, post, http.StatusCreated)
}

func (s *Server) updatePost(c *gin.Context) {
	var req types.PostUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("invalid request body"))
		return
	}
	if errs := validation.ValidatePatch(req.Title, req.Body, req.Tags); len(errs) > 0 {
		resp.Fail(c.Writer, resp.BadRequest(errs.Error(), fieldErrors(errs)))
		return
	}
	if req.Category != nil && !req.Category.Valid() {
		resp.Fail(c.Writer, resp.BadRequest("category must be one of NOTICE, QNA, FREE"))
		return
	}

	user := currentUser(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findLocked(user.ID, c.Param("id"))
	if i < 0 {
		resp.Fail(c.Writer, resp.NotFound("post not found"))
		return
	}
	post := s.posts[i]
	if req.Title != nil {
		post.Title = strings.TrimSpace(*req.Title)
	}
	if req.Body != nil {
		post.Body = strings.TrimSpace(*req.Body)
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Tags != nil {
		post.Tags = normalizeTags(*req.Tags)
	}
	s.posts[i] = post
	resp.Success(c.Writer, post)
}

func (s *Server) deletePost(c *gin.Context) {
	user := currentUser(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findLocked(user.ID, c.Param("id"))
	if i < 0 {
		resp.Fail(c.Writer, resp.NotFound("post not found"))
		return
	}
	s.posts = slices.Delete(s.posts, i, i+1)
	resp.Success(c.Writer, types.DeleteResponse{OK: true, Deleted: 1})
}

func (s *Server) deleteAllPosts(c *gin.Context) {
	user := currentUser(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.posts)
	s.posts = slices.DeleteFunc(s.posts, func(p types.Post) bool { return p.UserID == user.ID })
	resp.Success(c.Writer, types.DeleteResponse{OK: true, Deleted: before - len(s.posts)})
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func fieldErrors(errs validation.Errors) map[string]string {
	out := make(map[string]string, len(errs))
	for field, err := range errs {
		out[field] = string(err.Kind)
	}
	return out
}
