package types

import "time"

// Category post category
type Category string

const (
	CategoryNotice Category = "NOTICE"
	CategoryQnA    Category = "QNA"
	CategoryFree   Category = "FREE"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryNotice, CategoryQnA, CategoryFree}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryNotice, CategoryQnA, CategoryFree:
		return true
	}
	return false
}

// User authenticated user profile
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Post bulletin-board post
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Category  Category  `json:"category"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginRequest login body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse login result
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// PostCreateRequest create post body
type PostCreateRequest struct {
	Title    string   `json:"title" validate:"required"`
	Body     string   `json:"body" validate:"required"`
	Category Category `json:"category" validate:"required,oneof=NOTICE QNA FREE"`
	Tags     []string `json:"tags,omitempty"`
}

// PostUpdateRequest partial update body, nil fields are not sent
type PostUpdateRequest struct {
	Title    *string   `json:"title,omitempty"`
	Body     *string   `json:"body,omitempty"`
	Category *Category `json:"category,omitempty" validate:"omitempty,oneof=NOTICE QNA FREE"`
	Tags     *[]string `json:"tags,omitempty"`
}

// Empty reports whether the update carries no fields.
func (r *PostUpdateRequest) Empty() bool {
	return r.Title == nil && r.Body == nil && r.Category == nil && r.Tags == nil
}

// PostListParams list query, encoded into the query string
type PostListParams struct {
	Limit      int       `url:"limit,omitempty" json:"limit,omitempty"`
	PrevCursor string    `url:"prevCursor,omitempty" json:"prevCursor,omitempty"`
	NextCursor string    `url:"nextCursor,omitempty" json:"nextCursor,omitempty"`
	Sort       SortField `url:"sort,omitempty" json:"sort,omitempty" validate:"omitempty,oneof=createdAt title"`
	Order      Order     `url:"order,omitempty" json:"order,omitempty" validate:"omitempty,oneof=asc desc"`
	Category   Category  `url:"category,omitempty" json:"category,omitempty" validate:"omitempty,oneof=NOTICE QNA FREE"`
	From       string    `url:"from,omitempty" json:"from,omitempty"`
	To         string    `url:"to,omitempty" json:"to,omitempty"`
	Search     string    `url:"search,omitempty" json:"search,omitempty"`
}

// PostListResponse list page. A nil cursor ends pagination in that direction.
type PostListResponse struct {
	Items      []Post  `json:"items"`
	NextCursor *string `json:"nextCursor"`
	PrevCursor *string `json:"prevCursor"`
}

// DeleteResponse delete result
type DeleteResponse struct {
	OK      bool `json:"ok"`
	Deleted int  `json:"deleted"`
}
