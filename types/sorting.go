package types

// Order represents sorting direction.
type Order string

const (
	Ascending  Order = "asc"  // Ascending order
	Descending Order = "desc" // Descending order
)

// Valid reports whether o is a known direction.
func (o Order) Valid() bool {
	return o == Ascending || o == Descending
}

// SortField represents the post list sort key.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByTitle     SortField = "title"
)

// Valid reports whether f is a known sort field.
func (f SortField) Valid() bool {
	return f == SortByCreatedAt || f == SortByTitle
}
