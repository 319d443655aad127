package types

// ToPointer returns a pointer to a copy of v, handy for the optional fields
// of PostUpdateRequest.
func ToPointer[T any](v T) *T {
	return &v
}
