package ptr

// Ptr returns a pointer to v. Handy for optional filter fields.
func Ptr[T any](v T) *T {
	return &v
}
