package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback.
// Partial-update handlers use it to merge optional request fields over stored values.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
