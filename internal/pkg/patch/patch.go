package patch

// Coalesce returns the value pointed to by ptr if it is not nil, otherwise
// fallback. PATCH endpoints use it to apply fields explicitly, one by one.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
