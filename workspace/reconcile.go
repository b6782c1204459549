package workspace

// replaceByID swaps the record whose id matches for the server's canonical
// record; non-matching records pass through unchanged, preserving order.
func replaceByID[T any](list []T, id string, canonical T, idOf func(T) string) []T {
	out := make([]T, len(list))
	for i, rec := range list {
		if idOf(rec) == id {
			out[i] = canonical
		} else {
			out[i] = rec
		}
	}
	return out
}

// removeByID filters out the record whose id matches without reordering the
// remainder.
func removeByID[T any](list []T, id string, idOf func(T) string) []T {
	out := make([]T, 0, len(list))
	for _, rec := range list {
		if idOf(rec) != id {
			out = append(out, rec)
		}
	}
	return out
}
