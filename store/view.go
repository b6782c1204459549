package store

// View is a derived, read-only projection over a Store. The projection is a
// pure function recomputed on every read or change; a View is never
// independently mutable.
type View[T, U any] struct {
	src     *Store[T]
	project func(T) U
}

func Derive[T, U any](src *Store[T], project func(T) U) *View[T, U] {
	return &View[T, U]{src: src, project: project}
}

// Get projects the source's current snapshot.
func (v *View[T, U]) Get() U {
	return v.project(v.src.Get())
}

// Subscribe observes the source, projecting every snapshot. Like
// Store.Subscribe it fires immediately and returns a cancel function.
func (v *View[T, U]) Subscribe(fn func(U)) (cancel func()) {
	return v.src.Subscribe(func(t T) { fn(v.project(t)) })
}
