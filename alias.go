package retryuntil

// Alias is a handle to a value owned elsewhere. Use it when the callable's
// return type aliases external storage: the trigger set then holds handles
// rather than copies, and Matches compares the referents' current values
// instead of handle identity. The referent is never copied, so the underlying
// type does not need to be independently constructible.
type Alias[T comparable] struct {
	ref *T
}

// Ref wraps a pointer in an Alias.
func Ref[T comparable](p *T) Alias[T] {
	return Alias[T]{ref: p}
}

// Get returns the referent's current value.
func (a Alias[T]) Get() T {
	return *a.ref
}

func (a Alias[T]) referentEqual(other Alias[T]) bool {
	return *a.ref == *other.ref
}
