package interval

// Any holds every value, (-∞,∞).
type Any[T any] struct{}

func (a Any[T]) IsValueBefore(v T) bool {
	return false
}

func (a Any[T]) IsValueAfter(v T) bool {
	return false
}

func (a Any[T]) Contains(v T) bool {
	return true
}

func (a Any[T]) Closest(v T) T {
	return v
}

func (a Any[T]) Kind() Kind {
	return KindAny
}

func (a Any[T]) String() string {
	return "(-" + infinity + "," + infinity + ")"
}

// None holds no value. Every value counts as both before and
// after it.
type None[T any] struct{}

func (n None[T]) IsValueBefore(v T) bool {
	return true
}

func (n None[T]) IsValueAfter(v T) bool {
	return true
}

func (n None[T]) Contains(v T) bool {
	return false
}

// Closest has no answer for an empty set and returns T's zero
// value. Use ClosestOK to tell it apart from a real projection.
func (n None[T]) Closest(v T) T {
	var zero T
	return zero
}

func (n None[T]) Kind() Kind {
	return KindNone
}

func (n None[T]) String() string {
	return "∅"
}
