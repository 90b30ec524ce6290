package interval

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Bounded is the closed interval [lower,upper], kept as the
// intersection of [lower,∞) and (-∞,upper].
type Bounded[T any] struct {
	lower  UnboundedAbove[T]
	upper  UnboundedBelow[T]
	format string
}

// NewBounded swaps reversed endpoints so lower <= upper always holds.
func NewBounded[T constraints.Ordered](lower, upper T, opts ...Option) Bounded[T] {
	return NewBoundedFunc(lower, upper, Natural[T](), opts...)
}

func NewBoundedFunc[T any](lower, upper T, order Order[T], opts ...Option) Bounded[T] {
	if order(lower, upper) > 0 {
		lower, upper = upper, lower
	}
	return NewBoundedFromParts(
		NewUnboundedAboveFunc(lower, order),
		NewUnboundedBelowFunc(upper, order),
		opts...,
	)
}

// NewBoundedFromParts composes existing half intervals as is.
// The caller guarantees lower's endpoint is not past upper's.
func NewBoundedFromParts[T any](lower UnboundedAbove[T], upper UnboundedBelow[T], opts ...Option) Bounded[T] {
	o := buildOptions("[%v,%v]", opts)
	return Bounded[T]{
		lower:  lower,
		upper:  upper,
		format: o.format,
	}
}

func (i Bounded[T]) Lower() T {
	return i.lower.Endpoint()
}

func (i Bounded[T]) Upper() T {
	return i.upper.Endpoint()
}

func (i Bounded[T]) IsValueBefore(v T) bool {
	return i.lower.IsValueBefore(v)
}

func (i Bounded[T]) IsValueAfter(v T) bool {
	return i.upper.IsValueAfter(v)
}

func (i Bounded[T]) Contains(v T) bool {
	return i.lower.Contains(v) && i.upper.Contains(v)
}

func (i Bounded[T]) Closest(v T) T {
	if !i.lower.Contains(v) {
		return i.lower.Endpoint()
	}
	if !i.upper.Contains(v) {
		return i.upper.Endpoint()
	}
	return v
}

func (i Bounded[T]) Kind() Kind {
	return KindBounded
}

func (i Bounded[T]) String() string {
	return fmt.Sprintf(i.format, i.Lower(), i.Upper())
}

// Degenerate holds exactly one value, [e,e].
type Degenerate[T any] struct {
	endpoint T
	order    Order[T]
	format   string
}

func NewDegenerate[T constraints.Ordered](endpoint T, opts ...Option) Degenerate[T] {
	return NewDegenerateFunc(endpoint, Natural[T](), opts...)
}

func NewDegenerateFunc[T any](endpoint T, order Order[T], opts ...Option) Degenerate[T] {
	o := buildOptions("[%[1]v,%[1]v]", opts)
	return Degenerate[T]{
		endpoint: endpoint,
		order:    order,
		format:   o.format,
	}
}

func (i Degenerate[T]) Endpoint() T {
	return i.endpoint
}

func (i Degenerate[T]) IsValueBefore(v T) bool {
	return i.order(v, i.endpoint) < 0
}

func (i Degenerate[T]) IsValueAfter(v T) bool {
	return i.order(v, i.endpoint) > 0
}

func (i Degenerate[T]) Contains(v T) bool {
	return i.order(v, i.endpoint) == 0
}

func (i Degenerate[T]) Closest(v T) T {
	return i.endpoint
}

func (i Degenerate[T]) Kind() Kind {
	return KindDegenerate
}

func (i Degenerate[T]) String() string {
	return fmt.Sprintf(i.format, i.endpoint)
}
