package interval

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// UnboundedBelow holds every value up to and including its
// endpoint, (-∞,e].
type UnboundedBelow[T any] struct {
	endpoint T
	order    Order[T]
	format   string
}

func NewUnboundedBelow[T constraints.Ordered](endpoint T, opts ...Option) UnboundedBelow[T] {
	return NewUnboundedBelowFunc(endpoint, Natural[T](), opts...)
}

func NewUnboundedBelowFunc[T any](endpoint T, order Order[T], opts ...Option) UnboundedBelow[T] {
	o := buildOptions("(-"+infinity+",%v]", opts)
	return UnboundedBelow[T]{
		endpoint: endpoint,
		order:    order,
		format:   o.format,
	}
}

func (i UnboundedBelow[T]) Endpoint() T {
	return i.endpoint
}

func (i UnboundedBelow[T]) IsValueBefore(v T) bool {
	return false
}

func (i UnboundedBelow[T]) IsValueAfter(v T) bool {
	return !i.Contains(v)
}

func (i UnboundedBelow[T]) Contains(v T) bool {
	return i.order(v, i.endpoint) <= 0
}

func (i UnboundedBelow[T]) Closest(v T) T {
	if i.Contains(v) {
		return v
	}
	return i.endpoint
}

func (i UnboundedBelow[T]) Kind() Kind {
	return KindUnboundedBelow
}

func (i UnboundedBelow[T]) String() string {
	return fmt.Sprintf(i.format, i.endpoint)
}

// UnboundedAbove holds every value from its endpoint on, [e,∞).
type UnboundedAbove[T any] struct {
	endpoint T
	order    Order[T]
	format   string
}

func NewUnboundedAbove[T constraints.Ordered](endpoint T, opts ...Option) UnboundedAbove[T] {
	return NewUnboundedAboveFunc(endpoint, Natural[T](), opts...)
}

func NewUnboundedAboveFunc[T any](endpoint T, order Order[T], opts ...Option) UnboundedAbove[T] {
	o := buildOptions("[%v,"+infinity+")", opts)
	return UnboundedAbove[T]{
		endpoint: endpoint,
		order:    order,
		format:   o.format,
	}
}

func (i UnboundedAbove[T]) Endpoint() T {
	return i.endpoint
}

func (i UnboundedAbove[T]) IsValueBefore(v T) bool {
	return !i.Contains(v)
}

func (i UnboundedAbove[T]) IsValueAfter(v T) bool {
	return false
}

func (i UnboundedAbove[T]) Contains(v T) bool {
	return i.order(v, i.endpoint) >= 0
}

func (i UnboundedAbove[T]) Closest(v T) T {
	if i.Contains(v) {
		return v
	}
	return i.endpoint
}

func (i UnboundedAbove[T]) Kind() Kind {
	return KindUnboundedAbove
}

func (i UnboundedAbove[T]) String() string {
	return fmt.Sprintf(i.format, i.endpoint)
}
