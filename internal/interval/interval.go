// Package interval classifies values of an ordered type against
// ranges: below, above, bounded on both sides, a single point,
// everything, or nothing.
//
// Every variant is immutable and every query is a total function,
// so intervals can be shared between goroutines freely. The Order
// given to a constructor must be a strict total order on T; values
// such as NaN that break that precondition give unspecified results.
package interval

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

const infinity = "∞"

type Interval[T any] interface {
	// IsValueBefore reports whether v lies before the interval, eg -2 is before [1,4].
	IsValueBefore(v T) bool
	// IsValueAfter reports whether v lies after the interval, eg 5 is after [1,4].
	IsValueAfter(v T) bool
	Contains(v T) bool
	// Closest projects v onto the interval.
	Closest(v T) T
	Kind() Kind
	fmt.Stringer
}

// Order returns a negative number when a < b, zero when a == b
// and a positive number when a > b.
type Order[T any] func(a, b T) int

func Natural[T constraints.Ordered]() Order[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}

func DecimalOrder(a, b decimal.Decimal) int {
	return a.Cmp(b)
}

func TimeOrder(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

type Kind int

const (
	KindUnboundedBelow Kind = iota
	KindUnboundedAbove
	KindBounded
	KindDegenerate
	KindAny
	KindNone
)

func (k Kind) String() string {
	switch k {
	case KindUnboundedBelow:
		return "unbounded-below"
	case KindUnboundedAbove:
		return "unbounded-above"
	case KindBounded:
		return "bounded"
	case KindDegenerate:
		return "degenerate"
	case KindAny:
		return "any"
	case KindNone:
		return "none"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type Region int

const (
	RegionBefore Region = iota
	RegionInside
	RegionAfter
	// RegionOutside is reported by the empty interval, which
	// treats every value as both before and after it.
	RegionOutside
)

func (r Region) String() string {
	switch r {
	case RegionBefore:
		return "before"
	case RegionInside:
		return "inside"
	case RegionAfter:
		return "after"
	case RegionOutside:
		return "outside"
	default:
		return fmt.Sprintf("Region(%d)", int(r))
	}
}

func Classify[T any](i Interval[T], v T) Region {
	if i.Contains(v) {
		return RegionInside
	}
	before, after := i.IsValueBefore(v), i.IsValueAfter(v)
	switch {
	case before && !after:
		return RegionBefore
	case after && !before:
		return RegionAfter
	default:
		return RegionOutside
	}
}

// ClosestOK is Closest with the empty interval reported as
// having no closest point instead of T's zero value.
func ClosestOK[T any](i Interval[T], v T) (T, bool) {
	if i.Kind() == KindNone {
		var zero T
		return zero, false
	}
	return i.Closest(v), true
}

type Option func(*options)

type options struct {
	format string
}

// WithFormat overrides how String renders the interval. The
// format receives the endpoints as fmt arguments.
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

func buildOptions(defaultFormat string, opts []Option) options {
	o := options{format: defaultFormat}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

var (
	_ Interval[int] = UnboundedBelow[int]{}
	_ Interval[int] = UnboundedAbove[int]{}
	_ Interval[int] = Bounded[int]{}
	_ Interval[int] = Degenerate[int]{}
	_ Interval[int] = Any[int]{}
	_ Interval[int] = None[int]{}
)
