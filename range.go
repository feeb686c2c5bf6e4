package validate

import (
	"cmp"
	"context"
)

// Bound is an optional range bound: absent, a literal value, or deferred
// through a function evaluated once per check (supports dynamic bounds such
// as "now").
type Bound[T cmp.Ordered] struct {
	value   T
	fn      func() T
	present bool
}

// Literal returns a fixed bound.
func Literal[T cmp.Ordered](v T) Bound[T] {
	return Bound[T]{value: v, present: true}
}

// Deferred returns a bound resolved by calling fn at validation time.
func Deferred[T cmp.Ordered](fn func() T) Bound[T] {
	return Bound[T]{fn: fn, present: true}
}

// resolve evaluates the bound. Deferred bounds are re-evaluated on every
// call; memoizing them would defeat their purpose.
func (b Bound[T]) resolve() T {
	if b.fn != nil {
		return b.fn()
	}
	return b.value
}

// Range validates that a value lies within an optional bound pair. Bounds
// default to min-inclusive, max-exclusive, matching conventional integer
// ranges.
type Range[T cmp.Ordered] struct {
	min       Bound[T]
	max       Bound[T]
	incMin    bool
	incMax    bool
	message   string
	translate TranslateFunc
}

// RangeOption configures a Range validator.
type RangeOption[T cmp.Ordered] func(*Range[T])

// WithMin sets a literal minimum bound.
func WithMin[T cmp.Ordered](v T) RangeOption[T] {
	return func(r *Range[T]) { r.min = Literal(v) }
}

// WithMinFunc sets a deferred minimum bound.
func WithMinFunc[T cmp.Ordered](fn func() T) RangeOption[T] {
	return func(r *Range[T]) { r.min = Deferred(fn) }
}

// WithMax sets a literal maximum bound.
func WithMax[T cmp.Ordered](v T) RangeOption[T] {
	return func(r *Range[T]) { r.max = Literal(v) }
}

// WithMaxFunc sets a deferred maximum bound.
func WithMaxFunc[T cmp.Ordered](fn func() T) RangeOption[T] {
	return func(r *Range[T]) { r.max = Deferred(fn) }
}

// WithInclusive controls boundary inclusivity for the minimum and maximum.
func WithInclusive[T cmp.Ordered](includeMin, includeMax bool) RangeOption[T] {
	return func(r *Range[T]) {
		r.incMin = includeMin
		r.incMax = includeMax
	}
}

// WithRangeMessage overrides the synthesized failure message. The message
// may reference {{min}} and {{max}} placeholders.
func WithRangeMessage[T cmp.Ordered](message string) RangeOption[T] {
	return func(r *Range[T]) { r.message = message }
}

// WithRangeTranslator sets the translation hook for failure messages.
func WithRangeTranslator[T cmp.Ordered](translate TranslateFunc) RangeOption[T] {
	return func(r *Range[T]) { r.translate = translate }
}

// NewRange builds a Range validator. Without options every value passes.
func NewRange[T cmp.Ordered](opts ...RangeOption[T]) *Range[T] {
	r := &Range[T]{
		incMin:    true,
		incMax:    false,
		translate: NoopTranslate,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Validate checks that value satisfies every configured bound. The value is
// returned unchanged; on failure the error is a *Error with a synthesized
// or configured message.
func (r *Range[T]) Validate(_ context.Context, value T) (T, error) {
	var minVal, maxVal T
	if r.min.present {
		minVal = r.min.resolve()
	}
	if r.max.present {
		maxVal = r.max.resolve()
	}

	ok := true
	if r.min.present {
		if r.incMin {
			ok = value >= minVal
		} else {
			ok = value > minVal
		}
	}
	if ok && r.max.present {
		if r.incMax {
			ok = value <= maxVal
		} else {
			ok = value < maxVal
		}
	}
	if ok {
		return value, nil
	}
	return value, r.rangeError(minVal, maxVal)
}

func (r *Range[T]) rangeError(minVal, maxVal T) error {
	message := r.message
	key := "validation.range"
	switch {
	case message != "":
	case r.min.present && r.max.present:
		message = "Enter a value between {{min}} and {{max}}"
		key = "validation.range.between"
	case r.min.present:
		message = "Enter a value greater than or equal to {{min}}"
		key = "validation.range.min"
	case r.max.present:
		message = "Enter a value less than or equal to {{max}}"
		key = "validation.range.max"
	default:
		message = "Enter a value"
	}

	values := map[string]any{}
	if r.min.present {
		values["min"] = minVal
	}
	if r.max.present {
		// Integer maximums display one lower, the exclusive-range
		// convention. Applies regardless of the inclusivity flag.
		values["max"] = displayMax(maxVal)
	}
	return newError(r.translate, message, key, values)
}

// displayMax decrements integer maximums for display. Non-integer types are
// returned unchanged.
func displayMax[T cmp.Ordered](v T) any {
	switch n := any(v).(type) {
	case int:
		return n - 1
	case int8:
		return n - 1
	case int16:
		return n - 1
	case int32:
		return n - 1
	case int64:
		return n - 1
	case uint:
		return n - 1
	case uint8:
		return n - 1
	case uint16:
		return n - 1
	case uint32:
		return n - 1
	case uint64:
		return n - 1
	}
	return v
}
