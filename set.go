package validate

import (
	"context"
	"slices"
	"strings"
)

// Set validates that a value, or each value of a multiple selection,
// belongs to a fixed allowed set. Items are compared by their string form.
type Set struct {
	items     []string
	labels    []string
	multiple  bool
	minCount  int
	maxCount  int
	bounded   bool
	zeroLabel string
	hasZero   bool
	sort      func(a, b Choice) int
	message   string
	translate TranslateFunc
}

// SetOption configures a Set validator.
type SetOption func(*Set)

// WithLabels sets display labels positionally matching the allowed items.
// The labels slice must have the same length as the item set.
func WithLabels(labels []string) SetOption {
	return func(s *Set) { s.labels = labels }
}

// WithMultiple switches the validator into multiple-selection mode: the
// input is normalized into a list and every element must belong to the set.
func WithMultiple() SetOption {
	return func(s *Set) { s.multiple = true }
}

// WithSelectionBounds enables multiple mode with a cardinality bound: the
// number of selected values must satisfy min <= count < max.
func WithSelectionBounds(minCount, maxCount int) SetOption {
	return func(s *Set) {
		s.multiple = true
		s.bounded = true
		s.minCount = minCount
		s.maxCount = maxCount
	}
}

// WithZero configures the label of an empty sentinel choice prepended by
// Options in single mode, e.g. "-- select --".
func WithZero(label string) SetOption {
	return func(s *Set) {
		s.zeroLabel = label
		s.hasZero = true
	}
}

// WithSort enables stable label ordering of Options output.
func WithSort() SetOption {
	return func(s *Set) { s.sort = CompareChoiceLabels }
}

// WithSortFunc enables stable ordering of Options output with a custom
// comparison.
func WithSortFunc(cmp func(a, b Choice) int) SetOption {
	return func(s *Set) { s.sort = cmp }
}

// WithSetMessage overrides the default failure message.
func WithSetMessage(message string) SetOption {
	return func(s *Set) { s.message = message }
}

// WithSetTranslator sets the translation hook for failure messages.
func WithSetTranslator(translate TranslateFunc) SetOption {
	return func(s *Set) { s.translate = translate }
}

// NewSet builds a Set validator over the given allowed items.
func NewSet(items []string, opts ...SetOption) *Set {
	s := &Set{
		items:     items,
		message:   "Invalid value",
		translate: NoopTranslate,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSetOf builds a Set validator from items of any type, normalized to
// their string form.
func NewSetOf[T any](items []T, opts ...SetOption) *Set {
	normalized := make([]string, len(items))
	for i, item := range items {
		normalized[i] = stringify(item)
	}
	return NewSet(normalized, opts...)
}

// NewLabeledSet builds a Set validator from (value, label) pairs, splitting
// them into parallel item and label sequences.
func NewLabeledSet(choices []Choice, opts ...SetOption) *Set {
	items := make([]string, len(choices))
	labels := make([]string, len(choices))
	for i, c := range choices {
		items[i] = c.Value
		labels[i] = c.Label
	}
	return NewSet(items, append([]SetOption{WithLabels(labels)}, opts...)...)
}

// Validate checks set membership. In single mode the value is returned
// unchanged on success. In multiple mode the value is normalized into a
// list; an empty original value is a valid empty selection and short-
// circuits both the membership and the cardinality checks.
func (s *Set) Validate(_ context.Context, value any) (any, error) {
	if !s.multiple {
		if s.contains(stringify(value)) || len(s.items) == 0 {
			return value, nil
		}
		return value, s.setError()
	}

	if isEmptyValue(value) {
		return []any{}, nil
	}

	values := normalizeValues(value)
	if len(s.items) > 0 {
		for _, v := range values {
			if !s.contains(stringify(v)) {
				return value, s.setError()
			}
		}
	}
	if s.bounded && !(s.minCount <= len(values) && len(values) < s.maxCount) {
		return values, s.countError(len(values))
	}
	return values, nil
}

// Options returns the allowed items as ordered (value, label) choices.
// Labels default to the item itself. When a zero label is configured and
// the set is not in multiple mode, a ("", zeroLabel) sentinel is prepended
// unless includeZero is false.
func (s *Set) Options(includeZero bool) []Choice {
	choices := make([]Choice, len(s.items))
	for i, item := range s.items {
		label := item
		if i < len(s.labels) {
			label = s.labels[i]
		}
		choices[i] = Choice{Value: item, Label: label}
	}
	if s.sort != nil {
		slices.SortStableFunc(choices, s.sort)
	}
	if includeZero && s.hasZero && !s.multiple {
		choices = append([]Choice{{Value: "", Label: s.zeroLabel}}, choices...)
	}
	return choices
}

func (s *Set) contains(value string) bool {
	return slices.Contains(s.items, value)
}

func (s *Set) setError() error {
	return newError(s.translate, s.message, "validation.in_set", map[string]any{
		"values": strings.Join(s.items, ", "),
	})
}

func (s *Set) countError(count int) error {
	return newError(s.translate, s.message, "validation.selection_count", map[string]any{
		"min":   s.minCount,
		"max":   s.maxCount,
		"count": count,
	})
}
