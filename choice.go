package validate

import "strings"

// Choice is a (value, label) pair for presentation, e.g. an HTML select
// option. Value is the submitted token, Label the human-readable text.
type Choice struct {
	Value string
	Label string
}

// CompareChoiceLabels orders choices by label, then by value. It is the
// default ordering used by Set.Options when sorting is enabled.
func CompareChoiceLabels(a, b Choice) int {
	if c := strings.Compare(a.Label, b.Label); c != 0 {
		return c
	}
	return strings.Compare(a.Value, b.Value)
}
