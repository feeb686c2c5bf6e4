package validate

import "context"

// RecordUnique validates that a value does NOT correspond to an existing
// row, supporting "unique except for the record being edited" semantics in
// update flows: a matching row is exempt when its id equals the ambient
// editing-record id carried by the context (see WithEditingRecord).
type RecordUnique struct {
	RecordLookup

	message   string
	translate TranslateFunc
}

// NewRecordUnique builds a RecordUnique validator over the named table.
// Label, ordering, and multiple record options do not apply here.
func NewRecordUnique(store Store, tableName string, opts ...RecordOption) *RecordUnique {
	cfg := defaultRecordConfig("Value already exists")
	for _, opt := range opts {
		opt(&cfg)
	}
	return &RecordUnique{
		RecordLookup: newRecordLookup(store, tableName, cfg),
		message:      cfg.message,
		translate:    cfg.translate,
	}
}

// Validate fetches at most one row matching field == value. No row passes.
// A matching row passes only when it is the record being edited; otherwise
// the check fails with the configured message. Store errors propagate
// unmodified.
func (v *RecordUnique) Validate(ctx context.Context, value any) (any, error) {
	querySet, err := v.QuerySet()
	if err != nil {
		return value, err
	}
	field, err := v.Field()
	if err != nil {
		return value, err
	}
	rows, err := querySet.Where(field, value).Select(ctx, SelectOptions{Limit: 1})
	if err != nil {
		return value, err
	}
	if len(rows) == 0 {
		return value, nil
	}

	if editing, ok := EditingRecordFromContext(ctx); ok {
		if stringify(rows[0].ID()) == stringify(editing) {
			return value, nil
		}
	}
	return value, newError(v.translate, v.message, "validation.unique", map[string]any{
		"table": v.tableName,
		"field": v.fieldName,
	})
}
