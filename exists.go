package validate

import "context"

// RecordExists validates that a value corresponds to an existing row in the
// backing store. In multiple mode every submitted value must match a row id.
type RecordExists struct {
	RecordLookup

	labelField string
	multiple   bool
	orderBy    OrderBy
	message    string
	translate  TranslateFunc

	orderDone bool
	order     string
}

// NewRecordExists builds a RecordExists validator over the named table.
func NewRecordExists(store Store, tableName string, opts ...RecordOption) *RecordExists {
	cfg := defaultRecordConfig("Invalid value")
	for _, opt := range opts {
		opt(&cfg)
	}
	return &RecordExists{
		RecordLookup: newRecordLookup(store, tableName, cfg),
		labelField:   cfg.labelField,
		multiple:     cfg.multiple,
		orderBy:      cfg.orderBy,
		message:      cfg.message,
		translate:    cfg.translate,
	}
}

// Validate checks the value against the store. Single mode passes iff a row
// matching field == value exists in the query set. Multiple mode normalizes
// the value into a list and passes iff every element matches some row id.
// Store errors propagate unmodified.
func (v *RecordExists) Validate(ctx context.Context, value any) (any, error) {
	if v.multiple {
		values := normalizeValues(value)
		rows, err := v.rows(ctx)
		if err != nil {
			return value, err
		}
		ids := make(map[string]struct{}, len(rows))
		for _, row := range rows {
			ids[stringify(row.ID())] = struct{}{}
		}
		for _, val := range values {
			if _, ok := ids[stringify(val)]; !ok {
				return value, v.recordError()
			}
		}
		return values, nil
	}

	querySet, err := v.QuerySet()
	if err != nil {
		return value, err
	}
	field, err := v.Field()
	if err != nil {
		return value, err
	}
	count, err := querySet.Where(field, value).Count(ctx)
	if err != nil {
		return value, err
	}
	if count > 0 {
		return value, nil
	}
	return value, v.recordError()
}

// Options fetches all rows of the query set, ordered when an ordering is
// configured, as (id, label) choices. The label falls back from the
// configured label field, to the table's display format applied to the row,
// to the id itself.
func (v *RecordExists) Options(ctx context.Context) ([]Choice, error) {
	rows, err := v.rows(ctx)
	if err != nil {
		return nil, err
	}
	table, err := v.Table()
	if err != nil {
		return nil, err
	}
	format := table.Format()

	choices := make([]Choice, len(rows))
	for i, row := range rows {
		id := stringify(row.ID())
		label := id
		switch {
		case v.labelField != "":
			label = stringify(row[v.labelField])
		case format != "":
			label = row.Label(format)
		}
		choices[i] = Choice{Value: id, Label: label}
	}
	return choices, nil
}

func (v *RecordExists) rows(ctx context.Context) ([]Row, error) {
	querySet, err := v.QuerySet()
	if err != nil {
		return nil, err
	}
	order, err := v.ordering()
	if err != nil {
		return nil, err
	}
	return querySet.Select(ctx, SelectOptions{OrderBy: order})
}

// ordering resolves the configured OrderBy once and memoizes the result,
// like the table/query-set/field accessors.
func (v *RecordExists) ordering() (string, error) {
	if v.orderDone {
		return v.order, nil
	}
	if v.orderBy.fn != nil {
		table, err := v.Table()
		if err != nil {
			return "", err
		}
		v.order = v.orderBy.fn(table)
	} else {
		v.order = v.orderBy.expr
	}
	v.orderDone = true
	return v.order, nil
}

func (v *RecordExists) recordError() error {
	return newError(v.translate, v.message, "validation.in_records", map[string]any{
		"table": v.tableName,
		"field": v.fieldName,
	})
}
