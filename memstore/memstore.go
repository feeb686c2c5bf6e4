// Package memstore provides an in-memory implementation of the validate
// store interfaces. It backs the record validators in tests and small
// applications where a real database would be overkill: tables are slices
// of rows, filters are equality matches, and ordering is a simple field
// sort.
package memstore

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/validate"
)

// Store is an in-memory validate.Store. The zero value is not usable; use
// New.
type Store struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

// New creates an empty store.
func New() *Store {
	return &Store{tables: make(map[string]*Table)}
}

// CreateTable registers a table and returns it for row insertion.
func (s *Store) CreateTable(name string, opts ...TableOption) *Table {
	table := &Table{name: name, store: s}
	for _, opt := range opts {
		opt(table)
	}
	s.mu.Lock()
	s.tables[name] = table
	s.mu.Unlock()
	return table
}

// Table resolves a registered table by name.
func (s *Store) Table(name string) (validate.Table, error) {
	s.mu.RLock()
	table, ok := s.tables[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", validate.ErrTableNotFound, name)
	}
	return table, nil
}

// QuerySet returns the all-rows query set of a table previously resolved
// from this store.
func (s *Store) QuerySet(table validate.Table) validate.QuerySet {
	t, ok := table.(*Table)
	if !ok || t.store != s {
		return errQuerySet{err: fmt.Errorf("%w: foreign table", validate.ErrTableNotFound)}
	}
	return querySet{table: t}
}

// From returns the all-rows query set of the named table, convenient for
// building filtered query-set factories:
//
//	validate.WithQuerySet(func(validate.Store) validate.QuerySet {
//	    return store.From("users").Where(activeField, true)
//	})
func (s *Store) From(name string) validate.QuerySet {
	table, err := s.Table(name)
	if err != nil {
		return errQuerySet{err: err}
	}
	return s.QuerySet(table)
}

// TableOption configures a table at creation time.
type TableOption func(*Table)

// WithFields declares the table's columns. Undeclared fields fail to
// resolve. Without this option any field name present in an inserted row
// resolves.
func WithFields(fields ...string) TableOption {
	return func(t *Table) { t.fields = fields }
}

// WithFormat sets the table's display-format template, e.g. "{{name}}".
func WithFormat(format string) TableOption {
	return func(t *Table) { t.format = format }
}

// Table is an in-memory table: an ordered collection of rows.
type Table struct {
	store  *Store
	name   string
	format string
	fields []string
	rows   []validate.Row
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Format returns the display-format template, empty when unset.
func (t *Table) Format() string { return t.format }

// Field resolves a column by name.
func (t *Table) Field(name string) (validate.Field, error) {
	if len(t.fields) > 0 {
		if !slices.Contains(t.fields, name) {
			return nil, fmt.Errorf("%w: %s.%s", validate.ErrFieldNotFound, t.name, name)
		}
		return field(name), nil
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	for _, row := range t.rows {
		if _, ok := row[name]; ok {
			return field(name), nil
		}
	}
	return nil, fmt.Errorf("%w: %s.%s", validate.ErrFieldNotFound, t.name, name)
}

// Insert appends rows to the table.
func (t *Table) Insert(rows ...validate.Row) {
	t.store.mu.Lock()
	t.rows = append(t.rows, rows...)
	t.store.mu.Unlock()
}

type field string

func (f field) Name() string { return string(f) }

type condition struct {
	field string
	value any
}

// querySet is an immutable filtered view over a table. Where returns a
// derived set without mutating the receiver.
type querySet struct {
	table      *Table
	conditions []condition
}

func (q querySet) Where(f validate.Field, value any) validate.QuerySet {
	conditions := make([]condition, len(q.conditions), len(q.conditions)+1)
	copy(conditions, q.conditions)
	conditions = append(conditions, condition{field: f.Name(), value: value})
	return querySet{table: q.table, conditions: conditions}
}

func (q querySet) Count(_ context.Context) (int64, error) {
	return int64(len(q.matches())), nil
}

func (q querySet) Select(_ context.Context, opts validate.SelectOptions) ([]validate.Row, error) {
	rows := q.matches()
	if opts.OrderBy != "" {
		name, desc, err := parseOrder(opts.OrderBy)
		if err != nil {
			return nil, err
		}
		slices.SortStableFunc(rows, func(a, b validate.Row) int {
			c := compareValues(a[name], b[name])
			if desc {
				return -c
			}
			return c
		})
	}
	if opts.Limit > 0 && len(rows) > opts.Limit {
		rows = rows[:opts.Limit]
	}
	return rows, nil
}

func (q querySet) matches() []validate.Row {
	q.table.store.mu.RLock()
	defer q.table.store.mu.RUnlock()
	var rows []validate.Row
	for _, row := range q.table.rows {
		if q.match(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// match compares by string form so that numeric widths (int vs int64 ids)
// do not matter, mirroring how the validators compare values.
func (q querySet) match(row validate.Row) bool {
	for _, cond := range q.conditions {
		if fmt.Sprint(row[cond.field]) != fmt.Sprint(cond.value) {
			return false
		}
	}
	return true
}

// errQuerySet defers a resolution error until the set is actually used, so
// factories can stay error-free while store errors still surface from
// Validate.
type errQuerySet struct{ err error }

func (q errQuerySet) Where(validate.Field, any) validate.QuerySet { return q }

func (q errQuerySet) Count(context.Context) (int64, error) { return 0, q.err }

func (q errQuerySet) Select(context.Context, validate.SelectOptions) ([]validate.Row, error) {
	return nil, q.err
}

// parseOrder splits an ordering expression into field and direction,
// accepting "name", "name ASC", and "name DESC".
func parseOrder(expr string) (string, bool, error) {
	parts := strings.Fields(expr)
	switch len(parts) {
	case 1:
		return parts[0], false, nil
	case 2:
		switch strings.ToUpper(parts[1]) {
		case "ASC":
			return parts[0], false, nil
		case "DESC":
			return parts[0], true, nil
		}
	}
	return "", false, fmt.Errorf("memstore: invalid order expression %q", expr)
}

func compareValues(a, b any) int {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
