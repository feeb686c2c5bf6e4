package pgstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/validate"
)

// DB is the subset of pgxpool.Pool the store needs, kept narrow so tests
// can substitute their own implementation.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements validate.Store on top of PostgreSQL. Table resolution
// only validates the identifier; existence is checked lazily by the
// database on first query (see IsUndefinedTableError).
type Store struct {
	db      DB
	formats map[string]string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithTableFormat registers a display-format template for a table, used by
// RecordExists.Options to label rows, e.g. "{{name}} <{{email}}>".
func WithTableFormat(table, format string) StoreOption {
	return func(s *Store) { s.formats[table] = format }
}

// New creates a Store over an open connection pool.
func New(db DB, opts ...StoreOption) *Store {
	s := &Store{db: db, formats: make(map[string]string)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Table resolves a table handle by name.
func (s *Store) Table(name string) (validate.Table, error) {
	if err := validIdentifier(name); err != nil {
		return nil, err
	}
	return &table{store: s, name: name, format: s.formats[name]}, nil
}

// QuerySet returns the all-rows query set of a table resolved from this
// store.
func (s *Store) QuerySet(t validate.Table) validate.QuerySet {
	pt, ok := t.(*table)
	if !ok || pt.store != s {
		return errQuerySet{err: validate.ErrTableNotFound}
	}
	return querySet{store: s, table: pt}
}

// From returns the all-rows query set of the named table, convenient for
// building filtered query-set factories. Invalid names surface on first
// use.
func (s *Store) From(name string) validate.QuerySet {
	t, err := s.Table(name)
	if err != nil {
		return errQuerySet{err: err}
	}
	return s.QuerySet(t)
}

type table struct {
	store  *Store
	name   string
	format string
}

func (t *table) Name() string { return t.name }

func (t *table) Format() string { return t.format }

func (t *table) Field(name string) (validate.Field, error) {
	if err := validIdentifier(name); err != nil {
		return nil, err
	}
	return field(name), nil
}

type field string

func (f field) Name() string { return string(f) }

// querySet accumulates equality conditions and renders them through
// squirrel with dollar placeholders on Count/Select.
type querySet struct {
	store      *Store
	table      *table
	conditions []sq.Sqlizer
}

func (q querySet) Where(f validate.Field, value any) validate.QuerySet {
	conditions := make([]sq.Sqlizer, len(q.conditions), len(q.conditions)+1)
	copy(conditions, q.conditions)
	conditions = append(conditions, sq.Eq{f.Name(): value})
	return querySet{store: q.store, table: q.table, conditions: conditions}
}

func (q querySet) Count(ctx context.Context) (int64, error) {
	query, args, err := buildCountQuery(q.table.name, q.conditions)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := q.store.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (q querySet) Select(ctx context.Context, opts validate.SelectOptions) ([]validate.Row, error) {
	orderBy := ""
	if opts.OrderBy != "" {
		normalized, err := normalizeOrder(opts.OrderBy)
		if err != nil {
			return nil, err
		}
		orderBy = normalized
	}

	query, args, err := buildSelectQuery(q.table.name, q.conditions, orderBy, opts.Limit)
	if err != nil {
		return nil, err
	}
	rows, err := q.store.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, err
	}

	result := make([]validate.Row, len(maps))
	for i, m := range maps {
		result[i] = validate.Row(m)
	}
	return result, nil
}

// errQuerySet defers a resolution error until the set is used, so factories
// stay error-free while the error still surfaces from Validate.
type errQuerySet struct{ err error }

func (q errQuerySet) Where(validate.Field, any) validate.QuerySet { return q }

func (q errQuerySet) Count(context.Context) (int64, error) { return 0, q.err }

func (q errQuerySet) Select(context.Context, validate.SelectOptions) ([]validate.Row, error) {
	return nil, q.err
}
