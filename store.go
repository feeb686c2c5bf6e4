package validate

import "context"

// Store is the narrow view of a backing database consumed by the record
// validators. Implementations live outside the core package (see memstore
// and pgstore); anything that can resolve tables and produce row sets can
// back a record check.
type Store interface {
	// Table resolves a table by name. Returns ErrTableNotFound (possibly
	// wrapped) when the table does not exist.
	Table(name string) (Table, error)

	// QuerySet returns the default "all rows" query set for a table.
	QuerySet(table Table) QuerySet
}

// Table exposes the metadata the validators need from a resolved table.
type Table interface {
	// Name returns the table name.
	Name() string

	// Field resolves a column by name. Returns ErrFieldNotFound (possibly
	// wrapped) when the column does not exist.
	Field(name string) (Field, error)

	// Format returns the table's display-format template for rendering a
	// row as a human-readable label, e.g. "{{name}} ({{code}})". Empty when
	// the table has no display format.
	Format() string
}

// Field identifies a resolved column used in equality predicates.
type Field interface {
	Name() string
}

// QuerySet is a filtered view over a table's rows. Implementations return
// derived query sets from Where without mutating the receiver.
type QuerySet interface {
	// Where narrows the set to rows whose field equals value.
	Where(field Field, value any) QuerySet

	// Count returns the number of rows in the set.
	Count(ctx context.Context) (int64, error)

	// Select fetches the rows in the set.
	Select(ctx context.Context, opts SelectOptions) ([]Row, error)
}

// SelectOptions controls row fetching. The zero value means no ordering and
// no limit.
type SelectOptions struct {
	// OrderBy is a store-specific ordering expression, e.g. "name" or
	// "name DESC". Empty means store order.
	OrderBy string

	// Limit caps the number of returned rows when positive.
	Limit int
}

// IDField is the default field name record validators resolve when none is
// configured, and the row key holding a record's identifier.
const IDField = "id"

// Row is a single fetched record, keyed by field name.
type Row map[string]any

// ID returns the row's identifier.
func (r Row) ID() any { return r[IDField] }

// Label renders the row through a display-format template, replacing each
// {{field}} placeholder with the row's value for that field.
func (r Row) Label(format string) string {
	return interpolate(format, r)
}
