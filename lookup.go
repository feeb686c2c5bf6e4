package validate

// OrderBy is an optional ordering specification: either a literal
// store-specific expression, or a function of the resolved table producing
// one.
type OrderBy struct {
	expr string
	fn   func(Table) string
}

// OrderByExpr returns a literal ordering expression, e.g. "name DESC".
func OrderByExpr(expr string) OrderBy {
	return OrderBy{expr: expr}
}

// OrderByFunc returns an ordering derived from the resolved table at first
// use.
func OrderByFunc(fn func(Table) string) OrderBy {
	return OrderBy{fn: fn}
}

// RecordLookup resolves a lazily-cached reference to a backing table, query
// set, and field. Each accessor computes its result at most once per
// instance and memoizes it, errors included; later mutation of the inputs
// does not invalidate the cache.
//
// The memoization guards are plain fields: first access from concurrent
// goroutines on a shared instance is not safe. Construct one validator per
// request, or guard externally.
type RecordLookup struct {
	store      Store
	tableName  string
	fieldName  string
	querySetFn func(Store) QuerySet

	tableDone bool
	table     Table
	tableErr  error

	querySetDone bool
	querySet     QuerySet

	fieldDone bool
	field     Field
	fieldErr  error
}

func newRecordLookup(store Store, tableName string, cfg recordConfig) RecordLookup {
	return RecordLookup{
		store:      store,
		tableName:  tableName,
		fieldName:  cfg.field,
		querySetFn: cfg.querySet,
	}
}

// Table resolves the backing table, memoized.
func (l *RecordLookup) Table() (Table, error) {
	if !l.tableDone {
		l.table, l.tableErr = l.store.Table(l.tableName)
		l.tableDone = true
	}
	return l.table, l.tableErr
}

// QuerySet resolves the row set the checks run against: the configured
// factory applied to the store, or the default all-rows set of the table.
// Memoized.
func (l *RecordLookup) QuerySet() (QuerySet, error) {
	if l.querySetDone {
		return l.querySet, nil
	}
	if l.querySetFn != nil {
		l.querySet = l.querySetFn(l.store)
		l.querySetDone = true
		return l.querySet, nil
	}
	table, err := l.Table()
	if err != nil {
		return nil, err
	}
	l.querySet = l.store.QuerySet(table)
	l.querySetDone = true
	return l.querySet, nil
}

// Field resolves the compared column, memoized.
func (l *RecordLookup) Field() (Field, error) {
	if !l.fieldDone {
		table, err := l.Table()
		if err != nil {
			return nil, err
		}
		l.field, l.fieldErr = table.Field(l.fieldName)
		l.fieldDone = true
	}
	return l.field, l.fieldErr
}

// recordConfig collects the knobs shared by the record validators.
type recordConfig struct {
	field      string
	querySet   func(Store) QuerySet
	labelField string
	multiple   bool
	orderBy    OrderBy
	message    string
	translate  TranslateFunc
}

func defaultRecordConfig(message string) recordConfig {
	return recordConfig{
		field:     IDField,
		message:   message,
		translate: NoopTranslate,
	}
}

// RecordOption configures a record validator. Label, ordering, and multiple
// options only affect RecordExists; RecordUnique ignores them.
type RecordOption func(*recordConfig)

// WithField sets the compared field. Defaults to "id".
func WithField(name string) RecordOption {
	return func(c *recordConfig) { c.field = name }
}

// WithQuerySet replaces the default all-rows query set with a filtered one
// built from the store, e.g. only active rows.
func WithQuerySet(fn func(Store) QuerySet) RecordOption {
	return func(c *recordConfig) { c.querySet = fn }
}

// WithLabelField sets the field used as the display label in
// RecordExists.Options.
func WithLabelField(name string) RecordOption {
	return func(c *recordConfig) { c.labelField = name }
}

// WithMultipleRecords switches RecordExists into multiple-selection mode.
func WithMultipleRecords() RecordOption {
	return func(c *recordConfig) { c.multiple = true }
}

// WithOrder sets the row ordering used by RecordExists when fetching rows.
func WithOrder(order OrderBy) RecordOption {
	return func(c *recordConfig) { c.orderBy = order }
}

// WithRecordMessage overrides the default failure message.
func WithRecordMessage(message string) RecordOption {
	return func(c *recordConfig) { c.message = message }
}

// WithRecordTranslator sets the translation hook for failure messages.
func WithRecordTranslator(translate TranslateFunc) RecordOption {
	return func(c *recordConfig) { c.translate = translate }
}
