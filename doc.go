// Package validate provides a small set of data-validation predicates that
// check whether a submitted value lies within an allowed range or set,
// optionally cross-referenced against rows in a backing data store.
//
// The package owns only the predicate logic. The query engine, the
// localization layer, and the web-request context are external collaborators
// reached through narrow interfaces: Store/Table/Field/QuerySet for row
// access, TranslateFunc for message localization, and context values for
// request-scoped state.
//
// # Architecture
//
// Five validators cover the surface:
//
//   - Range[T]      – value within an optional inclusive/exclusive bound pair;
//     bounds may be literal or deferred through a function
//   - Set           – value (or multiple values) within a fixed allowed set,
//     with labels and ordering for presentation
//   - RecordLookup  – memoized table/query-set/field resolution shared by the
//     record checks
//   - RecordExists  – value must match an existing row
//   - RecordUnique  – value must not match an existing row, except the row
//     currently being edited
//
// Every validator exposes Validate(ctx, value) returning the possibly
// transformed value together with an error. Validation failures are *Error
// values carrying a message, a translation key, and translation values;
// underlying store errors propagate unmodified. Use IsValidationError to
// tell them apart.
//
// # Usage
//
//	age := validate.NewRange(validate.WithMin(18), validate.WithMax(120))
//	if _, err := age.Validate(ctx, submitted); err != nil {
//	    // err.(*validate.Error).Message: "Enter a value between 18 and 119"
//	}
//
//	color := validate.NewSet([]string{"red", "green", "blue"})
//	unique := validate.NewRecordUnique(store, "users", validate.WithField("email"))
//
//	// update flow: the edited record is exempt from the uniqueness check
//	ctx = validate.WithEditingRecord(ctx, currentUserID)
//	_, err := unique.Validate(ctx, form.Email)
//
// # Concurrency
//
// Validate calls are stateless and independent, but the record validators
// memoize their table, query-set, and field resolution with plain guard
// fields. First access from multiple goroutines on a shared instance is not
// synchronized; construct one validator per request or guard externally.
//
// # Store implementations
//
// The memstore subpackage provides an in-memory Store for tests and small
// applications; pgstore backs the same interfaces with PostgreSQL.
package validate
