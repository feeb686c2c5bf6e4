package validate

import "context"

// editingRecordKey is a private type to prevent collisions with other
// context keys.
type editingRecordKey struct{}

// WithEditingRecord marks the record currently being edited in the context.
// RecordUnique reads it to exempt the edited row from its uniqueness check,
// so that update flows do not fail on the record's own values. The
// surrounding application sets it per request before running validation.
func WithEditingRecord(ctx context.Context, id any) context.Context {
	return context.WithValue(ctx, editingRecordKey{}, id)
}

// EditingRecordFromContext retrieves the id of the record being edited.
// Returns nil, false if none is set.
func EditingRecordFromContext(ctx context.Context) (any, bool) {
	id := ctx.Value(editingRecordKey{})
	if id == nil {
		return nil, false
	}
	return id, true
}
