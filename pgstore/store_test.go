package pgstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validate"
	"github.com/dmitrymomot/validate/pgstore"
)

func TestStoreTableResolution(t *testing.T) {
	t.Parallel()

	t.Run("valid table name resolves", func(t *testing.T) {
		store := pgstore.New(nil)
		table, err := store.Table("users")
		require.NoError(t, err)
		assert.Equal(t, "users", table.Name())
		assert.Empty(t, table.Format())
	})

	t.Run("registered display format", func(t *testing.T) {
		store := pgstore.New(nil, pgstore.WithTableFormat("users", "{{name}} <{{email}}>"))
		table, err := store.Table("users")
		require.NoError(t, err)
		assert.Equal(t, "{{name}} <{{email}}>", table.Format())
	})

	t.Run("invalid table name rejected", func(t *testing.T) {
		store := pgstore.New(nil)
		_, err := store.Table("users; drop table users")
		assert.ErrorIs(t, err, pgstore.ErrInvalidIdentifier)
	})

	t.Run("invalid field name rejected", func(t *testing.T) {
		store := pgstore.New(nil)
		table, err := store.Table("users")
		require.NoError(t, err)

		_, err = table.Field("email")
		assert.NoError(t, err)

		_, err = table.Field(`email" OR 1=1`)
		assert.ErrorIs(t, err, pgstore.ErrInvalidIdentifier)
	})
}

func TestStoreQuerySetErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("from defers invalid identifier error", func(t *testing.T) {
		store := pgstore.New(nil)
		qs := store.From("bad name")

		_, err := qs.Count(ctx)
		assert.ErrorIs(t, err, pgstore.ErrInvalidIdentifier)

		_, err = qs.Select(ctx, validate.SelectOptions{})
		assert.ErrorIs(t, err, pgstore.ErrInvalidIdentifier)
	})

	t.Run("foreign table rejected", func(t *testing.T) {
		store := pgstore.New(nil)
		other := pgstore.New(nil)
		table, err := other.Table("users")
		require.NoError(t, err)

		_, err = store.QuerySet(table).Count(ctx)
		assert.ErrorIs(t, err, validate.ErrTableNotFound)
	})

	t.Run("invalid order expression surfaces before querying", func(t *testing.T) {
		// db is nil: reaching the database would panic, so the error must
		// come from order validation.
		store := pgstore.New(nil)
		_, err := store.From("users").Select(ctx, validate.SelectOptions{OrderBy: "name SIDEWAYS"})
		assert.ErrorIs(t, err, pgstore.ErrInvalidOrderExpression)

		_, err = store.From("users").Select(ctx, validate.SelectOptions{OrderBy: "name; drop"})
		assert.ErrorIs(t, err, pgstore.ErrInvalidIdentifier)
	})
}
