package memstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validate"
	"github.com/dmitrymomot/validate/memstore"
)

func seeded(t *testing.T) *memstore.Store {
	t.Helper()
	store := memstore.New()
	store.CreateTable("books", memstore.WithFields("id", "title", "year")).Insert(
		validate.Row{"id": 1, "title": "SICP", "year": 1985},
		validate.Row{"id": 2, "title": "TAPL", "year": 2002},
		validate.Row{"id": 3, "title": "PLAI", "year": 2003},
	)
	return store
}

func TestStoreTableResolution(t *testing.T) {
	t.Parallel()

	t.Run("resolves registered table", func(t *testing.T) {
		store := seeded(t)
		table, err := store.Table("books")
		require.NoError(t, err)
		assert.Equal(t, "books", table.Name())
	})

	t.Run("unknown table", func(t *testing.T) {
		store := seeded(t)
		_, err := store.Table("movies")
		assert.ErrorIs(t, err, validate.ErrTableNotFound)
	})

	t.Run("declared fields restrict resolution", func(t *testing.T) {
		store := seeded(t)
		table, err := store.Table("books")
		require.NoError(t, err)

		_, err = table.Field("title")
		assert.NoError(t, err)

		_, err = table.Field("isbn")
		assert.ErrorIs(t, err, validate.ErrFieldNotFound)
	})

	t.Run("undeclared fields resolve from rows", func(t *testing.T) {
		store := memstore.New()
		store.CreateTable("notes").Insert(validate.Row{"id": 1, "body": "hi"})

		table, err := store.Table("notes")
		require.NoError(t, err)

		_, err = table.Field("body")
		assert.NoError(t, err)

		_, err = table.Field("missing")
		assert.ErrorIs(t, err, validate.ErrFieldNotFound)
	})

	t.Run("format template", func(t *testing.T) {
		store := memstore.New()
		store.CreateTable("tags", memstore.WithFormat("#{{name}}"))
		table, err := store.Table("tags")
		require.NoError(t, err)
		assert.Equal(t, "#{{name}}", table.Format())
	})
}

func TestQuerySet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("count all rows", func(t *testing.T) {
		store := seeded(t)
		count, err := store.From("books").Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("where narrows by equality", func(t *testing.T) {
		store := seeded(t)
		table, err := store.Table("books")
		require.NoError(t, err)
		titleField, err := table.Field("title")
		require.NoError(t, err)

		count, err := store.QuerySet(table).Where(titleField, "TAPL").Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("where does not mutate the receiver", func(t *testing.T) {
		store := seeded(t)
		table, err := store.Table("books")
		require.NoError(t, err)
		idField, err := table.Field("id")
		require.NoError(t, err)

		all := store.QuerySet(table)
		_ = all.Where(idField, 1)

		count, err := all.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("equality matches across numeric widths", func(t *testing.T) {
		store := seeded(t)
		table, err := store.Table("books")
		require.NoError(t, err)
		idField, err := table.Field("id")
		require.NoError(t, err)

		count, err := store.QuerySet(table).Where(idField, int64(2)).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("select with ordering", func(t *testing.T) {
		store := seeded(t)
		rows, err := store.From("books").Select(ctx, validate.SelectOptions{OrderBy: "year DESC"})
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "PLAI", rows[0]["title"])
		assert.Equal(t, "SICP", rows[2]["title"])
	})

	t.Run("select with limit", func(t *testing.T) {
		store := seeded(t)
		rows, err := store.From("books").Select(ctx, validate.SelectOptions{OrderBy: "id", Limit: 2})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 1, rows[0].ID())
	})

	t.Run("invalid order expression", func(t *testing.T) {
		store := seeded(t)
		_, err := store.From("books").Select(ctx, validate.SelectOptions{OrderBy: "year SIDEWAYS"})
		assert.Error(t, err)
	})

	t.Run("from unknown table defers the error", func(t *testing.T) {
		store := seeded(t)
		qs := store.From("movies")

		_, err := qs.Count(ctx)
		assert.ErrorIs(t, err, validate.ErrTableNotFound)

		_, err = qs.Select(ctx, validate.SelectOptions{})
		assert.ErrorIs(t, err, validate.ErrTableNotFound)
	})

	t.Run("foreign table rejected", func(t *testing.T) {
		store := seeded(t)
		other := memstore.New()
		otherTable := other.CreateTable("books")

		_, err := store.QuerySet(otherTable).Count(ctx)
		assert.ErrorIs(t, err, validate.ErrTableNotFound)
	})
}

func TestRowLabel(t *testing.T) {
	t.Parallel()

	row := validate.Row{"id": 7, "name": "Ada", "email": "ada@example.com"}
	assert.Equal(t, 7, row.ID())
	assert.Equal(t, "Ada <ada@example.com>", row.Label("{{name}} <{{email}}>"))
}
