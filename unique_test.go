package validate_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validate"
	"github.com/dmitrymomot/validate/memstore"
)

func TestRecordUniqueValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("passes when no row matches", func(t *testing.T) {
		store, _ := usersStore(t)
		v := validate.NewRecordUnique(store, "users", validate.WithField("email"))
		got, err := v.Validate(ctx, "new@example.com")
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", got)
	})

	t.Run("fails when a row matches", func(t *testing.T) {
		store, _ := usersStore(t)
		v := validate.NewRecordUnique(store, "users", validate.WithField("email"))
		got, err := v.Validate(ctx, "ada@example.com")
		require.Error(t, err)
		assert.Equal(t, "ada@example.com", got)
		assert.True(t, validate.IsValidationError(err))
		assert.Equal(t, "Value already exists", err.Error())
		assert.Equal(t, "validation.unique", validate.ExtractError(err).TranslationKey)
	})

	t.Run("edited record is exempt", func(t *testing.T) {
		store, _ := usersStore(t)
		v := validate.NewRecordUnique(store, "users", validate.WithField("email"))

		editCtx := validate.WithEditingRecord(ctx, 1)
		_, err := v.Validate(editCtx, "ada@example.com")
		assert.NoError(t, err)
	})

	t.Run("other records are not exempt", func(t *testing.T) {
		store, _ := usersStore(t)
		v := validate.NewRecordUnique(store, "users", validate.WithField("email"))

		// editing user 2, but the email belongs to user 1
		editCtx := validate.WithEditingRecord(ctx, 2)
		_, err := v.Validate(editCtx, "ada@example.com")
		assert.Error(t, err)
	})

	t.Run("exemption compares ids by string form", func(t *testing.T) {
		store, _ := usersStore(t)
		v := validate.NewRecordUnique(store, "users", validate.WithField("email"))

		// int64 from the request vs int in the store
		editCtx := validate.WithEditingRecord(ctx, int64(1))
		_, err := v.Validate(editCtx, "ada@example.com")
		assert.NoError(t, err)
	})

	t.Run("uuid identifiers", func(t *testing.T) {
		store := memstore.New()
		id := uuid.New()
		store.CreateTable("tenants", memstore.WithFields("id", "slug")).Insert(
			validate.Row{"id": id, "slug": "acme"},
		)

		v := validate.NewRecordUnique(store, "tenants", validate.WithField("slug"))
		_, err := v.Validate(validate.WithEditingRecord(ctx, id), "acme")
		assert.NoError(t, err)

		_, err = v.Validate(validate.WithEditingRecord(ctx, uuid.New()), "acme")
		assert.Error(t, err)
	})

	t.Run("respects a filtered query set", func(t *testing.T) {
		store := memstore.New()
		users := store.CreateTable("users", memstore.WithFields("id", "email", "deleted"))
		users.Insert(
			validate.Row{"id": 1, "email": "ada@example.com", "deleted": true},
		)
		deletedField, err := users.Field("deleted")
		require.NoError(t, err)

		v := validate.NewRecordUnique(store, "users",
			validate.WithField("email"),
			validate.WithQuerySet(func(validate.Store) validate.QuerySet {
				return store.From("users").Where(deletedField, false)
			}),
		)

		// the only matching row is soft-deleted, so the value is free
		_, err = v.Validate(ctx, "ada@example.com")
		assert.NoError(t, err)
	})

	t.Run("custom message", func(t *testing.T) {
		store, _ := usersStore(t)
		v := validate.NewRecordUnique(store, "users",
			validate.WithField("email"),
			validate.WithRecordMessage("email is taken"),
		)
		_, err := v.Validate(ctx, "ada@example.com")
		require.Error(t, err)
		assert.Equal(t, "email is taken", err.Error())
	})

	t.Run("store errors propagate", func(t *testing.T) {
		store := memstore.New()
		v := validate.NewRecordUnique(store, "missing")
		_, err := v.Validate(ctx, "x")
		require.Error(t, err)
		assert.ErrorIs(t, err, validate.ErrTableNotFound)
		assert.False(t, validate.IsValidationError(err))
	})

	t.Run("idempotent for unchanged state", func(t *testing.T) {
		store, _ := usersStore(t)
		v := validate.NewRecordUnique(store, "users", validate.WithField("email"))
		got1, err1 := v.Validate(ctx, "ada@example.com")
		got2, err2 := v.Validate(ctx, "ada@example.com")
		assert.Equal(t, got1, got2)
		assert.Equal(t, err1, err2)
	})
}
