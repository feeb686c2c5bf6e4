package validate_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validate"
)

func TestValidationErrorDetection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("validation failures are detectable", func(t *testing.T) {
		s := validate.NewSet([]string{"a"})
		_, err := s.Validate(ctx, "z")
		require.Error(t, err)
		assert.True(t, validate.IsValidationError(err))
		assert.NotNil(t, validate.ExtractError(err))
	})

	t.Run("wrapped validation errors are still detected", func(t *testing.T) {
		s := validate.NewSet([]string{"a"})
		_, err := s.Validate(ctx, "z")
		wrapped := fmt.Errorf("field color: %w", err)
		assert.True(t, validate.IsValidationError(wrapped))
		assert.Equal(t, "Invalid value", validate.ExtractError(wrapped).Message)
	})

	t.Run("plain errors are not validation errors", func(t *testing.T) {
		err := errors.New("connection refused")
		assert.False(t, validate.IsValidationError(err))
		assert.Nil(t, validate.ExtractError(err))
	})

	t.Run("nil is not a validation error", func(t *testing.T) {
		assert.False(t, validate.IsValidationError(nil))
		assert.Nil(t, validate.ExtractError(nil))
	})

	t.Run("zero message renders fallback", func(t *testing.T) {
		err := &validate.Error{}
		assert.Equal(t, "validation failed", err.Error())
	})
}

func TestEditingRecordContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		ctx := validate.WithEditingRecord(context.Background(), int64(42))
		id, ok := validate.EditingRecordFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, int64(42), id)
	})

	t.Run("absent by default", func(t *testing.T) {
		id, ok := validate.EditingRecordFromContext(context.Background())
		assert.False(t, ok)
		assert.Nil(t, id)
	})
}
