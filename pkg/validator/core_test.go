package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idcard/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "national_id",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: national_id: is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "national_id", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "country", Message: "unsupported"})

		assert.Equal(t, "validation failed: national_id: is required; country: unsupported", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "national_id", Message: "is required", TranslationKey: "a"})
	errs.Add(validator.ValidationError{Field: "country", Message: "unsupported", TranslationKey: "b"})
	errs.Add(validator.ValidationError{Field: "national_id", Message: "invalid", TranslationKey: "c"})

	t.Run("has", func(t *testing.T) {
		assert.True(t, errs.Has("national_id"))
		assert.True(t, errs.Has("country"))
		assert.False(t, errs.Has("email"))
	})

	t.Run("get", func(t *testing.T) {
		assert.Equal(t, []string{"is required", "invalid"}, errs.Get("national_id"))
		assert.Nil(t, errs.Get("email"))
	})

	t.Run("get errors", func(t *testing.T) {
		got := errs.GetErrors("national_id")
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].TranslationKey)
		assert.Equal(t, "c", got[1].TranslationKey)
	})

	t.Run("fields keep first-seen order", func(t *testing.T) {
		assert.Equal(t, []string{"national_id", "country"}, errs.Fields())
	})

	t.Run("is empty", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())
		assert.True(t, validator.ValidationErrors{}.IsEmpty())
	})
}

func TestApply(t *testing.T) {
	pass := validator.Rule{Check: func() bool { return true }, Error: validator.ValidationError{Field: "ok"}}
	fail := func(field string) validator.Rule {
		return validator.Rule{Check: func() bool { return false }, Error: validator.ValidationError{Field: field, Message: "bad"}}
	}

	t.Run("no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("all pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("collects every failure in order", func(t *testing.T) {
		err := validator.Apply(fail("first"), pass, fail("second"))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "first", verrs[0].Field)
		assert.Equal(t, "second", verrs[1].Field)
	})

	t.Run("matches sentinel", func(t *testing.T) {
		err := validator.Apply(fail("field"))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})

	t.Run("unrelated error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		inner := validator.ValidationErrors{{Field: "national_id", Message: "invalid"}}
		wrapped := fmt.Errorf("create profile: %w", inner)

		got := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, got)
		assert.True(t, got.Has("national_id"))
	})
}

func TestIsValidationError(t *testing.T) {
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("boom")))
	assert.True(t, validator.IsValidationError(validator.ValidationErrors{{Field: "x"}}))
}
