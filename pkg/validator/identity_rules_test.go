package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idcard/pkg/validator"
)

func TestRequiredIdentityCard(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.RequiredIdentityCard("national_id", "12345678Z")))
	})

	for _, value := range []string{"", "   ", "\t\n"} {
		err := validator.Apply(validator.RequiredIdentityCard("national_id", value))
		require.Error(t, err, "value %q should be rejected", value)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, "validation.identity_card_required", verrs[0].TranslationKey)
	}
}

func TestValidIdentityCardLocale(t *testing.T) {
	for _, locale := range []string{"ES", "IN", "NO", "he-IL", "ar-TN", "zh-CN", "zh-TW", "any"} {
		assert.NoError(t, validator.Apply(validator.ValidIdentityCardLocale("country", locale)), locale)
	}

	err := validator.Apply(validator.ValidIdentityCardLocale("country", "XX"))
	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs)
	assert.Equal(t, "validation.identity_card_locale", verrs[0].TranslationKey)
	assert.Equal(t, "XX", verrs[0].TranslationValues["locale"])
}

func TestValidIdentityCard(t *testing.T) {
	t.Run("valid numbers", func(t *testing.T) {
		cases := []struct{ value, locale string }{
			{"12345678Z", "ES"},
			{"2984 4886 3364", "IN"},
			{"29028912364", "NO"},
			{"219472156", "he-IL"},
			{"09958092", "ar-TN"},
			{"110101199003074477", "zh-CN"},
			{"A123456789", "zh-TW"},
			{"A123456789", "any"},
		}
		for _, c := range cases {
			err := validator.Apply(validator.ValidIdentityCard("national_id", c.value, c.locale))
			assert.NoError(t, err, "%s/%s", c.locale, c.value)
		}
	})

	t.Run("invalid number", func(t *testing.T) {
		err := validator.Apply(validator.ValidIdentityCard("national_id", "12345678A", "ES"))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "national_id", verrs[0].Field)
		assert.Equal(t, "validation.identity_card", verrs[0].TranslationKey)
		assert.Equal(t, "ES", verrs[0].TranslationValues["locale"])
	})

	t.Run("unsupported locale", func(t *testing.T) {
		err := validator.Apply(validator.ValidIdentityCard("national_id", "12345678Z", "XX"))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.identity_card_locale", verrs[0].TranslationKey)
	})

	t.Run("combined with other rules", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredIdentityCard("national_id", ""),
			validator.ValidIdentityCardLocale("country", "XX"),
			validator.ValidIdentityCard("national_id", "", "ES"),
		)
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"national_id", "country"}, verrs.Fields())
	})
}
