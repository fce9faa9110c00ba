package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/idcard/pkg/idcard"
)

// RequiredIdentityCard fails for empty or whitespace-only identity numbers.
func RequiredIdentityCard(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "identity card number is required",
			TranslationKey: "validation.identity_card_required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidIdentityCardLocale validates that locale is a supported identity-card
// locale or "any".
func ValidIdentityCardLocale(field, locale string) Rule {
	return Rule{
		Check: func() bool {
			return idcard.IsSupported(locale)
		},
		Error: localeError(field, locale),
	}
}

// ValidIdentityCard validates value as an identity-card number for locale.
// An unsupported locale fails the rule with the identity_card_locale
// translation key instead of reporting the number as invalid.
func ValidIdentityCard(field, value, locale string) Rule {
	ok, err := idcard.Validate(value, locale)
	if errors.Is(err, idcard.ErrInvalidLocale) {
		return Rule{
			Check: func() bool { return false },
			Error: localeError(field, locale),
		}
	}

	return Rule{
		Check: func() bool {
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a valid identity card number for locale %s", locale),
			TranslationKey: "validation.identity_card",
			TranslationValues: map[string]any{
				"field":  field,
				"locale": locale,
			},
		},
	}
}

func localeError(field, locale string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("unsupported identity card locale %q", locale),
		TranslationKey: "validation.identity_card_locale",
		TranslationValues: map[string]any{
			"field":  field,
			"locale": locale,
		},
	}
}
