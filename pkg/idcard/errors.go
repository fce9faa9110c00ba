package idcard

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLocale is matched by every *InvalidLocaleError.
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrDuplicateLocale is returned when a registry is built with the same locale twice.
	ErrDuplicateLocale = errors.New("idcard: duplicate locale registration")

	// ErrReservedLocale is returned when a registry entry uses the "any" sentinel.
	ErrReservedLocale = errors.New("idcard: locale is reserved")

	// ErrNilValidator is returned for an entry without a locale or validator.
	ErrNilValidator = errors.New("idcard: invalid locale or validator")
)

// InvalidLocaleError reports a locale that is neither registered nor "any".
type InvalidLocaleError struct {
	Locale string
}

func (e *InvalidLocaleError) Error() string {
	return fmt.Sprintf("invalid locale '%s'", e.Locale)
}

func (e *InvalidLocaleError) Unwrap() error {
	return ErrInvalidLocale
}
