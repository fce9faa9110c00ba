package idcard

// Validate reports whether input is a valid identity-card number for locale.
//
// locale must be a registered key or "any". Any other value yields an
// *InvalidLocaleError; an invalid number is never an error.
func (r *Registry) Validate(input, locale string) (bool, error) {
	if v, ok := r.Lookup(Locale(locale)); ok {
		return v(input), nil
	}
	if Locale(locale) == Any {
		_, ok := r.Match(input)
		return ok, nil
	}
	return false, &InvalidLocaleError{Locale: locale}
}

// Match returns the first locale, in registration order, whose validator
// accepts input.
func (r *Registry) Match(input string) (Locale, bool) {
	for _, e := range r.entries {
		if e.Validator(input) {
			return e.Locale, true
		}
	}
	return "", false
}

// IsSupported reports whether locale is accepted by Validate.
func (r *Registry) IsSupported(locale string) bool {
	if Locale(locale) == Any {
		return true
	}
	_, ok := r.index[Locale(locale)]
	return ok
}

// Validate checks input against the default registry.
func Validate(input, locale string) (bool, error) {
	return defaultRegistry.Validate(input, locale)
}

// Match returns the first built-in locale that accepts input.
func Match(input string) (Locale, bool) {
	return defaultRegistry.Match(input)
}

// IsSupported reports whether locale is a built-in locale or "any".
func IsSupported(locale string) bool {
	return defaultRegistry.IsSupported(locale)
}
