// Package idcard validates national identity-card numbers for a fixed set of
// locales.
//
// Every locale owns a pure validator of type Validator that normalizes the
// candidate string, matches it against the locale grammar and verifies the
// checksum (when the scheme has one). Validators never return errors: any
// malformed input simply yields false.
//
// # Locales
//
//   - ES     – Spanish DNI/NIE, mod 23 control letter
//   - IN     – Indian Aadhaar, Verhoeff check digit
//   - NO     – Norwegian fødselsnummer, two mod 11 control digits
//   - he-IL  – Israeli ID, Luhn-style alternating weights
//   - ar-TN  – Tunisian ID, format only
//   - zh-CN  – Chinese resident ID (15 or 18 characters), region, birth date and parity
//   - zh-TW  – Taiwanese ID, letter code plus weighted digits
//
// # Usage
//
//	ok, err := idcard.Validate("12345678Z", "ES")
//	if err != nil {
//	    // unknown locale: a caller bug, not an invalid number
//	}
//
// The sentinel locale "any" tries every registered validator in registration
// order and accepts on the first success. Match does the same and also reports
// which locale accepted the input.
//
// # Error Handling
//
// The only error in the package is *InvalidLocaleError, returned when the
// locale is neither registered nor "any". It matches ErrInvalidLocale with
// errors.Is.
//
// # Concurrency
//
// Lookup tables are package-level constants and the default registry is
// immutable after construction, so all functions are safe for concurrent use.
//
// The zh-CN validator compares the embedded birth date with the current time,
// which makes it the only validator whose result can change between calls.
package idcard
