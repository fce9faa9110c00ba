package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToUpper converts a string to uppercase using full Unicode case mapping,
// so special cases like "ß" become "SS" rather than being left unchanged.
// A new Caser is built per call because Casers are not safe for concurrent use.
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// trimToUpper is built once; Compose holds no state.
var trimToUpper = Compose(Trim, ToUpper)

// TrimToUpper removes leading and trailing whitespace and converts to uppercase.
func TrimToUpper(s string) string {
	return trimToUpper(s)
}

// RemoveWhitespace drops every whitespace character, including those inside the string.
func RemoveWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// KeepDigits keeps only numeric digits.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
