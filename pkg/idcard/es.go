package idcard

import (
	"regexp"
	"strconv"

	"github.com/dmitrymomot/idcard/pkg/sanitizer"
)

var (
	esRegex = regexp.MustCompile(`^[0-9X-Z][0-9]{7}[TRWAGMYFPDXBNJZSQVHLCKE]$`)

	esControlLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

	// NIE prefixes stand in for the leading digit.
	esPrefixDigits = map[byte]byte{'X': '0', 'Y': '1', 'Z': '2'}
)

// ValidES validates a Spanish DNI or NIE number.
func ValidES(s string) bool {
	s = sanitizer.TrimToUpper(s)
	if !esRegex.MatchString(s) {
		return false
	}

	digits := []byte(s[:8])
	if d, ok := esPrefixDigits[digits[0]]; ok {
		digits[0] = d
	}

	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return false
	}
	return s[8] == esControlLetters[n%23]
}
