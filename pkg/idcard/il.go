package idcard

import (
	"regexp"

	"github.com/dmitrymomot/idcard/pkg/sanitizer"
)

var ilRegex = regexp.MustCompile(`^\d{9}$`)

// ValidIL validates an Israeli identity number.
func ValidIL(s string) bool {
	s = sanitizer.Trim(s)
	if !ilRegex.MatchString(s) {
		return false
	}

	sum := 0
	for i := 0; i < len(s); i++ {
		n := int(s[i]-'0') * (i%2 + 1)
		if n > 9 {
			n -= 9
		}
		sum += n
	}
	return sum%10 == 0
}
