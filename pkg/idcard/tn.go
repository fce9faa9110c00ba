package idcard

import (
	"regexp"

	"github.com/dmitrymomot/idcard/pkg/sanitizer"
)

var tnRegex = regexp.MustCompile(`^\d{8}$`)

// ValidTN validates the format of a Tunisian identity number. The scheme has no checksum.
func ValidTN(s string) bool {
	return tnRegex.MatchString(sanitizer.Trim(s))
}
