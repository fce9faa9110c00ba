package idcard

import (
	"regexp"

	"github.com/dmitrymomot/idcard/pkg/sanitizer"
)

var twRegex = regexp.MustCompile(`^[A-Z][0-9]{9}$`)

// twLetterCodes maps the leading letter to its two-digit area code.
// I, O, W and Z were assigned after the original sequence and break its order.
var twLetterCodes = map[byte]int{
	'A': 10, 'B': 11, 'C': 12, 'D': 13, 'E': 14, 'F': 15, 'G': 16, 'H': 17,
	'I': 34, 'J': 18, 'K': 19, 'L': 20, 'M': 21, 'N': 22, 'O': 35, 'P': 23,
	'Q': 24, 'R': 25, 'S': 26, 'T': 27, 'U': 28, 'V': 29, 'W': 32, 'X': 30,
	'Y': 31, 'Z': 33,
}

// ValidTW validates a Taiwanese national identification number.
func ValidTW(s string) bool {
	s = sanitizer.TrimToUpper(s)
	if !twRegex.MatchString(s) {
		return false
	}

	code := twLetterCodes[s[0]]
	acc := (code%10)*9 + code/10
	for i := 1; i < 9; i++ {
		acc += int(s[i]-'0') * (9 - i)
	}

	last := int(s[9] - '0')
	return (10-acc%10-last)%10 == 0
}
