package idcard

import (
	"regexp"

	"github.com/dmitrymomot/idcard/pkg/sanitizer"
)

var (
	noRegex = regexp.MustCompile(`^\d{11}$`)

	noK1Weights = [9]int{3, 7, 6, 1, 8, 9, 4, 5, 2}
	// The last weight applies to k1.
	noK2Weights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}
)

// ValidNO validates a Norwegian fødselsnummer.
func ValidNO(s string) bool {
	s = sanitizer.Trim(s)
	if !noRegex.MatchString(s) || s == "00000000000" {
		return false
	}

	var f [11]int
	for i := range f {
		f[i] = int(s[i] - '0')
	}

	sum1, sum2 := 0, 0
	for i, w := range noK1Weights {
		sum1 += w * f[i]
		sum2 += noK2Weights[i] * f[i]
	}
	k1 := (11 - sum1%11) % 11
	k2 := (11 - (sum2+noK2Weights[9]*k1)%11) % 11

	// Unreachable after the outer mod 11.
	if k1 == 11 {
		k1 = 0
	}

	return f[9] == k1 && f[10] == k2
}
