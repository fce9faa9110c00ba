package idcard

import (
	"regexp"
	"strconv"
	"time"
)

var (
	cn15Regex = regexp.MustCompile(`^[1-9]\d{7}(0[1-9]|1[0-2])(0[1-9]|[1-2][0-9]|3[0-1])\d{3}$`)
	cn18Regex = regexp.MustCompile(`^[1-9]\d{5}[1-9]\d{3}(0[1-9]|1[0-2])(0[1-9]|[1-2][0-9]|3[0-1])\d{3}[0-9xX]$`)

	cnAddressRegex  = regexp.MustCompile(`^[1-9]\d{5}$`)
	cnBirthDayRegex = regexp.MustCompile(`^[1-9]\d{3}(0[1-9]|1[0-2])(0[1-9]|[1-2][0-9]|3[0-1])$`)

	// Province-level region codes: the first two digits of the address code.
	cnProvinces = map[string]struct{}{
		"11": {}, "12": {}, "13": {}, "14": {}, "15": {},
		"21": {}, "22": {}, "23": {},
		"31": {}, "32": {}, "33": {}, "34": {}, "35": {}, "36": {}, "37": {},
		"41": {}, "42": {}, "43": {}, "44": {}, "45": {}, "46": {},
		"50": {}, "51": {}, "52": {}, "53": {}, "54": {},
		"61": {}, "62": {}, "63": {}, "64": {}, "65": {},
		"71": {}, "81": {}, "82": {}, "91": {},
	}

	cnWeights   = [17]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}
	cnParityBit = "10X98765432"
)

// ValidCN validates a Chinese resident identity number in the 15-digit legacy
// form or the 18-character form. The embedded birth date must not be in the future.
func ValidCN(s string) bool {
	return validCNAt(s, time.Now())
}

func validCNAt(s string, now time.Time) bool {
	switch len(s) {
	case 15:
		return validCN15(s, now)
	case 18:
		return validCN18(s, now)
	default:
		return false
	}
}

// validCN15 checks the legacy form, whose two-digit birth year is always 19xx
// and which carries no parity character.
func validCN15(s string, now time.Time) bool {
	if !cn15Regex.MatchString(s) {
		return false
	}
	return cnAddressCode(s[:6]) && cnBirthDay("19"+s[6:12], now)
}

func validCN18(s string, now time.Time) bool {
	if !cn18Regex.MatchString(s) {
		return false
	}
	if !cnAddressCode(s[:6]) || !cnBirthDay(s[6:14], now) {
		return false
	}
	return cnParity(s[:17]) == upperASCII(s[17])
}

func cnAddressCode(code string) bool {
	if !cnAddressRegex.MatchString(code) {
		return false
	}
	_, ok := cnProvinces[code[:2]]
	return ok
}

// cnBirthDay validates a yyyymmdd date: it must exist in the calendar and
// must not be after now.
func cnBirthDay(code string, now time.Time) bool {
	if !cnBirthDayRegex.MatchString(code) {
		return false
	}
	year, _ := strconv.Atoi(code[:4])
	month, _ := strconv.Atoi(code[4:6])
	day, _ := strconv.Atoi(code[6:])

	// time.Date normalizes overflow (Feb 30 becomes Mar 1), so a round trip
	// that changes any component means the date does not exist.
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	if date.After(now) {
		return false
	}
	return date.Year() == year && int(date.Month()) == month && date.Day() == day
}

func cnParity(id17 string) byte {
	sum := 0
	for i, w := range cnWeights {
		sum += int(id17[i]-'0') * w
	}
	return cnParityBit[sum%11]
}

func upperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
