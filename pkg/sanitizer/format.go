package sanitizer

import "strings"

// MaskString hides the middle of s, leaving visibleChars runes on each side.
// Strings too short to keep both ends visible are masked entirely.
func MaskString(s string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 1
	}

	runes := []rune(s)
	length := len(runes)

	if length <= visibleChars*2 {
		return strings.Repeat("*", length)
	}

	visible := visibleChars
	if visible > length/2 {
		visible = length / 2
	}

	start := string(runes[0:visible])
	end := string(runes[length-visible:])
	middle := strings.Repeat("*", length-visible*2)

	return start + middle + end
}

// MaskIdentifier masks an identity number for logs and terminal output,
// keeping two characters on each side after removing whitespace.
func MaskIdentifier(id string) string {
	return MaskString(RemoveWhitespace(id), 2)
}
