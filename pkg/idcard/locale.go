package idcard

// Locale identifies a national identity-card scheme.
type Locale string

// Supported locales.
const (
	Spain   Locale = "ES"
	India   Locale = "IN"
	Norway  Locale = "NO"
	Israel  Locale = "he-IL"
	Tunisia Locale = "ar-TN"
	China   Locale = "zh-CN"
	Taiwan  Locale = "zh-TW"

	// Any tries every registered locale in registration order.
	Any Locale = "any"
)

func (l Locale) String() string {
	return string(l)
}
