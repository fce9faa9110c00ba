// Package sanitizer provides small, stateless helpers for normalising and
// masking user-supplied identifiers before they are validated or logged.
//
// The functions are grouped into two areas:
//
//   - Strings – trimming, Unicode-aware upper-casing, whitespace removal and
//     digit extraction.
//
//   - Masking – hiding the middle of identity numbers so they can appear in
//     logs or terminal output without exposing the full value.
//
// For convenience the higher-order Apply and Compose helpers allow the
// creation of sanitisation pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.RemoveWhitespace,
//	    sanitizer.ToUpper,
//	)
//	id := clean(" x123 4567 l ") // "X1234567L"
//
// Upper-casing relies on golang.org/x/text/cases with the undetermined
// language tag; every other helper uses only the standard library.
//
// All helpers are safe for concurrent use.
package sanitizer
