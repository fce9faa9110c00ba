package cli

import (
	"strings"

	"github.com/dmitrymomot/idcard/pkg/idcard"
)

// Result is the outcome for a single number.
type Result struct {
	Number  string `json:"number" yaml:"number"`
	Locale  string `json:"locale" yaml:"locale"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Matched string `json:"matched,omitempty" yaml:"matched,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report aggregates results in input order.
type Report struct {
	Results []Result `json:"results" yaml:"results"`
	Total   int      `json:"total" yaml:"total"`
	Valid   int      `json:"valid" yaml:"valid"`
	Invalid int      `json:"invalid" yaml:"invalid"`
	Errors  int      `json:"errors" yaml:"errors"`
}

func check(reg *idcard.Registry, number, locale string) Result {
	res := Result{Number: number, Locale: locale}

	if idcard.Locale(locale) == idcard.Any {
		if matched, ok := reg.Match(number); ok {
			res.Valid = true
			res.Matched = matched.String()
		}
		return res
	}

	ok, err := reg.Validate(number, locale)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Valid = ok
	if ok {
		res.Matched = locale
	}
	return res
}

func newReport(results []Result) Report {
	r := Report{Results: results, Total: len(results)}
	for _, res := range results {
		switch {
		case res.Error != "":
			r.Errors++
		case res.Valid:
			r.Valid++
		default:
			r.Invalid++
		}
	}
	return r
}

// Failed reports whether any result is invalid or errored.
func (r Report) Failed() bool {
	return r.Invalid+r.Errors > 0
}

func joinLocales(locales []idcard.Locale) string {
	names := make([]string, len(locales))
	for i, l := range locales {
		names[i] = l.String()
	}
	return strings.Join(names, ", ")
}
