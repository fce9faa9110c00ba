package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/idcard/pkg/sanitizer"
)

// Output formats for command results.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type renderOptions struct {
	format  string
	mask    bool
	summary bool
}

func parseOutput(s string) (string, error) {
	switch f := strings.ToLower(s); f {
	case OutputText, OutputJSON, OutputYAML:
		return f, nil
	default:
		return "", NewUsageError(errors.Errorf(
			"unknown output format %q: must be %s, %s or %s", s, OutputText, OutputJSON, OutputYAML,
		))
	}
}

func renderReport(w io.Writer, report Report, opts renderOptions) error {
	if opts.mask {
		masked := make([]Result, len(report.Results))
		for i, res := range report.Results {
			res.Number = sanitizer.MaskIdentifier(res.Number)
			masked[i] = res
		}
		report.Results = masked
	}

	switch opts.format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(report), "failed to encode json")
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return errors.Wrap(err, "failed to encode yaml")
		}
		return errors.Wrap(enc.Close(), "failed to encode yaml")
	default:
		return renderText(w, report, opts.summary)
	}
}

func renderText(w io.Writer, report Report, summary bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, res := range report.Results {
		verdict := "invalid"
		detail := res.Matched
		switch {
		case res.Error != "":
			verdict = "error"
			detail = res.Error
		case res.Valid:
			verdict = "valid"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", res.Number, verdict, detail); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if summary {
		_, err := fmt.Fprintf(w, "total: %d, valid: %d, invalid: %d, errors: %d\n",
			report.Total, report.Valid, report.Invalid, report.Errors)
		return err
	}
	return nil
}
