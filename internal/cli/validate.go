package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/idcard/pkg/logger"
)

type validateOptions struct {
	locale string
	output string
	mask   bool
}

// NewValidateCommand creates the 'validate' command.
func NewValidateCommand(opts *Options) *cobra.Command {
	vOpts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate NUMBER...",
		Short: "Validate one or more identity card numbers",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return NewUsageError(errors.Errorf("%q requires at least 1 argument", cmd.Name()))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts, vOpts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&vOpts.locale, LocaleFlag, LocaleShortFlag, opts.cfg.DefaultLocale, "Locale to validate against"+localeFlagSuffix)
	flags.StringVarP(&vOpts.output, OutputFlag, OutputShortFlag, OutputText, outputFlagUsage)
	flags.BoolVar(&vOpts.mask, MaskFlag, false, maskFlagUsage)

	return cmd
}

func runValidate(cmd *cobra.Command, opts *Options, vOpts *validateOptions, numbers []string) error {
	format, err := parseOutput(vOpts.output)
	if err != nil {
		return err
	}
	if err := opts.checkLocale(vOpts.locale); err != nil {
		return err
	}

	ctx := cmd.Context()
	results := make([]Result, len(numbers))
	for i, n := range numbers {
		results[i] = check(opts.registry, n, vOpts.locale)
		opts.log.DebugContext(ctx, "number validated",
			logger.Component("validate"),
			logger.Locale(vOpts.locale),
			logger.Number(n),
			logger.Valid(results[i].Valid),
		)
	}

	report := newReport(results)
	if err := renderReport(cmd.OutOrStdout(), report, renderOptions{format: format, mask: vOpts.mask}); err != nil {
		return err
	}

	if report.Failed() {
		return ErrInvalidNumbers
	}
	return nil
}
