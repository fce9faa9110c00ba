package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/idcard/pkg/idcard"
	"github.com/dmitrymomot/idcard/pkg/logger"
)

// BatchFile is the YAML document accepted by 'batch'.
//
//	default_locale: ES
//	items:
//	  - number: 12345678Z
//	  - number: A123456789
//	    locale: zh-TW
type BatchFile struct {
	DefaultLocale string      `yaml:"default_locale"`
	Items         []BatchItem `yaml:"items"`
}

// BatchItem is one number to validate. An empty locale falls back to the
// file default, then to the --locale flag.
type BatchItem struct {
	Number string `yaml:"number"`
	Locale string `yaml:"locale"`
}

type runIDKey struct{}

type batchOptions struct {
	locale  string
	output  string
	mask    bool
	workers int
}

// NewBatchCommand creates the 'batch' command.
func NewBatchCommand(opts *Options) *cobra.Command {
	bOpts := &batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Validate every number listed in a YAML file (\"-\" reads stdin)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return NewUsageError(errors.Errorf("%q requires exactly 1 argument, received %d", cmd.Name(), len(args)))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, opts, bOpts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&bOpts.locale, LocaleFlag, LocaleShortFlag, opts.cfg.DefaultLocale, "Locale for items without one"+localeFlagSuffix)
	flags.StringVarP(&bOpts.output, OutputFlag, OutputShortFlag, OutputText, outputFlagUsage)
	flags.BoolVar(&bOpts.mask, MaskFlag, false, maskFlagUsage)
	flags.IntVar(&bOpts.workers, WorkersFlag, opts.cfg.BatchWorkers, "Maximum number of items validated concurrently")

	return cmd
}

func runBatch(cmd *cobra.Command, opts *Options, bOpts *batchOptions, path string) error {
	format, err := parseOutput(bOpts.output)
	if err != nil {
		return err
	}
	if bOpts.workers < 1 {
		return NewUsageError(errors.Errorf("--%s must be at least 1, got %d", WorkersFlag, bOpts.workers))
	}
	if err := opts.checkLocale(bOpts.locale); err != nil {
		return err
	}

	file, err := readBatchFile(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	fallback := bOpts.locale
	if file.DefaultLocale != "" {
		fallback = file.DefaultLocale
	}

	ctx := context.WithValue(cmd.Context(), runIDKey{}, uuid.NewString())
	start := time.Now()

	results, err := validateBatch(ctx, opts.registry, file.Items, fallback, bOpts.workers)
	if err != nil {
		return err
	}
	report := newReport(results)

	opts.log.InfoContext(ctx, "batch validated",
		logger.Component("batch"),
		logger.Count("total", report.Total),
		logger.Count("valid", report.Valid),
		logger.Count("invalid", report.Invalid),
		logger.Count("errors", report.Errors),
		logger.Duration(time.Since(start)),
	)

	err = renderReport(cmd.OutOrStdout(), report, renderOptions{format: format, mask: bOpts.mask, summary: true})
	if err != nil {
		return err
	}
	if report.Failed() {
		return ErrInvalidNumbers
	}
	return nil
}

func readBatchFile(stdin io.Reader, path string) (BatchFile, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return BatchFile{}, errors.Wrapf(err, "failed to read batch file %q", path)
	}

	var file BatchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return BatchFile{}, NewUsageError(errors.Wrapf(err, "failed to parse batch file %q", path))
	}
	return file, nil
}

// validateBatch validates items concurrently, at most workers at a time.
// Results keep the input order.
func validateBatch(
	ctx context.Context,
	reg *idcard.Registry,
	items []BatchItem,
	fallback string,
	workers int,
) ([]Result, error) {
	results := make([]Result, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			locale := item.Locale
			if locale == "" {
				locale = fallback
			}
			results[i] = check(reg, item.Number, locale)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "batch validation interrupted")
	}
	return results, nil
}
