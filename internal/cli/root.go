package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/idcard/pkg/config"
)

// Flag names shared by several commands.
const (
	LocaleFlag       = "locale"
	LocaleShortFlag  = "l"
	OutputFlag       = "output"
	OutputShortFlag  = "o"
	MaskFlag         = "mask"
	WorkersFlag      = "workers"
	LogLevelFlag     = "log-level"
	LogFormatFlag    = "log-format"
	outputFlagUsage  = "Output format: text, json or yaml"
	maskFlagUsage    = "Mask numbers in the output"
	localeFlagSuffix = ` (ES, IN, NO, he-IL, ar-TN, zh-CN, zh-TW or "any")`
)

// Run loads configuration, executes the command line and returns the process exit code.
func Run(ctx context.Context, version string, args []string, in io.Reader, out, errOut io.Writer) int {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		_, _ = fmt.Fprintf(errOut, "idcard: %v\n", err)
		return ExitFailure
	}

	cmd := NewRootCommand(NewOptions(cfg, version, in, out, errOut))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrInvalidNumbers) {
		_, _ = fmt.Fprintf(errOut, "idcard: %v\n", err)
	}
	return exitCode(err)
}

// NewRootCommand creates the 'idcard' command tree.
func NewRootCommand(opts *Options) *cobra.Command {
	cobra.EnableCommandSorting = false

	cmd := &cobra.Command{
		Use:           "idcard [COMMAND]",
		Short:         "Validate national identity card numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.setupLogger()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.SetIn(opts.in)
	cmd.SetOut(opts.out)
	cmd.SetErr(opts.errOut)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return NewUsageError(err)
	})

	setupPersistentFlags(cmd.PersistentFlags(), opts)

	cmd.AddCommand(
		NewValidateCommand(opts),
		NewBatchCommand(opts),
		NewLocalesCommand(opts),
		NewVersionCommand(opts),
	)

	return cmd
}

func setupPersistentFlags(flags *pflag.FlagSet, opts *Options) {
	flags.StringVar(&opts.cfg.LogLevel, LogLevelFlag, opts.cfg.LogLevel, "Log level: debug, info, warn or error")
	flags.StringVar(&opts.cfg.LogFormat, LogFormatFlag, opts.cfg.LogFormat, "Log format: text or json")
}
