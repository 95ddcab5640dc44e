package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vttext/internal/logging"
	"vttext/internal/transcript"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var encodingFlag string
	var verbose bool
	var showStats bool
	var initConfig bool
	var checkConfig bool
	var overwrite bool

	ctx := newCommandContext(&configFlag, &encodingFlag, &verbose)

	rootCmd := &cobra.Command{
		Use:   "vttext <input.vtt> [output.txt]",
		Short: "Convert VTT subtitle files to plain text with deduplication",
		Long: `Convert a VTT caption file to plain text.

Auto-generated captions repeat lines across overlapping cues. vttext drops
headers, metadata, timestamps, and cue numbers, strips inline markup, and keeps
each caption line once, in the order it first appears.

If the output file is omitted the transcript is printed to stdout.
--init-config writes a sample configuration to --config (or the default path);
--check-config loads and validates it.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if initConfig || checkConfig {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.RangeArgs(1, 2)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case initConfig:
				return runInitConfig(cmd.OutOrStdout(), configFlag, overwrite)
			case checkConfig:
				return runCheckConfig(cmd.OutOrStdout(), configFlag)
			}

			input := args[0]
			var output string
			if len(args) == 2 {
				output = args[1]
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			service := transcript.NewService(cfg, logger)
			result, err := service.Convert(cmd.Context(), transcript.Request{InputPath: input, OutputPath: output})
			if err != nil {
				return wrapConvertError(input, err)
			}

			out := cmd.OutOrStdout()
			if output != "" {
				fmt.Fprintf(out, "Converted to: %s\n", output)
			} else {
				fmt.Fprintln(out, result.Text())
			}
			if showStats {
				errOut := cmd.ErrOrStderr()
				fmt.Fprintln(errOut, renderStats(result.Stats, shouldColorize(errOut)))
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	flags.StringVarP(&encodingFlag, "encoding", "e", "", "Input text encoding (overrides input.encoding)")
	flags.BoolVar(&showStats, "stats", false, "Print line classification and deduplication counts to stderr")
	flags.BoolVar(&initConfig, "init-config", false, "Write a sample configuration file and exit")
	flags.BoolVar(&overwrite, "overwrite", false, "With --init-config, replace an existing configuration file")
	flags.BoolVar(&checkConfig, "check-config", false, "Validate the configuration file and exit")
	rootCmd.MarkFlagsMutuallyExclusive("init-config", "check-config")

	return rootCmd
}
