package cmd

import (
	"github.com/josephlewis42/editorcmd/core/vos"
	"github.com/spf13/cobra"
)

var (
	resolveEditor   string
	resolveFallback string
	resolveFormat   string
	resolveVerbose  bool
	resolveColor    ColorPrinter
)

// resolveCmd prints the editor invocation for the given files
var resolveCmd = &cobra.Command{
	Use:   "resolve [FILE...]",
	Short: "Print the editor command line for the given files.",
	Long: `Print the editor command line for the given files.

The command is taken from the first of these that is set: --editor, the
configured editor, the configured environment variables (VISUAL and EDITOR by
default), --fallback and the configured fallback. A source that is set but
empty is reported as an error rather than skipped.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if err := validateFormat(resolveFormat); err != nil {
			return err
		}
		if err := resolveColor.Validate(); err != nil {
			return err
		}

		logger := newLogger(cmd.ErrOrStderr(), resolveVerbose)
		cfg, err := loadConfig(logger)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("editor") {
			cfg.Editor = &resolveEditor
		}
		if cmd.Flags().Changed("fallback") {
			cfg.Fallback = &resolveFallback
		}

		env := vos.OSEnv{}
		logger.Printf("Checking %s", sourceSummary(cfg.Sources(env)))

		editorCmd := cfg.Command(env).Paths(args...)
		inv, err := editorCmd.Build()
		if err != nil {
			return err
		}
		logger.Printf("Using editor from %s", describeSource(editorCmd.Source()))

		return printInvocation(cmd.OutOrStdout(), inv, resolveFormat, &resolveColor)
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	flags := resolveCmd.Flags()
	flags.StringVarP(&resolveEditor, "editor", "e", "", "Editor command, takes priority over every other source.")
	flags.StringVar(&resolveFallback, "fallback", "", "Editor command used if no other source is set.")
	flags.StringVarP(&resolveFormat, "format", "f", formatLines, "Output format (lines|json|shell).")
	flags.BoolVarP(&resolveVerbose, "verbose", "v", false, "Log where the editor command came from.")
	resolveColor.Init(resolveCmd)
}
