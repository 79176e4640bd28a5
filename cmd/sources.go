package cmd

import (
	"github.com/josephlewis42/editorcmd/core/vos"
	"github.com/spf13/cobra"
)

var sourcesColor ColorPrinter

// sourcesCmd shows every source that is consulted
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the editor sources in precedence order and mark the one in use.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if err := sourcesColor.Validate(); err != nil {
			return err
		}

		cfg, err := loadConfig(newLogger(cmd.ErrOrStderr(), true))
		if err != nil {
			return err
		}

		return printSources(cmd.OutOrStdout(), cfg.Sources(vos.OSEnv{}), &sourcesColor)
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
	sourcesColor.Init(sourcesCmd)
}
