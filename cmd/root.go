package cmd

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/josephlewis42/editorcmd/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgPath string

	appFs = afero.NewOsFs()
)

// loadConfig loads the configuration, falling back to the built-in defaults
// if none exists.
func loadConfig(logger *log.Logger) (*config.Configuration, error) {
	configuration, err := config.Load(appFs, cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		logger.Printf("No configuration in %q, using defaults: did you run init?", cfgPath)
		return config.Default(), nil
	}

	return configuration, err
}

func defaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "editorcmd")
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		w = io.Discard
	}
	return log.New(w, "", 0)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "editorcmd",
	Short: "Resolve the command line for the user's text editor",
	Long: `Resolve the command line for the user's text editor from the configured
editor, the VISUAL and EDITOR environment variables and a fallback, in that
order.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigDir(), "config path")
}
