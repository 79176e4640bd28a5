package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/fatih/color"
	"github.com/josephlewis42/editorcmd/core/config"
	"github.com/josephlewis42/editorcmd/core/editor"
	"github.com/spf13/cobra"
)

const (
	formatLines = "lines"
	formatJSON  = "json"
	formatShell = "shell"

	colorAlways = "always"
	colorAuto   = "auto"
	colorNever  = "never"
)

var (
	ColorBoldGreen = color.New(color.FgGreen, color.Bold)
	ColorFaint     = color.New(color.Faint)
)

func validateFormat(format string) error {
	switch format {
	case formatLines, formatJSON, formatShell:
		return nil
	default:
		return fmt.Errorf("unknown format %q, expected one of: %s, %s, %s", format, formatLines, formatJSON, formatShell)
	}
}

type ColorPrinter struct {
	value string
}

// Init adds the --color flag to the command.
func (c *ColorPrinter) Init(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.value, "color", colorAuto, "colorize the output (always|auto|never)")
}

// Validate checks the flag holds a known value.
func (c *ColorPrinter) Validate() error {
	switch c.value {
	case colorAlways, colorAuto, colorNever, "":
		return nil
	default:
		return fmt.Errorf("invalid --color %q, expected always, auto or never", c.value)
	}
}

func (c *ColorPrinter) ShouldColor() bool {
	switch c.value {
	case colorNever:
		return false
	case colorAlways:
		return true
	default:
		return !color.NoColor
	}
}

func (c *ColorPrinter) Sprintf(col *color.Color, format string, a ...interface{}) string {
	if c.ShouldColor() {
		col.EnableColor()
		return col.Sprintf(format, a...)
	}
	return fmt.Sprintf(format, a...)
}

type invocationJSON struct {
	Program string   `json:"program"`
	Args    []string `json:"args"`
}

// printInvocation writes inv to w in the given format.
func printInvocation(w io.Writer, inv *editor.Invocation, format string, cp *ColorPrinter) error {
	switch format {
	case formatJSON:
		args := inv.Args
		if args == nil {
			args = []string{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(invocationJSON{Program: inv.Program, Args: args})

	case formatShell:
		_, err := fmt.Fprintln(w, shellescape.QuoteCommand(inv.Argv()))
		return err

	default:
		if _, err := fmt.Fprintln(w, cp.Sprintf(ColorBoldGreen, "%s", inv.Program)); err != nil {
			return err
		}
		for _, arg := range inv.Args {
			if _, err := fmt.Fprintln(w, arg); err != nil {
				return err
			}
		}
		return nil
	}
}

// printSources writes one line per source and marks the first present one,
// which is the one an editor command would be built from.
func printSources(w io.Writer, sources []config.Source, cp *ColorPrinter) error {
	width := 0
	for _, s := range sources {
		if n := len(sourceName(s)); n > width {
			width = n
		}
	}

	found := false
	for _, s := range sources {
		winner := s.Present && !found
		found = found || s.Present

		marker, value := " ", "(unset)"
		if s.Present {
			value = fmt.Sprintf("%q", s.Value)
		}
		if winner {
			marker = "*"
		}

		line := fmt.Sprintf("%s %-*s  %s", marker, width, sourceName(s), value)
		switch {
		case winner:
			line = cp.Sprintf(ColorBoldGreen, "%s", line)
		case !s.Present:
			line = cp.Sprintf(ColorFaint, "%s", line)
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if !found {
		_, err := fmt.Fprintln(w, "no editor command is set")
		return err
	}
	return nil
}

func sourceName(s config.Source) string {
	if s.Env {
		return "$" + s.Name
	}
	return s.Name
}

// sourceSummary lists the sources in precedence order and whether each is set.
func sourceSummary(sources []config.Source) string {
	parts := make([]string, 0, len(sources))
	for _, s := range sources {
		state := "set"
		if !s.Present {
			state = "unset"
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", sourceName(s), state))
	}
	return strings.Join(parts, ", ")
}

func describeSource(name string) string {
	switch name {
	case config.SourceEditor:
		return "the editor setting"
	case config.SourceFallback:
		return "the fallback setting"
	default:
		return "$" + name
	}
}
