// Package editor builds the command line used to open files in the user's
// configured text editor.
//
// A Command collects candidate editor commands from several sources, highest
// priority first, and keeps the first one that is present. Typical sources
// are an application specific override, the VISUAL and EDITOR environment
// variables, and a static fallback:
//
//	inv, err := editor.New().
//		Offer(os.LookupEnv("MYAPP_EDITOR")).
//		OfferEnvironment().
//		OfferString("vi").
//		Path("notes.txt").
//		Build()
//
// The selected command is split into words using shell-like rules and the
// paths are appended as trailing arguments. The editor is never started.
//
// For more on VISUAL and EDITOR see
// https://bash.cyberciti.biz/guide/$VISUAL_vs._$EDITOR_variable_%E2%80%93_what_is_the_difference%3F
package editor

import (
	"github.com/josephlewis42/editorcmd/core/vos"
)

const (
	// EnvVisual is the primary variable consulted by OfferEnvironment, the
	// user's preferred full-screen editor.
	EnvVisual = "VISUAL"

	// EnvEditor is the secondary variable consulted by OfferEnvironment.
	EnvEditor = "EDITOR"
)

// DefaultEnvironmentVariables returns the variables read by
// OfferEnvironment, in precedence order.
func DefaultEnvironmentVariables() []string {
	return []string{EnvVisual, EnvEditor}
}

// Command accumulates the sources and target paths of an editor invocation.
//
// The first present source wins; every later offer is ignored. A present but
// empty source still wins and makes Build fail with ErrEmptyCommand, so a
// blank setting is reported rather than silently skipped.
//
// A Command isn't safe for concurrent use.
type Command struct {
	env vos.EnvLookuper

	command  string
	source   string
	selected bool

	paths []string
}

// New creates a Command that reads environment variables from the current
// process.
func New() *Command {
	return NewWithEnv(vos.OSEnv{})
}

// NewWithEnv creates a Command that reads environment variables from env.
func NewWithEnv(env vos.EnvLookuper) *Command {
	return &Command{env: env}
}

// Offer selects value as the command if ok is true and nothing was selected
// yet. Its signature matches LookupEnv so lookups can be passed directly.
func (c *Command) Offer(value string, ok bool) *Command {
	return c.OfferSource("", value, ok)
}

// OfferString offers a value that is always present.
func (c *Command) OfferString(value string) *Command {
	return c.OfferSource("", value, true)
}

// OfferSource is Offer with a name recorded for the source if it wins.
func (c *Command) OfferSource(name, value string, ok bool) *Command {
	if c.selected || !ok {
		return c
	}

	c.command = value
	c.source = name
	c.selected = true
	return c
}

// OfferOptional offers *value under the given source name, a nil value is
// absent.
func (c *Command) OfferOptional(name string, value *string) *Command {
	if value == nil {
		return c
	}
	return c.OfferSource(name, *value, true)
}

// OfferEnvironment offers the VISUAL then the EDITOR environment variables.
func (c *Command) OfferEnvironment() *Command {
	return c.OfferEnvironmentVars(DefaultEnvironmentVariables()...)
}

// OfferEnvironmentVars offers the named environment variables in order.
// Variables are read immediately, so later changes to the environment don't
// affect the result.
func (c *Command) OfferEnvironmentVars(names ...string) *Command {
	for _, name := range names {
		value, ok := c.env.LookupEnv(name)
		c.OfferSource(name, value, ok)
	}
	return c
}

// Path adds a file to open. Paths are passed in the order they're added.
func (c *Command) Path(path string) *Command {
	c.paths = append(c.paths, path)
	return c
}

// Paths adds several files to open.
func (c *Command) Paths(paths ...string) *Command {
	c.paths = append(c.paths, paths...)
	return c
}

// Value returns the selected command and whether one was selected.
func (c *Command) Value() (string, bool) {
	return c.command, c.selected
}

// Source returns the name of the selected source: the environment variable
// it was read from, the name given to OfferSource, or "" for plain offers.
func (c *Command) Source() string {
	return c.source
}

// Build parses the selected command and appends the paths to its arguments.
func (c *Command) Build() (*Invocation, error) {
	if !c.selected {
		return nil, ErrNoCommand
	}

	words, err := splitCommand(c.command)
	if err != nil {
		return nil, &ParseError{Command: c.command, Err: err}
	}

	if len(words) == 0 {
		return nil, ErrEmptyCommand
	}

	args := make([]string, 0, len(words)-1+len(c.paths))
	args = append(args, words[1:]...)
	args = append(args, c.paths...)

	return &Invocation{
		Program: words[0],
		Args:    args,
	}, nil
}
