package editor

import (
	"context"
	"os/exec"

	"github.com/josephlewis42/editorcmd/core/vos"
)

// Invocation is a resolved editor command line.
type Invocation struct {
	// Program is the first word of the editor command.
	Program string
	// Args holds the remaining words of the editor command followed by the
	// paths to open.
	Args []string
}

// Argv returns the program followed by its arguments.
func (i *Invocation) Argv() []string {
	return append([]string{i.Program}, i.Args...)
}

// Cmd returns an unstarted command for the invocation. Stdio isn't
// connected; callers wanting an interactive editor should attach their own.
func (i *Invocation) Cmd() *exec.Cmd {
	return exec.Command(i.Program, i.Args...)
}

// CommandContext is like Cmd but the returned command is bound to ctx.
func (i *Invocation) CommandContext(ctx context.Context) *exec.Cmd {
	return exec.CommandContext(ctx, i.Program, i.Args...)
}

// ForFile resolves the editor for a single file. See ForFiles.
func ForFile(env vos.EnvLookuper, file string, priority, fallback *string) (*Invocation, error) {
	return ForFiles(env, priority, fallback, file)
}

// ForFiles resolves the editor command from, in decreasing precedence:
//
//   - priority
//   - the VISUAL environment variable
//   - the EDITOR environment variable
//   - fallback
//
// and appends files to its arguments. A nil priority or fallback is skipped.
func ForFiles(env vos.EnvLookuper, priority, fallback *string, files ...string) (*Invocation, error) {
	return NewWithEnv(env).
		OfferOptional("priority", priority).
		OfferEnvironment().
		OfferOptional("fallback", fallback).
		Paths(files...).
		Build()
}
