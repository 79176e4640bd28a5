package editor

import "errors"

var (
	// ErrNoCommand is returned by Build when no source offered a command.
	ErrNoCommand = errors.New("VISUAL and EDITOR environment variables are undefined")

	// ErrEmptyCommand is returned by Build when the selected command contains
	// no words, e.g. it is empty or only whitespace.
	ErrEmptyCommand = errors.New("editor command is empty")
)

// ParseError is returned by Build when the selected command isn't valid
// shell-like syntax.
type ParseError struct {
	// Command holds the raw command that failed to parse.
	Command string
	// Err is the tokenizer's error.
	Err error
}

func (e *ParseError) Error() string {
	return "invalid editor command: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
