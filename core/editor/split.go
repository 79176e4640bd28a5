package editor

import (
	"unicode"

	"github.com/anmitsu/go-shlex"
)

// splitCommand splits a command into words using POSIX shell rules.
//
// shlex.Split drops words that unquote to nothing, so `vim ''` would lose an
// argument. Word boundaries are found here using the same quote and escape
// rules as shlex, each word is unquoted by shlex, and a word left with no
// tokens becomes "".
func splitCommand(command string) ([]string, error) {
	var words []string
	for _, raw := range rawWords(command) {
		tokens, err := shlex.Split(raw, true)
		if err != nil {
			return nil, err
		}

		switch len(tokens) {
		case 0:
			words = append(words, "")
		default:
			words = append(words, tokens...)
		}
	}
	return words, nil
}

// rawWords returns the still-quoted words of command. Whitespace is anything
// unicode.IsSpace accepts, matching shlex. An unterminated quote or trailing
// escape is kept in the last word so shlex reports it.
func rawWords(command string) []string {
	var (
		words   []string
		start   = -1
		quote   rune
		escaped bool
	)

	for i, r := range command {
		switch {
		case escaped:
			escaped = false
		case quote == '\'':
			if r == '\'' {
				quote = 0
			}
		case quote == '"':
			switch r {
			case '\\':
				escaped = true
			case '"':
				quote = 0
			}
		case unicode.IsSpace(r):
			if start >= 0 {
				words = append(words, command[start:i])
				start = -1
			}
			continue
		case r == '\\':
			escaped = true
		case r == '\'' || r == '"':
			quote = r
		}

		if start < 0 {
			start = i
		}
	}

	if start >= 0 {
		words = append(words, command[start:])
	}
	return words
}
