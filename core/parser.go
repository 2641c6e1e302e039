package core

import (
	"strings"
	"unicode"
)

// RedirectSpec describes where one of a command's output streams goes. An
// empty TargetPath means the stream keeps its default destination (the
// inherited stream or the connecting pipe).
type RedirectSpec struct {
	TargetPath string `yaml:"target_path,omitempty"`
	Append     bool   `yaml:"append,omitempty"`
}

// HasTarget reports whether the stream was redirected to a file.
func (r RedirectSpec) HasTarget() bool {
	return r.TargetPath != ""
}

// CommandSpec is one pipe-delimited segment of a command line. Argv may be
// empty when the segment held nothing but whitespace or redirections; the
// executor skips such segments.
type CommandSpec struct {
	Argv   []string     `yaml:"argv,omitempty"`
	Stdout RedirectSpec `yaml:"stdout,omitempty"`
	Stderr RedirectSpec `yaml:"stderr,omitempty"`
}

// Pipeline is an ordered list of command segments connected by pipes.
type Pipeline struct {
	Stages []CommandSpec `yaml:"stages"`
}

type parseState int

const (
	stateNormal parseState = iota
	stateSingleQuoted
	stateDoubleQuoted
)

type redirectMode int

const (
	redirectNone redirectMode = iota
	redirectStdout
	redirectStderr
	redirectBoth
)

// doubleQuoteEscapes are the only characters a backslash escapes inside
// double quotes; before anything else the backslash stays literal.
const doubleQuoteEscapes = "`\\$\"!"

// Parse turns a raw command line into a pipeline of command specs. It
// returns nil when the line is blank or no segment carries an argument or a
// redirection. Parsing never fails: malformed segments surface as empty
// argv and are skipped at execution time.
func Parse(line string) *Pipeline {
	runes := []rune(strings.TrimSpace(line))

	var stages []CommandSpec

	// Per-stage accumulators, reset at every pipe.
	var argv []string
	var stdout, stderr RedirectSpec
	var tok strings.Builder
	state := stateNormal
	escaped := false
	mode := redirectNone

	// closeToken flushes the pending token into argv, or into the pending
	// redirection target when one is being collected.
	closeToken := func() {
		if tok.Len() == 0 {
			return
		}
		t := tok.String()
		tok.Reset()

		switch mode {
		case redirectStdout:
			stdout.TargetPath = t
		case redirectStderr:
			stderr.TargetPath = t
		case redirectBoth:
			stdout.TargetPath = t
			stderr.TargetPath = t
		default:
			argv = append(argv, t)
			return
		}
		mode = redirectNone
	}

	// enterRedirect completes any pending token, then starts collecting a
	// fresh target for the given streams. Re-redirecting a stream discards
	// the earlier spec: the last redirection wins.
	enterRedirect := func(m redirectMode) {
		closeToken()
		switch m {
		case redirectStdout:
			stdout = RedirectSpec{}
		case redirectStderr:
			stderr = RedirectSpec{}
		case redirectBoth:
			stdout = RedirectSpec{}
			stderr = RedirectSpec{}
		}
		mode = m
	}

	pushStage := func() {
		stages = append(stages, CommandSpec{Argv: argv, Stdout: stdout, Stderr: stderr})
		argv = nil
		stdout = RedirectSpec{}
		stderr = RedirectSpec{}
		state = stateNormal
		escaped = false
		mode = redirectNone
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch state {
		case stateSingleQuoted:
			if r == '\'' {
				state = stateNormal
			} else {
				tok.WriteRune(r)
			}

		case stateDoubleQuoted:
			switch r {
			case '"':
				state = stateNormal
			case '\\':
				if i+1 < len(runes) && strings.ContainsRune(doubleQuoteEscapes, runes[i+1]) {
					tok.WriteRune(runes[i+1])
					i++
				} else {
					tok.WriteRune(r)
				}
			default:
				tok.WriteRune(r)
			}

		default: // stateNormal
			if escaped {
				tok.WriteRune(r)
				escaped = false
				continue
			}

			switch {
			case r == '\'':
				state = stateSingleQuoted

			case r == '"':
				state = stateDoubleQuoted

			case r == '\\':
				escaped = true

			case r == '|':
				closeToken()
				pushStage()

			case (r == '1' || r == '2' || r == '&') && tok.Len() == 0 &&
				i+1 < len(runes) && runes[i+1] == '>':
				i++
				switch r {
				case '1':
					enterRedirect(redirectStdout)
				case '2':
					enterRedirect(redirectStderr)
				case '&':
					enterRedirect(redirectBoth)
				}

			case r == '>':
				if mode != redirectNone && tok.Len() == 0 {
					// Second consecutive > switches the pending
					// redirection to append.
					switch mode {
					case redirectStdout:
						stdout.Append = true
					case redirectStderr:
						stderr.Append = true
					case redirectBoth:
						stdout.Append = true
						stderr.Append = true
					}
				} else {
					enterRedirect(redirectStdout)
				}

			case unicode.IsSpace(r):
				closeToken()

			default:
				tok.WriteRune(r)
			}
		}
	}

	closeToken()
	pushStage()

	for _, stage := range stages {
		if len(stage.Argv) > 0 || stage.Stdout.HasTarget() || stage.Stderr.HasTarget() {
			return &Pipeline{Stages: stages}
		}
	}
	return nil
}
