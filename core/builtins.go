package core

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// AllBuiltins holds every registered shell builtin keyed by name.
var AllBuiltins = make(map[string]Builtin)

type Builtin interface {
	Main(s *Shell, stdio *StdIO, args []string) int
}

type BuiltinFunc func(s *Shell, stdio *StdIO, args []string) int

func (f BuiltinFunc) Main(s *Shell, stdio *StdIO, args []string) int {
	return f(s, stdio, args)
}

var _ Builtin = (BuiltinFunc)(nil)

func builtinNames() []string {
	var names []string
	for name := range AllBuiltins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cd changes the working directory. A missing argument or "~" means the
// home directory; extra arguments are ignored.
func Cd(s *Shell, stdio *StdIO, args []string) int {
	dir := "~"
	if len(args) > 1 {
		dir = args[1]
	}
	if dir == "~" {
		dir = os.Getenv(EnvHome)
	}

	if err := os.Chdir(dir); err != nil {
		fmt.Fprintf(stdio.Err, "cd: %s: No such file or directory\n", dir)
		return 1
	}
	return 0
}

// Echo writes its arguments joined by single spaces. With -e as the first
// argument, backslash escapes in the remaining arguments are expanded.
func Echo(s *Shell, stdio *StdIO, args []string) int {
	args = args[1:]

	expand := false
	if len(args) > 0 && args[0] == "-e" {
		expand = true
		args = args[1:]
	}

	for i, arg := range args {
		if i > 0 {
			fmt.Fprint(stdio.Out, " ")
		}
		if expand {
			arg = expandEscapes(arg)
		}
		fmt.Fprint(stdio.Out, arg)
	}
	fmt.Fprintln(stdio.Out)
	return 0
}

// expandEscapes expands echo -e style sequences. Unknown escapes keep their
// backslash; a trailing lone backslash is dropped.
func expandEscapes(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '\\' {
			out.WriteRune(runes[i])
			continue
		}
		if i+1 == len(runes) {
			break
		}
		i++
		switch runes[i] {
		case 'n':
			out.WriteRune('\n')
		case 't':
			out.WriteRune('\t')
		case 'r':
			out.WriteRune('\r')
		case '\\':
			out.WriteRune('\\')
		case '0':
			out.WriteRune(0)
		case '"':
			out.WriteRune('"')
		case '\'':
			out.WriteRune('\'')
		default:
			out.WriteRune('\\')
			out.WriteRune(runes[i])
		}
	}
	return out.String()
}

// Exit terminates the whole shell process. A missing or non-numeric code
// means 0. This builtin never returns.
func Exit(s *Shell, stdio *StdIO, args []string) int {
	code := exitCode(args[1:])
	if s != nil && s.Readline != nil {
		s.Readline.Close()
	}
	os.Exit(code)
	return 0
}

func exitCode(args []string) int {
	if len(args) == 0 {
		return 0
	}
	code, err := strconv.Atoi(args[0])
	if err != nil {
		return 0
	}
	return code
}

// Pwd writes the current working directory.
func Pwd(s *Shell, stdio *StdIO, args []string) int {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(stdio.Err, "pwd: error retrieving current directory")
		return 1
	}
	fmt.Fprintln(stdio.Out, wd)
	return 0
}

// Type reports how a name would resolve: shell builtin, executable path or
// not found. Builtins win even when a same-named executable is on PATH.
func Type(s *Shell, stdio *StdIO, args []string) int {
	if len(args) < 2 {
		return 0
	}
	name := args[1]

	if _, ok := AllBuiltins[name]; ok {
		fmt.Fprintf(stdio.Out, "%s is a shell builtin\n", name)
		return 0
	}
	if path, err := LookPath(s.fs, os.Getenv(EnvPath), name); err == nil {
		fmt.Fprintf(stdio.Out, "%s is %s\n", name, path)
		return 0
	}
	fmt.Fprintf(stdio.Err, "%s: not found\n", name)
	return 1
}

// History prints the history log with 1-based entry numbers. A positive
// numeric argument limits output to the last n entries; anything else
// prints the whole log.
func History(s *Shell, stdio *StdIO, args []string) int {
	entries, err := s.History.Entries()
	if err != nil {
		fmt.Fprintf(stdio.Err, "history: %v\n", err)
		return 1
	}

	count := 0
	if len(args) > 1 {
		count, _ = strconv.Atoi(args[1])
	}

	start := 0
	if count > 0 && count < len(entries) {
		start = len(entries) - count
	}

	for i := start; i < len(entries); i++ {
		fmt.Fprintf(stdio.Out, "%5d  %s\n", i+1, entries[i])
	}
	return 0
}

func init() {
	AllBuiltins["cd"] = BuiltinFunc(Cd)
	AllBuiltins["echo"] = BuiltinFunc(Echo)
	AllBuiltins["exit"] = BuiltinFunc(Exit)
	AllBuiltins["pwd"] = BuiltinFunc(Pwd)
	AllBuiltins["type"] = BuiltinFunc(Type)
	AllBuiltins["history"] = BuiltinFunc(History)
}
