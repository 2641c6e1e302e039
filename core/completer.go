package core

import (
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/spf13/afero"
)

// shellCompleter offers completion candidates for the first word of a
// line, drawn from the builtin names plus every executable on PATH. The
// candidate list is built once at startup, like the rest of the
// line-editing state.
type shellCompleter struct {
	commands []string
}

func newShellCompleter(fsys afero.Fs, pathList string) *shellCompleter {
	commands := builtinNames()

	for _, dir := range filepath.SplitList(pathList) {
		infos, err := afero.ReadDir(fsys, dir)
		if err != nil {
			continue
		}
		for _, info := range infos {
			if m := info.Mode(); m.IsRegular() && m&0111 != 0 {
				commands = append(commands, info.Name())
			}
		}
	}

	sort.Strings(commands)
	var deduped []string
	for _, command := range commands {
		if n := len(deduped); n == 0 || deduped[n-1] != command {
			deduped = append(deduped, command)
		}
	}

	return &shellCompleter{commands: deduped}
}

// Do implements readline.AutoCompleter. It returns the completion suffixes
// for the word under the cursor, with a trailing space, and nothing when
// the cursor is past the first word.
func (c *shellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	word := string(line[:pos])
	if strings.IndexFunc(word, unicode.IsSpace) >= 0 {
		return nil, 0
	}

	var candidates [][]rune
	for _, command := range c.commands {
		if strings.HasPrefix(command, word) {
			candidates = append(candidates, []rune(command[len(word):]+" "))
		}
	}
	return candidates, len(word)
}
