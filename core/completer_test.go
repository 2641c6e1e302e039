package core

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompleterFs(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	files := map[string]os.FileMode{
		"/bin/elixir":   0755,
		"/bin/elm":      0755,
		"/bin/readme":   0644, // not executable
		"/usr/bin/elm":  0755, // duplicate of /bin/elm
		"/usr/bin/nano": 0755,
	}
	for path, mode := range files {
		require.NoError(t, afero.WriteFile(fsys, path, []byte("#!"), 0644))
		require.NoError(t, fsys.Chmod(path, mode))
	}
	return fsys
}

func TestCompleterCandidates(t *testing.T) {
	c := newShellCompleter(newCompleterFs(t), "/bin:/usr/bin")

	suffixes := func(line string) []string {
		t.Helper()
		candidates, length := c.Do([]rune(line), len(line))
		assert.Equal(t, len(line), length)
		var out []string
		for _, candidate := range candidates {
			out = append(out, string(candidate))
		}
		return out
	}

	assert.Equal(t, []string{"ixir ", "m "}, suffixes("el"))
	assert.Equal(t, []string{"cho ", "lixir ", "lm ", "xit "}, suffixes("e"))
	assert.Equal(t, []string{"d "}, suffixes("pw"))
	assert.Empty(t, suffixes("readme"))
	assert.Empty(t, suffixes("zzz"))
}

func TestCompleterSkipsLaterWords(t *testing.T) {
	c := newShellCompleter(newCompleterFs(t), "/bin")

	line := []rune("echo el")
	candidates, length := c.Do(line, len(line))
	assert.Nil(t, candidates)
	assert.Zero(t, length)
}

func TestCompleterDeduplicates(t *testing.T) {
	c := newShellCompleter(newCompleterFs(t), "/bin:/usr/bin")

	line := []rune("elm")
	candidates, _ := c.Do(line, len(line))
	require.Len(t, candidates, 1)
	assert.Equal(t, " ", string(candidates[0]))
}

func TestCompleterIgnoresMissingDirs(t *testing.T) {
	c := newShellCompleter(afero.NewMemMapFs(), "/does/not/exist")
	assert.Equal(t, builtinNames(), c.commands)
}
