package core

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRedirectDefault(t *testing.T) {
	def := &bytes.Buffer{}
	shellErr := &bytes.Buffer{}

	w, closer := openRedirect(afero.NewMemMapFs(), RedirectSpec{}, def, shellErr)
	assert.Nil(t, closer)
	assert.Equal(t, io.Writer(def), w)
	assert.Empty(t, shellErr.String())
}

func TestOpenRedirectTruncate(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "out.txt", []byte("old contents"), 0644))

	w, closer := openRedirect(fsys, RedirectSpec{TargetPath: "out.txt"}, nil, io.Discard)
	require.NotNil(t, closer)
	_, err := io.WriteString(w, "hi\n")
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	data, err := afero.ReadFile(fsys, "out.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi\n", string(data))
}

func TestOpenRedirectAppend(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "out.txt", []byte("hi\n"), 0644))

	w, closer := openRedirect(fsys, RedirectSpec{TargetPath: "out.txt", Append: true}, nil, io.Discard)
	require.NotNil(t, closer)
	_, err := io.WriteString(w, "bye\n")
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	data, err := afero.ReadFile(fsys, "out.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi\nbye\n", string(data))
}

func TestOpenRedirectFailureDegrades(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())
	shellErr := &bytes.Buffer{}

	w, closer := openRedirect(fsys, RedirectSpec{TargetPath: "out.txt"}, nil, shellErr)
	assert.Nil(t, closer)
	assert.Contains(t, shellErr.String(), "Error opening file out.txt")

	// The degraded sink discards but never fails.
	n, err := io.WriteString(w, "dropped")
	assert.NoError(t, err)
	assert.Equal(t, len("dropped"), n)
}
