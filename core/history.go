package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// HistoryLog is the append-only log of submitted command lines. The read
// loop appends to it; the history builtin reads it back.
type HistoryLog struct {
	fs   afero.Fs
	path string
}

func NewHistoryLog(fsys afero.Fs, path string) *HistoryLog {
	return &HistoryLog{fs: fsys, path: path}
}

// Append adds one entry to the end of the log, creating it if needed.
func (h *HistoryLog) Append(line string) error {
	fd, err := h.fs.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer fd.Close()

	_, err = fmt.Fprintln(fd, line)
	return err
}

// Entries returns every entry in the log, oldest first. A missing log is
// an empty history, not an error.
func (h *HistoryLog) Entries() ([]string, error) {
	data, err := afero.ReadFile(h.fs, h.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimRight(string(data), "\n")
	if trimmed == "" {
		return nil, nil
	}
	return strings.Split(trimmed, "\n"), nil
}
