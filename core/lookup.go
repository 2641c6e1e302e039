package core

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound is the error resulting if a path search failed to find an
// executable file.
var ErrNotFound = exec.ErrNotFound

// Classification says how a command name resolves.
type Classification int

const (
	ClassNotFound Classification = iota
	ClassBuiltin
	ClassExternal
)

// Resolution is the outcome of resolving one command name.
type Resolution struct {
	Class Classification

	// Path is the executable to spawn, set for ClassExternal.
	Path string

	// Builtin is the in-process implementation, set for ClassBuiltin.
	Builtin Builtin
}

func findExecutable(fsys afero.Fs, file string) error {
	d, err := fsys.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return os.ErrPermission
}

// LookPath searches for an executable named file in the directories named
// by the path list. If file contains a slash, it is tried directly and the
// path list is not consulted. The result may be an absolute path or a path
// relative to the current directory. Resolution is fresh on every call;
// nothing is cached.
func LookPath(fsys afero.Fs, pathList string, file string) (string, error) {
	if strings.Contains(file, "/") {
		if err := findExecutable(fsys, file); err == nil {
			return file, nil
		}
		return "", ErrNotFound
	}
	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		d, err := fsys.Stat(path)
		if err != nil {
			continue
		}
		if m := d.Mode(); m.IsRegular() && m&0111 != 0 {
			return path, nil
		}
	}
	return "", ErrNotFound
}

// Resolve classifies a command name as a builtin, an external executable or
// not found. Builtin names always win over same-named PATH entries.
func (s *Shell) Resolve(name string) Resolution {
	if builtin, ok := AllBuiltins[name]; ok {
		return Resolution{Class: ClassBuiltin, Builtin: builtin}
	}
	if path, err := LookPath(s.fs, os.Getenv(EnvPath), name); err == nil {
		return Resolution{Class: ClassExternal, Path: path}
	}
	return Resolution{Class: ClassNotFound}
}
