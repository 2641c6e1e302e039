package core

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// openRedirect resolves a redirection spec to a writable sink. Without a
// target the default sink is returned with a nil closer. When the target
// can't be opened the failure is reported to the shell's error stream and
// the stream degrades to a discard sink; the command still runs.
func openRedirect(fsys afero.Fs, spec RedirectSpec, def io.Writer, shellErr io.Writer) (io.Writer, io.Closer) {
	if !spec.HasTarget() {
		return def, nil
	}

	flag := os.O_CREATE | os.O_WRONLY
	if spec.Append {
		flag |= os.O_APPEND
	} else {
		flag |= os.O_TRUNC
	}

	fd, err := fsys.OpenFile(spec.TargetPath, flag, 0644)
	if err != nil {
		fmt.Fprintf(shellErr, "Error opening file %s: %v\n", spec.TargetPath, err)
		return io.Discard, nil
	}
	return fd, fd
}
