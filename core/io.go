package core

import (
	"io"
	"os"
)

// StdIO carries the three standard streams handed to one pipeline stage.
// Builtins write through it directly; external processes receive the same
// streams as their stdin/stdout/stderr.
type StdIO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// NewStdIO builds a stage's standard streams. Nil readers behave like a
// closed input and nil writers discard.
func NewStdIO(in io.Reader, out, err io.Writer) *StdIO {
	return &StdIO{
		In:  readerOrClosed(in),
		Out: writerOrDiscard(out),
		Err: writerOrDiscard(err),
	}
}

func readerOrClosed(r io.Reader) io.Reader {
	if r == nil {
		return &devNull{}
	}
	return r
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return &devNull{}
	}
	return w
}

// devNull implements io.Reader and io.Writer, always closed for reads and
// discarding writes.
type devNull struct{}

var _ io.ReadCloser = (*devNull)(nil)
var _ io.WriteCloser = (*devNull)(nil)

func (*devNull) Read([]byte) (int, error) {
	return 0, io.EOF
}

func (*devNull) Write(b []byte) (int, error) {
	return len(b), nil
}

func (*devNull) Close() error {
	return nil
}

// pipeChannel is one anonymous OS pipe connecting two adjacent pipeline
// stages. Both ends are raw file handles, so they work as in-process
// streams for builtins and as duplicable standard streams for children.
type pipeChannel struct {
	read  *os.File
	write *os.File
}

func newPipeChannel() (*pipeChannel, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	return &pipeChannel{read: r, write: w}, nil
}
