package core

import (
	"fmt"
	"io"
	"os/exec"
)

// Execute runs a parsed pipeline to completion. Stages are dispatched
// strictly left to right: builtins run synchronously in-process, external
// stages are spawned back-to-back so the OS streams data through the
// connecting pipes, and every spawned process is reaped, in spawn order,
// before Execute returns.
func (s *Shell) Execute(p *Pipeline) {
	if p == nil || len(p.Stages) == 0 {
		return
	}
	last := len(p.Stages) - 1

	var reap []*exec.Cmd
	var lastCmd *exec.Cmd // final stage, when external
	var closers []io.Closer
	var prevPipe *pipeChannel

	for i := range p.Stages {
		stage := &p.Stages[i]
		if len(stage.Argv) == 0 {
			// Degenerate segment (whitespace or redirections only):
			// skip it without advancing the pipe state.
			continue
		}
		name := stage.Argv[0]

		inPipe := prevPipe
		prevPipe = nil

		// A mid-pipeline stage always writes into the next pipe; its own
		// stdout redirection is overridden. Only the last stage's stdout
		// spec is honored.
		var stdoutW io.Writer
		var outPipe *pipeChannel
		if i == last {
			w, closer := openRedirect(s.fs, stage.Stdout, s.stdio.Out, s.stdio.Err)
			stdoutW = w
			if closer != nil {
				closers = append(closers, closer)
			}
		} else {
			pipe, err := newPipeChannel()
			if err != nil {
				fmt.Fprintf(s.stdio.Err, "%s: %v\n", name, err)
				if inPipe != nil {
					inPipe.read.Close()
				}
				continue
			}
			outPipe = pipe
			prevPipe = pipe
			stdoutW = pipe.write
		}

		// Stderr is honored independently of pipeline position.
		stderrW, closer := openRedirect(s.fs, stage.Stderr, s.stdio.Err, s.stdio.Err)
		if closer != nil {
			closers = append(closers, closer)
		}

		switch res := s.Resolve(name); res.Class {
		case ClassBuiltin:
			var in io.Reader
			if inPipe != nil {
				in = inPipe.read
			}
			ret := res.Builtin.Main(s, NewStdIO(in, stdoutW, stderrW), stage.Argv)
			if i == last {
				s.lastRet = ret
			}

		case ClassExternal:
			cmd := &exec.Cmd{
				Path:   res.Path,
				Args:   stage.Argv, // the child sees its invoked name, not the resolved path
				Stdout: stdoutW,
				Stderr: stderrW,
			}
			if inPipe != nil {
				cmd.Stdin = inPipe.read
			}
			if err := cmd.Start(); err != nil {
				// The downstream pipe stays unfed; closing our write end
				// below makes the next stage read EOF instead of blocking.
				fmt.Fprintf(stderrW, "%s: %v\n", name, err)
				if i == last {
					s.lastRet = 126
				}
			} else {
				reap = append(reap, cmd)
				if i == last {
					lastCmd = cmd
				}
			}

		case ClassNotFound:
			fmt.Fprintf(stderrW, "%s: command not found\n", name)
			if i == last {
				s.lastRet = 127
			}
		}

		// The child holds duplicates of the pipe ends; release ours so
		// EOF and EPIPE propagate.
		if inPipe != nil {
			inPipe.read.Close()
		}
		if outPipe != nil {
			outPipe.write.Close()
		}
	}

	if prevPipe != nil {
		prevPipe.read.Close()
	}

	for _, cmd := range reap {
		err := cmd.Wait()
		if cmd != lastCmd {
			continue
		}
		s.lastRet = 0
		if exitErr, ok := err.(*exec.ExitError); ok {
			s.lastRet = exitErr.ExitCode()
		}
	}
	for _, closer := range closers {
		closer.Close()
	}
}
