package core

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/goshrc/gosh/core/config"
)

const (
	EnvHome = "HOME"
	EnvPath = "PATH"
	EnvUser = "USER"
)

var (
	colorBoldGreen = color.New(color.FgGreen, color.Bold)
	colorBoldBlue  = color.New(color.FgBlue, color.Bold)
)

// Shell ties the line-input provider, the parser and the pipeline executor
// together into a read loop.
type Shell struct {
	Config   *config.Configuration
	Readline *readline.Instance
	History  *HistoryLog

	fs    afero.Fs
	stdio *StdIO

	lastRet int
}

func NewShell(configuration *config.Configuration) (*Shell, error) {
	fsys := afero.NewOsFs()

	cfg := &readline.Config{
		AutoComplete:           newShellCompleter(fsys, os.Getenv(EnvPath)),
		HistoryLimit:           configuration.HistoryLimit,
		DisableAutoSaveHistory: true,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &Shell{
		Config:   configuration,
		Readline: rl,
		History:  NewHistoryLog(fsys, historyPath(configuration)),
		fs:       fsys,
		stdio:    NewStdIO(os.Stdin, os.Stdout, os.Stderr),
	}, nil
}

func historyPath(configuration *config.Configuration) string {
	path := configuration.HistoryFile
	if path == "" {
		path = ".gosh_history"
	}
	if strings.HasPrefix(path, "~/") {
		if home := os.Getenv(EnvHome); home != "" {
			path = filepath.Join(home, path[2:])
		}
	}
	return path
}

// Run is the interactive read loop. It returns the last command's status
// when input is closed; the exit builtin terminates the process directly.
func (s *Shell) Run() int {
	for {
		s.Readline.SetPrompt(s.prompt())
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			return s.lastRet // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears the line.
			continue

		case err != nil:
			log.Printf("Error readline: %v", err)
			continue

		case strings.TrimSpace(line) == "":
			continue // empty line

		default:
			s.remember(line)
			s.RunCommand(line)
		}
	}
}

// RunCommand parses and executes a single command line.
func (s *Shell) RunCommand(line string) {
	pipeline := Parse(line)
	if pipeline == nil {
		return
	}
	s.Execute(pipeline)
}

// remember records an accepted line both for in-session recall and in the
// history log the history builtin reads.
func (s *Shell) remember(line string) {
	_ = s.Readline.SaveHistory(line)
	if err := s.History.Append(line); err != nil {
		log.Printf("Error writing history: %v", err)
	}
}

func (s *Shell) Close() error {
	return s.Readline.Close()
}

// LastStatus returns the exit status of the most recent pipeline.
func (s *Shell) LastStatus() int {
	return s.lastRet
}

// prompt expands the PS1-style template from the configuration.
func (s *Shell) prompt() string {
	prompt := s.Config.Prompt
	if prompt == "" {
		prompt = config.DefaultPrompt
	}

	host, _ := os.Hostname()
	prompt = strings.ReplaceAll(prompt, `\u`, s.paint(colorBoldGreen, os.Getenv(EnvUser)))
	prompt = strings.ReplaceAll(prompt, `\h`, s.paint(colorBoldGreen, host))

	pwd, _ := os.Getwd()
	if home := os.Getenv(EnvHome); home != "" && strings.HasPrefix(pwd, home) {
		pwd = "~" + strings.TrimPrefix(pwd, home)
	}
	prompt = strings.ReplaceAll(prompt, `\w`, s.paint(colorBoldBlue, pwd))

	if os.Geteuid() == 0 {
		prompt = strings.ReplaceAll(prompt, `\$`, "#")
	} else {
		prompt = strings.ReplaceAll(prompt, `\$`, "$")
	}

	return prompt
}

func (s *Shell) paint(c *color.Color, str string) string {
	switch s.Config.Color {
	case config.ColorNever:
		return str
	case config.ColorAlways:
		c.EnableColor()
		return c.Sprint(str)
	default:
		if color.NoColor {
			return str
		}
		return c.Sprint(str)
	}
}
