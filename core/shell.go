// Package core implements the dragonshell execution engine: the
// read-eval loop, command launching, pipelines, redirection, signal
// forwarding and child CPU time accounting.
package core

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/anmitsu/go-shlex"
	"github.com/fatih/color"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/AhnafulH/unix-shell/core/config"
	"github.com/AhnafulH/unix-shell/core/logger"
)

var promptColor = color.New(color.FgGreen, color.Bold)

type Shell struct {
	Config   *config.Configuration
	Session  *Session
	Readline *readline.Instance
	Log      *logger.SessionLogger

	controller *SignalController

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	interactive bool
	exiting     bool
}

func NewShell(configuration *config.Configuration, log *logger.SessionLogger) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     configuration.HistoryPath(),
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, err
	}

	shell := &Shell{
		Config:      configuration,
		Session:     NewSession(),
		Readline:    rl,
		Log:         log,
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
	shell.controller = NewSignalController(shell.Session, log, shell.redrawPrompt)

	return shell, nil
}

// Prompt renders the configured prompt, colored when interactive.
func (s *Shell) Prompt() string {
	prompt := s.Config.Prompt
	if s.Config.Color && s.interactive {
		prompt = promptColor.Sprint(prompt)
	}
	return prompt
}

// redrawPrompt gives the user a fresh prompt after a signal arrives
// with no foreground command to forward it to.
func (s *Shell) redrawPrompt() {
	fmt.Fprintf(s.stdout, "\n%s", s.Prompt())
}

// Run is the interactive read-eval loop. It blocks only on reading the
// next line and on waiting for foreground commands; it returns when
// input is exhausted or the exit builtin runs, both of which go through
// the same shutdown path.
func (s *Shell) Run() error {
	s.controller.Start()
	defer s.controller.Stop()

	s.Log.SessionStart()
	if s.interactive && s.Config.Motd != "" {
		fmt.Fprintln(s.stdout, s.Config.Motd)
	}

	for {
		s.Readline.SetPrompt(s.Prompt())
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			// End of input terminates the session successfully.
			s.Shutdown()
			return nil

		case err == readline.ErrInterrupt:
			continue // Readline already redrew the prompt.

		case err != nil:
			return err
		}

		s.Interpret(line)

		if s.exiting {
			s.Shutdown()
			return nil
		}
	}
}

// Interpret parses and runs one line of input.
func (s *Shell) Interpret(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}

	// A pipe splits the raw line before tokenization; each half is
	// tokenized independently.
	if left, right, ok := SplitPipe(line); ok {
		s.RunPipeline(left, right)
		return
	}

	tokens, err := shlex.Split(line, true)
	if err != nil {
		fmt.Fprintln(s.stderr, "dragonshell: syntax error: unexpected end of file")
		return
	}
	if len(tokens) == 0 {
		return
	}

	if builtin, ok := AllBuiltins[tokens[0]]; ok {
		builtin.Main(s, tokens)
		return
	}

	argv, background := StripBackground(tokens)
	if len(argv) == 0 {
		return
	}
	s.Launch(argv, background)
}

// Shutdown reports the session's cumulative child CPU time, terminates
// a still-tracked background process and records the session end.
func (s *Shell) Shutdown() {
	userTime, sysTime := s.Session.Totals()
	fmt.Fprintf(s.stdout, "User time: %d seconds\n", int64(userTime.Seconds()))
	fmt.Fprintf(s.stdout, "Sys time: %d seconds\n", int64(sysTime.Seconds()))

	if pid, ok := s.Session.Background(); ok {
		_ = unix.Kill(pid, unix.SIGTERM)
	}

	s.Log.SessionEnd(userTime, sysTime)
}

func (s *Shell) Close() error {
	return s.Readline.Close()
}
