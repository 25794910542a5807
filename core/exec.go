package core

import (
	"errors"
	"fmt"
	"os/exec"
	"syscall"
)

// StripBackground removes the background marker from a token stream.
// Everything from the first "&" on is dropped, matching the original
// parser, and the command runs in the background.
func StripBackground(tokens []string) (argv []string, background bool) {
	for i, tok := range tokens {
		if tok == "&" {
			return tokens[:i], true
		}
	}
	return tokens, false
}

// Launch runs one command as a child process in its own process group.
//
// Foreground commands block until the child terminates and accrue its
// CPU time into the session totals; the process group is registered
// with the session for the duration of the wait so interactive signals
// reach it. Background commands report the child's PID and return
// immediately without ever being reaped before shutdown.
//
// No error here unwinds into the caller: failures are reported to the
// shell's stderr and only the command being constructed is lost.
func (s *Shell) Launch(argv []string, background bool) {
	cleaned, redir, err := ParseRedirections(argv)
	if err != nil {
		fmt.Fprintf(s.stderr, "dragonshell: %v\n", err)
		return
	}
	defer redir.Close()

	if len(cleaned) == 0 {
		fmt.Fprintln(s.stderr, "dragonshell: missing command")
		return
	}

	cmd := exec.Command(cleaned[0], cleaned[1:]...)
	// Own process group so terminal signals can target the whole
	// command and its descendants without hitting the shell.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Stdin, cmd.Stdout = redir.apply(s.stdin, s.stdout)
	cmd.Stderr = s.stderr

	if err := cmd.Start(); err != nil {
		// Covers both fork-time failures and command-not-found; either
		// way the shell continues at the next prompt.
		fmt.Fprintf(s.stderr, "dragonshell: %v\n", err)
		return
	}
	pid := cmd.Process.Pid

	if background {
		s.Session.TrackBackground(pid)
		fmt.Fprintf(s.stdout, "PID %d is sent to background\n", pid)
		s.Log.BackgroundLaunch(cleaned, pid)
		return
	}

	s.Log.CommandRun(cleaned, pid)

	// Setpgid makes the child the leader of a group with pgid == pid.
	s.Session.SetForeground(pid)
	err = cmd.Wait()
	s.Session.ClearForeground()
	s.Session.Accrue(cmd.ProcessState)

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(s.stderr, "dragonshell: %v\n", err)
	}
}
