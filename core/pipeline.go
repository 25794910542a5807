package core

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/anmitsu/go-shlex"
)

// SplitPipe splits a raw line on its first pipe separator. Further pipe
// characters stay literal content of the right-hand command.
func SplitPipe(raw string) (left, right string, ok bool) {
	i := strings.IndexByte(raw, '|')
	if i < 0 {
		return "", "", false
	}
	return raw[:i], raw[i+1:], true
}

// RunPipeline runs two commands with the left one's standard output fed
// to the right one's standard input. Both children share one process
// group led by the left command, so interactive signals stop the whole
// pipeline. The parent closes both pipe ends as soon as both children
// have started, then waits for both regardless of termination order.
func (s *Shell) RunPipeline(left, right string) {
	leftArgv, err := shlex.Split(left, true)
	if err == nil && len(leftArgv) == 0 {
		err = fmt.Errorf("syntax error near %q", "|")
	}
	if err != nil {
		fmt.Fprintf(s.stderr, "dragonshell: %v\n", err)
		return
	}

	rightArgv, err := shlex.Split(right, true)
	if err == nil && len(rightArgv) == 0 {
		err = fmt.Errorf("syntax error near %q", "|")
	}
	if err != nil {
		fmt.Fprintf(s.stderr, "dragonshell: %v\n", err)
		return
	}

	pr, pw, err := os.Pipe()
	if err != nil {
		fmt.Fprintf(s.stderr, "dragonshell: pipe failed: %v\n", err)
		return
	}

	leftCmd := exec.Command(leftArgv[0], leftArgv[1:]...)
	leftCmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	leftCmd.Stdin = s.stdin
	leftCmd.Stdout = pw
	leftCmd.Stderr = s.stderr

	if err := leftCmd.Start(); err != nil {
		pr.Close()
		pw.Close()
		fmt.Fprintf(s.stderr, "dragonshell: %v\n", err)
		return
	}
	pgid := leftCmd.Process.Pid

	rightCmd := exec.Command(rightArgv[0], rightArgv[1:]...)
	// Join the left command's group. The left process still exists at
	// worst as an unreaped zombie, so the group is alive.
	rightCmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true, Pgid: pgid}
	rightCmd.Stdin = pr
	rightCmd.Stdout = s.stdout
	rightCmd.Stderr = s.stderr

	rightErr := rightCmd.Start()
	if rightErr != nil {
		fmt.Fprintf(s.stderr, "dragonshell: %v\n", rightErr)
	}

	// Both ends must close in the parent so the right side observes
	// end-of-input once the left process finishes.
	pr.Close()
	pw.Close()

	argv := append(append(append([]string{}, leftArgv...), "|"), rightArgv...)
	s.Log.CommandRun(argv, pgid)

	s.Session.SetForeground(pgid)
	leftCmd.Wait()
	s.Session.Accrue(leftCmd.ProcessState)
	if rightErr == nil {
		rightCmd.Wait()
		s.Session.Accrue(rightCmd.ProcessState)
	}
	s.Session.ClearForeground()
}
