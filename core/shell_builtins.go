package core

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pborman/getopt/v2"
)

// AllBuiltins holds a list of all registered shell builtins.
var AllBuiltins = make(map[string]ShellBuiltin)

type ShellBuiltin interface {
	Main(s *Shell, args []string) int
}

type ShellBuiltinFunc func(s *Shell, args []string) int

func (f ShellBuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// Cd changes the shell's working directory, which child processes
// inherit. Failure leaves the directory unchanged.
func Cd(s *Shell, args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(s.stdout, `dragonshell: Expected argument to "cd"`)
		return 1
	}
	if err := os.Chdir(args[1]); err != nil {
		fmt.Fprintf(s.stderr, "dragonshell: %v\n", err)
		return 1
	}
	return 0
}

// Pwd prints the absolute working directory.
func Pwd(s *Shell, args []string) int {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(s.stderr, "dragonshell: %v\n", err)
		return 1
	}
	fmt.Fprintln(s.stdout, wd)
	return 0
}

// Exit requests shutdown; the read-eval loop performs it so the exit
// path is the same for the builtin and for end-of-input.
func Exit(s *Shell, args []string) int {
	s.exiting = true
	return 0
}

// Help lists the commands the shell implements itself.
func Help(s *Shell, args []string) int {
	opts := getopt.New()
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		w := s.stderr
		if err != nil {
			fmt.Fprintln(w, err)
		}
		fmt.Fprintln(w, "usage: help")
		fmt.Fprintln(w, "List the commands implemented by the shell itself.")
		return 1
	}

	var builtins []string
	for k := range AllBuiltins {
		builtins = append(builtins, k)
	}
	sort.Strings(builtins)

	w := s.stdout
	fmt.Fprintln(w, "dragonshell builtins:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Join(builtins, "\n"))

	return 0
}

func init() {
	AllBuiltins["cd"] = ShellBuiltinFunc(Cd)
	AllBuiltins["pwd"] = ShellBuiltinFunc(Pwd)
	AllBuiltins["exit"] = ShellBuiltinFunc(Exit)
	AllBuiltins["help"] = ShellBuiltinFunc(Help)
}
