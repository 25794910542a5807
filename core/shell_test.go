package core

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretEmptyLine(t *testing.T) {
	shell, stdout, stderr := newTestShell(t)

	shell.Interpret("")
	shell.Interpret("   \t ")

	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestInterpretBuiltinDispatch(t *testing.T) {
	shell, stdout, _ := newTestShell(t)

	shell.Interpret("pwd")

	wd, _ := os.Getwd()
	assert.Equal(t, wd+"\n", stdout.String())
}

func TestInterpretExternalCommand(t *testing.T) {
	shell, stdout, _ := newTestShell(t)

	shell.Interpret("echo hello world")

	assert.Equal(t, "hello world\n", stdout.String())
}

func TestInterpretQuotedTokens(t *testing.T) {
	shell, stdout, _ := newTestShell(t)

	shell.Interpret(`echo "hello world"`)

	assert.Equal(t, "hello world\n", stdout.String())
}

func TestInterpretPipe(t *testing.T) {
	shell, stdout, _ := newTestShell(t)

	shell.Interpret("echo hi | cat")

	assert.Equal(t, "hi\n", stdout.String())
}

func TestInterpretExit(t *testing.T) {
	shell, _, _ := newTestShell(t)

	shell.Interpret("exit")

	assert.True(t, shell.exiting)
}

func TestInterpretSyntaxError(t *testing.T) {
	shell, _, stderr := newTestShell(t)

	shell.Interpret(`echo "unterminated`)

	assert.Contains(t, stderr.String(), "syntax error")
}

func TestShutdownReportsTotals(t *testing.T) {
	shell, stdout, _ := newTestShell(t)

	shell.Launch([]string{"echo", "hi"}, false)
	stdout.Reset()
	shell.Shutdown()

	assert.Regexp(t, `User time: \d+ seconds\nSys time: \d+ seconds\n`, stdout.String())
}

func TestPromptPlainWhenNotInteractive(t *testing.T) {
	shell, _, _ := newTestShell(t)

	assert.Equal(t, shell.Config.Prompt, shell.Prompt())
}

func TestRedrawPrompt(t *testing.T) {
	shell, stdout, _ := newTestShell(t)

	shell.redrawPrompt()

	assert.Equal(t, "\n"+shell.Config.Prompt, stdout.String())
}
