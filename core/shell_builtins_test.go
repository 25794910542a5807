package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preserveWd(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.Nil(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestCd(t *testing.T) {
	preserveWd(t)

	t.Run("missing argument", func(t *testing.T) {
		shell, stdout, _ := newTestShell(t)
		before, _ := os.Getwd()

		status := Cd(shell, []string{"cd"})

		after, _ := os.Getwd()
		assert.Equal(t, 1, status)
		assert.Equal(t, `dragonshell: Expected argument to "cd"`+"\n", stdout.String())
		assert.Equal(t, before, after, "directory must remain unchanged")
	})

	t.Run("nonexistent path", func(t *testing.T) {
		shell, _, stderr := newTestShell(t)
		before, _ := os.Getwd()

		status := Cd(shell, []string{"cd", filepath.Join(t.TempDir(), "missing")})

		after, _ := os.Getwd()
		assert.Equal(t, 1, status)
		assert.NotEmpty(t, stderr.String())
		assert.Equal(t, before, after, "directory must remain unchanged")
	})

	t.Run("valid path", func(t *testing.T) {
		shell, _, stderr := newTestShell(t)
		dir := t.TempDir()

		status := Cd(shell, []string{"cd", dir})

		after, _ := os.Getwd()
		assert.Equal(t, 0, status)
		assert.Empty(t, stderr.String())
		// Resolve symlinks, some systems alias the temp dir.
		wantDir, _ := filepath.EvalSymlinks(dir)
		gotDir, _ := filepath.EvalSymlinks(after)
		assert.Equal(t, wantDir, gotDir)
	})
}

func TestPwd(t *testing.T) {
	shell, stdout, _ := newTestShell(t)

	status := Pwd(shell, []string{"pwd"})

	wd, err := os.Getwd()
	require.Nil(t, err)
	assert.Equal(t, 0, status)
	assert.Equal(t, wd+"\n", stdout.String())
}

func TestExit(t *testing.T) {
	shell, _, _ := newTestShell(t)

	status := Exit(shell, []string{"exit"})

	assert.Equal(t, 0, status)
	assert.True(t, shell.exiting)
}

func TestHelp(t *testing.T) {
	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	shell, stdout, _ := newTestShell(t)
	status := Help(shell, []string{"help"})

	assert.Equal(t, 0, status)
	g.Assert(t, "help", stdout.Bytes())
}

func TestAllBuiltins(t *testing.T) {
	for _, name := range []string{"cd", "pwd", "exit", "help"} {
		t.Run(name, func(t *testing.T) {
			builtin, ok := AllBuiltins[name]
			assert.True(t, ok)
			assert.NotNil(t, builtin)
		})
	}
}

func TestHelpListsEveryBuiltin(t *testing.T) {
	shell, stdout, _ := newTestShell(t)
	Help(shell, []string{"help"})

	for name := range AllBuiltins {
		assert.True(t, strings.Contains(stdout.String(), name))
	}
}
