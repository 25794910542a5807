package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/AhnafulH/unix-shell/core"
	"github.com/AhnafulH/unix-shell/core/logger"
)

// runCmd starts the interactive shell, same as running dragonshell with
// no arguments.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive shell.",
	Args:  cobra.ExactArgs(0),
	RunE:  runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	configuration, err := loadConfig()
	if err != nil {
		return err
	}

	sessionLog := logger.Nop()
	if logFd, err := configuration.OpenAppLog(); err != nil {
		log.Printf("Couldn't open session log: %v", err)
	} else {
		defer logFd.Close()
		sessionLog = logger.NewJSONLinesRecorder(logFd).NewSession()
	}

	shell, err := core.NewShell(configuration, sessionLog)
	if err != nil {
		return err
	}
	defer shell.Close()

	return shell.Run()
}

func init() {
	rootCmd.AddCommand(runCmd)
}
