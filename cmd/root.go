package cmd

import (
	"errors"
	"io/fs"
	"log"

	"github.com/spf13/cobra"

	"github.com/AhnafulH/unix-shell/core/config"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("No config.yaml found, using built-in defaults. Run init to customize.")
		return config.Default(cfgPath), nil
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands.
// Running dragonshell without arguments starts the interactive shell.
var rootCmd = &cobra.Command{
	Use:   "dragonshell",
	Short: "A small interactive Unix shell",
	Long: `A small interactive Unix shell with pipes, I/O redirection,
background jobs and child CPU time accounting.`,
	RunE: runShell,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
