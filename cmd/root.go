package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var debug bool
var rootDir string

var rootCmd = &cobra.Command{
	Use:   "vlauncher",
	Short: "vlauncher is a tool for provisioning and launching minecraft",
	Long:  `vlauncher is a tool for provisioning and launching minecraft. It downloads and verifies every artifact a version needs, synthesizes the launch command and supervises the game process.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug mode")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Override the install root directory")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
