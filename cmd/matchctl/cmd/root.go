package cmd

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

const app = "matchctl"

var rootCmd = &cobra.Command{
	Use:          app,
	Short:        "matchctl ranks candidates against internships and analyzes résumés",
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress log output")
}

func newLogger(cmd *cobra.Command) *log.Logger {
	quiet, _ := cmd.Flags().GetBool("quiet")
	if quiet {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}
