package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "restrictwatch",
	Short: "Driver distraction restriction demo",
	Long:  "Decodes the host platform's driver distraction bitmask into blocked app functions\nand bounds display text while long text is restricted. Watches a restriction state\nfile and re-renders on every change.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
