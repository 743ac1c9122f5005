package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "gladius-slice",
	Short: "slice implicit geometry into 2D polygon layers",
	Long: `gladius-slice reads a signed distance field sampled on a 2D grid,
traces its zero iso-line with marching squares, and writes the
resulting contours out as SVG or CLI.`,
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
