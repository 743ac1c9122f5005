package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/3MFConsortium/gladius-sub002/config"
)

// configCmd writes a prefilled build-settings file, mirroring the recast CLI's
// own "config" command.
var configCmd = &cobra.Command{
	Use:   "config [FILE]",
	Short: "create a slicing parameters file",
	Long: `Create a slicing parameters file in YAML format, prefilled with
default tolerances.

If FILE is not provided, 'gladius-slice.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "gladius-slice.yml"
		if len(args) >= 1 {
			path = args[0]
		}

		ok, err := confirmIfExists(path, fmt.Sprintf("file '%s' already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user...")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}

		check(config.Save(path, config.Default()))
		fmt.Printf("parameters written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
