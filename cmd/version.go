package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alignhq/align/internal/version"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the align version",
	Run: func(_ *cobra.Command, _ []string) {
		if versionShort {
			fmt.Println(version.Short())
			return
		}
		fmt.Println("align " + version.Full())
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print just the version number")
}
