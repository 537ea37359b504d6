package cmd

import (
	"fmt"

	"github.com/dogeorg/wifiscan/pkg/system"
	"github.com/dogeorg/wifiscan/pkg/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Get wifiscan version information",
	Run: func(cmd *cobra.Command, args []string) {
		version := version.GetRelease()

		fmt.Printf("Release: %s\n", version.Release)
		fmt.Printf("Git: %s\n", version.Git.Commit)
		fmt.Printf("Dirty: %t\n", version.Git.Dirty)

		if host, err := system.GetHostInfo(); err == nil {
			fmt.Printf("Host: %s\n", host)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
