package cmd

import (
	"os"
	"time"

	wifiscan "github.com/dogeorg/wifiscan/pkg"
	"github.com/dogeorg/wifiscan/pkg/scanner"
	"github.com/spf13/cobra"
)

var remoteTimeout time.Duration

var remoteCmd = &cobra.Command{
	Use:   "remote <url>",
	Short: "Show the networks seen by another wifiscan running with --web",
	Long: `Fetch scans from another machine running "wifiscan --web" and print them
here. Combine with --watch to keep the table refreshing.

Example:
  wifiscan remote http://192.168.1.20:8000 --watch -i 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := wifiscan.NewLogger(config)
		s := scanner.NewRemoteScanner(args[0], remoteTimeout, log)

		if watchMode {
			return watchNetworks(cmd.Context(), s, log)
		}
		return scanOnce(cmd.Context(), s, os.Stdout)
	},
}

func init() {
	remoteCmd.Flags().DurationVar(&remoteTimeout, "timeout", 30*time.Second, "How long to wait for the remote scan")
	rootCmd.AddCommand(remoteCmd)
}
