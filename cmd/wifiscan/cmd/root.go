package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	wifiscan "github.com/dogeorg/wifiscan/pkg"
	"github.com/dogeorg/wifiscan/pkg/scanner"
	"github.com/spf13/cobra"
)

var (
	config    wifiscan.Config
	watchMode bool
	webMode   bool
)

// errReported marks an error already shown to the user.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "wifiscan",
	Short: "wifiscan lists nearby WiFi networks, strongest first",
	Long: `wifiscan lists nearby WiFi networks ranked by signal strength.

By default it scans once and prints a table. With --watch the table stays on
screen and is refreshed every --interval seconds until interrupted. With --web
it serves a small dashboard and a JSON API (GET /api/scan) instead.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		log := wifiscan.NewLogger(config)
		s := scanner.NewCommandScanner(config, log)

		// a missing helper is the only fatal error
		if err := s.Prepare(cmd.Context()); err != nil {
			return reportFatal(os.Stderr, err)
		}

		switch {
		case webMode:
			return serveWeb(s, log)
		case watchMode:
			return watchNetworks(cmd.Context(), s, log)
		default:
			return scanOnce(cmd.Context(), s, os.Stdout)
		}
	},
}

func Execute() {
	var err error
	config, err = wifiscan.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	bindFlags(rootCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportFatal prints the critical setup error with its cause on one line.
func reportFatal(w io.Writer, err error) error {
	fmt.Fprintln(w, errorStyle.Render("Critical Error: could not find or compile the scanner utility ("+err.Error()+")"))
	return fmt.Errorf("%w: %w", errReported, err)
}

func printError(w io.Writer, err error) {
	if errors.Is(err, errReported) {
		return
	}
	fmt.Fprintln(w, "Error:", err)
}

// bindFlags registers flags whose defaults come from the loaded config, so
// the precedence is flag > environment > built-in default.
func bindFlags(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.BoolVarP(&watchMode, "watch", "w", false, "Keep scanning and refresh the table in place")
	pf.IntVarP(&config.Interval, "interval", "i", config.Interval, "Refresh interval in seconds for --watch")
	pf.BoolVarP(&config.Verbose, "verbose", "v", config.Verbose, "Log debug output to stderr")
	pf.StringVar(&config.LogLevel, "log-level", config.LogLevel, "Log level (debug, info, warn, error)")
	pf.StringVar(&config.ScannerBin, "scanner-bin", config.ScannerBin, "Path of the scan helper executable")
	pf.StringVar(&config.ScannerSrc, "scanner-src", config.ScannerSrc, "Helper source to build from when the executable is missing")
	pf.StringVar(&config.BuildCmd, "build-cmd", config.BuildCmd, "Compiler used to build the helper")

	f := root.Flags()
	f.BoolVar(&webMode, "web", false, "Serve the web dashboard")
	f.StringVar(&config.Bind, "host", config.Bind, "Address for the web dashboard to bind to")
	f.IntVar(&config.Port, "port", config.Port, "Web dashboard port")
	f.BoolVar(&config.Live, "live", config.Live, "With --web, rescan every --interval seconds and push results over /ws/scan")

	root.MarkFlagsMutuallyExclusive("watch", "web")
}
