package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	wifiscan "github.com/dogeorg/wifiscan/pkg"
	"github.com/dogeorg/wifiscan/pkg/scanner"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticScanner []wifiscan.ScanRecord

func (s staticScanner) Scan(ctx context.Context) []wifiscan.ScanRecord {
	return []wifiscan.ScanRecord(s)
}

func TestScanOncePrintsTable(t *testing.T) {
	var out bytes.Buffer
	s := staticScanner{
		{SSID: "Weak", RSSI: -90, Band: "2.4 GHz", Channel: 1, Security: "WPA2"},
		{SSID: "Strong", RSSI: -40, Band: "5 GHz", Channel: 36, Security: "WPA3"},
	}

	require.NoError(t, scanOnce(context.Background(), s, &out))

	text := out.String()
	assert.Contains(t, text, "Found 2 networks.")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("Strong")), bytes.Index(out.Bytes(), []byte("Weak")))
}

func TestScanOnceNothingFound(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, scanOnce(context.Background(), staticScanner{}, &out))
	assert.Contains(t, out.String(), "No WiFi networks found.")
	assert.NotContains(t, out.String(), "SSID")
}

func newTestRoot() *cobra.Command {
	config = wifiscan.DefaultConfig()
	watchMode, webMode = false, false

	c := &cobra.Command{
		Use:           "wifiscan",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, args []string) error { return nil },
	}
	bindFlags(c)
	return c
}

func TestWatchAndWebAreExclusive(t *testing.T) {
	c := newTestRoot()
	c.SetArgs([]string{"--watch", "--web"})
	assert.Error(t, c.Execute())
}

func TestFlagsOverrideConfig(t *testing.T) {
	c := newTestRoot()
	c.SetArgs([]string{"-w", "-i", "3", "--port", "9001"})
	require.NoError(t, c.Execute())

	assert.True(t, watchMode)
	assert.Equal(t, 3, config.Interval)
	assert.Equal(t, 9001, config.Port)
}

func TestFatalSetupErrorPrintedOnce(t *testing.T) {
	var out bytes.Buffer
	cause := fmt.Errorf("%w: swiftc: not found", scanner.ErrBuildFailed)

	err := reportFatal(&out, cause)
	assert.ErrorIs(t, err, scanner.ErrBuildFailed)
	printError(&out, err)

	text := out.String()
	assert.Contains(t, text, "Critical Error: could not find or compile the scanner utility")
	assert.Equal(t, 1, strings.Count(text, "swiftc: not found"))
	assert.NotContains(t, text, "Error: cannot build")
}

func TestOtherErrorsArePrinted(t *testing.T) {
	var out bytes.Buffer
	printError(&out, errors.New("interval must be positive"))
	assert.Equal(t, "Error: interval must be positive\n", out.String())
}
