package wifiscan

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// HiddenSSID is what the scan helper reports in place of a network name the
// OS refused to reveal. On macOS that usually means the terminal has not been
// granted Location Services access.
const HiddenSSID = "[Redacted/Hidden]"

const hiddenMarker = "[Redacted"

// ScanRecord is a single network seen during one scan.
type ScanRecord struct {
	SSID     string `json:"ssid"`
	RSSI     int    `json:"rssi"`
	Band     string `json:"band"`
	Channel  int    `json:"channel"`
	Security string `json:"security"`
}

// IsHidden reports whether the SSID is (or carries) the hidden network marker.
func (t ScanRecord) IsHidden() bool {
	return strings.Contains(t.SSID, hiddenMarker)
}

// UnmarshalJSON only accepts records carrying all five fields with the
// right types. A partial record is an error, never a zero-filled one.
func (t *ScanRecord) UnmarshalJSON(b []byte) error {
	var raw struct {
		SSID     *string `json:"ssid"`
		RSSI     *int    `json:"rssi"`
		Band     *string `json:"band"`
		Channel  *int    `json:"channel"`
		Security *string `json:"security"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	missing := []string{}
	if raw.SSID == nil {
		missing = append(missing, "ssid")
	}
	if raw.RSSI == nil {
		missing = append(missing, "rssi")
	}
	if raw.Band == nil {
		missing = append(missing, "band")
	}
	if raw.Channel == nil {
		missing = append(missing, "channel")
	}
	if raw.Security == nil {
		missing = append(missing, "security")
	}
	if len(missing) > 0 {
		return fmt.Errorf("scan record missing %s", strings.Join(missing, ", "))
	}

	// The helper reports channel 0 when the OS gives it no channel info.
	if *raw.Channel < 0 {
		return fmt.Errorf("scan record %q has invalid channel %d", *raw.SSID, *raw.Channel)
	}

	*t = ScanRecord{
		SSID:     *raw.SSID,
		RSSI:     *raw.RSSI,
		Band:     *raw.Band,
		Channel:  *raw.Channel,
		Security: *raw.Security,
	}
	return nil
}

// Scanner produces a fresh list of networks on every call. Implementations
// never fail outwards: anything that goes wrong during a scan is reported as
// an empty list and retried by whoever calls Scan next.
type Scanner interface {
	Scan(ctx context.Context) []ScanRecord
}
