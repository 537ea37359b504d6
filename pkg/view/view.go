package view

import (
	"cmp"
	"fmt"
	"slices"

	wifiscan "github.com/dogeorg/wifiscan/pkg"
)

const (
	Title       = "WiFi Networks Nearby"
	Placeholder = "No WiFi networks found or scanning..."
	HiddenNote  = "Note: Some SSIDs are " + wifiscan.HiddenSSID + "."
	HiddenHint  = "Check Location Services permissions for your Terminal."
)

// Row is one network with its display fields worked out.
type Row struct {
	Record  wifiscan.ScanRecord
	Percent int
	Tier    Tier
}

// View is everything a front end needs to show one scan.
type View struct {
	Title       string
	Rows        []Row
	Placeholder string   // set only when there is nothing to show
	Advisory    []string // lines shown under the footer
}

// Build ranks records strongest first and annotates them. Records with equal
// RSSI keep their scan order. The input slice is left untouched.
func Build(records []wifiscan.ScanRecord) View {
	v := View{Title: Title, Rows: []Row{}}

	if len(records) == 0 {
		v.Placeholder = Placeholder
		return v
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b wifiscan.ScanRecord) int {
		return cmp.Compare(b.RSSI, a.RSSI)
	})

	hidden := false
	for _, r := range sorted {
		percent := SignalPercent(r.RSSI)
		v.Rows = append(v.Rows, Row{
			Record:  r,
			Percent: percent,
			Tier:    TierFor(percent),
		})
		hidden = hidden || r.IsHidden()
	}

	if hidden {
		v.Advisory = []string{HiddenNote, HiddenHint}
	}

	return v
}

func (t View) Count() int {
	return len(t.Rows)
}

func (t View) Empty() bool {
	return len(t.Rows) == 0
}

// Footer is the summary line, blank for an empty view.
func (t View) Footer() string {
	if t.Empty() {
		return ""
	}
	return fmt.Sprintf("Found %d networks.", t.Count())
}

// Records is the view as raw scan records, in display order and without any
// derived fields. This is what the web API serves.
func (t View) Records() []wifiscan.ScanRecord {
	out := make([]wifiscan.ScanRecord, 0, len(t.Rows))
	for _, r := range t.Rows {
		out = append(out, r.Record)
	}
	return out
}
