package view

import (
	"encoding/json"
	"testing"

	wifiscan "github.com/dogeorg/wifiscan/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []wifiscan.ScanRecord{
	{SSID: "Home", RSSI: -40, Band: "5 GHz", Channel: 36, Security: "WPA2"},
	{SSID: wifiscan.HiddenSSID, RSSI: -80, Band: "2.4 GHz", Channel: 6, Security: "WPA2"},
}

func TestSignalPercent(t *testing.T) {
	tests := []struct {
		rssi int
		want int
	}{
		{-120, 0},
		{-100, 0},
		{-90, 20},
		{-80, 40},
		{-75, 50},
		{-60, 80},
		{-50, 100},
		{-40, 100},
		{0, 100},
		{25, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SignalPercent(tt.rssi), "rssi %d", tt.rssi)
	}
}

func TestSignalPercentMonotonic(t *testing.T) {
	prev := SignalPercent(-200)
	for rssi := -199; rssi <= 50; rssi++ {
		p := SignalPercent(rssi)
		assert.GreaterOrEqual(t, p, prev)
		assert.GreaterOrEqual(t, p, 0)
		assert.LessOrEqual(t, p, 100)
		prev = p
	}
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, TierStrong, TierFor(100))
	assert.Equal(t, TierStrong, TierFor(80))
	assert.Equal(t, TierMedium, TierFor(79))
	assert.Equal(t, TierMedium, TierFor(50))
	assert.Equal(t, TierWeak, TierFor(49))
	assert.Equal(t, TierWeak, TierFor(0))
}

func TestBuildEmpty(t *testing.T) {
	for _, in := range [][]wifiscan.ScanRecord{nil, {}} {
		v := Build(in)
		assert.True(t, v.Empty())
		assert.Equal(t, Placeholder, v.Placeholder)
		assert.Empty(t, v.Rows)
		assert.Empty(t, v.Advisory)
		assert.Empty(t, v.Footer())
		assert.NotNil(t, v.Records())
	}
}

func TestBuildEndToEnd(t *testing.T) {
	v := Build([]wifiscan.ScanRecord{sample[1], sample[0]})

	require.Len(t, v.Rows, 2)
	assert.Equal(t, "Home", v.Rows[0].Record.SSID)
	assert.Equal(t, 100, v.Rows[0].Percent)
	assert.Equal(t, TierStrong, v.Rows[0].Tier)
	assert.Equal(t, wifiscan.HiddenSSID, v.Rows[1].Record.SSID)
	assert.Equal(t, 40, v.Rows[1].Percent)
	assert.Equal(t, TierWeak, v.Rows[1].Tier)

	assert.Empty(t, v.Placeholder)
	assert.Equal(t, "Found 2 networks.", v.Footer())
	assert.Equal(t, []string{HiddenNote, HiddenHint}, v.Advisory)
}

func TestBuildNoAdvisoryWithoutHiddenNetworks(t *testing.T) {
	v := Build(sample[:1])
	assert.Empty(t, v.Advisory)
	assert.Equal(t, "Found 1 networks.", v.Footer())
}

func TestBuildIsStable(t *testing.T) {
	in := []wifiscan.ScanRecord{
		{SSID: "a", RSSI: -70},
		{SSID: "b", RSSI: -50},
		{SSID: "c", RSSI: -70},
		{SSID: "d", RSSI: -90},
		{SSID: "e", RSSI: -70},
		{SSID: "b", RSSI: -50},
	}

	v := Build(in)

	got := []string{}
	for _, r := range v.Rows {
		got = append(got, r.Record.SSID)
	}
	assert.Equal(t, []string{"b", "b", "a", "c", "e", "d"}, got)
	assert.Len(t, v.Rows, len(in), "duplicates are kept")
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	in := []wifiscan.ScanRecord{sample[1], sample[0]}
	before := append([]wifiscan.ScanRecord{}, in...)

	Build(in)
	assert.Equal(t, before, in)
}

func TestRecordsJSONHasOnlyRawFields(t *testing.T) {
	b, err := json.Marshal(Build(sample).Records())
	require.NoError(t, err)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	require.Len(t, out, 2)
	for _, rec := range out {
		assert.ElementsMatch(t, []string{"ssid", "rssi", "band", "channel", "security"}, keys(rec))
	}
	assert.Equal(t, "Home", out[0]["ssid"])

	empty, err := json.Marshal(Build(nil).Records())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func keys(m map[string]any) []string {
	out := []string{}
	for k := range m {
		out = append(out, k)
	}
	return out
}
