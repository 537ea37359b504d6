package wifiscan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanRecordUnmarshal(t *testing.T) {
	var r ScanRecord
	err := json.Unmarshal([]byte(`{"ssid":"Home","rssi":-40,"band":"5 GHz","channel":36,"security":"WPA2 Personal"}`), &r)
	require.NoError(t, err)
	assert.Equal(t, ScanRecord{SSID: "Home", RSSI: -40, Band: "5 GHz", Channel: 36, Security: "WPA2 Personal"}, r)
}

func TestScanRecordUnmarshalRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing rssi", `{"ssid":"Home","band":"5 GHz","channel":36,"security":"WPA2"}`},
		{"missing everything", `{}`},
		{"null ssid", `{"ssid":null,"rssi":-40,"band":"5 GHz","channel":36,"security":"WPA2"}`},
		{"rssi as string", `{"ssid":"Home","rssi":"-40","band":"5 GHz","channel":36,"security":"WPA2"}`},
		{"fractional channel", `{"ssid":"Home","rssi":-40,"band":"5 GHz","channel":3.5,"security":"WPA2"}`},
		{"negative channel", `{"ssid":"Home","rssi":-40,"band":"5 GHz","channel":-1,"security":"WPA2"}`},
		{"not an object", `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r ScanRecord
			assert.Error(t, json.Unmarshal([]byte(tt.data), &r))
		})
	}
}

func TestScanRecordIgnoresExtraFields(t *testing.T) {
	var r ScanRecord
	err := json.Unmarshal([]byte(`{"ssid":"Cafe","rssi":-70,"band":"2.4 GHz","channel":0,"security":"None","bssid":"aa:bb"}`), &r)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Channel)
}

func TestScanRecordIsHidden(t *testing.T) {
	assert.True(t, ScanRecord{SSID: HiddenSSID}.IsHidden())
	assert.True(t, ScanRecord{SSID: "[Redacted]"}.IsHidden())
	assert.False(t, ScanRecord{SSID: "Home"}.IsHidden())
	assert.False(t, ScanRecord{SSID: ""}.IsHidden())
}
