package network_wifi

import (
	"fmt"

	"github.com/mdlayher/wifi"
)

// WirelessInterface describes a local WiFi adapter and, if it is associated,
// the network it is currently on.
type WirelessInterface struct {
	Name      string `json:"name"`
	MAC       string `json:"mac"`
	Type      string `json:"type"`
	Frequency int    `json:"frequency"`
	Band      string `json:"band"`
	Channel   int    `json:"channel"`
	SSID      string `json:"ssid,omitempty"`
	BSSID     string `json:"bssid,omitempty"`
}

// ListInterfaces asks nl80211 for the host's wireless interfaces. It only
// works on Linux; elsewhere the wifi client cannot be created and an error
// is returned.
func ListInterfaces() ([]WirelessInterface, error) {
	client, err := wifi.New()
	if err != nil {
		return nil, fmt.Errorf("could not init a wifi interface client: %w", err)
	}
	defer client.Close()

	ifaces, err := client.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("could not list wifi interfaces: %w", err)
	}

	out := []WirelessInterface{}
	for _, ifi := range ifaces {
		// Ignore anything without a name, these are PHY-only devices.
		if ifi.Name == "" {
			continue
		}

		w := WirelessInterface{
			Name:      ifi.Name,
			Type:      ifi.Type.String(),
			Frequency: ifi.Frequency,
		}
		if ifi.HardwareAddr != nil {
			w.MAC = ifi.HardwareAddr.String()
		}

		if bss, err := client.BSS(ifi); err == nil {
			w.SSID = bss.SSID
			w.BSSID = bss.BSSID.String()
			if w.Frequency == 0 {
				w.Frequency = bss.Frequency
			}
		}

		w.Band = BandForFrequency(w.Frequency)
		w.Channel = ChannelForFrequency(w.Frequency)
		out = append(out, w)
	}

	return out, nil
}

// BandForFrequency labels a centre frequency in MHz the same way the scan
// helper labels bands.
func BandForFrequency(mhz int) string {
	switch {
	case mhz >= 2400 && mhz < 2500:
		return "2.4 GHz"
	case mhz >= 5925 && mhz <= 7125:
		return "6 GHz"
	case mhz >= 5000 && mhz < 5925:
		return "5 GHz"
	default:
		return "Unknown"
	}
}

// ChannelForFrequency converts a centre frequency in MHz to its IEEE
// channel number, or 0 if it is not a WiFi frequency we know about.
func ChannelForFrequency(mhz int) int {
	switch {
	case mhz == 2484:
		return 14
	case mhz >= 2412 && mhz <= 2472:
		return (mhz - 2407) / 5
	case mhz == 5935:
		return 2
	case mhz >= 5955 && mhz <= 7115:
		return (mhz - 5950) / 5
	case mhz >= 5000 && mhz < 5925:
		return (mhz - 5000) / 5
	default:
		return 0
	}
}
