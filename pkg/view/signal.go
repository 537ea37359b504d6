package view

import "github.com/charmbracelet/lipgloss"

// Tier buckets a signal percentage for colouring.
type Tier string

const (
	TierStrong Tier = "strong"
	TierMedium Tier = "medium"
	TierWeak   Tier = "weak"
)

// SignalPercent maps RSSI linearly so that -100 dBm is 0% and -50 dBm is
// 100%, clamping anything outside that range.
func SignalPercent(rssi int) int {
	return min(100, max(0, 2*(rssi+100)))
}

func TierFor(percent int) Tier {
	switch {
	case percent >= 80:
		return TierStrong
	case percent >= 50:
		return TierMedium
	default:
		return TierWeak
	}
}

func (t Tier) Color() lipgloss.Color {
	switch t {
	case TierStrong:
		return lipgloss.Color("2")
	case TierMedium:
		return lipgloss.Color("3")
	default:
		return lipgloss.Color("1")
	}
}
