package system

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

type HostInfo struct {
	Hostname        string `json:"hostname"`
	OS              string `json:"os"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platformVersion"`
	KernelArch      string `json:"kernelArch"`
	Uptime          uint64 `json:"uptime"`
}

// GetHostInfo reports what machine the scanner runs on. The scan helper is
// platform specific, so this is the first thing to look at when scans come
// back empty.
func GetHostInfo() (HostInfo, error) {
	info, err := host.Info()
	if err != nil {
		return HostInfo{OS: runtime.GOOS, KernelArch: runtime.GOARCH}, fmt.Errorf("cannot read host info: %w", err)
	}

	return HostInfo{
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelArch:      info.KernelArch,
		Uptime:          info.Uptime,
	}, nil
}

func (t HostInfo) String() string {
	s := t.OS
	if t.Platform != "" {
		s = fmt.Sprintf("%s %s", t.Platform, t.PlatformVersion)
	}
	if t.KernelArch != "" {
		s += " (" + t.KernelArch + ")"
	}
	return s
}
