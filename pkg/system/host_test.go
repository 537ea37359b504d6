package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostInfoString(t *testing.T) {
	assert.Equal(t, "darwin (arm64)", HostInfo{OS: "darwin", KernelArch: "arm64"}.String())
	assert.Equal(t, "ubuntu 24.04 (x86_64)", HostInfo{OS: "linux", Platform: "ubuntu", PlatformVersion: "24.04", KernelArch: "x86_64"}.String())
	assert.Equal(t, "linux", HostInfo{OS: "linux"}.String())
}

func TestGetHostInfo(t *testing.T) {
	info, err := GetHostInfo()
	if err != nil {
		t.Skipf("host info unavailable here: %v", err)
	}
	assert.NotEmpty(t, info.OS)
}
