package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRelease(t *testing.T) {
	assert.Equal(t, "unknown", GetRelease().Release)

	release = "v1.2.0"
	defer func() { release = "" }()
	assert.Equal(t, "v1.2.0", GetRelease().Release)
}
