package wifiscan

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, logrus.InfoLevel, NewLogger(config).GetLevel())

	config.LogLevel = "warn"
	assert.Equal(t, logrus.WarnLevel, NewLogger(config).GetLevel())

	config.LogLevel = "chatty"
	assert.Equal(t, logrus.InfoLevel, NewLogger(config).GetLevel())

	config.Verbose = true
	assert.Equal(t, logrus.DebugLevel, NewLogger(config).GetLevel())
}

func TestNewLoggerFormat(t *testing.T) {
	config := DefaultConfig()
	config.LogFormat = "json"
	assert.IsType(t, &logrus.JSONFormatter{}, NewLogger(config).Formatter)

	config.LogFormat = "text"
	assert.IsType(t, &logrus.TextFormatter{}, NewLogger(config).Formatter)
}
