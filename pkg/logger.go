package wifiscan

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger. It writes to stderr so that tables
// printed on stdout can be piped cleanly.
func NewLogger(config Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if config.Verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	if config.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if err != nil && config.LogLevel != "" {
		log.Warnf("Unknown log level %q, using %s", config.LogLevel, level)
	}

	return log
}
