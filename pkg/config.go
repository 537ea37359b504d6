package wifiscan

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ScannerBin string
	ScannerSrc string
	BuildCmd   string
	Interval   int // seconds between watch cycles
	Bind       string
	Port       int
	Live       bool
	Verbose    bool
	LogLevel   string
	LogFormat  string
}

func DefaultConfig() Config {
	dir := filepath.Join(os.TempDir(), "wifiscan")
	if cache, err := os.UserCacheDir(); err == nil {
		dir = filepath.Join(cache, "wifiscan")
	}

	return Config{
		ScannerBin: filepath.Join(dir, "scanner"),
		ScannerSrc: filepath.Join(dir, "scanner.swift"),
		BuildCmd:   "swiftc",
		Interval:   10,
		Bind:       "127.0.0.1",
		Port:       8000,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// LoadConfig starts from DefaultConfig and applies WIFISCAN_* variables from
// the environment, reading a .env file in the working directory first if
// there is one. Command line flags are layered on top by the caller.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	config := DefaultConfig()
	config.ScannerBin = getEnv("WIFISCAN_SCANNER_BIN", config.ScannerBin)
	config.ScannerSrc = getEnv("WIFISCAN_SCANNER_SRC", config.ScannerSrc)
	config.BuildCmd = getEnv("WIFISCAN_BUILD_CMD", config.BuildCmd)
	config.Bind = getEnv("WIFISCAN_HOST", config.Bind)
	config.LogLevel = getEnv("WIFISCAN_LOG_LEVEL", config.LogLevel)
	config.LogFormat = getEnv("WIFISCAN_LOG_FORMAT", config.LogFormat)

	var err error
	if config.Port, err = getEnvInt("WIFISCAN_PORT", config.Port); err != nil {
		return config, err
	}
	if config.Interval, err = getEnvInt("WIFISCAN_INTERVAL", config.Interval); err != nil {
		return config, err
	}

	return config, nil
}

func (t Config) Validate() error {
	if t.Interval <= 0 {
		return fmt.Errorf("refresh interval must be a positive number of seconds, got %d", t.Interval)
	}
	if t.Port <= 0 || t.Port > 65535 {
		return fmt.Errorf("port %d is out of range", t.Port)
	}
	if t.ScannerBin == "" {
		return fmt.Errorf("no scanner helper path configured")
	}
	return nil
}

func (t Config) IntervalDuration() time.Duration {
	return time.Duration(t.Interval) * time.Second
}

func (t Config) Addr() string {
	return fmt.Sprintf("%s:%d", t.Bind, t.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: %w", key, err)
	}
	return i, nil
}
