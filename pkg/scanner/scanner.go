package scanner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	wifiscan "github.com/dogeorg/wifiscan/pkg"
	"github.com/sirupsen/logrus"
)

var (
	// ErrBuildFailed means the helper was missing and could not be built.
	// Nothing can be scanned until that is fixed.
	ErrBuildFailed = errors.New("cannot build scanner helper")

	// ErrHelperMissing means the helper is missing and no builder is configured.
	ErrHelperMissing = errors.New("scanner helper not found")

	// ErrEmptyOutput means the helper ran but printed nothing.
	ErrEmptyOutput = errors.New("scanner helper produced no output")
)

var _ wifiscan.Scanner = &CommandScanner{}

// CommandScanner runs the platform helper and decodes the JSON array it
// prints. Every failure after the helper exists becomes an empty result.
type CommandScanner struct {
	bin     string
	src     string
	builder Builder
	log     logrus.FieldLogger
}

// NewCommandScanner resolves the helper paths against the working directory
// up front, so a bare name is never looked up on $PATH.
func NewCommandScanner(config wifiscan.Config, log logrus.FieldLogger) *CommandScanner {
	log = log.WithField("component", "scanner")
	return &CommandScanner{
		bin:     absPath(config.ScannerBin),
		src:     absPath(config.ScannerSrc),
		builder: NewCommandBuilder(config.BuildCmd, log),
		log:     log,
	}
}

// WithBuilder swaps the builder used by Prepare. A nil builder disables
// building altogether.
func (t *CommandScanner) WithBuilder(b Builder) *CommandScanner {
	t.builder = b
	return t
}

// Prepare makes sure the helper exists, building it from source if needed.
// It does nothing once the artifact is in place.
func (t *CommandScanner) Prepare(ctx context.Context) error {
	_, err := os.Stat(t.bin)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrHelperMissing, err)
	}

	if t.builder == nil || t.src == "" {
		return fmt.Errorf("%w: %s", ErrHelperMissing, t.bin)
	}

	if err := ensureSource(t.src); err != nil {
		return fmt.Errorf("%w: %v", ErrBuildFailed, err)
	}

	t.log.WithField("path", t.bin).Info("Compiling scanner helper")
	if err := t.builder.Build(ctx, t.src, t.bin); err != nil {
		return fmt.Errorf("%w: %v", ErrBuildFailed, err)
	}
	return nil
}

func (t *CommandScanner) Scan(ctx context.Context) []wifiscan.ScanRecord {
	if err := t.Prepare(ctx); err != nil {
		t.log.WithError(err).Warn("Scanner helper unavailable")
		return []wifiscan.ScanRecord{}
	}

	cmd := exec.CommandContext(ctx, t.bin)
	detach(cmd)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.log.WithError(err).WithField("stderr", stderr.String()).Debug("Scan helper failed")
		return []wifiscan.ScanRecord{}
	}

	records, err := Decode(stdout.Bytes())
	if err != nil {
		t.log.WithError(err).Debug("Discarding scan output")
		return []wifiscan.ScanRecord{}
	}

	t.log.WithField("count", len(records)).Debug("Scan complete")
	return records
}

func absPath(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// Decode parses helper output: a JSON array of complete scan records. Any
// malformed record rejects the whole batch.
func Decode(data []byte) ([]wifiscan.ScanRecord, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyOutput
	}
	if data[0] != '[' {
		return nil, fmt.Errorf("scanner output is not a JSON array")
	}

	records := []wifiscan.ScanRecord{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("cannot decode scanner output: %w", err)
	}
	return records, nil
}
