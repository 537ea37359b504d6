package scanner

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed helper/scanner.swift
var helperSource []byte

// ensureSource writes the bundled helper source to path unless something is
// already there. A source file the user supplied is never overwritten.
func ensureSource(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot stat helper source %q: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create helper directory: %w", err)
	}
	if err := os.WriteFile(path, helperSource, 0o644); err != nil {
		return fmt.Errorf("cannot write helper source %q: %w", path, err)
	}
	return nil
}
