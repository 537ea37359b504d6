package scanner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Builder turns the helper source at src into an executable at dst.
type Builder interface {
	Build(ctx context.Context, src, dst string) error
}

var _ Builder = CommandBuilder{}

// CommandBuilder runs `<Command> <Args...> <src> -o <dst>`, the calling
// convention shared by swiftc, cc and friends.
type CommandBuilder struct {
	Command string
	Args    []string
	log     logrus.FieldLogger
}

// NewCommandBuilder splits a command line such as "swiftc -O" into the
// compiler and its leading arguments.
func NewCommandBuilder(cmdline string, log logrus.FieldLogger) CommandBuilder {
	fields := strings.Fields(cmdline)
	b := CommandBuilder{log: log}
	if len(fields) > 0 {
		b.Command = fields[0]
		b.Args = fields[1:]
	}
	return b
}

func (t CommandBuilder) Build(ctx context.Context, src, dst string) error {
	if t.Command == "" {
		return fmt.Errorf("no build command configured")
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(dst), err)
	}

	args := append(append([]string{}, t.Args...), src, "-o", dst)
	cmd := exec.CommandContext(ctx, t.Command, args...)

	var lastLine string
	out := NewLineWriter(func(s string) {
		if t.log != nil {
			t.log.WithField("step", "build").Debug(s)
		}
		if strings.TrimSpace(s) != "" {
			lastLine = s
		}
	})
	cmd.Stdout = out
	cmd.Stderr = out

	err := cmd.Run()
	out.Flush()
	if err != nil {
		if lastLine != "" {
			return fmt.Errorf("%s: %w: %s", t.Command, err, lastLine)
		}
		return fmt.Errorf("%s: %w", t.Command, err)
	}

	if _, err := os.Stat(dst); err != nil {
		return fmt.Errorf("%s exited cleanly but produced no artifact: %w", t.Command, err)
	}
	return nil
}
