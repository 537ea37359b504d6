package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	wifiscan "github.com/dogeorg/wifiscan/pkg"
	"github.com/dogeorg/wifiscan/pkg/view"
	"github.com/dogeorg/wifiscan/pkg/watch"
	"github.com/sirupsen/logrus"
)

func scanOnce(ctx context.Context, s wifiscan.Scanner, out io.Writer) error {
	fmt.Fprintln(os.Stderr, statusStyle.Render("Scanning for WiFi networks..."))
	records := s.Scan(ctx)

	if len(records) == 0 {
		fmt.Fprintln(out, warnStyle.Render("No WiFi networks found."))
		return nil
	}

	fmt.Fprint(out, view.RenderTable(view.Build(records)))
	return nil
}

// watchNetworks redraws the table until interrupted. An interrupt is a
// normal way to leave, not an error.
func watchNetworks(ctx context.Context, s wifiscan.Scanner, log logrus.FieldLogger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := watch.NewLoop(s, view.NewLive(os.Stdout), config.IntervalDuration(), log)
	return loop.Run(ctx)
}
