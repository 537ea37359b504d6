package watch

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	wifiscan "github.com/dogeorg/wifiscan/pkg"
	"github.com/dogeorg/wifiscan/pkg/view"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidInterval = errors.New("refresh interval must be positive")
	ErrAlreadyStarted  = errors.New("refresh loop already started")
)

type State int32

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Display is whatever shows the latest view: a live terminal table, a
// websocket relay, a test recorder.
type Display interface {
	Update(v view.View)
	Stop()
}

/* Loop
 *
 * Loop repeats scan -> build -> display, sleeping the full
 * interval between the end of one cycle and the start of the
 * next. Cycles never overlap.
 *
 * Cancellation is only looked at between cycles: a scan that
 * has started always runs to completion and is displayed
 * before the loop stops.
 */
type Loop struct {
	scanner  wifiscan.Scanner
	display  Display
	interval time.Duration
	state    atomic.Int32
	cycles   atomic.Int64
	log      logrus.FieldLogger
}

func NewLoop(scanner wifiscan.Scanner, display Display, interval time.Duration, log logrus.FieldLogger) *Loop {
	return &Loop{
		scanner:  scanner,
		display:  display,
		interval: interval,
		log:      log.WithField("component", "watch"),
	}
}

func (t *Loop) State() State {
	return State(t.state.Load())
}

// Cycles is the number of completed scan cycles.
func (t *Loop) Cycles() int64 {
	return t.cycles.Load()
}

// Run blocks until ctx is cancelled. It can only be called once.
func (t *Loop) Run(ctx context.Context) error {
	if t.interval <= 0 {
		return ErrInvalidInterval
	}
	if !t.state.CompareAndSwap(int32(Idle), int32(Running)) {
		return ErrAlreadyStarted
	}

	// scans must not be cut short by the stop signal
	scanCtx := context.WithoutCancel(ctx)

	t.display.Update(view.Build(nil))

	timer := time.NewTimer(t.interval)
	timer.Stop()
	defer timer.Stop()

mainloop:
	for ctx.Err() == nil {
		records := t.scanner.Scan(scanCtx)
		t.display.Update(view.Build(records))
		n := t.cycles.Add(1)
		t.log.WithField("cycle", n).WithField("count", len(records)).Debug("Refreshed")

		timer.Reset(t.interval)
		select {
		case <-ctx.Done():
			break mainloop
		case <-timer.C:
		}
	}

	t.state.Store(int32(Stopped))
	t.display.Stop()
	return nil
}
