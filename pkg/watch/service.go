package watch

import (
	"context"

	"github.com/dogeorg/wifiscan/pkg/conductor"
)

var _ conductor.Service = LoopService{}

// LoopService runs a Loop under a conductor.
type LoopService struct {
	loop *Loop
}

func NewLoopService(loop *Loop) LoopService {
	return LoopService{loop: loop}
}

func (t LoopService) Run(started, stopped chan bool, stop chan context.Context) error {
	if t.loop.interval <= 0 {
		return ErrInvalidInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		go func() {
			done <- t.loop.Run(ctx)
		}()

		started <- true
		<-stop
		cancel()
		if err := <-done; err != nil {
			t.loop.log.WithError(err).Error("Refresh loop failed")
		}
		stopped <- true
	}()
	return nil
}
