package conductor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

/* Service
 *
 * A Service starts its work in Run and must return straight
 * away. Once it is ready it sends true on 'started'. When the
 * conductor wants it gone it receives a context (carrying the
 * shutdown deadline) on 'stop', winds down, and sends true on
 * 'stopped'.
 */
type Service interface {
	Run(started, stopped chan bool, stop chan context.Context) error
}

type namedService struct {
	name    string
	service Service
	stopped chan bool
	stop    chan context.Context
}

type Option func(*Conductor)

// HookSignals stops the conductor on SIGINT or SIGTERM.
func HookSignals() Option {
	return func(c *Conductor) {
		c.hookSignals = true
	}
}

// Noisy logs every service start and stop at info level.
func Noisy() Option {
	return func(c *Conductor) {
		c.noisy = true
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Conductor) {
		c.log = log
	}
}

func ShutdownTimeout(d time.Duration) Option {
	return func(c *Conductor) {
		c.timeout = d
	}
}

// Conductor starts services in the order they were added and stops them in
// reverse order.
type Conductor struct {
	services    []*namedService
	hookSignals bool
	noisy       bool
	timeout     time.Duration
	log         logrus.FieldLogger
	quit        chan struct{}
	quitOnce    sync.Once
	startErr    error
}

func NewConductor(opts ...Option) *Conductor {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	c := &Conductor{
		timeout: 10 * time.Second,
		log:     silent,
		quit:    make(chan struct{}),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Conductor) Service(name string, s Service) {
	c.services = append(c.services, &namedService{name: name, service: s})
}

// Stop asks every running service to shut down. Safe to call more than once.
func (c *Conductor) Stop() {
	c.quitOnce.Do(func() { close(c.quit) })
}

// Start brings up all services and returns a channel that receives true
// once they have all been stopped again. If a service fails to start, the
// ones already running are stopped and the error is logged.
func (c *Conductor) Start() chan bool {
	done := make(chan bool, 1)

	if c.hookSignals {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sigs:
				c.log.Infof("Received %s, shutting down", sig)
				c.Stop()
			case <-c.quit:
			}
			signal.Stop(sigs)
		}()
	}

	running := []*namedService{}
	for _, s := range c.services {
		if err := c.startService(s); err != nil {
			c.log.WithError(err).Errorf("Service %q failed to start", s.name)
			c.startErr = fmt.Errorf("%s: %w", s.name, err)
			c.Stop()
			break
		}
		running = append(running, s)
	}

	go func() {
		<-c.quit
		for i := len(running) - 1; i >= 0; i-- {
			c.stopService(running[i])
		}
		done <- true
	}()

	return done
}

// Err returns why Start gave up, if it did. Only meaningful once Start has
// returned.
func (c *Conductor) Err() error {
	return c.startErr
}

func (c *Conductor) startService(s *namedService) error {
	started := make(chan bool, 1)
	s.stopped = make(chan bool, 1)
	s.stop = make(chan context.Context, 1)

	if err := s.service.Run(started, s.stopped, s.stop); err != nil {
		return err
	}

	select {
	case <-started:
	case <-time.After(c.timeout):
		return fmt.Errorf("%s did not start within %s", s.name, c.timeout)
	}

	if c.noisy {
		c.log.Infof("Started %s", s.name)
	}
	return nil
}

func (c *Conductor) stopService(s *namedService) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	s.stop <- ctx
	select {
	case <-s.stopped:
		if c.noisy {
			c.log.Infof("Stopped %s", s.name)
		}
	case <-ctx.Done():
		c.log.Warnf("%s did not stop within %s", s.name, c.timeout)
	}
}
