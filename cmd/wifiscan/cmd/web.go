package cmd

import (
	wifiscan "github.com/dogeorg/wifiscan/pkg"
	"github.com/dogeorg/wifiscan/pkg/conductor"
	"github.com/dogeorg/wifiscan/pkg/watch"
	"github.com/dogeorg/wifiscan/pkg/web"
	"github.com/sirupsen/logrus"
)

func serveWeb(s wifiscan.Scanner, log logrus.FieldLogger) error {
	opts := []conductor.Option{
		conductor.HookSignals(),
		conductor.WithLogger(log),
	}
	if config.Verbose {
		opts = append(opts, conductor.Noisy())
	}
	c := conductor.NewConductor(opts...)

	var relay *web.WSRelay
	if config.Live {
		relay = web.NewWSRelay(log)
		loop := watch.NewLoop(s, relay, config.IntervalDuration(), log)
		c.Service("WSock Relay", relay)
		c.Service("Live Scanner", watch.NewLoopService(loop))
	}
	c.Service("REST API", web.RESTAPI(config, s, relay, log))

	<-c.Start()
	return c.Err()
}
