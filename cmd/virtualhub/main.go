// Package main runs a virtual hub and exercises the motor on port A.
package main

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"

	vhclock "github.com/hubsim/virtualhub/clock"
	"github.com/hubsim/virtualhub/config"
	_ "github.com/hubsim/virtualhub/physics/models"
	"github.com/hubsim/virtualhub/platform"
)

var logger = golog.NewDevelopmentLogger("virtualhub")

func main() {
	goutils.ContextualMain(mainWithArgs, logger)
}

// Arguments for the command.
type Arguments struct {
	Seed int64   `flag:"seed,usage=seed for the simulation RNG (0 means time-based)"`
	Duty float64 `flag:"duty,default=80,usage=duty cycle applied to port A"`
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	var argsParsed Arguments
	if err := goutils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}

	cfg := config.Default()
	if argsParsed.Seed != 0 {
		cfg.Seed = &argsParsed.Seed
	}

	hub, err := platform.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return runLoop(ctx, hub, argsParsed.Duty)
}

// runLoop polls the hub at the simulated tick cadence in real time and logs
// the port A sensor readings once per simulated tenth of a second.
func runLoop(ctx context.Context, hub *platform.Platform, duty float64) error {
	driver, ok := hub.MotorDriver(config.PortA)
	if !ok {
		return errors.New("port A missing from platform")
	}
	counter, ok := hub.Counter(config.PortA)
	if !ok {
		return errors.New("port A missing from platform")
	}

	wall := clock.New()
	ticker := wall.Ticker(vhclock.DefaultTick)
	defer ticker.Stop()

	for polls := 0; ; polls++ {
		if !goutils.SelectContextOrWaitChan(ctx, ticker.C) {
			return ctx.Err()
		}

		hub.Poll()
		now := hub.Clock().ElapsedMicroseconds()
		if err := driver.SetDutyCycle(ctx, now, duty); err != nil {
			return err
		}

		if polls%100 != 0 {
			continue
		}
		abs, err := counter.AbsCount(ctx)
		if err != nil {
			return err
		}
		count, err := counter.Count(ctx)
		if err != nil {
			return err
		}
		rate, err := counter.Rate(ctx)
		if err != nil {
			return err
		}
		logger.Infow("port A", "t_usec", now, "abs_count", abs, "count", count, "rate", rate)
	}
}
