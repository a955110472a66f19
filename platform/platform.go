// Package platform wires the simulated peripherals of one virtual hub.
//
// A Platform is the composition root below the firmware's hardware
// abstraction boundary: it owns the fixed port set, attaches a simulated
// motor to each motor-bearing port, and hands the port's motor driver and
// counter a shared reference to it. Everything is built once and torn down
// together; nothing is recreated mid-run.
package platform

import (
	"context"
	"math/rand"
	"time"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/hubsim/virtualhub/clock"
	"github.com/hubsim/virtualhub/components/battery"
	"github.com/hubsim/virtualhub/components/button"
	"github.com/hubsim/virtualhub/components/counter"
	"github.com/hubsim/virtualhub/components/ioport"
	"github.com/hubsim/virtualhub/components/led"
	"github.com/hubsim/virtualhub/components/motordriver"
	"github.com/hubsim/virtualhub/config"
	"github.com/hubsim/virtualhub/physics"
	"github.com/hubsim/virtualhub/registry"
)

// A port owns everything wired to one hub port. The driver and counter hold
// references into this record; the record outlives both.
type port struct {
	ioport  *ioport.IOPort
	motor   *physics.SimulatedMotor // nil when the port is unpowered
	driver  *motordriver.Driver
	counter *counter.Counter
}

// A Platform is one independent simulated hub. It is single-threaded and
// call-driven: the host scheduler invokes Poll once per iteration, and the
// firmware calls the drivers and counters in between.
type Platform struct {
	logger golog.Logger
	clock  *clock.CountingClock
	rng    *rand.Rand

	battery *battery.Battery
	buttons *button.Buttons
	led     *led.LED

	ports  []*port
	byPort map[config.PortID]*port
}

// New constructs a platform from the static port table. Construction only
// fails on an invalid config; a port with a device type that has no
// registered simulated motor aborts startup rather than silently becoming
// an unpowered port.
func New(ctx context.Context, cfg *config.Config, logger golog.Logger) (*Platform, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(""); err != nil {
		return nil, errors.Wrap(err, "invalid platform config")
	}

	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	p := &Platform{
		logger:  logger,
		rng:     rng,
		battery: battery.New(),
		buttons: button.New(),
		led:     led.New(),
		byPort:  map[config.PortID]*port{},
	}
	p.clock = clock.NewCountingClock(
		time.Duration(cfg.ClockStartUsec)*time.Microsecond,
		time.Duration(cfg.ClockFuzzUsec)*time.Microsecond,
		rng,
	)

	for _, pc := range cfg.Ports {
		var motor *physics.SimulatedMotor
		if pc.Type != config.DeviceTypeNone {
			create := registry.SimulatedMotorLookup(pc.Type)
			if create == nil {
				return nil, errors.Errorf("port %s: no simulated motor registered for device type %q", pc.Port, pc.Type)
			}

			// Motors power up at an unknown angle: uniform whole degrees
			// over a full turn, at rest.
			t0 := float64(p.clock.ElapsedMicroseconds()) / 1e6
			initialAngle := float64(rng.Intn(360) - 180)
			m, err := create(t0, initialAngle, logger)
			if err != nil {
				return nil, errors.Wrapf(err, "port %s: cannot build simulated motor", pc.Port)
			}
			motor = m
		}

		prt := &port{
			ioport:  ioport.New(pc.Port, pc.Type),
			motor:   motor,
			driver:  motordriver.New(motor, logger),
			counter: counter.New(motor),
		}
		p.ports = append(p.ports, prt)
		p.byPort[pc.Port] = prt
	}

	logger.Infow("virtual hub ready", "ports", len(p.ports), "seed", seed)
	return p, nil
}

// Poll advances simulated time by one clock tick. The host scheduler calls
// it once per iteration; it is the only thing that moves the clock.
func (p *Platform) Poll() {
	p.clock.Tick()
}

// Clock returns the hub's simulated time source.
func (p *Platform) Clock() *clock.CountingClock {
	return p.clock
}

// MotorDriver returns the motor driver for a port.
func (p *Platform) MotorDriver(id config.PortID) (*motordriver.Driver, bool) {
	prt, ok := p.byPort[id]
	if !ok {
		return nil, false
	}
	return prt.driver, true
}

// Counter returns the rotation counter for a port.
func (p *Platform) Counter(id config.PortID) (*counter.Counter, bool) {
	prt, ok := p.byPort[id]
	if !ok {
		return nil, false
	}
	return prt.counter, true
}

// IOPort returns the port record for a port.
func (p *Platform) IOPort(id config.PortID) (*ioport.IOPort, bool) {
	prt, ok := p.byPort[id]
	if !ok {
		return nil, false
	}
	return prt.ioport, true
}

// Battery returns the hub battery.
func (p *Platform) Battery() *battery.Battery {
	return p.battery
}

// Buttons returns the hub buttons.
func (p *Platform) Buttons() *button.Buttons {
	return p.buttons
}

// LED returns the hub status light.
func (p *Platform) LED() *led.LED {
	return p.led
}
