// Package motordriver emulates the actuation half of a motor driver chip.
package motordriver

import (
	"context"
	"time"

	"github.com/edaniels/golog"

	"github.com/hubsim/virtualhub/physics"
)

// lookahead is how far past an actuation call's timestamp the physics model
// is advanced. Firmware often writes a command and reads a sensor back with
// no scheduler tick in between; integrating slightly past the write instant
// means that read observes state consistent with the command it just issued.
const lookahead = 5 * time.Millisecond

// A Driver forwards firmware actuation calls to the shared simulated motor
// of its port, or swallows them if the port is unpowered.
type Driver struct {
	motor  *physics.SimulatedMotor
	logger golog.Logger
}

// New wires a driver to the port's motor. motor may be nil for an
// unpowered port.
func New(motor *physics.SimulatedMotor, logger golog.Logger) *Driver {
	return &Driver{motor: motor, logger: logger}
}

// Coast cuts drive to the motor. Actuates just as zero duty.
func (d *Driver) Coast(ctx context.Context, timeUsec int64) error {
	return d.SetDutyCycle(ctx, timeUsec, 0)
}

// SetDutyCycle applies a signed duty-cycle command issued at the given
// simulated time in microseconds. With no motor attached it does nothing.
func (d *Driver) SetDutyCycle(ctx context.Context, timeUsec int64, duty float64) error {
	if d.motor == nil {
		return nil
	}
	d.logger.Debugf("motor driver duty cycle %v at %dus", duty, timeUsec)
	endTime := float64(timeUsec)/1e6 + lookahead.Seconds()
	d.motor.Simulate(endTime, duty)
	return nil
}
