// Package counter emulates the incremental and absolute rotation sensors
// of a motor.
package counter

import (
	"context"
	"math"

	"github.com/hubsim/virtualhub/physics"
)

// A Counter converts the shared simulated motor's latest output into
// firmware-visible readings. It only ever reads the motor. With no motor
// attached every reading is a permanently valid zero.
type Counter struct {
	motor *physics.SimulatedMotor

	// calibrationAngle is the motor angle at construction time, in degrees.
	// Counter drivers count from the angle where they started, so it is
	// captured once and never changes.
	calibrationAngle float64
}

// New wires a counter to the port's motor. motor may be nil for an
// unpowered port.
func New(motor *physics.SimulatedMotor) *Counter {
	c := &Counter{motor: motor}
	if motor == nil {
		return c
	}
	c.calibrationAngle, _ = motor.LatestOutput()
	return c
}

// AbsCount returns the absolute position wrapped into one revolution and
// centered on 0°. A reduced angle of exactly 180° maps to -180°.
func (c *Counter) AbsCount(ctx context.Context) (float64, error) {
	if c.motor == nil {
		return 0, nil
	}
	angle, _ := c.motor.LatestOutput()
	abs := math.Mod(angle, 360)
	if abs < 0 {
		abs += 360
	}
	if abs >= 180 {
		abs -= 360
	}
	return abs, nil
}

// Count returns the cumulative rotation since construction in degrees,
// unwrapped: multi-turn motion exceeds ±360° and is never corrected.
func (c *Counter) Count(ctx context.Context) (float64, error) {
	if c.motor == nil {
		return 0, nil
	}
	angle, _ := c.motor.LatestOutput()
	return angle - c.calibrationAngle, nil
}

// Rate returns the instantaneous angular speed in degrees per second,
// unfiltered.
func (c *Counter) Rate(ctx context.Context) (float64, error) {
	if c.motor == nil {
		return 0, nil
	}
	_, speed := c.motor.LatestOutput()
	return speed, nil
}
