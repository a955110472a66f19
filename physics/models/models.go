// Package models registers the simulated motor models shipped with the hub.
// Import it for its side effects.
package models

import (
	"github.com/edaniels/golog"

	"github.com/hubsim/virtualhub/config"
	"github.com/hubsim/virtualhub/physics"
	"github.com/hubsim/virtualhub/registry"
)

func init() {
	// Parameter sets chosen so full duty reaches a plausible free-running
	// speed for each motor class (roughly 175, 240 and 135 rpm).
	registry.RegisterSimulatedMotor(config.DeviceTypeTechnicLAngularMotor, creator(physics.Params{
		Inertia: 0.0015,
		Damping: 0.0011,
		Torque:  0.0002,
	}))
	registry.RegisterSimulatedMotor(config.DeviceTypeTechnicXLAngularMotor, creator(physics.Params{
		Inertia: 0.0025,
		Damping: 0.0012,
		Torque:  0.0003,
	}))
	registry.RegisterSimulatedMotor(config.DeviceTypeInteractiveMotor, creator(physics.Params{
		Inertia: 0.0010,
		Damping: 0.0014,
		Torque:  0.0002,
	}))
}

func creator(params physics.Params) registry.CreateSimulatedMotor {
	return func(t0, initialAngleDeg float64, logger golog.Logger) (*physics.SimulatedMotor, error) {
		return physics.NewSimulatedMotor(params, t0, initialAngleDeg, 0)
	}
}
