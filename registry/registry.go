// Package registry operates the registry of simulated motor models.
package registry

import (
	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/hubsim/virtualhub/config"
	"github.com/hubsim/virtualhub/physics"
)

// A CreateSimulatedMotor builds the physics model for one motor-bearing
// port, seeded at time t0 (seconds) with the given initial angle and zero
// speed.
type CreateSimulatedMotor func(t0, initialAngleDeg float64, logger golog.Logger) (*physics.SimulatedMotor, error)

var motorRegistry = map[config.DeviceType]CreateSimulatedMotor{}

// RegisterSimulatedMotor registers a motor model for a device type.
func RegisterSimulatedMotor(deviceType config.DeviceType, creator CreateSimulatedMotor) {
	_, old := motorRegistry[deviceType]
	if old {
		panic(errors.Errorf("trying to register two simulated motors with same device type %s", deviceType))
	}
	motorRegistry[deviceType] = creator
}

// SimulatedMotorLookup looks up a motor model creator by device type. nil is
// returned if there is no creator registered.
func SimulatedMotorLookup(deviceType config.DeviceType) CreateSimulatedMotor {
	return motorRegistry[deviceType]
}
