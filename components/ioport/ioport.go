// Package ioport models a hub I/O port and its statically attached device.
package ioport

import "github.com/hubsim/virtualhub/config"

// An IOPort records a port's identity and configured device type. Immutable
// after construction.
type IOPort struct {
	port       config.PortID
	deviceType config.DeviceType
}

// New returns the record for one port.
func New(port config.PortID, deviceType config.DeviceType) *IOPort {
	return &IOPort{port: port, deviceType: deviceType}
}

// Port returns the port identity.
func (p *IOPort) Port() config.PortID {
	return p.port
}

// DeviceType returns the configured attached-device type.
func (p *IOPort) DeviceType() config.DeviceType {
	return p.deviceType
}
