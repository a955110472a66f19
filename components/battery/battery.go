// Package battery provides the stub battery internal to the virtual hub.
package battery

// Nominal readings for the simulated pack. The firmware only needs stable,
// plausible values.
const (
	defaultVoltageMillivolts = 7200
	defaultCurrentMilliamps  = 120
)

// A Battery reports fixed nominal electrical readings.
type Battery struct {
	voltageMillivolts int
	currentMilliamps  int
}

// New returns a battery with nominal readings.
func New() *Battery {
	return &Battery{
		voltageMillivolts: defaultVoltageMillivolts,
		currentMilliamps:  defaultCurrentMilliamps,
	}
}

// VoltageMillivolts returns the pack voltage.
func (b *Battery) VoltageMillivolts() int {
	return b.voltageMillivolts
}

// CurrentMilliamps returns the pack discharge current.
func (b *Battery) CurrentMilliamps() int {
	return b.currentMilliamps
}
