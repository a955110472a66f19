// Package config describes the static hardware layout of a virtual hub.
package config

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// A PortID identifies one of the fixed I/O ports on the hub.
type PortID string

// Port identities, matching the labels printed on the hub.
const (
	PortA = PortID("A")
	PortB = PortID("B")
	PortC = PortID("C")
	PortD = PortID("D")
	PortE = PortID("E")
	PortF = PortID("F")
)

// AllPorts returns every port identity in hub order.
func AllPorts() []PortID {
	return []PortID{PortA, PortB, PortC, PortD, PortE, PortF}
}

// A DeviceType tags what is statically attached to a port.
type DeviceType string

// Device types known to the hub. DeviceTypeNone marks an unpowered port,
// which is a valid steady state and not an error.
const (
	DeviceTypeNone                  = DeviceType("none")
	DeviceTypeTechnicLAngularMotor  = DeviceType("technic_l_angular_motor")
	DeviceTypeTechnicXLAngularMotor = DeviceType("technic_xl_angular_motor")
	DeviceTypeInteractiveMotor      = DeviceType("interactive_motor")
)

// A PortConfig binds one port to its attached device type.
type PortConfig struct {
	Port PortID     `json:"port"`
	Type DeviceType `json:"type"`
}

// Validate ensures all parts of the config are valid.
func (cfg *PortConfig) Validate(path string) error {
	for _, id := range AllPorts() {
		if cfg.Port == id {
			return nil
		}
	}
	return errors.Errorf("%s: unknown port %q", path, cfg.Port)
}

// A Config describes one virtual hub. Ports is an ordered table consumed
// once at platform construction; Seed makes the randomized initial motor
// angles reproducible.
type Config struct {
	Ports          []PortConfig `json:"ports"`
	Seed           *int64       `json:"seed,omitempty"`
	ClockStartUsec int64        `json:"clock_start_usec,omitempty"`
	ClockFuzzUsec  int64        `json:"clock_fuzz_usec,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	var errs error
	seen := map[PortID]struct{}{}
	for idx, pc := range cfg.Ports {
		pc := pc
		if err := pc.Validate(fmt.Sprintf("%s.%s.%d", path, "ports", idx)); err != nil {
			errs = multierr.Combine(errs, err)
			continue
		}
		if _, ok := seen[pc.Port]; ok {
			errs = multierr.Combine(errs, errors.Errorf("%s.%s.%d: port %s configured twice", path, "ports", idx, pc.Port))
		}
		seen[pc.Port] = struct{}{}
	}
	if cfg.ClockStartUsec < 0 {
		errs = multierr.Combine(errs, errors.Errorf("%s: clock_start_usec must be non-negative", path))
	}
	if cfg.ClockFuzzUsec < 0 {
		errs = multierr.Combine(errs, errors.Errorf("%s: clock_fuzz_usec must be non-negative", path))
	}
	return errs
}

// Default returns the stock hub layout: an angular motor on port A and
// nothing on the remaining ports.
func Default() *Config {
	cfg := &Config{
		Ports: []PortConfig{{Port: PortA, Type: DeviceTypeTechnicLAngularMotor}},
	}
	for _, id := range AllPorts()[1:] {
		cfg.Ports = append(cfg.Ports, PortConfig{Port: id, Type: DeviceTypeNone})
	}
	return cfg
}
