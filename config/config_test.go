package config

import (
	"testing"

	"go.viam.com/test"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	test.That(t, cfg.Validate(""), test.ShouldBeNil)
	test.That(t, len(cfg.Ports), test.ShouldEqual, 6)
	test.That(t, cfg.Ports[0].Port, test.ShouldEqual, PortA)
	test.That(t, cfg.Ports[0].Type, test.ShouldEqual, DeviceTypeTechnicLAngularMotor)
	for _, pc := range cfg.Ports[1:] {
		test.That(t, pc.Type, test.ShouldEqual, DeviceTypeNone)
	}
}

func TestValidate(t *testing.T) {
	t.Run("unknown port", func(t *testing.T) {
		cfg := &Config{Ports: []PortConfig{{Port: "Z", Type: DeviceTypeNone}}}
		err := cfg.Validate("")
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, `unknown port "Z"`)
	})

	t.Run("duplicate port", func(t *testing.T) {
		cfg := &Config{Ports: []PortConfig{
			{Port: PortA, Type: DeviceTypeNone},
			{Port: PortA, Type: DeviceTypeTechnicLAngularMotor},
		}}
		err := cfg.Validate("")
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "configured twice")
	})

	t.Run("negative clock settings", func(t *testing.T) {
		cfg := &Config{ClockStartUsec: -1, ClockFuzzUsec: -5}
		err := cfg.Validate("")
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "clock_start_usec")
		test.That(t, err.Error(), test.ShouldContainSubstring, "clock_fuzz_usec")
	})

	t.Run("empty config", func(t *testing.T) {
		cfg := &Config{}
		test.That(t, cfg.Validate(""), test.ShouldBeNil)
	})
}
