package motordriver

import (
	"context"
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"

	"github.com/hubsim/virtualhub/physics"
)

func newTestMotor(t *testing.T, angleDeg float64) *physics.SimulatedMotor {
	t.Helper()
	m, err := physics.NewSimulatedMotor(
		physics.Params{Inertia: 0.0015, Damping: 0.0011, Torque: 0.0002},
		0, angleDeg, 0,
	)
	test.That(t, err, test.ShouldBeNil)
	return m
}

func TestUnpoweredPort(t *testing.T) {
	ctx := context.Background()
	logger := golog.NewTestLogger(t)
	d := New(nil, logger)

	test.That(t, d.Coast(ctx, 1000000), test.ShouldBeNil)
	test.That(t, d.SetDutyCycle(ctx, 0, 100), test.ShouldBeNil)
	test.That(t, d.SetDutyCycle(ctx, 5000000, -100), test.ShouldBeNil)
}

func TestSetDutyCycle(t *testing.T) {
	ctx := context.Background()
	logger := golog.NewTestLogger(t)

	t.Run("advances model by the lookahead", func(t *testing.T) {
		m := newTestMotor(t, 30)
		d := New(m, logger)

		test.That(t, d.SetDutyCycle(ctx, 0, 100), test.ShouldBeNil)
		test.That(t, m.Time(), test.ShouldAlmostEqual, 0.005, 1e-12)

		angle, speed := m.LatestOutput()
		test.That(t, angle, test.ShouldBeGreaterThan, 30)
		test.That(t, speed, test.ShouldBeGreaterThan, 0)
	})

	t.Run("repeating an identical call changes nothing", func(t *testing.T) {
		m := newTestMotor(t, 0)
		d := New(m, logger)

		test.That(t, d.SetDutyCycle(ctx, 10000, 75), test.ShouldBeNil)
		angle, speed := m.LatestOutput()

		test.That(t, d.SetDutyCycle(ctx, 10000, 75), test.ShouldBeNil)
		angle2, speed2 := m.LatestOutput()
		test.That(t, angle2, test.ShouldEqual, angle)
		test.That(t, speed2, test.ShouldEqual, speed)
	})

	t.Run("coast actuates as zero duty", func(t *testing.T) {
		m := newTestMotor(t, 0)
		d := New(m, logger)

		test.That(t, d.SetDutyCycle(ctx, 0, 100), test.ShouldBeNil)
		_, speedBefore := m.LatestOutput()

		// Coasting well after the command: the motor spins down.
		test.That(t, d.Coast(ctx, 2000000), test.ShouldBeNil)
		test.That(t, m.Time(), test.ShouldAlmostEqual, 2.005, 1e-9)
		_, speedAfter := m.LatestOutput()
		test.That(t, speedAfter, test.ShouldBeLessThan, speedBefore)
	})
}
