package clock

import (
	"math/rand"
	"testing"
	"time"

	"go.viam.com/test"
)

func TestCountingClock(t *testing.T) {
	t.Run("starts at zero", func(t *testing.T) {
		c := NewCountingClock(0, 0, nil)
		test.That(t, c.ElapsedMicroseconds(), test.ShouldEqual, 0)
	})

	t.Run("n ticks advance exactly n fixed steps", func(t *testing.T) {
		c := NewCountingClock(0, 0, nil)
		const n = 250
		for i := 0; i < n; i++ {
			c.Tick()
		}
		test.That(t, c.Elapsed(), test.ShouldEqual, n*DefaultTick)
		test.That(t, c.ElapsedMicroseconds(), test.ShouldEqual, int64(n)*DefaultTick.Microseconds())
	})

	t.Run("start offset", func(t *testing.T) {
		c := NewCountingClock(42*time.Millisecond, 0, nil)
		test.That(t, c.ElapsedMicroseconds(), test.ShouldEqual, 42000)
		c.Tick()
		test.That(t, c.ElapsedMicroseconds(), test.ShouldEqual, 43000)
	})

	t.Run("fuzz is monotonic and reproducible", func(t *testing.T) {
		c1 := NewCountingClock(0, 500*time.Microsecond, rand.New(rand.NewSource(7)))
		c2 := NewCountingClock(0, 500*time.Microsecond, rand.New(rand.NewSource(7)))
		var prev int64
		for i := 0; i < 100; i++ {
			c1.Tick()
			c2.Tick()
			now := c1.ElapsedMicroseconds()
			test.That(t, now, test.ShouldBeGreaterThanOrEqualTo, prev+DefaultTick.Microseconds())
			test.That(t, c2.ElapsedMicroseconds(), test.ShouldEqual, now)
			prev = now
		}
	})
}
