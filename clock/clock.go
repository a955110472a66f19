// Package clock provides the simulated time source for a virtual hub.
//
// A CountingClock stands in for the hardware tick counter: it only moves
// when the host scheduler polls the platform, one fixed step per poll.
package clock

import (
	"math/rand"
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultTick is the amount of simulated time one scheduler poll represents.
const DefaultTick = time.Millisecond

// A CountingClock is a monotonic simulated-microsecond counter. It is not
// safe for concurrent use; the platform is single-threaded by contract.
type CountingClock struct {
	mock  *clock.Mock
	epoch time.Time
	start time.Duration
	tick  time.Duration
	fuzz  time.Duration
	rng   *rand.Rand
}

// NewCountingClock returns a clock that starts at the given offset and
// advances by DefaultTick per Tick call. A non-zero fuzz adds a uniformly
// random extra delay in [0, fuzz] to every tick, drawn from rng; real
// hardware timers jitter, and fuzz lets tests exercise that.
func NewCountingClock(start, fuzz time.Duration, rng *rand.Rand) *CountingClock {
	mock := clock.NewMock()
	return &CountingClock{
		mock:  mock,
		epoch: mock.Now(),
		start: start,
		tick:  DefaultTick,
		fuzz:  fuzz,
		rng:   rng,
	}
}

// Tick advances simulated time by one fixed step.
func (c *CountingClock) Tick() {
	d := c.tick
	if c.fuzz > 0 && c.rng != nil {
		d += time.Duration(c.rng.Int63n(int64(c.fuzz) + 1))
	}
	c.mock.Add(d)
}

// Elapsed returns the simulated time since the clock's zero point.
func (c *CountingClock) Elapsed() time.Duration {
	return c.start + c.mock.Now().Sub(c.epoch)
}

// ElapsedMicroseconds returns the simulated time in firmware-native
// microseconds.
func (c *CountingClock) ElapsedMicroseconds() int64 {
	return c.Elapsed().Microseconds()
}
