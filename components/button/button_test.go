package button

import (
	"testing"

	"go.viam.com/test"
)

func TestButtons(t *testing.T) {
	b := New()
	test.That(t, b.Pressed(), test.ShouldEqual, Button(0))

	b.Press(ButtonCenter | ButtonLeft)
	test.That(t, b.Pressed()&ButtonCenter, test.ShouldNotEqual, Button(0))
	test.That(t, b.Pressed()&ButtonLeft, test.ShouldNotEqual, Button(0))
	test.That(t, b.Pressed()&ButtonRight, test.ShouldEqual, Button(0))

	b.Release(ButtonLeft)
	test.That(t, b.Pressed(), test.ShouldEqual, ButtonCenter)

	b.Release(ButtonCenter | ButtonBluetooth)
	test.That(t, b.Pressed(), test.ShouldEqual, Button(0))
}
