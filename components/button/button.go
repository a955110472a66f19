// Package button provides the stub hub buttons.
package button

// A Button is a bit in the pressed-button mask.
type Button uint8

// Buttons present on the hub.
const (
	ButtonLeft Button = 1 << iota
	ButtonCenter
	ButtonRight
	ButtonBluetooth
)

// Buttons tracks which hub buttons are held down. Nothing is pressed until
// a host (for example a test) presses something.
type Buttons struct {
	pressed Button
}

// New returns buttons with nothing pressed.
func New() *Buttons {
	return &Buttons{}
}

// Pressed returns the mask of currently held buttons.
func (b *Buttons) Pressed() Button {
	return b.pressed
}

// Press holds down the given buttons.
func (b *Buttons) Press(buttons Button) {
	b.pressed |= buttons
}

// Release lets go of the given buttons.
func (b *Buttons) Release(buttons Button) {
	b.pressed &^= buttons
}
