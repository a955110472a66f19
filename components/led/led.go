// Package led provides the stub status light of the virtual hub.
package led

// An LED remembers the last color the firmware wrote to it.
type LED struct {
	r, g, b uint8
}

// New returns an LED that is off.
func New() *LED {
	return &LED{}
}

// SetColor records the color the firmware asked for.
func (l *LED) SetColor(r, g, b uint8) {
	l.r, l.g, l.b = r, g, b
}

// Color returns the last color written.
func (l *LED) Color() (r, g, b uint8) {
	return l.r, l.g, l.b
}
