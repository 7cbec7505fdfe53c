package input

import "github.com/lixenwraith/shape-motion/core"

// Buttons is a bitmask of currently held directional controls
type Buttons uint8

const (
	ButtonLeft Buttons = 1 << iota
	ButtonDown
	ButtonUp
	ButtonRight

	AllButtons = ButtonLeft | ButtonDown | ButtonUp | ButtonRight
)

// ButtonReader is the input contract, polled once per tick
type ButtonReader interface {
	ReadButtons() Buttons
}

// Player speeds per tick
const (
	HorizontalSpeed = 3
	VerticalSpeed   = 1
)

// Steer returns the velocity selected by the held buttons
// Priority is right, left, down, up; false when nothing is held
func Steer(b Buttons) (core.Point, bool) {
	switch {
	case b&ButtonRight != 0:
		return core.Point{X: HorizontalSpeed}, true
	case b&ButtonLeft != 0:
		return core.Point{X: -HorizontalSpeed}, true
	case b&ButtonDown != 0:
		return core.Point{Y: VerticalSpeed}, true
	case b&ButtonUp != 0:
		return core.Point{Y: -VerticalSpeed}, true
	}
	return core.Point{}, false
}
