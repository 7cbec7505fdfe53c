package physics

import "github.com/lixenwraith/shape-motion/core"

// Bounce reflects vel on every axis where box leaves fence
// box is the shape's bounds at pos and is evaluated once, so an axis flips at
// most once per call. Each reflected axis nudges pos by twice the new velocity
// so the shape re-enters the fence instead of sticking to the edge.
// Returns the adjusted position and which axes reflected.
func Bounce(pos core.Point, vel *core.Point, box, fence core.Region) (core.Point, [2]bool) {
	var flipped [2]bool
	for _, a := range [...]core.Axis{core.AxisX, core.AxisY} {
		if box.Outside(fence, a) == 0 {
			continue
		}
		v := -vel.Get(a)
		*vel = vel.With(a, v)
		pos = pos.With(a, pos.Get(a)+2*v)
		flipped[a] = true
	}
	return pos, flipped
}
