package physics

import "github.com/lixenwraith/shape-motion/core"

// ContactMargin is the clearance the ball needs inside a paddle's extent
// on the axis perpendicular to the touching edges, so corners glance off
const ContactMargin = 2

// EdgeContact reports whether ball and paddle touch edge to edge
// Checks x then y: an edge of ball must equal the opposite edge of paddle on
// that axis, and ball's extent on the other axis widened by ContactMargin must
// lie strictly inside paddle's. Overlap without equal edges is not contact.
func EdgeContact(ball, paddle core.Region) (core.Axis, bool) {
	for _, a := range [...]core.Axis{core.AxisX, core.AxisY} {
		touching := ball.TopLeft.Get(a) == paddle.BottomRight.Get(a) ||
			ball.BottomRight.Get(a) == paddle.TopLeft.Get(a)
		if !touching {
			continue
		}
		o := a.Other()
		if ball.TopLeft.Get(o)-ContactMargin > paddle.TopLeft.Get(o) &&
			ball.BottomRight.Get(o)+ContactMargin < paddle.BottomRight.Get(o) {
			return a, true
		}
	}
	return core.AxisX, false
}

// FenceProximity is how close, in pixels, the ball must come to a fence edge to sound the tone
const FenceProximity = 1

// NearFence reports whether box touches, approaches within FenceProximity, or crosses any fence edge
func NearFence(box, fence core.Region) bool {
	for _, a := range [...]core.Axis{core.AxisX, core.AxisY} {
		if box.TopLeft.Get(a)-FenceProximity <= fence.TopLeft.Get(a) ||
			box.BottomRight.Get(a)+FenceProximity >= fence.BottomRight.Get(a) {
			return true
		}
	}
	return false
}
