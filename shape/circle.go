package shape

import "github.com/lixenwraith/shape-motion/core"

// Circle is a filled disc of Radius around the center
type Circle struct {
	Radius int
}

// NewCircle creates a filled disc
func NewCircle(radius int) Circle {
	return Circle{Radius: radius}
}

func (c Circle) Kind() Kind { return KindCircle }

func (c Circle) Bounds(center core.Point) core.Region {
	return core.RegionAround(center, core.Point{X: c.Radius, Y: c.Radius})
}

// Contains compares squared distances, no floating point
func (c Circle) Contains(center, pixel core.Point) bool {
	d := pixel.Sub(center)
	return d.X*d.X+d.Y*d.Y <= c.Radius*c.Radius
}
