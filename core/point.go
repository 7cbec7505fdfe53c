package core

// Axis selects a coordinate of a Point
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Other returns the perpendicular axis
func (a Axis) Other() Axis {
	return 1 - a
}

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Point is an integer screen coordinate, also used as a per-tick velocity
type Point struct {
	X, Y int
}

// Add returns p+v
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns p-v
func (p Point) Sub(v Point) Point {
	return Point{X: p.X - v.X, Y: p.Y - v.Y}
}

// Get returns the coordinate on axis a
func (p Point) Get(a Axis) int {
	if a == AxisX {
		return p.X
	}
	return p.Y
}

// With returns a copy of p with axis a replaced by v
func (p Point) With(a Axis, v int) Point {
	if a == AxisX {
		p.X = v
	} else {
		p.Y = v
	}
	return p
}
