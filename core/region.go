package core

// Region is an axis-aligned rectangle with inclusive corners
type Region struct {
	TopLeft     Point
	BottomRight Point
}

// RegionAround returns the region centered on c extending half on each side
func RegionAround(c, half Point) Region {
	return Region{TopLeft: c.Sub(half), BottomRight: c.Add(half)}
}

// Width returns the number of columns covered
func (r Region) Width() int {
	return r.BottomRight.X - r.TopLeft.X + 1
}

// Height returns the number of rows covered
func (r Region) Height() int {
	return r.BottomRight.Y - r.TopLeft.Y + 1
}

// Empty reports whether the region covers no pixel
func (r Region) Empty() bool {
	return r.BottomRight.X < r.TopLeft.X || r.BottomRight.Y < r.TopLeft.Y
}

// Area returns the pixel count, zero for empty regions
func (r Region) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width() * r.Height()
}

// Contains reports whether p lies inside r
func (r Region) Contains(p Point) bool {
	return p.X >= r.TopLeft.X && p.X <= r.BottomRight.X &&
		p.Y >= r.TopLeft.Y && p.Y <= r.BottomRight.Y
}

// ContainsRegion reports whether o lies entirely inside r
func (r Region) ContainsRegion(o Region) bool {
	return r.Contains(o.TopLeft) && r.Contains(o.BottomRight)
}

// Union returns the smallest region enclosing both r and o
func (r Region) Union(o Region) Region {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Region{
		TopLeft:     Point{X: min(r.TopLeft.X, o.TopLeft.X), Y: min(r.TopLeft.Y, o.TopLeft.Y)},
		BottomRight: Point{X: max(r.BottomRight.X, o.BottomRight.X), Y: max(r.BottomRight.Y, o.BottomRight.Y)},
	}
}

// Clip returns the intersection of r and o, possibly empty
func (r Region) Clip(o Region) Region {
	return Region{
		TopLeft:     Point{X: max(r.TopLeft.X, o.TopLeft.X), Y: max(r.TopLeft.Y, o.TopLeft.Y)},
		BottomRight: Point{X: min(r.BottomRight.X, o.BottomRight.X), Y: min(r.BottomRight.Y, o.BottomRight.Y)},
	}
}

// Translate returns r moved by v
func (r Region) Translate(v Point) Region {
	return Region{TopLeft: r.TopLeft.Add(v), BottomRight: r.BottomRight.Add(v)}
}

// Outside reports on which side of fence r escapes along axis a
// Returns -1 when the low edge is before the fence, +1 when the high edge is past it, 0 otherwise
func (r Region) Outside(fence Region, a Axis) int {
	switch {
	case r.TopLeft.Get(a) < fence.TopLeft.Get(a):
		return -1
	case r.BottomRight.Get(a) > fence.BottomRight.Get(a):
		return 1
	}
	return 0
}

// ScreenRegion returns the region covering a width x height display
func ScreenRegion(width, height int) Region {
	return Region{BottomRight: Point{X: width - 1, Y: height - 1}}
}
