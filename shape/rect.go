package shape

import "github.com/lixenwraith/shape-motion/core"

// Rect is a filled rectangle spanning center ± Half on each axis
type Rect struct {
	Half core.Point
}

// NewRect creates a filled rectangle from half-extents
func NewRect(halfW, halfH int) Rect {
	return Rect{Half: core.Point{X: halfW, Y: halfH}}
}

func (r Rect) Kind() Kind { return KindRect }

func (r Rect) Bounds(center core.Point) core.Region {
	return core.RegionAround(center, r.Half)
}

func (r Rect) Contains(center, pixel core.Point) bool {
	return r.Bounds(center).Contains(pixel)
}

// RectOutline covers only the one-pixel border of the rectangle center ± Half
type RectOutline struct {
	Half core.Point
}

// NewRectOutline creates an outline from half-extents
func NewRectOutline(halfW, halfH int) RectOutline {
	return RectOutline{Half: core.Point{X: halfW, Y: halfH}}
}

func (r RectOutline) Kind() Kind { return KindRectOutline }

func (r RectOutline) Bounds(center core.Point) core.Region {
	return core.RegionAround(center, r.Half)
}

func (r RectOutline) Contains(center, pixel core.Point) bool {
	b := r.Bounds(center)
	if !b.Contains(pixel) {
		return false
	}
	return pixel.X == b.TopLeft.X || pixel.X == b.BottomRight.X ||
		pixel.Y == b.TopLeft.Y || pixel.Y == b.BottomRight.Y
}

// NotchedRect is a filled rectangle with its lower-right quadrant cut away
// Used by the splash screens
type NotchedRect struct {
	Half core.Point
}

// NewNotchedRect creates a notched rectangle from half-extents
func NewNotchedRect(halfW, halfH int) NotchedRect {
	return NotchedRect{Half: core.Point{X: halfW, Y: halfH}}
}

func (r NotchedRect) Kind() Kind { return KindNotchedRect }

func (r NotchedRect) Bounds(center core.Point) core.Region {
	return core.RegionAround(center, r.Half)
}

func (r NotchedRect) Contains(center, pixel core.Point) bool {
	rel := pixel.Sub(center)
	if rel.X > 0 && rel.Y > 0 {
		return false
	}
	return r.Bounds(center).Contains(pixel)
}
