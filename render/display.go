package render

import "github.com/lixenwraith/shape-motion/core"

// Display is the pixel sink of the LCD contract
// SetArea declares a region, then WriteColor streams its pixels row-major; there is no random access
type Display interface {
	SetArea(r core.Region)
	WriteColor(c core.RGB)
}

// TextOverlay draws a string whose top-left pixel is (x, y)
type TextOverlay interface {
	DrawString(x, y int, s string, fg, bg core.RGB)
}

// Surface is a display that also carries text and presents frames
type Surface interface {
	Display
	TextOverlay
	Show()
}

// areaCursor walks a declared area row-major
type areaCursor struct {
	area core.Region
	next core.Point
	done bool
}

func (a *areaCursor) set(r core.Region) {
	a.area = r
	a.next = r.TopLeft
	a.done = r.Empty()
}

// advance returns the pixel the next write lands on
// Writes past the end of the area are dropped
func (a *areaCursor) advance() (core.Point, bool) {
	if a.done {
		return core.Point{}, false
	}
	p := a.next
	a.next.X++
	if a.next.X > a.area.BottomRight.X {
		a.next.X = a.area.TopLeft.X
		a.next.Y++
		if a.next.Y > a.area.BottomRight.Y {
			a.done = true
		}
	}
	return p, true
}
