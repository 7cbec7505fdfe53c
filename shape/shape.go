// Package shape holds the immutable geometric primitives placed by layers.
// Every shape answers two questions relative to a center point: the tight
// bounding box, and whether a given pixel is covered.
package shape

import "github.com/lixenwraith/shape-motion/core"

// Kind tags the primitive behind a Shape
type Kind uint8

const (
	KindRect Kind = iota
	KindRectOutline
	KindCircle
	KindNotchedRect
)

var kindNames = [...]string{"rect", "rect-outline", "circle", "notched-rect"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Shape is a pure geometric primitive evaluated relative to a center
// Bounds must enclose every pixel for which Contains is true
type Shape interface {
	Kind() Kind
	Bounds(center core.Point) core.Region
	Contains(center, pixel core.Point) bool
}
