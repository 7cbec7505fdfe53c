// Package scene owns the layer arena shared by the compositor and the
// motion engine. Layers live in one slice; paint order and motion order are
// index sequences over it, so both views observe the same position triple.
package scene

import (
	"fmt"

	"github.com/lixenwraith/shape-motion/core"
	"github.com/lixenwraith/shape-motion/shape"
)

// LayerID indexes the layer arena
type LayerID int

// MoverID indexes the motion order
type MoverID int

// Layer is a positioned, colored shape
// Current is what the screen shows, Pending is next frame, Previous is Current one commit ago
type Layer struct {
	Name     string
	Shape    shape.Shape
	Color    core.RGB
	Previous core.Point
	Current  core.Point
	Pending  core.Point
}

// Bounds returns the layer's region at its committed position
func (l *Layer) Bounds() core.Region {
	return l.Shape.Bounds(l.Current)
}

// Contains reports whether the layer covers pixel at its committed position
func (l *Layer) Contains(pixel core.Point) bool {
	return l.Shape.Contains(l.Current, pixel)
}

// MovingLayer references a layer that the motion engine advances
type MovingLayer struct {
	Layer    LayerID
	Velocity core.Point
}

// Scene is the arena of layers with its two orderings
type Scene struct {
	layers []Layer
	paint  []LayerID
	motion []MovingLayer

	initialLayers []core.Point
	initialMotion []core.Point
}

// New creates an empty scene
func New() *Scene {
	return &Scene{}
}

// AddLayer appends a layer behind all existing ones in paint order
// The position triple starts collapsed on pos
func (s *Scene) AddLayer(name string, sh shape.Shape, color core.RGB, pos core.Point) LayerID {
	if sh == nil {
		panic(fmt.Sprintf("scene: layer %q has no shape", name))
	}
	id := LayerID(len(s.layers))
	s.layers = append(s.layers, Layer{
		Name:     name,
		Shape:    sh,
		Color:    color,
		Previous: pos,
		Current:  pos,
		Pending:  pos,
	})
	s.paint = append(s.paint, id)
	s.initialLayers = append(s.initialLayers, pos)
	return id
}

// AddMover registers layer id in motion order with an initial velocity
func (s *Scene) AddMover(id LayerID, velocity core.Point) MoverID {
	if int(id) < 0 || int(id) >= len(s.layers) {
		panic(fmt.Sprintf("scene: mover references unknown layer %d", id))
	}
	mid := MoverID(len(s.motion))
	s.motion = append(s.motion, MovingLayer{Layer: id, Velocity: velocity})
	s.initialMotion = append(s.initialMotion, velocity)
	return mid
}

// Layer returns the arena record for id
func (s *Scene) Layer(id LayerID) *Layer {
	return &s.layers[id]
}

// Mover returns the motion record for id
func (s *Scene) Mover(id MoverID) *MovingLayer {
	return &s.motion[id]
}

// MoverLayer returns the layer advanced by mover id
func (s *Scene) MoverLayer(id MoverID) *Layer {
	return &s.layers[s.motion[id].Layer]
}

// PaintOrder returns layer ids front to back
func (s *Scene) PaintOrder() []LayerID {
	return s.paint
}

// MoverCount returns the length of motion order
func (s *Scene) MoverCount() int {
	return len(s.motion)
}

// LayerCount returns the arena size
func (s *Scene) LayerCount() int {
	return len(s.layers)
}

// Commit shifts every moving layer's triple: Previous←Current, Current←Pending
// Caller must exclude the tick task while this runs
func (s *Scene) Commit() {
	for _, m := range s.motion {
		l := &s.layers[m.Layer]
		l.Previous = l.Current
		l.Current = l.Pending
	}
}

// Probe resolves the color at pixel with the painter's algorithm
// The first layer in paint order covering pixel wins
func (s *Scene) Probe(pixel core.Point) (core.RGB, bool) {
	for _, id := range s.paint {
		l := &s.layers[id]
		if l.Shape.Contains(l.Current, pixel) {
			return l.Color, true
		}
	}
	return core.RGB{}, false
}

// Reset restores construction-time positions and velocities
func (s *Scene) Reset() {
	for i := range s.layers {
		p := s.initialLayers[i]
		s.layers[i].Previous = p
		s.layers[i].Current = p
		s.layers[i].Pending = p
	}
	for i := range s.motion {
		s.motion[i].Velocity = s.initialMotion[i]
	}
}
