package game

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/shape-motion/core"
	"github.com/lixenwraith/shape-motion/scene"
	"github.com/lixenwraith/shape-motion/shape"
)

// Role assigns a layer its part in the motion engine
type Role uint8

const (
	RoleScenery Role = iota
	RoleField
	RoleBall
	RolePaddle
)

// Reference LCD size the layouts and text positions were designed on
const (
	ReferenceWidth  = 128
	ReferenceHeight = 160
)

// ballHalf is the player square's half extent in every level
const ballHalf = 6

// ballRow places the player at reference row y, kept one pixel clear of the
// bottom of a field inset by margin
func ballRow(y, height, margin int) int {
	return min(y*height/ReferenceHeight, height-1-margin-ballHalf-1)
}

// LayerSpec describes one layer of a level, listed front to back
type LayerSpec struct {
	Name     string
	Shape    shape.Shape
	Color    core.RGB
	Pos      core.Point
	Velocity core.Point
	Role     Role
}

// Level is a named layout
type Level struct {
	Name   string
	Layers []LayerSpec
}

// Roles binds motion-engine roles to scene records
type Roles struct {
	Field   scene.LayerID
	Ball    scene.MoverID
	Paddles []scene.MoverID
}

// Classic is three sliding bars between the player square and the top edge
func Classic(width, height int) Level {
	cx := width / 2
	sy := func(y int) int { return y * height / ReferenceHeight }
	return Level{
		Name: "classic",
		Layers: []LayerSpec{
			{Name: "field", Shape: shape.NewRectOutline(width/2-10, height/2-10), Color: core.RGBBlack, Pos: core.Point{X: cx, Y: height / 2}, Role: RoleField},
			{Name: "player", Shape: shape.NewRect(ballHalf, ballHalf), Color: core.RGBBlue, Pos: core.Point{X: cx, Y: ballRow(140, height, 10)}, Role: RoleBall},
			{Name: "yellow-bar", Shape: shape.NewRect(20, 2), Color: core.RGBYellow, Pos: core.Point{X: cx, Y: sy(120)}, Velocity: core.Point{X: 2}, Role: RolePaddle},
			{Name: "green-bar", Shape: shape.NewRect(20, 2), Color: core.RGBGreen, Pos: core.Point{X: cx, Y: sy(80)}, Velocity: core.Point{X: 3}, Role: RolePaddle},
			{Name: "red-bar", Shape: shape.NewRect(20, 2), Color: core.RGBRed, Pos: core.Point{X: cx, Y: sy(30)}, Velocity: core.Point{X: 2}, Role: RolePaddle},
		},
	}
}

// Gauntlet is five bars of differing widths and speeds over a full-screen field
func Gauntlet(width, height int) Level {
	cx := width / 2
	sy := func(y int) int { return y * height / ReferenceHeight }
	return Level{
		Name: "gauntlet",
		Layers: []LayerSpec{
			{Name: "field", Shape: shape.NewRectOutline(width/2-1, height/2-1), Color: core.RGBBlack, Pos: core.Point{X: cx, Y: height / 2}, Role: RoleField},
			{Name: "player", Shape: shape.NewRect(ballHalf, ballHalf), Color: core.RGBRed, Pos: core.Point{X: cx, Y: ballRow(150, height, 1)}, Role: RoleBall},
			{Name: "yellow-bar", Shape: shape.NewRect(17, 2), Color: core.RGBYellow, Pos: core.Point{X: cx, Y: sy(135)}, Velocity: core.Point{X: 2}, Role: RolePaddle},
			{Name: "black-bar", Shape: shape.NewRect(16, 2), Color: core.RGBBlack, Pos: core.Point{X: cx, Y: sy(105)}, Velocity: core.Point{X: 5}, Role: RolePaddle},
			{Name: "green-bar", Shape: shape.NewRect(20, 2), Color: core.RGBGreen, Pos: core.Point{X: cx, Y: sy(75)}, Velocity: core.Point{X: 6}, Role: RolePaddle},
			{Name: "red-bar", Shape: shape.NewRect(12, 2), Color: core.RGBRed, Pos: core.Point{X: cx, Y: sy(43)}, Velocity: core.Point{X: 3}, Role: RolePaddle},
			{Name: "blue-bar", Shape: shape.NewRect(17, 2), Color: core.RGBBlue, Pos: core.Point{X: cx, Y: sy(14)}, Velocity: core.Point{X: 4}, Role: RolePaddle},
		},
	}
}

// Lookup returns the named level sized for the screen
func Lookup(name string, width, height int) (Level, error) {
	switch name {
	case "", "classic":
		return Classic(width, height), nil
	case "gauntlet":
		return Gauntlet(width, height), nil
	}
	return Level{}, fmt.Errorf("unknown level %q", name)
}

// Names lists the built-in levels
func Names() []string {
	return []string{"classic", "gauntlet"}
}

// Validate rejects layouts where a moving layer could escape the fence
func (lv Level) Validate() error {
	var fence core.Region
	fields, balls := 0, 0
	for _, ls := range lv.Layers {
		if ls.Shape == nil {
			return fmt.Errorf("level %s: layer %q has no shape", lv.Name, ls.Name)
		}
		switch ls.Role {
		case RoleField:
			fields++
			fence = ls.Shape.Bounds(ls.Pos)
		case RoleBall:
			balls++
		}
	}
	if fields != 1 || balls != 1 {
		return fmt.Errorf("level %s: need exactly one field and one ball, got %d and %d", lv.Name, fields, balls)
	}

	for _, ls := range lv.Layers {
		if ls.Role != RoleBall && ls.Role != RolePaddle {
			continue
		}
		b := ls.Shape.Bounds(ls.Pos)
		if b.Width() >= fence.Width() || b.Height() >= fence.Height() {
			return fmt.Errorf("level %s: layer %q is not smaller than the fence", lv.Name, ls.Name)
		}
		if !fence.ContainsRegion(b) {
			return fmt.Errorf("level %s: layer %q starts outside the fence %+v", lv.Name, ls.Name, fence)
		}
	}
	return nil
}

// Build validates the level and lays it into a fresh scene
// Paint order follows the listed order; motion order holds the ball then paddles
// A non-nil rng with jitter > 0 perturbs paddle speeds by up to ±jitter
func (lv Level) Build(jitter int, rng *rand.Rand) (*scene.Scene, Roles, error) {
	if err := lv.Validate(); err != nil {
		return nil, Roles{}, err
	}

	sc := scene.New()
	var roles Roles
	for _, ls := range lv.Layers {
		id := sc.AddLayer(ls.Name, ls.Shape, ls.Color, ls.Pos)
		switch ls.Role {
		case RoleField:
			roles.Field = id
		case RoleBall:
			roles.Ball = sc.AddMover(id, ls.Velocity)
		case RolePaddle:
			v := ls.Velocity
			if jitter > 0 && rng != nil {
				v.X = jitterSpeed(v.X, jitter, rng)
			}
			roles.Paddles = append(roles.Paddles, sc.AddMover(id, v))
		}
	}
	return sc, roles, nil
}

// jitterSpeed never returns zero so paddles keep moving
func jitterSpeed(v, jitter int, rng *rand.Rand) int {
	n := v + rng.Intn(2*jitter+1) - jitter
	if n == 0 {
		if v < 0 {
			return -1
		}
		return 1
	}
	return n
}

// Fence returns the motion boundary from the field layer's shape
func Fence(sc *scene.Scene, roles Roles) core.Region {
	return sc.Layer(roles.Field).Bounds()
}
