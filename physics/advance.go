// Package physics is the motion and collision engine.
// It turns each moving layer's pending position into the next tentative
// position, reflects it at the fence, detects ball-paddle contact, and drives
// the life counter. It never touches Current or Previous.
package physics

import (
	"github.com/lixenwraith/shape-motion/core"
	"github.com/lixenwraith/shape-motion/game"
	"github.com/lixenwraith/shape-motion/scene"
)

// Report summarizes one tick for logging and tests
type Report struct {
	Contacts int
	Bounces  int
	Won      bool
	Lost     bool
	Tone     bool
	Skipped  bool // state was already terminal
}

// tentative returns the mover's next position and its bounds without committing
func tentative(sc *scene.Scene, id scene.MoverID) (core.Point, core.Region) {
	m := sc.Mover(id)
	l := sc.Layer(m.Layer)
	pos := l.Pending.Add(m.Velocity)
	return pos, l.Shape.Bounds(pos)
}

// Advance runs one tick of motion and collision
// Positions accumulate from Pending, which equals Current after a redraw.
// Once the state is terminal nothing is mutated and no feedback fires.
func Advance(sc *scene.Scene, roles game.Roles, fence core.Region, st *game.State, fb game.Feedback) Report {
	var rep Report
	if st.Terminal() {
		rep.Skipped = true
		return rep
	}
	if fb == nil {
		fb = game.NopFeedback{}
	}

	_, ballBox := tentative(sc, roles.Ball)

	if ballBox.TopLeft.Y < fence.TopLeft.Y {
		if st.Win() {
			rep.Won = true
			fb.Won()
		}
	} else {
		for _, p := range roles.Paddles {
			_, paddleBox := tentative(sc, p)
			if _, ok := EdgeContact(ballBox, paddleBox); !ok {
				continue
			}
			if !st.Hit() {
				break
			}
			rep.Contacts++
			fb.Contact(st)
			if st.Outcome() == game.Lost {
				rep.Lost = true
				fb.Lost()
				break
			}
		}
	}

	for i := range sc.MoverCount() {
		id := scene.MoverID(i)
		pos, box := tentative(sc, id)
		m := sc.Mover(id)
		pos, flipped := Bounce(pos, &m.Velocity, box, fence)
		for _, f := range flipped {
			if f {
				rep.Bounces++
			}
		}
		sc.Layer(m.Layer).Pending = pos
	}

	rep.Tone = !st.Terminal() && NearFence(ballBox, fence)
	fb.FenceTone(rep.Tone)
	return rep
}
