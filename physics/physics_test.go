package physics

import (
	"testing"

	"github.com/lixenwraith/shape-motion/core"
	"github.com/lixenwraith/shape-motion/game"
	"github.com/lixenwraith/shape-motion/scene"
	"github.com/lixenwraith/shape-motion/shape"
)

type recorder struct {
	contacts []int
	won      int
	lost     int
	tones    []bool
}

func (r *recorder) Contact(s *game.State) { r.contacts = append(r.contacts, s.Lives()) }
func (r *recorder) Won()                  { r.won++ }
func (r *recorder) Lost()                 { r.lost++ }
func (r *recorder) FenceTone(on bool)     { r.tones = append(r.tones, on) }

func region(x0, y0, x1, y1 int) core.Region {
	return core.Region{TopLeft: core.Point{X: x0, Y: y0}, BottomRight: core.Point{X: x1, Y: y1}}
}

func TestEdgeContact(t *testing.T) {
	tests := []struct {
		name   string
		ball   core.Region
		paddle core.Region
		want   bool
		axis   core.Axis
	}{
		{"right edge meets left edge, inside", region(30, 40, 50, 60), region(50, 30, 60, 70), true, core.AxisX},
		{"right edge meets left edge, overhanging", region(30, 20, 50, 80), region(50, 30, 60, 70), false, core.AxisX},
		{"left edge meets right edge", region(60, 40, 80, 60), region(50, 30, 60, 70), true, core.AxisX},
		{"top edge meets bottom edge", region(40, 72, 52, 84), region(20, 68, 80, 72), true, core.AxisY},
		{"bottom edge meets top edge", region(40, 56, 52, 68), region(20, 68, 80, 72), true, core.AxisY},
		{"overlap without touching edges", region(40, 65, 52, 77), region(20, 68, 80, 72), false, core.AxisX},
		{"gap of one pixel", region(40, 73, 52, 85), region(20, 68, 80, 72), false, core.AxisX},
		{"corner glance inside margin", region(19, 72, 31, 84), region(20, 68, 80, 72), false, core.AxisX},
		{"within margin on the right", region(66, 72, 78, 84), region(20, 68, 80, 72), false, core.AxisX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axis, ok := EdgeContact(tt.ball, tt.paddle)
			if ok != tt.want {
				t.Fatalf("EdgeContact = %v, want %v", ok, tt.want)
			}
			if ok && axis != tt.axis {
				t.Errorf("contact axis = %v, want %v", axis, tt.axis)
			}
		})
	}
}

func TestBounceReflectsOncePerAxis(t *testing.T) {
	fence := region(10, 20, 118, 150)
	tests := []struct {
		name    string
		pos     core.Point
		vel     core.Point
		half    core.Point
		wantVel core.Point
		wantPos core.Point
	}{
		{"inside", core.Point{X: 64, Y: 80}, core.Point{X: 3, Y: 1}, core.Point{X: 5, Y: 5}, core.Point{X: 3, Y: 1}, core.Point{X: 64, Y: 80}},
		{"past right", core.Point{X: 116, Y: 80}, core.Point{X: 4, Y: 0}, core.Point{X: 5, Y: 5}, core.Point{X: -4, Y: 0}, core.Point{X: 108, Y: 80}},
		{"past left", core.Point{X: 13, Y: 80}, core.Point{X: -4, Y: 0}, core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 0}, core.Point{X: 21, Y: 80}},
		{"corner both axes", core.Point{X: 116, Y: 148}, core.Point{X: 4, Y: 3}, core.Point{X: 5, Y: 5}, core.Point{X: -4, Y: -3}, core.Point{X: 108, Y: 142}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vel := tt.vel
			box := core.RegionAround(tt.pos, tt.half)
			pos, flipped := Bounce(tt.pos, &vel, box, fence)
			if vel != tt.wantVel {
				t.Errorf("velocity = %+v, want %+v", vel, tt.wantVel)
			}
			if pos != tt.wantPos {
				t.Errorf("position = %+v, want %+v", pos, tt.wantPos)
			}
			for a, f := range flipped {
				if f != (vel.Get(core.Axis(a)) != tt.vel.Get(core.Axis(a))) {
					t.Errorf("flipped[%d] = %v disagrees with velocity change", a, f)
				}
			}
			after := core.RegionAround(pos, tt.half)
			for _, a := range []core.Axis{core.AxisX, core.AxisY} {
				if flipped[a] && after.Outside(fence, a) != 0 {
					t.Errorf("post-bounce box %+v still outside fence on %v", after, a)
				}
			}
		})
	}
}

// testScene builds a field, a ball and one paddle
func testScene(ballPos, ballVel, paddlePos, paddleVel core.Point) (*scene.Scene, game.Roles, core.Region) {
	sc := scene.New()
	field := sc.AddLayer("field", shape.NewRectOutline(54, 70), core.RGBBlack, core.Point{X: 64, Y: 80})
	ball := sc.AddLayer("ball", shape.NewRect(6, 6), core.RGBBlue, ballPos)
	paddle := sc.AddLayer("paddle", shape.NewRect(20, 2), core.RGBRed, paddlePos)

	roles := game.Roles{
		Field:   field,
		Ball:    sc.AddMover(ball, ballVel),
		Paddles: []scene.MoverID{sc.AddMover(paddle, paddleVel)},
	}
	return sc, roles, sc.Layer(field).Bounds()
}

func TestAdvanceScenarioBounceOffTopEdge(t *testing.T) {
	sc := scene.New()
	field := sc.AddLayer("field", shape.NewRectOutline(54, 65), core.RGBBlack, core.Point{X: 64, Y: 85})
	ball := sc.AddLayer("ball", shape.NewRect(6, 6), core.RGBBlue, core.Point{X: 64, Y: 130})
	bar := sc.AddLayer("bar", shape.NewRect(10, 1), core.RGBRed, core.Point{X: 64, Y: 30})
	roles := game.Roles{
		Field:   field,
		Ball:    sc.AddMover(ball, core.Point{}),
		Paddles: []scene.MoverID{sc.AddMover(bar, core.Point{X: 0, Y: -5})},
	}
	fence := sc.Layer(field).Bounds()
	if fence.TopLeft.Y != 20 {
		t.Fatalf("test setup: fence top = %d, want 20", fence.TopLeft.Y)
	}

	st := game.NewState()
	barMover := roles.Paddles[0]
	wantY := []int{25, 30, 35, 40, 45}
	wantVY := []int{-5, 5, 5, 5, 5}

	for tick := range 5 {
		Advance(sc, roles, fence, st, nil)
		sc.Commit()
		l := sc.MoverLayer(barMover)
		if l.Current.Y != wantY[tick] {
			t.Errorf("tick %d: y = %d, want %d", tick+1, l.Current.Y, wantY[tick])
		}
		if v := sc.Mover(barMover).Velocity.Y; v != wantVY[tick] {
			t.Errorf("tick %d: vy = %d, want %d", tick+1, v, wantVY[tick])
		}
	}
}

func TestAdvanceWritesOnlyPending(t *testing.T) {
	sc, roles, fence := testScene(core.Point{X: 64, Y: 120}, core.Point{X: 3, Y: 0}, core.Point{X: 64, Y: 40}, core.Point{X: 2, Y: 0})

	Advance(sc, roles, fence, game.NewState(), nil)

	ball := sc.MoverLayer(roles.Ball)
	if ball.Current != (core.Point{X: 64, Y: 120}) || ball.Previous != ball.Current {
		t.Errorf("Advance must not touch current/previous, got %+v", ball)
	}
	if ball.Pending != (core.Point{X: 67, Y: 120}) {
		t.Errorf("Expected pending (67,120), got %+v", ball.Pending)
	}
	if p := sc.MoverLayer(roles.Paddles[0]).Pending; p != (core.Point{X: 66, Y: 40}) {
		t.Errorf("Expected paddle pending (66,40), got %+v", p)
	}
}

func TestAdvanceAccumulatesWithoutRedraw(t *testing.T) {
	sc, roles, fence := testScene(core.Point{X: 64, Y: 120}, core.Point{X: 1, Y: 0}, core.Point{X: 64, Y: 40}, core.Point{})
	st := game.NewState()

	for range 3 {
		Advance(sc, roles, fence, st, nil)
	}
	if p := sc.MoverLayer(roles.Ball).Pending; p.X != 67 {
		t.Errorf("Expected three ticks to accumulate to x=67, got %d", p.X)
	}
}

func TestAdvanceWin(t *testing.T) {
	// Fence top is 10; ball top at 16 moving up 7 gives tentative top 9
	sc, roles, fence := testScene(core.Point{X: 64, Y: 22}, core.Point{X: 0, Y: -7}, core.Point{X: 64, Y: 8 + 22}, core.Point{})
	if fence.TopLeft.Y != 10 {
		t.Fatalf("test setup: fence top = %d, want 10", fence.TopLeft.Y)
	}
	st := game.NewState()
	rec := &recorder{}

	rep := Advance(sc, roles, fence, st, rec)

	if !rep.Won || st.Outcome() != game.Won {
		t.Fatalf("Expected Won, got %s", st)
	}
	if rec.won != 1 {
		t.Errorf("Expected one Won callback, got %d", rec.won)
	}
	if st.Lives() != 0 || len(rec.contacts) != 0 {
		t.Errorf("No contact may count on the winning tick, lives=%d", st.Lives())
	}
	if rep.Tone || rec.tones[len(rec.tones)-1] {
		t.Error("Tone must be silenced once terminal")
	}
}

func TestAdvanceContactProgressionAndIdempotence(t *testing.T) {
	// Ball bottom edge (y=68) meets paddle top edge after one tick
	ballPos := core.Point{X: 64, Y: 61}
	paddlePos := core.Point{X: 64, Y: 70}
	sc, roles, fence := testScene(ballPos, core.Point{X: 0, Y: 1}, paddlePos, core.Point{})
	st := game.NewState()
	rec := &recorder{}

	want := []string{"Playing(1)", "Playing(2)", "Lost"}
	for i, w := range want {
		// Re-arm the same geometry for each tick
		sc.MoverLayer(roles.Ball).Pending = ballPos
		sc.Mover(roles.Ball).Velocity = core.Point{X: 0, Y: 1}

		rep := Advance(sc, roles, fence, st, rec)
		if rep.Contacts != 1 {
			t.Fatalf("tick %d: expected one contact, got %d", i+1, rep.Contacts)
		}
		if st.String() != w {
			t.Errorf("tick %d: state = %s, want %s", i+1, st, w)
		}
	}

	if rec.lost != 1 {
		t.Errorf("Expected one Lost callback, got %d", rec.lost)
	}

	// Fourth contact while Lost
	sc.MoverLayer(roles.Ball).Pending = ballPos
	before := sc.MoverLayer(roles.Ball).Pending
	rep := Advance(sc, roles, fence, st, rec)
	if !rep.Skipped {
		t.Error("Expected terminal tick to be skipped")
	}
	if st.Lives() != game.LostThreshold {
		t.Errorf("Life counter mutated after Lost: %d", st.Lives())
	}
	if sc.MoverLayer(roles.Ball).Pending != before {
		t.Error("Positions must not advance after a terminal outcome")
	}
	if len(rec.contacts) != 3 || rec.lost != 1 {
		t.Errorf("Feedback re-fired after terminal: contacts=%v lost=%d", rec.contacts, rec.lost)
	}
}

func TestAdvanceFenceTone(t *testing.T) {
	// Fence right edge is 118; ball right edge reaches 117 next tick
	sc, roles, fence := testScene(core.Point{X: 110, Y: 100}, core.Point{X: 1, Y: 0}, core.Point{X: 40, Y: 40}, core.Point{})
	st := game.NewState()
	rec := &recorder{}

	if rep := Advance(sc, roles, fence, st, rec); !rep.Tone {
		t.Error("Expected tone near the fence edge")
	}

	sc.MoverLayer(roles.Ball).Pending = core.Point{X: 64, Y: 100}
	if rep := Advance(sc, roles, fence, st, rec); rep.Tone {
		t.Error("Expected tone silenced away from the fence")
	}
	if len(rec.tones) != 2 || !rec.tones[0] || rec.tones[1] {
		t.Errorf("Unexpected tone sequence %v", rec.tones)
	}
}
