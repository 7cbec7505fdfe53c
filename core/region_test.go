package core

import "testing"

func TestRegionAround(t *testing.T) {
	r := RegionAround(Point{X: 64, Y: 30}, Point{X: 10, Y: 1})
	if r.TopLeft != (Point{X: 54, Y: 29}) || r.BottomRight != (Point{X: 74, Y: 31}) {
		t.Errorf("Expected [54,29]-[74,31], got %+v", r)
	}
	if r.Width() != 21 || r.Height() != 3 {
		t.Errorf("Expected 21x3, got %dx%d", r.Width(), r.Height())
	}
}

func TestRegionUnion(t *testing.T) {
	a := Region{TopLeft: Point{0, 0}, BottomRight: Point{4, 4}}
	b := Region{TopLeft: Point{10, 2}, BottomRight: Point{12, 8}}

	u := a.Union(b)
	want := Region{TopLeft: Point{0, 0}, BottomRight: Point{12, 8}}
	if u != want {
		t.Errorf("Expected %+v, got %+v", want, u)
	}

	empty := Region{TopLeft: Point{5, 5}, BottomRight: Point{4, 4}}
	if got := empty.Union(b); got != b {
		t.Errorf("Union with empty should return other region, got %+v", got)
	}
	if got := a.Union(empty); got != a {
		t.Errorf("Union with empty should return receiver, got %+v", got)
	}
}

func TestRegionClip(t *testing.T) {
	screen := ScreenRegion(128, 160)
	r := Region{TopLeft: Point{-5, 150}, BottomRight: Point{10, 170}}

	got := r.Clip(screen)
	want := Region{TopLeft: Point{0, 150}, BottomRight: Point{10, 159}}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	off := Region{TopLeft: Point{200, 200}, BottomRight: Point{210, 210}}
	if !off.Clip(screen).Empty() {
		t.Error("Expected off-screen region to clip to empty")
	}
	if off.Clip(screen).Area() != 0 {
		t.Error("Expected empty region to have zero area")
	}
}

func TestRegionOutside(t *testing.T) {
	fence := Region{TopLeft: Point{10, 20}, BottomRight: Point{100, 150}}

	tests := []struct {
		name string
		r    Region
		axis Axis
		want int
	}{
		{"inside x", Region{Point{10, 30}, Point{100, 40}}, AxisX, 0},
		{"left of fence", Region{Point{9, 30}, Point{20, 40}}, AxisX, -1},
		{"right of fence", Region{Point{90, 30}, Point{101, 40}}, AxisX, 1},
		{"above fence", Region{Point{30, 19}, Point{40, 25}}, AxisY, -1},
		{"below fence", Region{Point{30, 140}, Point{40, 151}}, AxisY, 1},
		{"touching top edge", Region{Point{30, 20}, Point{40, 25}}, AxisY, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Outside(fence, tt.axis); got != tt.want {
				t.Errorf("Outside(%v) = %d, want %d", tt.axis, got, tt.want)
			}
		})
	}
}

func TestPointAxisAccess(t *testing.T) {
	p := Point{X: 3, Y: -7}
	if p.Get(AxisX) != 3 || p.Get(AxisY) != -7 {
		t.Errorf("Unexpected axis values for %+v", p)
	}
	if q := p.With(AxisY, 5); q != (Point{3, 5}) {
		t.Errorf("Expected {3 5}, got %+v", q)
	}
	if AxisX.Other() != AxisY || AxisY.Other() != AxisX {
		t.Error("Other() must swap axes")
	}
}
