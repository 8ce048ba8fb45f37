package graphics

import "testing"

func TestCircle_ContainsIsStrict(t *testing.T) {
	c := Circle{Center: Offset{X: 10, Y: 10}, Radius: 5}
	tests := []struct {
		p    Offset
		want bool
	}{
		{Offset{10, 10}, true},
		{Offset{14.9, 10}, true},
		{Offset{15, 10}, false},
		{Offset{10, 5}, false},
		{Offset{14, 14}, false},
	}
	for _, tt := range tests {
		if got := c.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if (Circle{Radius: 0}).Contains(Offset{}) {
		t.Error("zero radius circle contains its center")
	}
}

func TestRect_Basics(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	if r.Width() != 30 || r.Height() != 40 {
		t.Fatalf("size = %v", r.Size())
	}
	if c := r.Center(); c != (Offset{25, 40}) {
		t.Fatalf("center = %v", c)
	}
	if !r.Contains(Offset{10, 20}) || r.Contains(Offset{40, 60}) {
		t.Fatal("Contains edge handling is wrong")
	}
	if got := r.Intersect(RectFromLTWH(100, 100, 1, 1)); !got.IsEmpty() {
		t.Fatalf("disjoint intersect = %v", got)
	}
	d := r.Deflate(EdgeInsets{Top: 1, Left: 2, Bottom: 3, Right: 4})
	if d != (Rect{Left: 12, Top: 21, Right: 36, Bottom: 57}) {
		t.Fatalf("Deflate = %v", d)
	}
}

func TestPillRRect(t *testing.T) {
	rr := PillRRect(RectFromLTWH(0, 0, 200, 40))
	if rr.UniformRadius() != 20 {
		t.Fatalf("radius = %v, want 20", rr.UniformRadius())
	}
	rr.TopLeft = CircularRadius(3)
	if rr.UniformRadius() != 0 {
		t.Fatal("mixed radii reported as uniform")
	}
}
