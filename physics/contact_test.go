package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestContactAxisAndNormal(t *testing.T) {
	cases := []struct {
		name       string
		a, b       *Volume
		wantNormal cp.Vector
		wantPen    float64
	}{
		{
			// b to the right of a, shallow X overlap: push a left.
			name:       "x_axis_push_left",
			a:          newTestVolume(1, 0, 0, 16, 16),
			b:          newTestVolume(2, 14, 0, 16, 16),
			wantNormal: cp.Vector{X: -1},
			wantPen:    2,
		},
		{
			name:       "x_axis_push_right",
			a:          newTestVolume(1, 14, 0, 16, 16),
			b:          newTestVolume(2, 0, 0, 16, 16),
			wantNormal: cp.Vector{X: 1},
			wantPen:    2,
		},
		{
			// b below a (y-down), shallow Y overlap: push a up.
			name:       "y_axis_push_up",
			a:          newTestVolume(1, 0, 0, 16, 16),
			b:          newTestVolume(2, 0, 14, 16, 16),
			wantNormal: cp.Vector{Y: -1},
			wantPen:    2,
		},
		{
			name:       "y_axis_push_down",
			a:          newTestVolume(1, 0, 14, 16, 16),
			b:          newTestVolume(2, 0, 0, 16, 16),
			wantNormal: cp.Vector{Y: 1},
			wantPen:    2,
		},
		{
			// Equal penetration on both axes resolves on X. Documented
			// tie-break, matching the evaluation order.
			name:       "tie_prefers_x",
			a:          newTestVolume(1, 0, 0, 16, 16),
			b:          newTestVolume(2, 14, 14, 16, 16),
			wantNormal: cp.Vector{X: -1},
			wantPen:    2,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := contactBetween(c.a, c.b)
			if !ok {
				t.Fatalf("expected contact")
			}
			if got.Normal != c.wantNormal {
				t.Fatalf("normal = %v, want %v", got.Normal, c.wantNormal)
			}
			if math.Abs(got.Penetration-c.wantPen) > 1e-9 {
				t.Fatalf("penetration = %v, want %v", got.Penetration, c.wantPen)
			}
			if got.Penetration < 0 {
				t.Fatalf("penetration must be non-negative")
			}
			// Normal is axis-aligned unit length.
			if math.Abs(got.Normal.X)+math.Abs(got.Normal.Y) != 1 {
				t.Fatalf("normal %v is not an axis-aligned unit vector", got.Normal)
			}
		})
	}
}

func TestContactPointIsIntersectionMidpoint(t *testing.T) {
	a := newTestVolume(1, 0, 0, 16, 16)
	b := newTestVolume(2, 12, 4, 16, 16)
	c, ok := contactBetween(a, b)
	if !ok {
		t.Fatalf("expected contact")
	}
	// Intersection is x in [4, 8], y in [-4, 8].
	want := cp.Vector{X: 6, Y: 2}
	if c.Point != want {
		t.Fatalf("contact point = %v, want %v", c.Point, want)
	}

	// The point does not depend on the chosen separation axis: swapping the
	// pair mirrors the normal but keeps the point.
	m := c.mirrored()
	if m.Point != want {
		t.Fatalf("mirrored contact point = %v, want %v", m.Point, want)
	}
	if m.Normal != c.Normal.Neg() {
		t.Fatalf("mirrored normal = %v, want %v", m.Normal, c.Normal.Neg())
	}
	if m.Penetration != c.Penetration {
		t.Fatalf("mirrored penetration = %v, want %v", m.Penetration, c.Penetration)
	}
	if m.Volume != c.Other || m.Other != c.Volume {
		t.Fatalf("mirrored contact did not swap volumes")
	}
}

func TestNoContactWhenSeparated(t *testing.T) {
	a := newTestVolume(1, 0, 0, 16, 16)
	b := newTestVolume(2, 16, 0, 16, 16) // edge-adjacent
	if _, ok := contactBetween(a, b); ok {
		t.Fatalf("edge-adjacent volumes must not produce a contact")
	}
}
