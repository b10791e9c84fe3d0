package physics

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/softboiledgames/ledge/ecs"
	"github.com/softboiledgames/ledge/ecs/component"
)

func newTestVolume(id int, x, y, w, h float64) *Volume {
	v := NewVolume(ecs.Entity{ID: id}, &component.Transform{X: x, Y: y}, w, h)
	v.RefreshBounds()
	return v
}

func TestRefreshBounds(t *testing.T) {
	cases := []struct {
		name       string
		x, y       float64
		w, h       float64
		ox, oy     float64
		l, r, b, e float64 // expected L, R, B, T
	}{
		{"centered", 0, 0, 16, 16, 0, 0, -8, 8, -8, 8},
		{"offset", 10, 20, 4, 6, 1, -2, 9, 13, 15, 21},
		{"wide_ground", 0, 100, 100, 16, 0, 0, -50, 50, 92, 108},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := NewVolume(ecs.Entity{ID: 1}, &component.Transform{X: c.x, Y: c.y}, c.w, c.h)
			v.Offset = cp.Vector{X: c.ox, Y: c.oy}
			v.RefreshBounds()
			bb := v.Bounds()
			if bb.L != c.l || bb.R != c.r || bb.B != c.b || bb.T != c.e {
				t.Fatalf("bounds = {L:%v R:%v B:%v T:%v}, want {L:%v R:%v B:%v T:%v}",
					bb.L, bb.R, bb.B, bb.T, c.l, c.r, c.b, c.e)
			}
		})
	}
}

func TestRefreshBoundsIdempotent(t *testing.T) {
	v := newTestVolume(1, 3, 4, 10, 10)
	first := v.Bounds()
	v.RefreshBounds()
	v.RefreshBounds()
	if v.Bounds() != first {
		t.Fatalf("repeated refresh changed bounds: %+v -> %+v", first, v.Bounds())
	}
}

func TestOverlapsSymmetry(t *testing.T) {
	cases := []struct {
		name string
		a, b *Volume
		want bool
	}{
		{"overlapping", newTestVolume(1, 0, 0, 16, 16), newTestVolume(2, 10, 0, 16, 16), true},
		{"apart", newTestVolume(1, 0, 0, 16, 16), newTestVolume(2, 100, 0, 16, 16), false},
		{"edge_adjacent_x", newTestVolume(1, 0, 0, 16, 16), newTestVolume(2, 16, 0, 16, 16), false},
		{"edge_adjacent_y", newTestVolume(1, 0, 0, 16, 16), newTestVolume(2, 0, 16, 16, 16), false},
		{"contained", newTestVolume(1, 0, 0, 100, 100), newTestVolume(2, 5, 5, 4, 4), true},
		{"corner_touch", newTestVolume(1, 0, 0, 16, 16), newTestVolume(2, 16, 16, 16, 16), false},
		{"diagonal_overlap", newTestVolume(1, 0, 0, 16, 16), newTestVolume(2, 12, 12, 16, 16), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Overlaps(c.b); got != c.want {
				t.Fatalf("a.Overlaps(b) = %v, want %v", got, c.want)
			}
			if c.a.Overlaps(c.b) != c.b.Overlaps(c.a) {
				t.Fatalf("overlap is not symmetric for %s", c.name)
			}
		})
	}
}

func TestContainsPoint(t *testing.T) {
	v := newTestVolume(1, 0, 0, 16, 16)
	cases := []struct {
		name string
		p    cp.Vector
		want bool
	}{
		{"center", cp.Vector{}, true},
		{"edge", cp.Vector{X: 8}, true},
		{"corner", cp.Vector{X: 8, Y: 8}, true},
		{"outside", cp.Vector{X: 9}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := v.ContainsPoint(c.p); got != c.want {
				t.Fatalf("ContainsPoint(%v) = %v, want %v", c.p, got, c.want)
			}
		})
	}
}
