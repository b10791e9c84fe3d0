package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/softboiledgames/ledge/ecs"
)

// Contact describes one overlap between two volumes, valid only for the
// check that produced it. Normal is axis-aligned and unit-length and points
// in the direction that separates Volume from Other; Penetration is the
// overlap along that axis; Point is the midpoint of the intersection
// rectangle on both axes, independent of the chosen axis.
type Contact struct {
	Volume *Volume
	Other  *Volume

	Entity      ecs.Entity
	OtherEntity ecs.Entity

	Normal      cp.Vector
	Penetration float64
	Point       cp.Vector
}

// contactBetween builds a Contact for a strictly overlapping a and b from
// their cached bounds. The separation axis is the axis of minimum
// penetration; ties prefer X, matching the order evaluated.
func contactBetween(a, b *Volume) (Contact, bool) {
	if !a.Overlaps(b) {
		return Contact{}, false
	}

	penX := a.bb.R - b.bb.L
	if d := b.bb.R - a.bb.L; d < penX {
		penX = d
	}
	penY := a.bb.T - b.bb.B
	if d := b.bb.T - a.bb.B; d < penY {
		penY = d
	}

	c := Contact{
		Volume:      a,
		Other:       b,
		Entity:      a.Entity,
		OtherEntity: b.Entity,
		Point: cp.Vector{
			X: (max(a.bb.L, b.bb.L) + min(a.bb.R, b.bb.R)) / 2,
			Y: (max(a.bb.B, b.bb.B) + min(a.bb.T, b.bb.T)) / 2,
		},
	}

	ca, cb := a.center(), b.center()
	if penX <= penY {
		c.Penetration = penX
		if ca.X < cb.X {
			c.Normal = cp.Vector{X: -1}
		} else {
			c.Normal = cp.Vector{X: 1}
		}
	} else {
		c.Penetration = penY
		if ca.Y < cb.Y {
			c.Normal = cp.Vector{Y: -1}
		} else {
			c.Normal = cp.Vector{Y: 1}
		}
	}
	return c, true
}

// mirrored returns the same contact seen from the other volume.
func (c Contact) mirrored() Contact {
	return Contact{
		Volume:      c.Other,
		Other:       c.Volume,
		Entity:      c.OtherEntity,
		OtherEntity: c.Entity,
		Normal:      c.Normal.Neg(),
		Penetration: c.Penetration,
		Point:       c.Point,
	}
}
