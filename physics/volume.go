package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/softboiledgames/ledge/ecs"
	"github.com/softboiledgames/ledge/ecs/component"
)

// Volume is one axis-aligned rectangular collision shape bound to one entity.
//
// Transform is the position provider: read on every bounds refresh, written
// during resolution. A volume whose Transform is nil is skipped for the tick,
// both as a driver and as a partner. Velocity is optional; a volume without
// one is still moved by resolution but never velocity-corrected.
type Volume struct {
	Entity ecs.Entity

	Width  float64
	Height float64
	Offset cp.Vector

	Layer   Layer
	Trigger bool
	Static  bool
	Enabled bool

	Transform *component.Transform
	Velocity  *component.Velocity

	// bb is valid only after RefreshBounds in the current tick.
	bb cp.BB

	listeners []Listener
}

// NewVolume creates an enabled volume on the default layer.
func NewVolume(e ecs.Entity, tr *component.Transform, w, h float64) *Volume {
	return &Volume{
		Entity:    e,
		Width:     w,
		Height:    h,
		Layer:     LayerDefault,
		Enabled:   true,
		Transform: tr,
	}
}

// AddListener registers a contact listener. Listeners are dispatched in
// registration order.
func (v *Volume) AddListener(l Listener) {
	if v == nil || l == nil {
		return
	}
	v.listeners = append(v.listeners, l)
}

// RefreshBounds recomputes the cached bounding box from the owner's current
// position. Idempotent; no side effects beyond the cache.
func (v *Volume) RefreshBounds() {
	if v == nil || v.Transform == nil {
		return
	}
	cx := v.Transform.X + v.Offset.X
	cy := v.Transform.Y + v.Offset.Y
	v.bb = cp.BB{
		L: cx - v.Width/2,
		R: cx + v.Width/2,
		B: cy - v.Height/2,
		T: cy + v.Height/2,
	}
}

// Bounds returns the cached bounding box from the last refresh.
func (v *Volume) Bounds() cp.BB {
	if v == nil {
		return cp.BB{}
	}
	return v.bb
}

// Overlaps reports whether the cached bounds of v and o strictly overlap.
// Edge-adjacent boxes do not overlap. Symmetric by construction.
func (v *Volume) Overlaps(o *Volume) bool {
	if v == nil || o == nil {
		return false
	}
	return v.bb.L < o.bb.R && v.bb.R > o.bb.L &&
		v.bb.B < o.bb.T && v.bb.T > o.bb.B
}

// ContainsPoint reports whether the cached bounds contain p.
func (v *Volume) ContainsPoint(p cp.Vector) bool {
	if v == nil {
		return false
	}
	return p.X >= v.bb.L && p.X <= v.bb.R && p.Y >= v.bb.B && p.Y <= v.bb.T
}

func (v *Volume) center() cp.Vector {
	return cp.Vector{X: (v.bb.L + v.bb.R) / 2, Y: (v.bb.B + v.bb.T) / 2}
}

// move shifts the owner along delta. push is the contact normal as seen from
// this volume: the velocity component along it is zeroed only when it points
// back into the overlap, so velocity already leaving the surface survives.
func (v *Volume) move(delta, push cp.Vector) {
	if v == nil || v.Transform == nil {
		return
	}
	v.Transform.X += delta.X
	v.Transform.Y += delta.Y
	if v.Velocity != nil {
		if push.X != 0 && v.Velocity.VX*push.X < 0 {
			v.Velocity.VX = 0
		}
		if push.Y != 0 && v.Velocity.VY*push.Y < 0 {
			v.Velocity.VY = 0
		}
	}
	v.RefreshBounds()
}

func (v *Volume) notifyContact(c Contact) {
	for _, l := range v.listeners {
		l.OnContact(c)
	}
}

func (v *Volume) notifyEnter(other ecs.Entity) {
	for _, l := range v.listeners {
		l.OnContactEnter(other)
	}
}

func (v *Volume) notifyExit(other ecs.Entity) {
	for _, l := range v.listeners {
		l.OnContactExit(other)
	}
}
