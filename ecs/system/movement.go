package system

import (
	"github.com/softboiledgames/ledge/common"
	"github.com/softboiledgames/ledge/ecs"
	"github.com/softboiledgames/ledge/ecs/component"
)

// MovementSystem applies gravity and integrates velocities into transforms
// at the fixed timestep. Runs before collision so the resolver sees the
// post-move positions.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	vels := w.Velocities()
	trs := w.Transforms()
	gravs := w.Gravities()

	for _, id := range vels.Entities() {
		vel, ok := vels.Get(id).(*component.Velocity)
		if !ok || vel == nil {
			continue
		}
		tr, ok := trs.Get(id).(*component.Transform)
		if !ok || tr == nil {
			continue
		}

		if gv := gravs.Get(id); gv != nil {
			if grav, ok := gv.(*component.Gravity); ok && grav != nil {
				vel.VY += common.Gravity * grav.Scale * common.Step
			}
		}

		tr.X += vel.VX * common.Step
		tr.Y += vel.VY * common.Step
	}
}
