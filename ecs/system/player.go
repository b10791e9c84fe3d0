package system

import (
	"github.com/jakecoffman/cp"

	"github.com/softboiledgames/ledge/ecs"
	"github.com/softboiledgames/ledge/ecs/component"
	"github.com/softboiledgames/ledge/physics"
)

// InputState is the per-frame input sample the game loop feeds the player
// system. Keeping polling out of the system makes it testable headless.
type InputState struct {
	MoveX       float64
	JumpPressed bool
}

// PlayerSystem drives entities with a PlayerControl component from sampled
// input. Grounding comes from a box-overlap probe just under the collider,
// independent of the resolution loop.
type PlayerSystem struct {
	engine *physics.System

	// Input is overwritten by the game loop before each world update.
	Input InputState
}

func NewPlayerSystem(engine *physics.System) *PlayerSystem {
	return &PlayerSystem{engine: engine}
}

const groundProbeDepth = 4.0

func (s *PlayerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	players := w.Players()

	for _, id := range players.Entities() {
		ctrl, ok := players.Get(id).(*component.PlayerControl)
		if !ok || ctrl == nil {
			continue
		}
		ent := w.Handle(id)
		vel := w.Velocity(ent)
		if vel == nil {
			continue
		}

		ctrl.Grounded = s.probeGround(ent)

		vel.VX = s.Input.MoveX * ctrl.MoveSpeed
		if s.Input.JumpPressed && ctrl.Grounded {
			vel.VY = -ctrl.JumpSpeed
		}
	}
}

// probeGround overlaps a thin box spanning the collider's bottom edge
// against ground and platform volumes.
func (s *PlayerSystem) probeGround(ent ecs.Entity) bool {
	if s.engine == nil {
		return false
	}
	v := s.engine.Volume(ent)
	if v == nil {
		return false
	}
	// Y grows downward, so the visual bottom edge is the bb's max Y.
	bb := v.Bounds()
	probe := cp.Vector{
		X: (bb.L + bb.R) / 2,
		Y: bb.T + groundProbeDepth/2,
	}
	hits := s.engine.BoxOverlap(probe, v.Width*0.9, groundProbeDepth, physics.LayerGround|physics.LayerPlatform)
	for _, hit := range hits {
		if hit != v {
			return true
		}
	}
	return false
}
