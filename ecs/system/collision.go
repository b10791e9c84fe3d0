package system

import (
	"log"

	"github.com/softboiledgames/ledge/ecs"
	"github.com/softboiledgames/ledge/ecs/component"
	"github.com/softboiledgames/ledge/physics"
)

// CollisionSystem bridges Collider components to the collision engine. It
// registers a volume the first time it sees a collider, unregisters volumes
// whose owners died, steps the engine, and forwards enter/exit contacts to
// the world event queue.
type CollisionSystem struct {
	engine *physics.System
}

func NewCollisionSystem(engine *physics.System) *CollisionSystem {
	return &CollisionSystem{engine: engine}
}

// Engine exposes the wrapped collision engine for queries.
func (s *CollisionSystem) Engine() *physics.System {
	if s == nil {
		return nil
	}
	return s.engine
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || s.engine == nil || w == nil {
		return
	}
	cols := w.Colliders()

	for _, id := range cols.Entities() {
		col, ok := cols.Get(id).(*component.Collider)
		if !ok || col == nil {
			continue
		}
		ent := w.Handle(id)
		if !ent.Valid() {
			continue
		}
		if s.engine.Volume(ent) == nil {
			s.ensureVolume(w, ent, col)
		}
	}

	s.engine.Tick()

	// Drop volumes whose entity died this frame. Contact exits for them
	// were already dispatched by the tick above or are moot.
	for _, v := range s.engine.Volumes() {
		if !w.IsAlive(v.Entity) {
			s.engine.Unregister(v)
		}
	}
}

func (s *CollisionSystem) ensureVolume(w *ecs.World, ent ecs.Entity, col *component.Collider) {
	tr := w.Transform(ent)
	if tr == nil {
		return
	}

	layer, err := physics.ParseLayer(col.Layer)
	if err != nil {
		log.Printf("collision: entity %s: %v", ent, err)
		layer = physics.LayerDefault
	}

	v := physics.NewVolume(ent, tr, col.Width, col.Height)
	v.Offset.X = col.OffsetX
	v.Offset.Y = col.OffsetY
	v.Layer = layer
	v.Trigger = col.Trigger
	v.Static = col.Static
	v.Velocity = w.Velocity(ent)

	owner := ent
	v.AddListener(physics.ListenerFuncs{
		Enter: func(other ecs.Entity) {
			w.Events().Push(ecs.Event{
				Type: "contact",
				Data: ecs.ContactEvent{Entity: owner, Other: other, Kind: ecs.ContactEventEnter},
			})
		},
		Exit: func(other ecs.Entity) {
			w.Events().Push(ecs.Event{
				Type: "contact",
				Data: ecs.ContactEvent{Entity: owner, Other: other, Kind: ecs.ContactEventExit},
			})
		},
	})

	s.engine.Register(v)
}
