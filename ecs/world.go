package ecs

import "github.com/softboiledgames/ledge/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to a System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

// World owns entities, component storage, and system order.
type World struct {
	entities entityStore
	systems  []System
	events   EventQueue

	transforms *SparseSet
	velocities *SparseSet
	gravities  *SparseSet
	colliders  *SparseSet
	behaviors  *SparseSet
	sprites    *SparseSet
	players    *SparseSet
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and drops its components.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range []*SparseSet{
		w.transforms, w.velocities, w.gravities,
		w.colliders, w.behaviors, w.sprites, w.players,
	} {
		s.Remove(e.ID)
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Handle rebuilds the live entity for a storage id. Systems iterating a
// SparseSet use it to recover the full handle. Returns the zero entity
// if the id is dead.
func (w *World) Handle(id int) Entity {
	if w == nil {
		return Entity{}
	}
	return w.entities.handle(id)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update drops any events left undrained from the previous frame, then
// runs all systems once. Callers drain the queue after Update returns.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.events.flush()
	for _, s := range w.systems {
		s.Update(w)
	}
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Transforms returns the transform storage.
func (w *World) Transforms() *SparseSet {
	if w.transforms == nil {
		w.transforms = &SparseSet{}
	}
	return w.transforms
}

// Velocities returns the velocity storage.
func (w *World) Velocities() *SparseSet {
	if w.velocities == nil {
		w.velocities = &SparseSet{}
	}
	return w.velocities
}

// Gravities returns the gravity storage.
func (w *World) Gravities() *SparseSet {
	if w.gravities == nil {
		w.gravities = &SparseSet{}
	}
	return w.gravities
}

// Colliders returns the collider storage.
func (w *World) Colliders() *SparseSet {
	if w.colliders == nil {
		w.colliders = &SparseSet{}
	}
	return w.colliders
}

// Behaviors returns the behavior storage.
func (w *World) Behaviors() *SparseSet {
	if w.behaviors == nil {
		w.behaviors = &SparseSet{}
	}
	return w.behaviors
}

// Sprites returns the sprite storage.
func (w *World) Sprites() *SparseSet {
	if w.sprites == nil {
		w.sprites = &SparseSet{}
	}
	return w.sprites
}

// Players returns the player control storage.
func (w *World) Players() *SparseSet {
	if w.players == nil {
		w.players = &SparseSet{}
	}
	return w.players
}

// Transform returns the entity's transform, or nil.
func (w *World) Transform(e Entity) *component.Transform {
	if w == nil || !w.IsAlive(e) {
		return nil
	}
	tr, _ := w.Transforms().Get(e.ID).(*component.Transform)
	return tr
}

// Velocity returns the entity's velocity, or nil.
func (w *World) Velocity(e Entity) *component.Velocity {
	if w == nil || !w.IsAlive(e) {
		return nil
	}
	vel, _ := w.Velocities().Get(e.ID).(*component.Velocity)
	return vel
}
