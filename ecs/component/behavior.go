package component

// Behavior points an entity at a tengo script run once per tick. Scripts
// see the entity's position/velocity and write back a velocity; persistent
// script state lives in the behavior system's runtime cache.
type Behavior struct {
	Script string
}
