package physics

import (
	"sort"

	"github.com/softboiledgames/ledge/ecs"
)

const (
	// maxResolvePasses bounds the per-volume resolution loop. Corner and
	// wedge configurations can exit the loop with residual overlap; that is
	// a one-tick visual tolerance, not an error.
	maxResolvePasses = 4

	// resolveEpsilon is the extra separation applied past the penetration
	// depth so a resolved pair ends strictly apart.
	resolveEpsilon = 1e-4
)

// System owns the registry of collision volumes and runs the per-tick
// overlap search, iterative resolution, and enter/exit event tracking.
// Construct one per simulation; there is no global registry.
//
// Everything on System is single-threaded and step-based: Tick is invoked
// once per fixed simulation step and is the only writer of the registered
// transforms and velocities for the duration of the step.
type System struct {
	matrix  *Matrix
	volumes []*Volume

	byEntity map[ecs.Entity]*Volume

	// prev holds the previous tick's per-entity contact sets, retained for
	// exactly one tick to diff enter/exit transitions.
	prev map[ecs.Entity]map[ecs.Entity]struct{}
}

// NewSystem creates a collision system using the given layer matrix.
// A nil matrix means nothing collides until SetMatrix is called.
func NewSystem(m *Matrix) *System {
	return &System{
		matrix:   m,
		byEntity: make(map[ecs.Entity]*Volume),
		prev:     make(map[ecs.Entity]map[ecs.Entity]struct{}),
	}
}

// SetMatrix swaps the layer compatibility table. Used for live reload; takes
// effect on the next Tick.
func (s *System) SetMatrix(m *Matrix) {
	if s == nil {
		return
	}
	s.matrix = m
}

// Register adds a volume to the registry. Registration order is stable and
// observable through PointCast.
func (s *System) Register(v *Volume) {
	if s == nil || v == nil {
		return
	}
	s.volumes = append(s.volumes, v)
	if v.Entity.Valid() {
		s.byEntity[v.Entity] = v
	}
}

// Unregister drops a volume from the registry.
func (s *System) Unregister(v *Volume) {
	if s == nil || v == nil {
		return
	}
	for i, o := range s.volumes {
		if o == v {
			s.volumes = append(s.volumes[:i], s.volumes[i+1:]...)
			break
		}
	}
	if s.byEntity[v.Entity] == v {
		delete(s.byEntity, v.Entity)
	}
}

// Volume returns the registered volume for an entity, or nil.
func (s *System) Volume(e ecs.Entity) *Volume {
	if s == nil {
		return nil
	}
	return s.byEntity[e]
}

// Volumes returns a snapshot of the registry in registration order. Safe to
// Unregister from while iterating the snapshot.
func (s *System) Volumes() []*Volume {
	if s == nil {
		return nil
	}
	return append([]*Volume(nil), s.volumes...)
}

// Tick runs one full collision step: refresh every volume's bounds, resolve
// each enabled non-static volume against its layer-filtered overlap set, and
// emit enter/exit transitions against the previous tick's contact sets.
func (s *System) Tick() {
	if s == nil {
		return
	}

	for _, v := range s.volumes {
		if v.Enabled && v.Transform != nil {
			v.RefreshBounds()
		}
	}

	current := make(map[ecs.Entity]map[ecs.Entity]struct{})

	// Listeners may register or unregister volumes mid-tick; iterate a copy.
	active := append([]*Volume(nil), s.volumes...)
	for _, v := range active {
		if !v.Enabled || v.Static || v.Transform == nil {
			continue
		}
		s.resolveVolume(v, current)
	}

	s.emitTransitions(current)
	s.prev = current
}

// resolveVolume runs the bounded resolution loop for one driving volume.
func (s *System) resolveVolume(v *Volume, current map[ecs.Entity]map[ecs.Entity]struct{}) {
	for pass := 0; pass < maxResolvePasses; pass++ {
		// Positions may have moved in a previous pass; only v and its
		// current partner are kept fresh, the rest of the registry keeps
		// its tick-start bounds.
		v.RefreshBounds()

		contacts := s.gatherContacts(v)
		if len(contacts) == 0 {
			return
		}
		for _, c := range contacts {
			recordPair(current, c.Entity, c.OtherEntity)
		}

		sortContacts(contacts)
		c := contacts[0]

		// Ongoing-contact notification, every pass.
		c.Volume.notifyContact(c)
		c.Other.notifyContact(c.mirrored())

		if c.Volume.Trigger || c.Other.Trigger {
			continue
		}
		separate(c)
	}
}

// gatherContacts collects layer-filtered strictly-overlapping partners for
// v, in registration order. The layer predicate is evaluated only from v's
// perspective; MayCollide(v, o) and MayCollide(o, v) are not interchangeable.
func (s *System) gatherContacts(v *Volume) []Contact {
	var out []Contact
	for _, o := range s.volumes {
		if o == v || !o.Enabled || o.Transform == nil {
			continue
		}
		if o.Entity.Valid() && o.Entity == v.Entity {
			continue
		}
		if v.Static && o.Static {
			continue
		}
		if !s.matrix.MayCollide(v.Layer, o.Layer) {
			continue
		}
		if c, ok := contactBetween(v, o); ok {
			out = append(out, c)
		}
	}
	return out
}

// sortContacts orders contacts for resolution: vertical normals before
// horizontal ones, then deepest penetration first. Resolving ground and
// ceiling contact ahead of walls keeps a body wedged into a corner from
// being shoved sideways while it is pushed onto the floor.
func sortContacts(contacts []Contact) {
	sort.SliceStable(contacts, func(i, j int) bool {
		vi := contacts[i].Normal.Y > 0.5 || contacts[i].Normal.Y < -0.5
		vj := contacts[j].Normal.Y > 0.5 || contacts[j].Normal.Y < -0.5
		if vi != vj {
			return vi
		}
		return contacts[i].Penetration > contacts[j].Penetration
	})
}

// separate pushes the contact's volumes apart along the normal. Both
// dynamic: split 50/50. Exactly one static: the dynamic side takes the full
// move. Velocity along the normal is zeroed per side only when it points
// into the overlap.
func separate(c Contact) {
	move := c.Normal.Mult(c.Penetration + resolveEpsilon)
	a, b := c.Volume, c.Other
	switch {
	case a.Static:
		b.move(move.Neg(), c.Normal.Neg())
	case b.Static:
		a.move(move, c.Normal)
	default:
		a.move(move.Mult(0.5), c.Normal)
		b.move(move.Mult(-0.5), c.Normal.Neg())
	}
}

func recordPair(current map[ecs.Entity]map[ecs.Entity]struct{}, a, b ecs.Entity) {
	if !a.Valid() || !b.Valid() {
		return
	}
	for _, pair := range [2][2]ecs.Entity{{a, b}, {b, a}} {
		set := current[pair[0]]
		if set == nil {
			set = make(map[ecs.Entity]struct{})
			current[pair[0]] = set
		}
		set[pair[1]] = struct{}{}
	}
}

// emitTransitions diffs this tick's contact sets against the retained
// previous sets: present-now-absent-before fires enter, the reverse fires
// exit. Steady contact fires neither.
func (s *System) emitTransitions(current map[ecs.Entity]map[ecs.Entity]struct{}) {
	for e, set := range current {
		v := s.byEntity[e]
		if v == nil {
			continue
		}
		prevSet := s.prev[e]
		for other := range set {
			if _, ok := prevSet[other]; !ok {
				v.notifyEnter(other)
			}
		}
	}
	for e, prevSet := range s.prev {
		v := s.byEntity[e]
		if v == nil {
			continue
		}
		set := current[e]
		for other := range prevSet {
			if _, ok := set[other]; !ok {
				v.notifyExit(other)
			}
		}
	}
}
