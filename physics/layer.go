package physics

import (
	"fmt"
	"sort"
	"strings"
)

// Layer is a collision category tag. Each named layer carries a single bit so
// sets of layers can be expressed as a mask.
type Layer uint32

const (
	LayerDefault Layer = 1 << iota
	LayerActor
	LayerHostile
	LayerGround
	LayerPlatform
	LayerProjectile
	LayerTriggerZone
	LayerPickup
)

// LayerAll matches every named layer in queries.
const LayerAll = LayerDefault | LayerActor | LayerHostile | LayerGround |
	LayerPlatform | LayerProjectile | LayerTriggerZone | LayerPickup

var layerNames = map[string]Layer{
	"default":      LayerDefault,
	"actor":        LayerActor,
	"hostile":      LayerHostile,
	"ground":       LayerGround,
	"platform":     LayerPlatform,
	"projectile":   LayerProjectile,
	"trigger_zone": LayerTriggerZone,
	"pickup":       LayerPickup,
}

// ParseLayer resolves a layer name from config into its bit value.
func ParseLayer(name string) (Layer, error) {
	l, ok := layerNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("physics: unknown layer %q", name)
	}
	return l, nil
}

func (l Layer) String() string {
	for name, v := range layerNames {
		if v == l {
			return name
		}
	}
	return fmt.Sprintf("layer(%#x)", uint32(l))
}

// Matrix is the layer compatibility table. MayCollide is directional: a rule
// for (actor -> ground) says nothing about (ground -> actor). The system
// evaluates it only from the perspective of the volume driving a resolution,
// so asymmetric rules are honored, not silently mirrored.
type Matrix struct {
	allowed map[Layer]Layer
}

// NewMatrix returns an empty matrix. With no rules nothing collides.
func NewMatrix() *Matrix {
	return &Matrix{allowed: make(map[Layer]Layer)}
}

// Allow adds a directional rule: volumes on layer from may collide with
// volumes on any layer in the to mask.
func (m *Matrix) Allow(from Layer, to Layer) {
	if m == nil {
		return
	}
	if m.allowed == nil {
		m.allowed = make(map[Layer]Layer)
	}
	m.allowed[from] |= to
}

// MayCollide reports whether from is allowed to collide with to. Unknown
// combinations default to no collision.
func (m *Matrix) MayCollide(from, to Layer) bool {
	if m == nil || m.allowed == nil {
		return false
	}
	return m.allowed[from]&to != 0
}

// MatrixFromRules builds a matrix from a name-keyed rule table, typically
// decoded from YAML. Rule order is normalized so load errors are stable.
func MatrixFromRules(rules map[string][]string) (*Matrix, error) {
	m := NewMatrix()
	froms := make([]string, 0, len(rules))
	for name := range rules {
		froms = append(froms, name)
	}
	sort.Strings(froms)
	for _, name := range froms {
		from, err := ParseLayer(name)
		if err != nil {
			return nil, err
		}
		for _, toName := range rules[name] {
			to, err := ParseLayer(toName)
			if err != nil {
				return nil, fmt.Errorf("physics: rule %s: %w", name, err)
			}
			m.Allow(from, to)
		}
	}
	return m, nil
}
