package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec reads and unmarshals one prefab file into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LayerMatrixSpec maps a source layer name to the layer names it collides
// with. The rule direction matters: listing ground under actor lets a moving
// actor resolve against ground, not the reverse.
type LayerMatrixSpec struct {
	Rules map[string][]string `yaml:"rules"`
}

func LoadLayerMatrixSpec() (LayerMatrixSpec, error) {
	return LoadSpec[LayerMatrixSpec]("layers.yaml")
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Layer   string  `yaml:"layer"`
	Trigger bool    `yaml:"trigger"`
	Static  bool    `yaml:"static"`
}

type SpriteSpec struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

type PlayerControlSpec struct {
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

type BehaviorSpec struct {
	Script string `yaml:"script"`
}

// EntitySpec is a full entity prefab. Optional sections are pointers so a
// missing section adds no component.
type EntitySpec struct {
	Name     string             `yaml:"name"`
	Collider *ColliderSpec      `yaml:"collider"`
	Sprite   *SpriteSpec        `yaml:"sprite"`
	Gravity  *float64           `yaml:"gravity"`
	Player   *PlayerControlSpec `yaml:"player"`
	Behavior *BehaviorSpec      `yaml:"behavior"`
}

func LoadEntitySpec(filename string) (EntitySpec, error) {
	return LoadSpec[EntitySpec](filename)
}

// LevelBoxSpec is one placed box in a level: either a static piece of
// geometry (ground, wall, platform, trigger zone) or a spawn point for an
// entity prefab when Prefab is set.
type LevelBoxSpec struct {
	Name    string     `yaml:"name"`
	X       float64    `yaml:"x"`
	Y       float64    `yaml:"y"`
	Width   float64    `yaml:"width"`
	Height  float64    `yaml:"height"`
	Layer   string     `yaml:"layer"`
	Trigger bool       `yaml:"trigger"`
	Prefab  string     `yaml:"prefab"`
	Sprite  SpriteSpec `yaml:"sprite"`
}

type LevelSpec struct {
	Name  string         `yaml:"name"`
	Spawn TransformSpec  `yaml:"spawn"`
	Boxes []LevelBoxSpec `yaml:"boxes"`
}

func LoadLevelSpec(filename string) (LevelSpec, error) {
	return LoadSpec[LevelSpec](filename)
}
