package main

import (
	"fmt"

	"github.com/softboiledgames/ledge/ecs"
	"github.com/softboiledgames/ledge/ecs/component"
	"github.com/softboiledgames/ledge/prefabs"
)

// loadLevel spawns a level's boxes and the player into the world. Box
// coordinates are center points, matching collision volume semantics.
func (g *Game) loadLevel(name string) error {
	if name == "" {
		name = "level.yaml"
	}
	level, err := prefabs.LoadLevelSpec(name)
	if err != nil {
		return err
	}

	for _, box := range level.Boxes {
		if box.Prefab != "" {
			if _, err := g.spawnPrefab(box.Prefab, box.X, box.Y); err != nil {
				return fmt.Errorf("level %s: box %s: %w", name, box.Name, err)
			}
			continue
		}
		g.spawnStaticBox(box)
	}

	player, err := g.spawnPrefab("player.yaml", level.Spawn.X, level.Spawn.Y)
	if err != nil {
		return fmt.Errorf("level %s: spawn player: %w", name, err)
	}
	g.player = player
	return nil
}

func (g *Game) spawnStaticBox(box prefabs.LevelBoxSpec) ecs.Entity {
	e := g.world.CreateEntity()
	g.world.Transforms().Set(e.ID, &component.Transform{X: box.X, Y: box.Y})
	g.world.Colliders().Set(e.ID, &component.Collider{
		Width:   box.Width,
		Height:  box.Height,
		Layer:   box.Layer,
		Trigger: box.Trigger,
		Static:  true,
	})
	g.world.Sprites().Set(e.ID, &component.Sprite{
		R: box.Sprite.R, G: box.Sprite.G, B: box.Sprite.B, A: box.Sprite.A,
	})
	return e
}

func (g *Game) spawnPrefab(file string, x, y float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadEntitySpec(file)
	if err != nil {
		return ecs.Entity{}, err
	}

	e := g.world.CreateEntity()
	g.world.Transforms().Set(e.ID, &component.Transform{X: x, Y: y})

	if spec.Collider != nil {
		g.world.Colliders().Set(e.ID, &component.Collider{
			Width:   spec.Collider.Width,
			Height:  spec.Collider.Height,
			OffsetX: spec.Collider.OffsetX,
			OffsetY: spec.Collider.OffsetY,
			Layer:   spec.Collider.Layer,
			Trigger: spec.Collider.Trigger,
			Static:  spec.Collider.Static,
		})
		if !spec.Collider.Static {
			g.world.Velocities().Set(e.ID, &component.Velocity{})
		}
	}
	if spec.Gravity != nil {
		g.world.Gravities().Set(e.ID, &component.Gravity{Scale: *spec.Gravity})
	}
	if spec.Player != nil {
		g.world.Players().Set(e.ID, &component.PlayerControl{
			MoveSpeed: spec.Player.MoveSpeed,
			JumpSpeed: spec.Player.JumpSpeed,
		})
	}
	if spec.Behavior != nil {
		g.world.Behaviors().Set(e.ID, &component.Behavior{Script: spec.Behavior.Script})
	}
	if spec.Sprite != nil {
		g.world.Sprites().Set(e.ID, &component.Sprite{
			R: spec.Sprite.R, G: spec.Sprite.G, B: spec.Sprite.B, A: spec.Sprite.A,
		})
	}
	return e, nil
}
