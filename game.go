package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/softboiledgames/ledge/common"
	"github.com/softboiledgames/ledge/ecs"
	"github.com/softboiledgames/ledge/ecs/component"
	"github.com/softboiledgames/ledge/ecs/system"
	"github.com/softboiledgames/ledge/physics"
	"github.com/softboiledgames/ledge/prefabs"
)

type Game struct {
	frames int

	world     *ecs.World
	engine    *physics.System
	playerSys *system.PlayerSystem
	player    ecs.Entity

	watcher *prefabs.Watcher
	ui      *ebitenui.UI

	debug  bool
	paused bool
}

func NewGame(levelName string, debug bool) (*Game, error) {
	matrix, err := loadLayerMatrix()
	if err != nil {
		return nil, err
	}
	engine := physics.NewSystem(matrix)

	world := ecs.NewWorld()
	playerSys := system.NewPlayerSystem(engine)
	world.AddSystem(system.NewBehaviorSystem())
	world.AddSystem(playerSys)
	world.AddSystem(system.NewMovementSystem())
	world.AddSystem(system.NewCollisionSystem(engine))

	g := &Game{
		world:     world,
		engine:    engine,
		playerSys: playerSys,
		debug:     debug,
	}

	if err := g.loadLevel(levelName); err != nil {
		return nil, err
	}

	// Live reload is best effort; running from outside the repo just
	// disables it.
	if watcher, err := prefabs.NewWatcher("prefabs"); err == nil {
		g.watcher = watcher
	} else {
		log.Printf("prefabs: watch disabled: %v", err)
	}

	g.ui = NewPauseUI(g)
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func loadLayerMatrix() (*physics.Matrix, error) {
	spec, err := prefabs.LoadLayerMatrixSpec()
	if err != nil {
		return nil, err
	}
	return physics.MatrixFromRules(spec.Rules)
}

func (g *Game) Update() error {
	g.frames++
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.playerSys.Input = pollInput()
	g.world.Update()
	g.handleContactEvents()
	return nil
}

func pollInput() system.InputState {
	var in system.InputState
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.MoveX += 1
	}
	in.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsKeyJustPressed(ebiten.KeyUp)
	return in
}

// handleContactEvents reacts to enter/exit contacts forwarded from the
// collision engine: pickups vanish when the player touches them, trigger
// zones just log.
func (g *Game) handleContactEvents() {
	for _, ev := range g.world.Events().Drain() {
		ce, ok := ev.Data.(ecs.ContactEvent)
		if !ok {
			continue
		}
		v := g.engine.Volume(ce.Entity)
		if v == nil {
			continue
		}
		switch {
		case ce.Kind == ecs.ContactEventEnter && v.Layer == physics.LayerPickup && ce.Other == g.player:
			g.world.DestroyEntity(ce.Entity)
			log.Printf("picked up entity %s", ce.Entity)
		case ce.Kind == ecs.ContactEventEnter && v.Layer == physics.LayerTriggerZone && ce.Other == g.player:
			log.Printf("player entered zone %s", ce.Entity)
		case g.debug:
			log.Printf("contact %s: %s -> %s", ce.Kind, ce.Entity, ce.Other)
		}
	}
}

// drainWatcher applies prefab edits. Only the layer matrix is hot-swapped;
// other files take effect on the next level load.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if filepath.Base(path) == "layers.yaml" {
				matrix, err := loadLayerMatrix()
				if err != nil {
					log.Printf("prefabs: reload layers: %v", err)
					continue
				}
				g.engine.SetMatrix(matrix)
				log.Printf("prefabs: reloaded layer matrix")
			}
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("prefabs: watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 26, B: 34, A: 255})

	sprites := g.world.Sprites()
	cols := g.world.Colliders()
	for _, id := range sprites.Entities() {
		sp, ok := sprites.Get(id).(*component.Sprite)
		if !ok || sp == nil {
			continue
		}
		tr, ok := g.world.Transforms().Get(id).(*component.Transform)
		if !ok || tr == nil {
			continue
		}
		w, h := 8.0, 8.0
		if col, ok := cols.Get(id).(*component.Collider); ok && col != nil {
			w, h = col.Width, col.Height
		}
		vector.DrawFilledRect(screen,
			float32(tr.X-w/2), float32(tr.Y-h/2), float32(w), float32(h),
			color.RGBA{R: sp.R, G: sp.G, B: sp.B, A: sp.A}, false)
	}

	if g.debug {
		g.drawDebugVolumes(screen)
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	}

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) drawDebugVolumes(screen *ebiten.Image) {
	for _, v := range g.engine.Volumes() {
		bb := v.Bounds()
		var c color.RGBA
		switch {
		case v.Trigger:
			c = color.RGBA{G: 255, A: 255}
		case v.Static:
			c = color.RGBA{R: 160, G: 160, B: 160, A: 255}
		default:
			c = color.RGBA{R: 255, G: 80, B: 80, A: 255}
		}
		vector.StrokeRect(screen,
			float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B),
			1, c, false)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
