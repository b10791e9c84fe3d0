package system

import (
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/softboiledgames/ledge/ecs"
	"github.com/softboiledgames/ledge/ecs/component"
	"github.com/softboiledgames/ledge/prefabs"
)

// BehaviorSystem runs tengo scripts attached through Behavior components.
// Scripts define update(engine, state); engine exposes the entity's
// position and velocity, state is a map persisted between ticks.
type BehaviorSystem struct {
	cache map[ecs.Entity]*scriptRuntime
}

func NewBehaviorSystem() *BehaviorSystem {
	return &BehaviorSystem{cache: make(map[ecs.Entity]*scriptRuntime)}
}

type scriptRuntime struct {
	scriptPath string
	compiled   *tengo.Compiled
	state      *tengo.Map
}

const behaviorDispatchScript = `
update(__engine, __state)
`

func (s *BehaviorSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	behaviors := w.Behaviors()

	for _, id := range behaviors.Entities() {
		beh, ok := behaviors.Get(id).(*component.Behavior)
		if !ok || beh == nil || beh.Script == "" {
			continue
		}
		ent := w.Handle(id)
		tr := w.Transform(ent)
		vel := w.Velocity(ent)
		if tr == nil || vel == nil {
			continue
		}

		rt, err := s.runtime(ent, beh.Script)
		if err != nil {
			log.Printf("behavior: entity %s: load %s: %v", ent, beh.Script, err)
			continue
		}
		if err := rt.run(buildScriptEngine(tr, vel)); err != nil {
			log.Printf("behavior: entity %s: run %s: %v", ent, beh.Script, err)
		}
	}

	for ent := range s.cache {
		if !w.IsAlive(ent) {
			delete(s.cache, ent)
		}
	}
}

func (s *BehaviorSystem) runtime(ent ecs.Entity, path string) (*scriptRuntime, error) {
	if rt, ok := s.cache[ent]; ok && rt.scriptPath == path {
		return rt, nil
	}

	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(append(src, []byte("\n"+behaviorDispatchScript)...))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}

	rt := &scriptRuntime{
		scriptPath: path,
		compiled:   compiled,
		state:      &tengo.Map{Value: map[string]tengo.Object{}},
	}
	s.cache[ent] = rt
	return rt, nil
}

func (rt *scriptRuntime) run(engine *tengo.ImmutableMap) error {
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.state); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func buildScriptEngine(tr *component.Transform, vel *component.Velocity) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: tr.X}, &tengo.Float{Value: tr.Y}}}, nil
	}}

	values["velocity"] = &tengo.UserFunction{Name: "velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: vel.VX}, &tengo.Float{Value: vel.VY}}}, nil
	}}

	values["set_velocity_x"] = &tengo.UserFunction{Name: "set_velocity_x", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		v, ok := objectAsFloat(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		vel.VX = v
		return tengo.TrueValue, nil
	}}

	values["set_velocity_y"] = &tengo.UserFunction{Name: "set_velocity_y", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		v, ok := objectAsFloat(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		vel.VY = v
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsFloat(obj tengo.Object) (float64, bool) {
	switch v := obj.(type) {
	case *tengo.Float:
		return v.Value, true
	case *tengo.Int:
		return float64(v.Value), true
	default:
		return 0, false
	}
}
