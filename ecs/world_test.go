package ecs

import (
	"testing"

	"github.com/softboiledgames/ledge/ecs/component"
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			for _, e := range ents {
				if !w.IsAlive(e) {
					t.Fatalf("entity %s should be alive after create", e)
				}
			}
			if c.destroyIndex >= 0 {
				victim := ents[c.destroyIndex]
				if !w.DestroyEntity(victim) {
					t.Fatal("DestroyEntity should return true for a live entity")
				}
				if w.IsAlive(victim) {
					t.Fatal("entity should not be alive after destruction")
				}
				if w.DestroyEntity(victim) {
					t.Fatal("double destroy should return false")
				}
			}
		})
	}
}

func TestStaleHandleAfterIDReuse(t *testing.T) {
	w := NewWorld()
	old := w.CreateEntity()
	if !w.DestroyEntity(old) {
		t.Fatal("destroy failed")
	}

	reborn := w.CreateEntity()
	if reborn.ID != old.ID {
		t.Fatalf("expected id reuse, got %d then %d", old.ID, reborn.ID)
	}
	if w.IsAlive(old) {
		t.Fatal("stale handle should be dead")
	}
	if !w.IsAlive(reborn) {
		t.Fatal("reborn handle should be alive")
	}
	if got := w.Handle(reborn.ID); got != reborn {
		t.Fatalf("Handle(%d) = %s, want %s", reborn.ID, got, reborn)
	}
}

func TestDestroyDropsComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Transforms().Set(e.ID, &component.Transform{X: 1, Y: 2})
	w.Velocities().Set(e.ID, &component.Velocity{VX: 3})

	w.DestroyEntity(e)

	if w.Transforms().Has(e.ID) {
		t.Fatal("transform should be dropped on destroy")
	}
	if w.Velocities().Has(e.ID) {
		t.Fatal("velocity should be dropped on destroy")
	}
	if w.Transform(e) != nil {
		t.Fatal("typed accessor should return nil for a dead entity")
	}
}

func TestSparseSetSwapRemove(t *testing.T) {
	s := &SparseSet{}
	s.Set(1, "a")
	s.Set(2, "b")
	s.Set(3, "c")

	s.Remove(1)

	if s.Has(1) {
		t.Fatal("removed id should be absent")
	}
	if got := s.Get(2); got != "b" {
		t.Fatalf("Get(2) = %v after unrelated remove", got)
	}
	if got := s.Get(3); got != "c" {
		t.Fatalf("Get(3) = %v after unrelated remove", got)
	}
	if n := len(s.Entities()); n != 2 {
		t.Fatalf("dense length = %d, want 2", n)
	}
}

type countingSystem struct{ calls int }

func (c *countingSystem) Update(*World) { c.calls++ }

func TestUpdateRunsSystemsInOrder(t *testing.T) {
	w := NewWorld()
	a := &countingSystem{}
	b := &countingSystem{}
	w.AddSystem(a)
	w.AddSystem(b)

	w.Update()
	w.Update()

	if a.calls != 2 || b.calls != 2 {
		t.Fatalf("system calls = %d/%d, want 2/2", a.calls, b.calls)
	}
}

func TestEventQueueDrainAndFrameDrop(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: "stale"})

	// Update drops anything left from the previous frame.
	w.Update()
	if got := w.Events().Drain(); got != nil {
		t.Fatalf("stale events should be dropped, got %v", got)
	}

	w.AddSystem(SystemFunc(func(w *World) {
		w.Events().Push(Event{Type: "fresh"})
	}))
	w.Update()
	got := w.Events().Drain()
	if len(got) != 1 || got[0].Type != "fresh" {
		t.Fatalf("expected one fresh event, got %v", got)
	}
}
