package world

import (
	"testing"

	"github.com/infiniworld/apocalypse-bunny/event"
)

func newTestWorld() (*World, *event.Bus) {
	bus := newTestBus()
	return NewWorld(bus), bus
}

func registerBunnyFactory(w *World, bus *event.Bus) {
	w.RegisterEntityFactory("Bunny", func(id uint32) *Entity {
		return NewEntity(id, "Bunny", 1, 0.5, 10, true, bus)
	})
}

func TestCreateEntityUnknownKindFails(t *testing.T) {
	w, _ := newTestWorld()
	if _, err := w.CreateEntity("Nonexistent"); err == nil {
		t.Fatal("expected an error for an unregistered entity kind")
	}
}

func TestCreateEntityAssignsSequentialIDs(t *testing.T) {
	w, bus := newTestWorld()
	registerBunnyFactory(w, bus)

	first, err := w.CreateEntity("Bunny")
	if err != nil {
		t.Fatalf("CreateEntity: %v", err)
	}
	second, err := w.CreateEntity("Bunny")
	if err != nil {
		t.Fatalf("CreateEntity: %v", err)
	}
	if first.ID != 0 || second.ID != 1 {
		t.Fatalf("expected ids 0 then 1, got %d then %d", first.ID, second.ID)
	}
	if len(w.Entities) != 2 {
		t.Fatalf("expected 2 entities tracked, got %d", len(w.Entities))
	}
}

func TestMoveEntityToAreaTransfersMembership(t *testing.T) {
	w, bus := newTestWorld()
	registerBunnyFactory(w, bus)
	a1 := w.CreateArea()
	a2 := w.CreateArea()
	e, _ := w.CreateEntity("Bunny")

	if err := w.MoveEntityToArea(e.ID, a1.ID, true); err != nil {
		t.Fatalf("move into a1: %v", err)
	}
	if id, ok := e.AreaID(); !ok || id != a1.ID {
		t.Fatalf("expected entity in area %d, got %d (ok=%v)", a1.ID, id, ok)
	}

	if err := w.MoveEntityToArea(e.ID, a2.ID, true); err != nil {
		t.Fatalf("move into a2: %v", err)
	}
	if id, ok := e.AreaID(); !ok || id != a2.ID {
		t.Fatalf("expected entity in area %d, got %d (ok=%v)", a2.ID, id, ok)
	}
	if _, ok := a1.entities[e.ID]; ok {
		t.Fatal("entity should no longer be tracked by its previous area")
	}
}

func TestMoveEntityToAreaUnknownEntity(t *testing.T) {
	w, _ := newTestWorld()
	a := w.CreateArea()
	if err := w.MoveEntityToArea(999, a.ID, true); err != ErrNoSuchEntity {
		t.Fatalf("expected ErrNoSuchEntity, got %v", err)
	}
}

func TestDestroyEntityRemovesFromWorldAndArea(t *testing.T) {
	w, bus := newTestWorld()
	registerBunnyFactory(w, bus)
	a := w.CreateArea()
	e, _ := w.CreateEntity("Bunny")
	_ = w.MoveEntityToArea(e.ID, a.ID, true)

	w.DestroyEntity(e)

	if _, ok := w.Entities[e.ID]; ok {
		t.Fatal("destroyed entity should be removed from World.Entities")
	}
	if _, ok := a.entities[e.ID]; ok {
		t.Fatal("destroyed entity should be removed from its area")
	}
	if e.Exists {
		t.Fatal("destroyed entity should be marked Exists=false")
	}
}

func TestNextEntityWrapsAround(t *testing.T) {
	w, bus := newTestWorld()
	registerBunnyFactory(w, bus)
	a, _ := w.CreateEntity("Bunny")
	b, _ := w.CreateEntity("Bunny")

	id, ok := w.NextEntity(a.ID, true, 1)
	if !ok || id != b.ID {
		t.Fatalf("expected to advance to %d, got %d (ok=%v)", b.ID, id, ok)
	}
	id, ok = w.NextEntity(b.ID, true, 1)
	if !ok || id != a.ID {
		t.Fatalf("expected to wrap back to %d, got %d (ok=%v)", a.ID, id, ok)
	}
}

func TestNextEntityNoEntities(t *testing.T) {
	w, _ := newTestWorld()
	if _, ok := w.NextEntity(0, false, 1); ok {
		t.Fatal("expected ok=false with no entities in the world")
	}
}

func TestOnControlNextEntityCommandCyclesAndAnnounces(t *testing.T) {
	w, bus := newTestWorld()
	registerBunnyFactory(w, bus)
	a, _ := w.CreateEntity("Bunny")
	b, _ := w.CreateEntity("Bunny")

	bus.Post(event.ControlEntityEvent{EntityID: a.ID})
	bus.Pump()

	var got []uint32
	watcher := &controlWatcher{onEvent: func(ev event.ControlEntityEvent) { got = append(got, ev.EntityID) }}
	event.Register(bus, watcher)

	bus.Post(event.ControlNextEntityCommand{})
	bus.Pump()

	if len(got) != 1 || got[0] != b.ID {
		t.Fatalf("expected ControlEntityEvent for %d, got %+v", b.ID, got)
	}
}

type controlWatcher struct {
	onEvent func(event.ControlEntityEvent)
}

func (w *controlWatcher) OnControlEntityEvent(ev event.ControlEntityEvent) { w.onEvent(ev) }

func TestOnViewNextAreaCommandRepostsAreaContentRequest(t *testing.T) {
	w, bus := newTestWorld()
	w.CreateArea()
	w.CreateArea()

	var got []uint32
	watcher := &areaRequestWatcher{onEvent: func(ev event.AreaContentRequest) { got = append(got, ev.AreaID) }}
	event.Register(bus, watcher)

	bus.Post(event.ViewNextAreaCommand{})
	bus.Pump()

	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected the first ViewNextAreaCommand to request area 0, got %+v", got)
	}

	bus.Post(event.ViewNextAreaCommand{})
	bus.Pump()
	if len(got) != 2 || got[1] != 1 {
		t.Fatalf("expected the second ViewNextAreaCommand to advance to area 1, got %+v", got)
	}
}

type areaRequestWatcher struct {
	onEvent func(event.AreaContentRequest)
}

func (w *areaRequestWatcher) OnAreaContentRequest(ev event.AreaContentRequest) {
	w.onEvent(ev)
}

func TestOnMoveEntityToNextAreaCommandMovesTheControlledEntity(t *testing.T) {
	w, bus := newTestWorld()
	registerBunnyFactory(w, bus)
	a1 := w.CreateArea()
	a2 := w.CreateArea()
	e, _ := w.CreateEntity("Bunny")
	_ = w.MoveEntityToArea(e.ID, a1.ID, true)

	bus.Post(event.ControlEntityEvent{EntityID: e.ID})
	bus.Post(event.MoveEntityToNextAreaCommand{})
	bus.Pump()

	if id, ok := e.AreaID(); !ok || id != a2.ID {
		t.Fatalf("expected the controlled entity to move to area %d, got %d (ok=%v)", a2.ID, id, ok)
	}
}
