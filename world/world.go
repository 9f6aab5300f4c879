package world

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/infiniworld/apocalypse-bunny/event"
)

// nextID returns the previous/next element of the sorted slice ids relative
// to current, wrapping around at the ends. If current isn't present (or
// hasCurrent is false), it returns the first id. An empty ids returns
// (0, false). Grounded on world.py's nextThing.
func nextID(ids []uint32, current uint32, hasCurrent bool, offset int) (uint32, bool) {
	if len(ids) == 0 {
		return 0, false
	}
	idx := -1
	if hasCurrent {
		for i, id := range ids {
			if id == current {
				idx = i
				break
			}
		}
	}
	if idx == -1 {
		return ids[0], true
	}
	n := len(ids)
	idx = ((idx+offset)%n + n) % n
	return ids[idx], true
}

// EntityFactory builds a fresh rules-layer entity of a given kind. The
// rules package registers one factory per creature kind with the world at
// startup, which keeps World free of any dependency on the rules package.
type EntityFactory func(id uint32) *Entity

// World is the unique, authoritative top-level container: every area and
// every entity in the simulation lives here. Grounded on
// original_source/src/infiniworld/models/world.py's WorldModel.
type World struct {
	nextEntityID uint32
	nextAreaID   uint32

	Entities map[uint32]*Entity
	Areas    map[uint32]*Area

	factories map[string]EntityFactory

	controlledEntityID  uint32
	hasControlledEntity bool
	viewedAreaID        uint32
	hasViewedArea       bool

	bus *event.Bus
	log *slog.Logger
}

func NewWorld(bus *event.Bus) *World {
	w := &World{
		Entities:  make(map[uint32]*Entity),
		Areas:     make(map[uint32]*Area),
		factories: make(map[string]EntityFactory),
		bus:       bus,
		log:       slog.Default().With("module", "world"),
	}
	event.Register(bus, w)
	return w
}

// RegisterEntityFactory binds a creature kind name to its constructor. Must
// be called (by the rules package) before CreateEntity is used with that kind.
func (w *World) RegisterEntityFactory(kind string, factory EntityFactory) {
	w.factories[kind] = factory
}

// CreateArea adds a fresh, empty area to the world.
func (w *World) CreateArea() *Area {
	id := w.nextAreaID
	w.nextAreaID++
	a := NewArea(id, w.bus)
	w.Areas[id] = a
	w.bus.Post(event.AreaCreated{AreaID: id})
	return a
}

// CreateEntity builds a new entity of the given kind via its registered
// factory and adds it to the world (but not yet to any area).
func (w *World) CreateEntity(kind string) (*Entity, error) {
	factory, ok := w.factories[kind]
	if !ok {
		return nil, fmt.Errorf("world: no entity factory registered for kind %q", kind)
	}
	id := w.nextEntityID
	w.nextEntityID++
	e := factory(id)
	w.Entities[id] = e
	w.bus.Post(event.EntityCreated{EntityID: id})
	return e, nil
}

// DestroyEntity removes entity from the world permanently: it leaves its
// area (if any), is marked nonexistent, and an EntityDestroyed event fires.
func (w *World) DestroyEntity(entity *Entity) {
	delete(w.Entities, entity.ID)
	if areaID, ok := entity.AreaID(); ok {
		if area, ok := w.Areas[areaID]; ok {
			_ = area.RemoveEntity(entity)
		}
	}
	entity.Exists = false
	w.bus.Post(event.EntityDestroyed{EntityID: entity.ID})
}

// MoveEntityToArea transfers entity to areaID (removing it from its current
// area first, if any) and posts EntityLeftArea/EntityEnteredArea through the
// areas themselves. hasArea=false moves the entity out of every area.
func (w *World) MoveEntityToArea(entityID uint32, areaID uint32, hasArea bool) error {
	entity, ok := w.Entities[entityID]
	if !ok {
		return ErrNoSuchEntity
	}
	oldAreaID, hadArea := entity.AreaID()
	if hadArea && hasArea && oldAreaID == areaID {
		return nil
	}
	if hadArea {
		area, ok := w.Areas[oldAreaID]
		if !ok {
			return ErrNoSuchArea
		}
		if err := area.RemoveEntity(entity); err != nil {
			return err
		}
	}
	if hasArea {
		area, ok := w.Areas[areaID]
		if !ok {
			return ErrNoSuchArea
		}
		if err := area.AddEntity(entity); err != nil {
			return err
		}
	}
	w.log.Debug("entity moved to area", "entity", entityID, "area", areaID, "has_area", hasArea)
	return nil
}

// NextEntity returns the previous/next existing entity id relative to
// current, wrapping around. hasCurrent=false starts from the first entity.
func (w *World) NextEntity(current uint32, hasCurrent bool, offset int) (uint32, bool) {
	return nextID(sortedEntityIDs(w.Entities), current, hasCurrent, offset)
}

// NextArea returns the previous/next area id relative to current, wrapping
// around.
func (w *World) NextArea(current uint32, hasCurrent bool, offset int) (uint32, bool) {
	ids := make([]uint32, 0, len(w.Areas))
	for id := range w.Areas {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return nextID(ids, current, hasCurrent, offset)
}

func (w *World) OnDestroyEntityRequest(ev event.DestroyEntityRequest) {
	entity, ok := w.Entities[ev.EntityID]
	if !ok {
		return
	}
	w.DestroyEntity(entity)
}

func (w *World) OnCreateAreaCommand(_ event.CreateAreaCommand) {
	w.CreateArea()
}

func (w *World) OnCreateEntityCommand(ev event.CreateEntityCommand) {
	if _, err := w.CreateEntity(ev.Kind); err != nil {
		w.log.Warn("create entity command failed", "kind", ev.Kind, "error", err)
	}
}

func (w *World) OnEntitySummaryRequest(ev event.EntitySummaryRequest) {
	entity, ok := w.Entities[ev.EntityID]
	if !ok {
		return
	}
	w.bus.Post(event.EntitySummaryEvent{Summary: entity.Summary()})
}

// OnControlEntityEvent tracks which entity is currently player-controlled,
// so ControlNextEntityCommand and MoveEntityToNextAreaCommand know where to
// cycle from.
func (w *World) OnControlEntityEvent(ev event.ControlEntityEvent) {
	w.controlledEntityID = ev.EntityID
	w.hasControlledEntity = true
}

// viewArea updates the debug-followed area by offset and re-requests its
// content so the renderer refreshes onto it.
func (w *World) viewArea(offset int) {
	next, ok := w.NextArea(w.viewedAreaID, w.hasViewedArea, offset)
	if !ok {
		return
	}
	w.viewedAreaID = next
	w.hasViewedArea = true
	w.bus.Post(event.AreaContentRequest{AreaID: next})
}

func (w *World) OnViewNextAreaCommand(_ event.ViewNextAreaCommand) { w.viewArea(1) }

func (w *World) OnViewPreviousAreaCommand(_ event.ViewPreviousAreaCommand) { w.viewArea(-1) }

func (w *World) OnControlNextEntityCommand(_ event.ControlNextEntityCommand) {
	next, ok := w.NextEntity(w.controlledEntityID, w.hasControlledEntity, 1)
	if !ok {
		return
	}
	w.bus.Post(event.ControlEntityEvent{EntityID: next})
}

func (w *World) OnMoveEntityToNextAreaCommand(_ event.MoveEntityToNextAreaCommand) {
	if !w.hasControlledEntity {
		return
	}
	entity, ok := w.Entities[w.controlledEntityID]
	if !ok {
		return
	}
	currentAreaID, hasArea := entity.AreaID()
	nextAreaID, ok := w.NextArea(currentAreaID, hasArea, 1)
	if !ok {
		return
	}
	if err := w.MoveEntityToArea(w.controlledEntityID, nextAreaID, true); err != nil {
		w.log.Warn("move entity to next area failed", "entity", w.controlledEntityID, "error", err)
	}
}
