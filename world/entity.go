// Package world implements the entity/area/world model: entity lifecycle,
// area membership, the chunk-based spatial index, and the per-step
// integration/collision resolution cycle.
//
// Grounded on original_source/src/infiniworld/models/{entity,area,entitymap,
// world,errors,materials}.py.
package world

import (
	"github.com/infiniworld/apocalypse-bunny/event"
	"github.com/infiniworld/apocalypse-bunny/geometry"
	"github.com/infiniworld/apocalypse-bunny/physics"
	"github.com/infiniworld/apocalypse-bunny/tile"
)

// EntityBehavior is the hook an entity's simulation-rules wrapper
// (Bunny, ZombieFox, Carrot, ...) implements to react to being collided
// with. It mirrors the duck-typed reactToCollision method of the donor
// source's EntityModel hierarchy; the base Entity itself is behaviorless.
type EntityBehavior interface {
	ReactToCollision(collider *Entity)
}

// Entity is any moving circular body in the world. Name, mass, radius and
// walk strength are fixed by entity kind at construction time. Exists=false
// is a tombstone: the entity is ignored by iteration until the subsequent
// DestroyEntityRequest physically removes it, which lets physics and AI code
// run safely against an entity mid-destruction.
type Entity struct {
	ID            uint32
	Name          string
	Body          physics.CircularBody
	WalkForce     *physics.ConstantForce
	FrictionForce *physics.KineticFrictionForce
	WalkStrength  float64
	Exists        bool
	IsMoving      bool
	Age           float64

	areaID  uint32
	hasArea bool

	// Behavior is set by the simulation-rules layer after construction; it
	// may be nil for entities that never react to being touched.
	Behavior EntityBehavior

	bus *event.Bus
}

// AreaID returns the entity's current area and whether it is in any area.
func (e *Entity) AreaID() (uint32, bool) { return e.areaID, e.hasArea }

func (e *Entity) Summary() event.EntitySummary {
	areaID, _ := e.AreaID()
	return event.EntitySummary{
		EntityID: e.ID,
		Name:     e.Name,
		AreaID:   areaID,
		Pos:      e.Body.Position,
	}
}

// NewEntity constructs a fresh entity and registers it with bus so it can
// hear its own MoveEntityRequest. mass, radius and walkStrength are the
// per-kind constants from the simulation rules layer (spec.md section 4.7).
func NewEntity(id uint32, name string, mass, radius, walkStrength float64, solid bool, bus *event.Bus) *Entity {
	walk := &physics.ConstantForce{}
	friction := &physics.KineticFrictionForce{}
	e := &Entity{
		ID:            id,
		Name:          name,
		WalkForce:     walk,
		FrictionForce: friction,
		WalkStrength:  walkStrength,
		Exists:        true,
		bus:           bus,
	}
	e.Body = physics.CircularBody{
		Body: physics.Body{
			Mass:     mass,
			Solid:    solid,
			Material: tile.Materials[tile.NatureFlesh],
			Forces:   []physics.Force{walk, friction},
		},
		Radius: radius,
	}
	event.Register(bus, e)
	return e
}

// SetWalkDirection points the entity's walk force along unit (which need not
// be normalized; a zero vector stops it), scaled by the entity's own
// WalkStrength.
func (e *Entity) SetWalkDirection(unit geometry.Vector2) {
	e.WalkForce.V = unit.Scale(e.WalkStrength)
}

// OnMoveEntityRequest applies ev's walk direction to this entity's own walk
// force if the request names it. Grounded on
// original_source/src/infiniworld/models/entity.py's EntityModel.onMoveEntityRequest.
func (e *Entity) OnMoveEntityRequest(ev event.MoveEntityRequest) {
	if ev.EntityID != e.ID {
		return
	}
	e.SetWalkDirection(ev.Force)
}
