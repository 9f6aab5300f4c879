package world

import (
	"testing"

	"github.com/infiniworld/apocalypse-bunny/event"
	"github.com/infiniworld/apocalypse-bunny/geometry"
)

func TestOnMoveEntityRequestSetsWalkDirectionForMatchingEntity(t *testing.T) {
	bus := newTestBus()
	e := NewEntity(1, "Bunny", 1, 0.5, 10, true, bus)

	bus.Post(event.MoveEntityRequest{EntityID: e.ID, Force: geometry.New(1, 0)})
	bus.Pump()

	if e.WalkForce.V != geometry.New(10, 0) {
		t.Fatalf("expected WalkForce scaled to WalkStrength, got %+v", e.WalkForce.V)
	}
}

func TestOnMoveEntityRequestIgnoresOtherEntities(t *testing.T) {
	bus := newTestBus()
	e := NewEntity(1, "Bunny", 1, 0.5, 10, true, bus)

	bus.Post(event.MoveEntityRequest{EntityID: 99, Force: geometry.New(1, 0)})
	bus.Pump()

	if e.WalkForce.V != geometry.Zero {
		t.Fatalf("expected WalkForce untouched by a request for a different entity, got %+v", e.WalkForce.V)
	}
}
