package rules

import (
	"github.com/infiniworld/apocalypse-bunny/event"
	"github.com/infiniworld/apocalypse-bunny/world"
)

const (
	CarrotMass   = 1
	CarrotRadius = 0.5
)

// Carrot is a non-solid pickup: a bunny that bumps into one eats it,
// gaining a point of health and one attack charge.
type Carrot struct {
	Entity *world.Entity
	Bus    *event.Bus
}

// NewCarrot constructs a non-solid carrot entity and its rules wrapper.
func NewCarrot(id uint32, bus *event.Bus) *world.Entity {
	e := world.NewEntity(id, "Carrot", CarrotMass, CarrotRadius, 0, false, bus)
	c := &Carrot{Entity: e, Bus: bus}
	e.Behavior = c
	return e
}

// ReactToCollision is only invoked for touching entities regardless of
// solidity (see world.Area.RunPhysics), which is how a non-solid carrot
// still notices a bunny walking through it.
func (c *Carrot) ReactToCollision(collider *world.Entity) {
	if collider.Name != "Bunny" {
		return
	}
	bunny, ok := collider.Behavior.(*Bunny)
	if !ok {
		return
	}
	c.Entity.Exists = false
	c.Bus.Post(event.DestroyEntityRequest{EntityID: c.Entity.ID})
	bunny.giveCarrot()
	bunny.ChangeHealth(1)
	c.Bus.Post(event.StatusText{Text: "Om nom nom!"})
}
