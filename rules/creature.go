// Package rules implements the minimal simulation-rules layer on top of the
// entity/area/world model: creature health and combat, the bunny and zombie
// fox, the carrot pickup, and the entity spawner.
//
// Grounded on original_source/src/bunny/world.py. Each creature wrapper
// registers itself on the bus independently and implements its own
// OnRunPhysics handler for AI/cooldown bookkeeping, kept deliberately
// separate from world.Area's own OnRunPhysics handler (physics integration
// and collision resolution) — mirroring the original's EntityModel.runAI
// being distinct from AreaModel.runPhysics.
package rules

import (
	"github.com/infiniworld/apocalypse-bunny/event"
	"github.com/infiniworld/apocalypse-bunny/world"
)

// Creature is the common base for entities that act like living beings:
// health, a damage-immunity cooldown, and an attack cooldown. Embedded (not
// wrapped) by Bunny and ZombieFox so their own OnRunPhysics/ReactToCollision
// methods shadow Creature's where they need custom behavior, while reusing
// its health/cooldown bookkeeping directly.
type Creature struct {
	Entity *world.Entity
	World  *world.World
	Bus    *event.Bus

	MaxHealth      int
	DamageCooldown float64
	AttackCooldown float64

	health         int
	damageCooldown float64
	attackCooldown float64
}

func newCreature(e *world.Entity, w *world.World, bus *event.Bus, maxHealth int, damageCooldown, attackCooldown float64) *Creature {
	c := &Creature{
		Entity:         e,
		World:          w,
		Bus:            bus,
		MaxHealth:      maxHealth,
		DamageCooldown: damageCooldown,
		AttackCooldown: attackCooldown,
		health:         maxHealth,
	}
	e.Behavior = c
	return c
}

// area returns the Area this creature currently belongs to, or nil.
func (c *Creature) area() *world.Area {
	id, ok := c.Entity.AreaID()
	if !ok {
		return nil
	}
	return c.World.Areas[id]
}

// Die marks the creature as gone and requests its physical removal. The
// CreatureDied notification is posted strictly before the removal request,
// so anything keyed off "did my controlled creature just die" (input.PlayerController)
// still sees a live entity id when it reacts.
func (c *Creature) Die() {
	c.Entity.Exists = false
	c.Bus.Post(event.CreatureDied{EntityID: c.Entity.ID})
	c.Bus.Post(event.DestroyEntityRequest{EntityID: c.Entity.ID})
}

// SetHealth clamps health to [0, MaxHealth], posts a Health event if it
// changed, and kills the creature if it reached zero.
func (c *Creature) SetHealth(health int) {
	old := c.health
	c.health = health
	if c.health < 0 {
		c.health = 0
	}
	if c.health > c.MaxHealth {
		c.health = c.MaxHealth
	}
	if c.health == old {
		return
	}
	c.Bus.Post(event.Health{EntityID: c.Entity.ID, Amount: c.health})
	if c.health == 0 {
		c.Die()
	}
}

func (c *Creature) ChangeHealth(offset int) { c.SetHealth(c.health + offset) }

// tickCooldowns decays both cooldown timers toward zero by dt, never below.
func (c *Creature) tickCooldowns(dt float64) {
	c.damageCooldown -= dt
	if c.damageCooldown < 0 {
		c.damageCooldown = 0
	}
	c.attackCooldown -= dt
	if c.attackCooldown < 0 {
		c.attackCooldown = 0
	}
}

// ReactToCollision is the default no-op: most creatures don't care who
// bumps into them.
func (c *Creature) ReactToCollision(_ *world.Entity) {}

// OnRunPhysics decays the creature's cooldowns. Creatures with
// their own AI (ZombieFox) shadow this method entirely.
func (c *Creature) OnRunPhysics(ev event.RunPhysics) {
	if _, ok := c.Entity.AreaID(); !ok {
		return
	}
	c.tickCooldowns(ev.Timestep)
}

func (c *Creature) OnHealthRequest(ev event.HealthRequest) {
	if ev.EntityID == c.Entity.ID {
		c.Bus.Post(event.Health{EntityID: c.Entity.ID, Amount: c.health})
	}
}

func (c *Creature) OnAttack(ev event.Attack) {
	if ev.Victim != c.Entity.ID {
		return
	}
	if c.damageCooldown == 0 {
		c.damageCooldown = c.DamageCooldown
		c.ChangeHealth(-1)
	}
}
