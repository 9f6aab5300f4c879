package rules

import (
	"math"

	"github.com/infiniworld/apocalypse-bunny/event"
	"github.com/infiniworld/apocalypse-bunny/world"
)

const (
	BunnyMass         = 1
	BunnyRadius       = 0.3
	BunnyWalkStrength = 50
	BunnyMaxHealth    = 10
	BunnyDamageCooldown = 0.5
	BunnyAttackCooldown = 0.3

	// ShockwavePerceptionRadius is how far a bunny's psy-wave attack reaches.
	ShockwavePerceptionRadius = 8
	// ShockwaveImpulseMax caps the pushback imparted to any one target, and
	// is also the threshold (at 60% of it) above which the target is
	// considered hurt by the blast.
	ShockwaveImpulseMax = 20
	// ShockwaveHurtFraction is the fraction of ShockwaveImpulseMax an
	// impulse must reach to count as an attack rather than just a shove.
	ShockwaveHurtFraction = 0.6
	// ShockwaveBaseStrength is the constant in the inverse-sqrt-distance
	// impulse formula.
	ShockwaveBaseStrength = 60
)

// Bunny is the player-controlled hero: it collects carrots and spends them
// on an area-of-effect shockwave attack.
type Bunny struct {
	*Creature
	Carrots int
}

// NewBunny constructs a bunny entity and its rules wrapper, registering the
// wrapper with both the world (as the entity's collision reaction target)
// and the bus (for attack requests and physics ticks).
func NewBunny(id uint32, w *world.World, bus *event.Bus) *world.Entity {
	e := world.NewEntity(id, "Bunny", BunnyMass, BunnyRadius, BunnyWalkStrength, true, bus)
	b := &Bunny{Creature: newCreature(e, w, bus, BunnyMaxHealth, BunnyDamageCooldown, BunnyAttackCooldown)}
	e.Behavior = b
	event.Register(bus, b)
	return e
}

func (b *Bunny) setCarrots(value int) {
	b.Carrots = value
	b.Bus.Post(event.Carrot{Amount: b.Carrots})
}

func (b *Bunny) giveCarrot() { b.setCarrots(b.Carrots + 1) }

// OnAttackRequest fires the bunny's shockwave: every existing solid entity
// within ShockwavePerceptionRadius is shoved away from the bunny by an
// impulse that falls off with the square root of distance, capped at
// ShockwaveImpulseMax; any target shoved hard enough also takes an Attack.
func (b *Bunny) OnAttackRequest(ev event.AttackRequest) {
	if ev.Attacker != b.Entity.ID {
		return
	}
	if b.attackCooldown > 0 {
		b.Bus.Post(event.StatusText{Text: "Too soon!"})
		return
	}
	if b.Carrots == 0 {
		b.Bus.Post(event.StatusText{Text: "Not enough carrots!"})
		return
	}
	b.attackCooldown = b.AttackCooldown
	b.Bus.Post(event.StatusText{Text: "Psy-wave!"})
	b.Bus.Post(event.ShockWave{EntityID: b.Entity.ID})
	b.setCarrots(b.Carrots - 1)

	area := b.area()
	if area == nil {
		return
	}
	for _, other := range area.EntitiesNear(b.Entity.Body.Position, ShockwavePerceptionRadius) {
		if other.ID == b.Entity.ID || !other.Exists || !other.Body.Solid {
			continue
		}
		diff := other.Body.Position.Sub(b.Entity.Body.Position)
		dist := diff.Norm()
		var magnitude float64
		if dist == 0 {
			magnitude = ShockwaveImpulseMax
		} else {
			magnitude = ShockwaveBaseStrength * other.Body.OneOverMass() / math.Sqrt(dist)
			if magnitude > ShockwaveImpulseMax {
				magnitude = ShockwaveImpulseMax
			}
		}
		impulse := diff.Normalize().Scale(magnitude)
		other.Body.Velocity = other.Body.Velocity.Add(impulse)
		if impulse.Norm() >= ShockwaveImpulseMax*ShockwaveHurtFraction {
			b.Bus.Post(event.Attack{Attacker: b.Entity.ID, Victim: other.ID})
		}
	}
}

// ReactToCollision lets CarrotModel-equivalent pickups react to being
// bumped by shadowing Creature's no-op default; Bunny itself has nothing
// special to do when it bumps something, so it keeps the default.
