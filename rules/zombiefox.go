package rules

import (
	"math"
	"math/rand"
	"sort"

	"github.com/infiniworld/apocalypse-bunny/event"
	"github.com/infiniworld/apocalypse-bunny/geometry"
	"github.com/infiniworld/apocalypse-bunny/world"
)

const (
	ZombieFoxMass         = 3
	ZombieFoxRadius       = 0.5
	ZombieFoxWalkStrength = 30
	ZombieFoxMaxHealth    = 1
	// ZombieFoxPerceptionRadius is how far a fox can spot a bunny.
	ZombieFoxPerceptionRadius = 4
	// ZombieFoxAttackRadiusFactor scales (foxRadius+bunnyRadius) up, so the
	// fox bites slightly before the bodies actually touch.
	ZombieFoxAttackRadiusFactor = 1.1
	// ZombieFoxChangeDirectionCooldown bounds how long a fox wanders in one
	// random direction before picking a new one.
	ZombieFoxChangeDirectionCooldown = 2
)

// zombieFoxAttackRadius is (ZombieFoxRadius+BunnyRadius)*1.1, matching
// ZombieFoxModel.ATTACK_RADIUS's dependency on BunnyModel.BODY_RADIUS.
var zombieFoxAttackRadius = (ZombieFoxRadius + BunnyRadius) * ZombieFoxAttackRadiusFactor

// ZombieFox is the roaming enemy: it wanders randomly until a bunny comes
// into perception range, then charges and bites.
type ZombieFox struct {
	*Creature
	rng                    *rand.Rand
	changeDirectionCooldown float64
}

// NewZombieFox constructs a zombie fox entity and its rules wrapper. seed
// drives the fox's own random-walk generator so runs stay reproducible
// given the same world seed and spawn order.
func NewZombieFox(id uint32, w *world.World, bus *event.Bus, seed int64) *world.Entity {
	e := world.NewEntity(id, "Zombie fox", ZombieFoxMass, ZombieFoxRadius, ZombieFoxWalkStrength, true, bus)
	z := &ZombieFox{
		Creature: newCreature(e, w, bus, ZombieFoxMaxHealth, 0.5, 0.5),
		rng:      rand.New(rand.NewSource(seed)),
	}
	e.Behavior = z
	event.Register(bus, z)
	return e
}

func (z *ZombieFox) randomWalk() {
	z.changeDirectionCooldown = ZombieFoxChangeDirectionCooldown * (0.8 + 0.4*z.rng.Float64())
	angle := z.rng.Float64() * 2 * math.Pi
	z.Entity.WalkForce.V = geometry.FromDirection(angle, ZombieFoxWalkStrength)
}

// OnRunPhysics shadows Creature.OnRunPhysics entirely: besides the shared
// cooldown bookkeeping, a fox hunts the nearest bunny in range, biting it
// if close enough and off cooldown, chasing it otherwise, or wandering
// randomly if none is in perception range.
func (z *ZombieFox) OnRunPhysics(ev event.RunPhysics) {
	if _, ok := z.Entity.AreaID(); !ok {
		return
	}
	z.tickCooldowns(ev.Timestep)

	z.changeDirectionCooldown -= ev.Timestep
	if z.changeDirectionCooldown < 0 {
		z.changeDirectionCooldown = 0
	}

	area := z.area()
	if area == nil {
		return
	}
	nearby := area.EntitiesNear(z.Entity.Body.Position, ZombieFoxPerceptionRadius)
	var bunnies []*world.Entity
	for _, e := range nearby {
		if e.Exists && e.Name == "Bunny" {
			bunnies = append(bunnies, e)
		}
	}
	if len(bunnies) == 0 {
		if z.changeDirectionCooldown == 0 {
			z.randomWalk()
		}
		return
	}
	sort.Slice(bunnies, func(i, j int) bool {
		return bunnies[i].Body.Position.Dist(z.Entity.Body.Position) < bunnies[j].Body.Position.Dist(z.Entity.Body.Position)
	})
	bunny := bunnies[0]
	distance := bunny.Body.Position.Dist(z.Entity.Body.Position)
	direction := bunny.Body.Position.Sub(z.Entity.Body.Position).Normalize()

	if distance <= zombieFoxAttackRadius && z.attackCooldown == 0 {
		z.attackCooldown = z.AttackCooldown
		z.Entity.WalkForce.V = geometry.Zero
		z.Bus.Post(event.Attack{Attacker: z.Entity.ID, Victim: bunny.ID})
	} else {
		z.Entity.WalkForce.V = direction.Scale(ZombieFoxWalkStrength)
	}
}
