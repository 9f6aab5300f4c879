package rules

import (
	"testing"

	"github.com/infiniworld/apocalypse-bunny/event"
	"github.com/infiniworld/apocalypse-bunny/geometry"
	"github.com/infiniworld/apocalypse-bunny/tile"
	"github.com/infiniworld/apocalypse-bunny/world"
)

// newTestWorld builds a world with a bunny and zombie fox factory registered,
// and one area, so creature wrappers can be placed and collide.
func newTestWorld(bus *event.Bus) (*world.World, *world.Area) {
	w := world.NewWorld(bus)
	w.RegisterEntityFactory("Bunny", func(id uint32) *world.Entity { return NewBunny(id, w, bus) })
	w.RegisterEntityFactory("Zombie fox", func(id uint32) *world.Entity { return NewZombieFox(id, w, bus, 1) })
	w.RegisterEntityFactory("Carrot", func(id uint32) *world.Entity { return NewCarrot(id, bus) })
	a := w.CreateArea()
	return w, a
}

func TestCreatureHealthClampsAndDies(t *testing.T) {
	bus := event.NewBus()
	w, a := newTestWorld(bus)
	e, _ := w.CreateEntity("Zombie fox")
	_ = w.MoveEntityToArea(e.ID, a.ID, true)
	fox := e.Behavior.(*ZombieFox)

	died := &deathWatcher{}
	event.Register(bus, died)

	fox.ChangeHealth(-5) // ZombieFoxMaxHealth is 1, so health clamps at 0 and the fox dies
	bus.Pump()

	if fox.health != 0 {
		t.Fatalf("expected health clamped to 0, got %d", fox.health)
	}
	if died.count != 1 || died.last != e.ID {
		t.Fatalf("expected one CreatureDied for entity %d, got count=%d last=%d", e.ID, died.count, died.last)
	}
	if e.Exists {
		t.Fatal("expected the fox entity to be marked nonexistent once dead")
	}
}

func TestCreatureHealthClampsToMax(t *testing.T) {
	bus := event.NewBus()
	w, a := newTestWorld(bus)
	e, _ := w.CreateEntity("Bunny")
	_ = w.MoveEntityToArea(e.ID, a.ID, true)
	bunny := e.Behavior.(*Bunny)

	bunny.ChangeHealth(1000)
	bus.Pump()
	if bunny.health != BunnyMaxHealth {
		t.Fatalf("expected health clamped to %d, got %d", BunnyMaxHealth, bunny.health)
	}
}

func TestCarrotPickupGivesHealthAndCharge(t *testing.T) {
	bus := event.NewBus()
	w, a := newTestWorld(bus)

	bunnyEnt, _ := w.CreateEntity("Bunny")
	bunnyEnt.Body.Position = geometry.Zero
	_ = w.MoveEntityToArea(bunnyEnt.ID, a.ID, true)
	bunny := bunnyEnt.Behavior.(*Bunny)
	bunny.SetHealth(BunnyMaxHealth - 5)

	carrotEnt, _ := w.CreateEntity("Carrot")
	carrotEnt.Body.Position = geometry.Zero
	_ = w.MoveEntityToArea(carrotEnt.ID, a.ID, true)

	carrot := carrotEnt.Behavior.(*Carrot)
	carrot.ReactToCollision(bunnyEnt)

	if bunny.Carrots != 1 {
		t.Fatalf("expected bunny to gain one carrot, got %d", bunny.Carrots)
	}
	if bunny.health != BunnyMaxHealth-4 {
		t.Fatalf("expected health to rise by one, got %d", bunny.health)
	}
	if carrotEnt.Exists {
		t.Fatal("expected the carrot to be consumed")
	}
}

func TestCarrotIgnoresNonBunnyCollider(t *testing.T) {
	bus := event.NewBus()
	w, a := newTestWorld(bus)

	foxEnt, _ := w.CreateEntity("Zombie fox")
	_ = w.MoveEntityToArea(foxEnt.ID, a.ID, true)

	carrotEnt, _ := w.CreateEntity("Carrot")
	_ = w.MoveEntityToArea(carrotEnt.ID, a.ID, true)
	carrot := carrotEnt.Behavior.(*Carrot)

	carrot.ReactToCollision(foxEnt)

	if !carrotEnt.Exists {
		t.Fatal("expected the carrot to survive a collision with a non-bunny entity")
	}
}

func TestBunnyAttackRequiresCarrots(t *testing.T) {
	bus := event.NewBus()
	w, a := newTestWorld(bus)
	e, _ := w.CreateEntity("Bunny")
	_ = w.MoveEntityToArea(e.ID, a.ID, true)
	bunny := e.Behavior.(*Bunny)

	status := &statusWatcher{}
	event.Register(bus, status)

	bus.Post(event.AttackRequest{Attacker: e.ID})
	bus.Pump()

	if status.last != "Not enough carrots!" {
		t.Fatalf("expected a no-carrots status message, got %q", status.last)
	}
	_ = bunny
}

func TestBunnyShockwavePushesNearbyEntities(t *testing.T) {
	bus := event.NewBus()
	w, a := newTestWorld(bus)

	bunnyEnt, _ := w.CreateEntity("Bunny")
	bunnyEnt.Body.Position = geometry.Zero
	_ = w.MoveEntityToArea(bunnyEnt.ID, a.ID, true)
	bunny := bunnyEnt.Behavior.(*Bunny)
	bunny.setCarrots(1)

	foxEnt, _ := w.CreateEntity("Zombie fox")
	foxEnt.Body.Position = geometry.New(1, 0)
	_ = w.MoveEntityToArea(foxEnt.ID, a.ID, true)

	bus.Post(event.AttackRequest{Attacker: bunnyEnt.ID})
	bus.Pump()

	if foxEnt.Body.Velocity.X <= 0 {
		t.Fatalf("expected the shockwave to push the fox away (positive X velocity), got %+v", foxEnt.Body.Velocity)
	}
	if bunny.Carrots != 0 {
		t.Fatalf("expected the shockwave to spend the bunny's one carrot, got %d remaining", bunny.Carrots)
	}
}

func TestZombieFoxBitesWithinAttackRadius(t *testing.T) {
	bus := event.NewBus()
	w, a := newTestWorld(bus)

	bunnyEnt, _ := w.CreateEntity("Bunny")
	bunnyEnt.Body.Position = geometry.Zero
	_ = w.MoveEntityToArea(bunnyEnt.ID, a.ID, true)

	foxEnt, _ := w.CreateEntity("Zombie fox")
	foxEnt.Body.Position = geometry.New(zombieFoxAttackRadius*0.5, 0)
	_ = w.MoveEntityToArea(foxEnt.ID, a.ID, true)
	fox := foxEnt.Behavior.(*ZombieFox)

	attacked := &attackWatcher{}
	event.Register(bus, attacked)

	fox.OnRunPhysics(event.RunPhysics{Timestep: 1.0 / 20})
	bus.Pump()

	if len(attacked.attacks) != 1 || attacked.attacks[0].Victim != bunnyEnt.ID {
		t.Fatalf("expected one Attack against the bunny, got %+v", attacked.attacks)
	}
}

func TestZombieFoxWandersWithoutABunnyNearby(t *testing.T) {
	bus := event.NewBus()
	w, a := newTestWorld(bus)

	foxEnt, _ := w.CreateEntity("Zombie fox")
	foxEnt.Body.Position = geometry.Zero
	_ = w.MoveEntityToArea(foxEnt.ID, a.ID, true)
	fox := foxEnt.Behavior.(*ZombieFox)

	fox.OnRunPhysics(event.RunPhysics{Timestep: 1.0 / 20})

	if foxEnt.WalkForce.V.NormSq() == 0 {
		t.Fatal("expected a wandering fox to pick some nonzero walk direction")
	}
}

func TestSpawnerCreatesEntitiesOverTime(t *testing.T) {
	bus := event.NewBus()
	w, a := newTestWorld(bus)

	coords := []tile.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}}
	s := NewSpawner(a, w, bus, coords, "Carrot", 1, 42)

	s.OnRunPhysics(event.RunPhysics{Timestep: 2.5})

	if len(w.Entities) != 2 {
		t.Fatalf("expected 2.5 periods to spawn 2 entities, got %d", len(w.Entities))
	}
}

func TestSpawnerStopsAfterGameOver(t *testing.T) {
	bus := event.NewBus()
	w, a := newTestWorld(bus)

	coords := []tile.Coord{{X: 0, Y: 0}}
	s := NewSpawner(a, w, bus, coords, "Carrot", 1, 42)

	bus.Post(event.GameOver{})
	bus.Pump()

	s.OnRunPhysics(event.RunPhysics{Timestep: 5})

	if len(w.Entities) != 0 {
		t.Fatalf("expected a spawner to stop creating entities after GameOver, got %d entities", len(w.Entities))
	}
}

type deathWatcher struct {
	count int
	last  uint32
}

func (d *deathWatcher) OnCreatureDied(ev event.CreatureDied) {
	d.count++
	d.last = ev.EntityID
}

type statusWatcher struct{ last string }

func (s *statusWatcher) OnStatusText(ev event.StatusText) { s.last = ev.Text }

type attackWatcher struct{ attacks []event.Attack }

func (a *attackWatcher) OnAttack(ev event.Attack) { a.attacks = append(a.attacks, ev) }
