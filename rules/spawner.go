package rules

import (
	"math"
	"math/rand"

	"github.com/infiniworld/apocalypse-bunny/event"
	"github.com/infiniworld/apocalypse-bunny/geometry"
	"github.com/infiniworld/apocalypse-bunny/tile"
	"github.com/infiniworld/apocalypse-bunny/world"
)

// Spawner periodically creates entities of one kind at a random coordinate
// from a fixed set, inside a fixed area. It stops the moment the game ends.
type Spawner struct {
	Area   *world.Area
	World  *world.World
	Bus    *event.Bus
	Coords []tile.Coord
	Kind   string
	Period float64

	rng     *rand.Rand
	timer   float64
	active  bool
}

// NewSpawner constructs a spawner over the given coordinate set, seeded for
// reproducible spawn timing and placement given the same world seed.
func NewSpawner(area *world.Area, w *world.World, bus *event.Bus, coords []tile.Coord, kind string, period float64, seed int64) *Spawner {
	s := &Spawner{
		Area:   area,
		World:  w,
		Bus:    bus,
		Coords: coords,
		Kind:   kind,
		Period: period,
		rng:    rand.New(rand.NewSource(seed)),
		active: true,
	}
	event.Register(bus, s)
	return s
}

func (s *Spawner) spawn() {
	entity, err := s.World.CreateEntity(s.Kind)
	if err != nil {
		return
	}
	c := s.Coords[s.rng.Intn(len(s.Coords))]
	entity.Body.Position = geometry.New(float64(c.X), float64(c.Y))
	_ = s.World.MoveEntityToArea(entity.ID, s.Area.ID, true)
}

// OnRunPhysics spawns math.Floor(accumulated_time/period) entities this
// tick, carrying any fractional remainder to the next one, matching the
// original's divmod-based catch-up.
func (s *Spawner) OnRunPhysics(ev event.RunPhysics) {
	if !s.active {
		return
	}
	s.timer += ev.Timestep
	howMany := math.Floor(s.timer / s.Period)
	s.timer -= howMany * s.Period
	for i := 0; i < int(howMany); i++ {
		s.spawn()
	}
}

func (s *Spawner) OnGameOver(_ event.GameOver) {
	s.active = false
}
