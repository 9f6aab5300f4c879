// Package worldgen implements the seeded, region-growing tile map
// generator and the top-level "new game" wiring that plants a bunny and
// its spawners into a fresh area.
//
// Grounded on original_source/src/bunny/gen.py.
package worldgen

import (
	"math/rand"
	"sort"

	"github.com/infiniworld/apocalypse-bunny/event"
	"github.com/infiniworld/apocalypse-bunny/geometry"
	"github.com/infiniworld/apocalypse-bunny/rules"
	"github.com/infiniworld/apocalypse-bunny/tile"
	"github.com/infiniworld/apocalypse-bunny/world"
)

// everyNatureButRubber is the pool GenerateInterestingTileMap draws random
// seed natures from. Rubber is excluded (original author's own choice:
// rubber never occurs naturally, only where explicitly placed).
var everyNatureButRubber = []tile.Nature{
	tile.NatureStone, tile.NatureDirt, tile.NatureGrass, tile.NatureSand,
	tile.NatureShallowWater, tile.NatureDeepWater, tile.NatureFlesh,
}

func floorDivInt(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// GenerateInterestingTileMap plants a handful of random seed tiles and
// grows each one outward one ring at a time until the whole rectangle of
// width x height is covered, producing large same-material patches rather
// than uniform noise. A 3x3 area at the origin is flattened (spawn point),
// and the rectangle's border is raised solid.
func GenerateInterestingTileMap(rng *rand.Rand, width, height int, obstacleDensity float64) tile.Map {
	minX := floorDivInt(-width, 2)
	maxX := minX + width - 1
	minY := floorDivInt(-height, 2)
	// GENEARTION FIX: the original source computes max_y from min_x (a
	// copy-paste typo invisible for a square map), corrected here to min_y
	// since this generator supports non-square sizes.
	maxY := minY + height - 1

	available := make(map[tile.Coord]bool, width*height)
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			available[tile.Coord{X: x, Y: y}] = true
		}
	}

	tiles := make(tile.Map, width*height)
	seeds := make(map[tile.Coord]bool)

	randomTile := func(nature tile.Nature) tile.Tile {
		height := 0
		if rng.Float64() < obstacleDensity {
			height = 1
		}
		return tile.Tile{Nature: nature, Height: height}
	}

	pickAvailable := func() tile.Coord {
		coords := make([]tile.Coord, 0, len(available))
		for c := range available {
			coords = append(coords, c)
		}
		sort.Slice(coords, func(i, j int) bool {
			if coords[i].X != coords[j].X {
				return coords[i].X < coords[j].X
			}
			return coords[i].Y < coords[j].Y
		})
		return coords[rng.Intn(len(coords))]
	}

	seedsNb := width * height / 100
	if seedsNb == 0 && len(available) > 0 {
		// Growth only spreads from seeds, so a map under 100 tiles still
		// needs one to get covered.
		seedsNb = 1
	}
	for i := 0; i < seedsNb; i++ {
		if len(available) == 0 {
			break
		}
		c := pickAvailable()
		delete(available, c)
		seeds[c] = true
		nature := everyNatureButRubber[rng.Intn(len(everyNatureButRubber))]
		tiles[c] = randomTile(nature)
	}

	for len(available) > 0 {
		current := make([]tile.Coord, 0, len(seeds))
		for c := range seeds {
			current = append(current, c)
		}
		sort.Slice(current, func(i, j int) bool {
			if current[i].X != current[j].X {
				return current[i].X < current[j].X
			}
			return current[i].Y < current[j].Y
		})

		for _, seed := range current {
			delete(seeds, seed)
			nature := tiles[seed].Nature
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					if dx == 0 && dy == 0 {
						continue
					}
					n := tile.Coord{X: seed.X + dx, Y: seed.Y + dy}
					if !available[n] {
						continue
					}
					delete(available, n)
					seeds[n] = true
					tiles[n] = randomTile(nature)
				}
			}
		}
	}

	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			c := tile.Coord{X: x, Y: y}
			if t, ok := tiles[c]; ok {
				t.Height = 0
				tiles[c] = t
			}
		}
	}
	for x := minX; x <= maxX; x++ {
		top, bottom := tiles[tile.Coord{X: x, Y: minY}], tiles[tile.Coord{X: x, Y: maxY}]
		top.Height, bottom.Height = 1, 1
		tiles[tile.Coord{X: x, Y: minY}], tiles[tile.Coord{X: x, Y: maxY}] = top, bottom
	}
	for y := minY; y <= maxY; y++ {
		left, right := tiles[tile.Coord{X: minX, Y: y}], tiles[tile.Coord{X: maxX, Y: y}]
		left.Height, right.Height = 1, 1
		tiles[tile.Coord{X: minX, Y: y}], tiles[tile.Coord{X: maxX, Y: y}] = left, right
	}

	return tiles
}

// GenerateWorld builds a fresh world containing one procedurally generated
// area, a player-controlled bunny at the origin, and zombie fox / carrot
// spawners over every walkable (height 0) tile. Returns the world, the new
// bunny entity (so the caller can hand control of it to the input layer),
// and the spawners themselves: the event bus only holds each spawner
// through a weak pointer, so the caller must keep this slice reachable for
// as long as the game runs or the spawners will stop firing the moment the
// garbage collector notices nothing else references them.
func GenerateWorld(bus *event.Bus, width, height int, obstacleDensity float64, seed int64) (*world.World, *world.Entity, []*rules.Spawner) {
	rng := rand.New(rand.NewSource(seed))

	w := world.NewWorld(bus)
	area := w.CreateArea()
	area.Tiles = GenerateInterestingTileMap(rng, width, height, obstacleDensity)

	var walkable []tile.Coord
	for c, t := range area.Tiles {
		if t.Height == 0 {
			walkable = append(walkable, c)
		}
	}
	sort.Slice(walkable, func(i, j int) bool {
		if walkable[i].X != walkable[j].X {
			return walkable[i].X < walkable[j].X
		}
		return walkable[i].Y < walkable[j].Y
	})

	w.RegisterEntityFactory("Bunny", func(id uint32) *world.Entity { return rules.NewBunny(id, w, bus) })
	w.RegisterEntityFactory("Zombie fox", func(id uint32) *world.Entity {
		return rules.NewZombieFox(id, w, bus, rng.Int63())
	})
	w.RegisterEntityFactory("Carrot", func(id uint32) *world.Entity { return rules.NewCarrot(id, bus) })

	bunny, _ := w.CreateEntity("Bunny")
	bunny.Body.Position = geometry.Zero
	_ = w.MoveEntityToArea(bunny.ID, area.ID, true)

	spawners := []*rules.Spawner{
		rules.NewSpawner(area, w, bus, walkable, "Zombie fox", 3, rng.Int63()),
		rules.NewSpawner(area, w, bus, walkable, "Carrot", 10, rng.Int63()),
	}

	return w, bunny, spawners
}
