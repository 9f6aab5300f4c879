package world

import (
	"math"
	"sort"

	"github.com/infiniworld/apocalypse-bunny/event"
	"github.com/infiniworld/apocalypse-bunny/geometry"
	"github.com/infiniworld/apocalypse-bunny/physics"
	"github.com/infiniworld/apocalypse-bunny/tile"
)

// collisionAttempts bounds how many detection-correction passes
// moveEntityByPhysics runs per physics step before giving up and reverting
// the entity to its pre-step position. Grounded on AreaModel.COLLISION_ATTEMPTS.
const collisionAttempts = 5

// stopVelocity is the speed below which a corrected velocity is snapped to
// zero, so that an entity resting against an obstacle doesn't jitter.
const stopVelocity = 0.01

// candidate is one detected overlap, normalized so processCollisions can
// compare a tile collision and an entity collision uniformly.
type candidate struct {
	physics.Collision
	entity *Entity // nil when the collidee is a solid tile
	solid  bool
	mass   float64
	effN   float64
	effT   float64
}

// Area is one connected region of the world: a tile map, the entities
// currently inside it, and the chunk-bucketed index used to prune collision
// and proximity queries. Grounded on
// original_source/src/infiniworld/models/area.py's AreaModel.
type Area struct {
	ID    uint32
	Tiles tile.Map

	entities            map[uint32]*Entity
	index               *EntityMap
	biggestEntityRadius float64

	bus *event.Bus
}

// NewArea constructs an empty area and registers its bus handlers.
func NewArea(id uint32, bus *event.Bus) *Area {
	a := &Area{
		ID:       id,
		Tiles:    make(tile.Map),
		entities: make(map[uint32]*Entity),
		index:    NewEntityMap(),
		bus:      bus,
	}
	event.Register(bus, a)
	return a
}

// AddEntity places e in this area, updates the spatial index and the
// biggest-radius cache, and announces it to observers.
func (a *Area) AddEntity(e *Entity) error {
	if _, ok := a.entities[e.ID]; ok {
		return ErrAlreadyInArea
	}
	e.areaID = a.ID
	e.hasArea = true
	a.entities[e.ID] = e
	a.index.Add(e)
	a.affectEntityWithTile(e)
	if e.Body.Radius > a.biggestEntityRadius {
		a.biggestEntityRadius = e.Body.Radius
	}
	a.bus.Post(event.EntityEnteredArea{Summary: e.Summary()})
	return nil
}

// RemoveEntity takes e out of this area.
func (a *Area) RemoveEntity(e *Entity) error {
	if _, ok := a.entities[e.ID]; !ok {
		return ErrNotInArea
	}
	delete(a.entities, e.ID)
	a.index.Remove(e)
	e.hasArea = false
	a.refreshBiggestEntityRadius()
	a.bus.Post(event.EntityLeftArea{EntityID: e.ID, AreaID: a.ID})
	return nil
}

// refreshBiggestEntityRadius recomputes the cache from scratch. The donor's
// findBiggestEntityRadius computed a local `radius` and never wrote it back
// to self._biggest_entity_radius, so the cache only ever grew; this version
// actually shrinks it back down when the largest entity leaves.
func (a *Area) refreshBiggestEntityRadius() {
	var max float64
	for _, e := range a.entities {
		if e.Body.Radius > max {
			max = e.Body.Radius
		}
	}
	a.biggestEntityRadius = max
}

// affectEntityWithTile updates e's friction force to match the tile e
// currently stands on; e's collision material is left unchanged. Standing over an undefined tile
// (outside any painted region) applies no friction.
func (a *Area) affectEntityWithTile(e *Entity) {
	coord := tile.CoordAt(e.Body.Position)
	t, ok := a.Tiles[coord]
	if !ok {
		e.FrictionForce.Mu = 0
		return
	}
	e.FrictionForce.Mu = tile.Materials[t.Nature].Friction
}

// pruneTiles returns every solid tile coordinate that could overlap e,
// restricted to tiles actually present in the map.
func (a *Area) pruneTiles(e *Entity) []tile.Coord {
	var out []tile.Coord
	for _, c := range tile.CoordsAround(e.Body.Position, e.Body.Radius) {
		t, ok := a.Tiles[c]
		if ok && t.Solid() {
			out = append(out, c)
		}
	}
	return out
}

// detectCollisionsWithTiles tests e against every nearby solid tile, modeled
// as an ephemeral infinite-mass 1x1 rectangular body centered on the tile.
func (a *Area) detectCollisionsWithTiles(e *Entity) []candidate {
	var out []candidate
	for _, c := range a.pruneTiles(e) {
		t := a.Tiles[c]
		rect := physics.RectangularBody{
			Body: physics.Body{
				Mass:     math.Inf(1),
				Position: geometry.Vector2{X: float64(c.X), Y: float64(c.Y)},
				Solid:    true,
				Material: tile.Materials[t.Nature],
			},
			SizeX: 1,
			SizeY: 1,
		}
		col, ok := physics.CircleRect(e.Body.Position, e.Body.Radius, &rect)
		if !ok {
			continue
		}
		out = append(out, candidate{
			Collision: col,
			solid:     true,
			mass:      math.Inf(1),
			effN:      rect.Material.EffN,
			effT:      rect.Material.EffT,
		})
	}
	return out
}

// detectCollisionsWithEntities tests e against every other existing entity
// within reach, pruned via the chunk index.
func (a *Area) detectCollisionsWithEntities(e *Entity) []candidate {
	var out []candidate
	reach := e.Body.Radius + a.biggestEntityRadius
	for _, other := range a.index.GetNear(e.Body.Position, reach) {
		if other.ID == e.ID || !other.Exists {
			continue
		}
		col, ok := physics.CircleCircle(e.Body.Position, e.Body.Radius, other.Body.Position, other.Body.Radius)
		if !ok {
			continue
		}
		out = append(out, candidate{
			Collision: col,
			entity:    other,
			solid:     other.Body.Solid,
			mass:      other.Body.Mass,
			effN:      other.Body.Material.EffN,
			effT:      other.Body.Material.EffT,
		})
	}
	return out
}

// processCollisions runs a single detection-correction pass for e: it finds
// every overlap, applies positional and velocity correction for the closest
// solid one, and returns every entity touched along the way (solid or not)
// so the caller can later invoke their reactToCollision. Non-solid entities
// cannot collide with anything themselves, though they can still be
// collided with from a solid mover's own pass.
func (a *Area) processCollisions(e *Entity) (corrected bool, touched []*Entity) {
	if !e.Body.Solid {
		return false, nil
	}

	candidates := a.detectCollisionsWithTiles(e)
	candidates = append(candidates, a.detectCollisionsWithEntities(e)...)
	if len(candidates) == 0 {
		return false, nil
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Distance < candidates[j].Distance })

	for _, c := range candidates {
		if c.entity != nil {
			touched = append(touched, c.entity)
		}
		if !c.solid {
			continue
		}

		e.Body.Position = e.Body.Position.Add(c.Penetration)
		a.index.Move(e)

		normal := c.Penetration
		if normal.NormSq() > 0 {
			normal = normal.Normalize()
			var otherVel geometry.Vector2
			if c.entity != nil {
				otherVel = c.entity.Body.Velocity
			}
			v1, v2 := physics.ElasticCollisionVelocities(
				e.Body.Mass, e.Body.Velocity, e.Body.Material.EffN, e.Body.Material.EffT,
				c.mass, otherVel, c.effN, c.effT,
				normal,
			)
			e.Body.Velocity = v1
			if c.entity != nil {
				c.entity.Body.Velocity = v2
			}
		}
		corrected = true
		break
	}

	if e.Body.Velocity.Norm() < stopVelocity {
		e.Body.Velocity = geometry.Zero
	}
	return corrected, touched
}

// moveEntityByPhysics integrates e forward by dt, substepping if the
// tentative displacement is large enough to risk tunneling through a thin
// obstacle, then runs up to collisionAttempts detection-correction passes.
// It returns true if e ended up stuck (no correction converged) and was
// reverted to its pre-step state.
func (a *Area) moveEntityByPhysics(e *Entity, dt float64) (stuck bool, touched []*Entity) {
	pos, vel := physics.Integrate(&e.Body.Body, dt)

	dist := pos.Dist(e.Body.Position)
	if dist > e.Body.Radius {
		n := physics.CollisionSubsteps(dist, e.Body.Radius)
		sub := dt / float64(n)
		for i := 0; i < n; i++ {
			s, t := a.moveEntityByPhysics(e, sub)
			touched = append(touched, t...)
			if s {
				return true, touched
			}
		}
		return false, touched
	}

	origPos, origVel := e.Body.Position, e.Body.Velocity
	e.Body.Position = pos
	e.Body.Velocity = vel
	a.index.Move(e)

	attempts := collisionAttempts
	corrected := true
	for attempts > 0 && corrected {
		var t []*Entity
		corrected, t = a.processCollisions(e)
		touched = append(touched, t...)
		attempts--
	}

	if corrected && attempts == 0 {
		e.Body.Position = origPos
		e.Body.Velocity = origVel
		a.index.Move(e)
		return true, touched
	}
	return false, touched
}

// RunPhysics advances every entity in the area by dt: integration,
// collision resolution, reactToCollision dispatch, and
// EntityMoved/EntityStopped bookkeeping. Entities are processed in
// ascending id order for determinism.
func (a *Area) RunPhysics(dt float64) {
	ids := make([]uint32, 0, len(a.entities))
	for id := range a.entities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		e := a.entities[id]
		if !e.Exists {
			continue
		}
		before := e.Body.Position
		_, touched := a.moveEntityByPhysics(e, dt)
		after := e.Body.Position

		seen := make(map[uint32]bool, len(touched))
		for _, other := range touched {
			if seen[other.ID] {
				continue
			}
			seen[other.ID] = true
			if e.Exists && other.Exists && other.Behavior != nil {
				other.Behavior.ReactToCollision(e)
			}
		}

		if !before.Equal(after) {
			a.affectEntityWithTile(e)
			a.bus.Post(event.EntityMoved{EntityID: e.ID, Pos: after})
			e.IsMoving = true
		} else if e.IsMoving && e.Body.Velocity.NormSq() == 0 {
			e.IsMoving = false
			a.bus.Post(event.EntityStopped{EntityID: e.ID})
		}
	}
}

// EntitiesNear returns every existing entity within radius of center,
// pruned via the chunk index. Exposed for the simulation-rules layer
// (perception, shockwave targeting) so it never needs direct access to the
// index itself.
func (a *Area) EntitiesNear(center geometry.Vector2, radius float64) []*Entity {
	var out []*Entity
	for _, e := range a.index.GetNear(center, radius) {
		if e.Exists && e.Body.Position.Dist(center) <= radius {
			out = append(out, e)
		}
	}
	return out
}

// OnRunPhysics is the bus handler that drives this area's physics step.
func (a *Area) OnRunPhysics(ev event.RunPhysics) {
	a.RunPhysics(ev.Timestep)
}

// OnAreaContentRequest answers an AreaContentRequest for this area with an
// AreaContentEvent snapshot of its entities and tiles. Replying
// asynchronously (rather than returning a value) keeps the request/response
// symmetric with every other cross-area query and lets a requester that
// cares about more than one area reuse the same handler.
func (a *Area) OnAreaContentRequest(ev event.AreaContentRequest) {
	if ev.AreaID != a.ID {
		return
	}
	summaries := make([]event.EntitySummary, 0, len(a.entities))
	for _, id := range sortedEntityIDs(a.entities) {
		summaries = append(summaries, a.entities[id].Summary())
	}
	tiles := make(map[event.TileCoord]event.TileSummary, len(a.Tiles))
	for c, t := range a.Tiles {
		tiles[event.TileCoord{X: c.X, Y: c.Y}] = event.TileSummary{Nature: t.Nature.String(), Height: t.Height}
	}
	a.bus.Post(event.AreaContentEvent{AreaID: a.ID, Entities: summaries, TileMap: tiles})
}

func sortedEntityIDs(m map[uint32]*Entity) []uint32 {
	ids := make([]uint32, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
