package world

import (
	"math"
	"sort"

	"github.com/infiniworld/apocalypse-bunny/geometry"
)

// ChunkScale is the number of tiles along one side of a chunk.
const ChunkScale = 8

// ChunkCoord identifies a chunk bucket in the spatial index.
type ChunkCoord struct{ X, Y int }

// ChunkCoordAt returns the chunk containing world position p.
func ChunkCoordAt(p geometry.Vector2) ChunkCoord {
	return ChunkCoord{
		X: int(math.Floor(0.5 + p.X/ChunkScale)),
		Y: int(math.Floor(0.5 + p.Y/ChunkScale)),
	}
}

// chunkCoordsAround returns every chunk whose bucket could contain an entity
// within radius of center.
func chunkCoordsAround(center geometry.Vector2, radius float64) []ChunkCoord {
	xMin := int(math.Floor(0.5 - (radius-center.X)/ChunkScale))
	xMax := int(math.Floor(0.5 + (radius+center.X)/ChunkScale))
	yMin := int(math.Floor(0.5 - (radius-center.Y)/ChunkScale))
	yMax := int(math.Floor(0.5 + (radius+center.Y)/ChunkScale))

	coords := make([]ChunkCoord, 0, (xMax-xMin+1)*(yMax-yMin+1))
	for x := xMin; x <= xMax; x++ {
		for y := yMin; y <= yMax; y++ {
			coords = append(coords, ChunkCoord{X: x, Y: y})
		}
	}
	return coords
}

// EntityMap is a chunk-bucketed spatial index used to prune collision and
// proximity queries. Plain (strong-reference) maps are used deliberately:
// the donor original measured weak-ref buckets as ~25% slower, and the
// EntityMap never outlives the Area that owns the entities it indexes.
type EntityMap struct {
	chunks  map[ChunkCoord]map[uint32]*Entity
	located map[uint32]ChunkCoord
}

func NewEntityMap() *EntityMap {
	return &EntityMap{
		chunks:  make(map[ChunkCoord]map[uint32]*Entity),
		located: make(map[uint32]ChunkCoord),
	}
}

func (m *EntityMap) Add(e *Entity) {
	c := ChunkCoordAt(e.Body.Position)
	m.addTo(c, e)
	m.located[e.ID] = c
}

func (m *EntityMap) addTo(c ChunkCoord, e *Entity) {
	bucket, ok := m.chunks[c]
	if !ok {
		bucket = make(map[uint32]*Entity)
		m.chunks[c] = bucket
	}
	bucket[e.ID] = e
}

func (m *EntityMap) Remove(e *Entity) {
	c, ok := m.located[e.ID]
	if !ok {
		return
	}
	delete(m.located, e.ID)
	bucket := m.chunks[c]
	delete(bucket, e.ID)
	if len(bucket) == 0 {
		delete(m.chunks, c)
	}
}

// Move updates the index after e.Body.Position has changed.
func (m *EntityMap) Move(e *Entity) {
	newC := ChunkCoordAt(e.Body.Position)
	oldC, ok := m.located[e.ID]
	if ok && oldC == newC {
		return
	}
	if ok {
		bucket := m.chunks[oldC]
		delete(bucket, e.ID)
		if len(bucket) == 0 {
			delete(m.chunks, oldC)
		}
	}
	m.addTo(newC, e)
	m.located[e.ID] = newC
}

// GetNear returns every entity in a chunk intersecting a square of half-side
// radius centered at center, in ascending entity-id order for determinism
// (spec.md section 5: stable tie-breaks during shockwave propagation).
func (m *EntityMap) GetNear(center geometry.Vector2, radius float64) []*Entity {
	var out []*Entity
	for _, c := range chunkCoordsAround(center, radius) {
		bucket, ok := m.chunks[c]
		if !ok {
			continue
		}
		for _, e := range bucket {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
