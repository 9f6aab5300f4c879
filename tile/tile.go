// Package tile models the sparse, coordinate-keyed tile map a world area is
// painted on: materials, natures, tiles, and the half-integer tile/chunk
// coordinate rounding rules used throughout collision and spatial pruning.
//
// No tile.py survived distillation into the retrieval pack (see
// original_source/_INDEX.md); this package is authored from spec.md section 3
// directly, cross-checked against infiniworld/models/area.py's tileCoordAt
// usage and infiniworld/models/materials.py's exact material constants.
package tile

import (
	"math"

	"github.com/infiniworld/apocalypse-bunny/geometry"
)

// Material is an immutable record of a surface's physical properties.
// Friction is non-positive: it is multiplied directly by velocity in a
// KineticFrictionForce, so a more negative value slows a body faster.
// EffN and EffT in [0,1] attenuate post-collision normal and tangential
// velocity respectively.
type Material struct {
	Friction float64
	EffN     float64
	EffT     float64
}

// Nature tags a tile with the material it is made of.
type Nature int

const (
	NatureStone Nature = iota
	NatureDirt
	NatureGrass
	NatureSand
	NatureShallowWater
	NatureDeepWater
	NatureRubber
	NatureFlesh
)

var natureNames = map[Nature]string{
	NatureStone:        "stone",
	NatureDirt:         "dirt",
	NatureGrass:        "grass",
	NatureSand:         "sand",
	NatureShallowWater: "shallow water",
	NatureDeepWater:    "deep water",
	NatureRubber:       "rubber",
	NatureFlesh:        "flesh",
}

func (n Nature) String() string { return natureNames[n] }

// Materials maps each predefined nature to its physical constants.
// Values taken verbatim from infiniworld/models/materials.py.
var Materials = map[Nature]Material{
	NatureStone:        {Friction: -4, EffN: 0.9, EffT: 1.0},
	NatureDirt:         {Friction: -5, EffN: 0.8, EffT: 1.0},
	NatureGrass:        {Friction: -6, EffN: 0.3, EffT: 1.0},
	NatureSand:         {Friction: -6, EffN: 0.1, EffT: 1.0},
	NatureShallowWater: {Friction: -8, EffN: 0.0, EffT: 1.0},
	NatureDeepWater:    {Friction: -10, EffN: 0.0, EffT: 1.0},
	NatureRubber:       {Friction: -5, EffN: 1.0, EffT: 1.0},
	NatureFlesh:        {Friction: -5, EffN: 0.7, EffT: 1.0},
}

// Coord is an integer tile coordinate.
type Coord struct{ X, Y int }

// Tile is a single cell of a tile map: a material tag and a height. Height 1
// is solid; height 0 is walkable.
type Tile struct {
	Nature Nature
	Height int
}

func (t Tile) Solid() bool { return t.Height == 1 }

// Map is a sparse coordinate-keyed tile map. Coordinate (0,0) is centered on
// world position (0,0); tile edges lie on half-integers.
type Map map[Coord]Tile

// CoordAt returns the tile coordinate containing world position p, using the
// rule t = floor(0.5 + p) componentwise.
func CoordAt(p geometry.Vector2) Coord {
	return Coord{
		X: int(math.Floor(0.5 + p.X)),
		Y: int(math.Floor(0.5 + p.Y)),
	}
}

// CoordsAround returns every tile coordinate whose tile could overlap a
// circle of the given radius centered at p, using the same half-integer
// boundary convention as CoordAt.
func CoordsAround(p geometry.Vector2, radius float64) []Coord {
	xMin := int(math.Floor(0.5 - (radius - p.X)))
	xMax := int(math.Floor(0.5 + (radius + p.X)))
	yMin := int(math.Floor(0.5 - (radius - p.Y)))
	yMax := int(math.Floor(0.5 + (radius + p.Y)))

	coords := make([]Coord, 0, (xMax-xMin+1)*(yMax-yMin+1))
	for x := xMin; x <= xMax; x++ {
		for y := yMin; y <= yMax; y++ {
			coords = append(coords, Coord{X: x, Y: y})
		}
	}
	return coords
}
