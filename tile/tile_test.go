package tile

import (
	"testing"

	"github.com/infiniworld/apocalypse-bunny/geometry"
)

func TestTileSolidAtHeightOne(t *testing.T) {
	if (Tile{Nature: NatureStone, Height: 1}).Solid() != true {
		t.Fatal("expected height-1 tiles to be solid")
	}
	if (Tile{Nature: NatureStone, Height: 0}).Solid() {
		t.Fatal("expected height-0 tiles to be walkable")
	}
}

func TestNatureStringsAreHumanReadable(t *testing.T) {
	if NatureDeepWater.String() != "deep water" {
		t.Fatalf("NatureDeepWater.String() = %q, want %q", NatureDeepWater.String(), "deep water")
	}
}

func TestMaterialsCoverEveryNature(t *testing.T) {
	natures := []Nature{NatureStone, NatureDirt, NatureGrass, NatureSand, NatureShallowWater, NatureDeepWater, NatureRubber, NatureFlesh}
	for _, n := range natures {
		if _, ok := Materials[n]; !ok {
			t.Fatalf("Materials is missing an entry for %v", n)
		}
	}
}

func TestCoordAtRoundsHalfIntegerBoundariesUp(t *testing.T) {
	cases := []struct {
		pos  geometry.Vector2
		want Coord
	}{
		{geometry.New(0, 0), Coord{0, 0}},
		{geometry.New(0.49, 0.49), Coord{0, 0}},
		{geometry.New(0.5, 0.5), Coord{1, 1}},
		{geometry.New(-0.5, -0.5), Coord{0, 0}},
		{geometry.New(-0.51, -0.51), Coord{-1, -1}},
	}
	for _, c := range cases {
		if got := CoordAt(c.pos); got != c.want {
			t.Errorf("CoordAt(%+v) = %+v, want %+v", c.pos, got, c.want)
		}
	}
}

func TestCoordsAroundIncludesTheCenterTile(t *testing.T) {
	coords := CoordsAround(geometry.New(0, 0), 0.4)
	found := false
	for _, c := range coords {
		if c == (Coord{0, 0}) {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the origin tile to be included in its own neighborhood")
	}
}

func TestCoordsAroundGrowsWithRadius(t *testing.T) {
	small := CoordsAround(geometry.New(0, 0), 0.4)
	big := CoordsAround(geometry.New(0, 0), 5)
	if len(big) <= len(small) {
		t.Fatalf("expected a larger radius to cover more tiles: small=%d big=%d", len(small), len(big))
	}
}
