// Package physics implements point-mass bodies, composable forces, RK4
// integration, and circle/circle and circle/rectangle collision detection
// and response.
//
// Grounded line-for-line on original_source/src/infiniworld/physics.py; the
// donor's physics/collision.go contributed the "profile struct + apply
// function" shape, generalized here from its Q16.16 fixed-point
// representation to spec.md's float64 model.
package physics

import (
	"math"

	"github.com/infiniworld/apocalypse-bunny/geometry"
	"github.com/infiniworld/apocalypse-bunny/tile"
)

// Force computes the contribution to a body's net force for the current
// integration sub-step. Implementations must be pure: no side effects, no
// captured mutable state besides their own fields.
type Force interface {
	Eval(pos, vel geometry.Vector2, dt float64) geometry.Vector2
}

// ConstantForce always returns V, regardless of position, velocity or dt.
// Controllers mutate V in place to steer a walking entity.
type ConstantForce struct {
	V geometry.Vector2
}

func (f *ConstantForce) Eval(_, _ geometry.Vector2, _ float64) geometry.Vector2 { return f.V }

// KineticFrictionForce returns vel scaled by Mu. Mu is non-positive by
// convention (a friction force opposes motion), so it is multiplied
// directly into velocity rather than negated.
type KineticFrictionForce struct {
	Mu float64
}

func (f *KineticFrictionForce) Eval(_, vel geometry.Vector2, _ float64) geometry.Vector2 {
	return vel.Scale(f.Mu)
}

// Body is a point mass subject to a set of forces. Mass may be +Inf for
// immovable bodies (walls, solid tiles); OneOverMass is 0 in that case.
type Body struct {
	Mass     float64
	Position geometry.Vector2
	Velocity geometry.Vector2
	Solid    bool
	Material tile.Material
	Forces   []Force
}

func (b *Body) OneOverMass() float64 {
	if math.IsInf(b.Mass, 1) {
		return 0
	}
	return 1 / b.Mass
}

func (b *Body) acceleration(pos, vel geometry.Vector2, dt float64) geometry.Vector2 {
	var sum geometry.Vector2
	for _, f := range b.Forces {
		sum.IAdd(f.Eval(pos, vel, dt))
	}
	return sum.Scale(b.OneOverMass())
}

// CircularBody is a movable body shaped as a circle of Radius.
type CircularBody struct {
	Body
	Radius float64
}

// RectangularBody is an axis-aligned rectangle of size SizeX x SizeY,
// centered on Position. Used for solid tiles and other static obstacles.
type RectangularBody struct {
	Body
	SizeX, SizeY float64
}

func (r *RectangularBody) bounds() (x1, x2, y1, y2 float64) {
	return r.Position.X - r.SizeX/2, r.Position.X + r.SizeX/2,
		r.Position.Y - r.SizeY/2, r.Position.Y + r.SizeY/2
}
