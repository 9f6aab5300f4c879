package physics

import (
	"math"

	"github.com/infiniworld/apocalypse-bunny/geometry"
)

// ContactEpsilon is the decimal precision (number of decimal places) to
// which contact distances are rounded before comparison. Without it,
// floating-point error in the corrective push leaves bodies locked in
// interpenetration. Load-bearing; do not remove.
const ContactEpsilon = 6

func round6(x float64) float64 {
	const p = 1e6
	return math.Round(x*p) / p
}

// Collision is a detected overlap: Penetration is the vector the collider
// must be displaced by to no longer overlap the collidee, and Distance is
// the center-to-center (or center-to-corner/edge) distance used to pick the
// closest collision among several candidates.
type Collision struct {
	Penetration geometry.Vector2
	Distance    float64
}

// CircleCircle reports whether a circle of colliderRadius centered at
// colliderPos overlaps a circle of collideeRadius centered at collideePos.
// Coincident centers are a degenerate case and are reported as no collision.
func CircleCircle(colliderPos geometry.Vector2, colliderRadius float64, collideePos geometry.Vector2, collideeRadius float64) (Collision, bool) {
	d := colliderPos.Dist(collideePos)
	if d == 0 {
		return Collision{}, false
	}
	if round6(d-(colliderRadius+collideeRadius)) >= 0 {
		return Collision{}, false
	}
	unit := colliderPos.Sub(collideePos).Normalize()
	pen := unit.Scale(colliderRadius + collideeRadius - d)
	return Collision{Penetration: pen, Distance: d}, true
}

// circlePoint is the degenerate circle/corner test shared by the four
// corner Voronoi regions of CircleRect.
func circlePoint(colliderPos geometry.Vector2, radius float64, point geometry.Vector2) (Collision, bool) {
	d := colliderPos.Dist(point)
	if d == 0 {
		return Collision{}, false
	}
	if round6(d-radius) >= 0 {
		return Collision{}, false
	}
	unit := colliderPos.Sub(point).Normalize()
	pen := unit.Scale(radius - d)
	return Collision{Penetration: pen, Distance: d}, true
}

// CircleRect detects a collision between a circle and an axis-aligned
// rectangle by dispatching to one of 9 Voronoi regions determined by
// comparing the circle's center to the rectangle's x1/x2/y1/y2 bounds.
func CircleRect(colliderPos geometry.Vector2, radius float64, rect *RectangularBody) (Collision, bool) {
	x1, x2, y1, y2 := rect.bounds()

	xRegion := 0
	switch {
	case colliderPos.X < x1:
		xRegion = -1
	case colliderPos.X > x2:
		xRegion = 1
	}
	yRegion := 0
	switch {
	case colliderPos.Y < y1:
		yRegion = -1
	case colliderPos.Y > y2:
		yRegion = 1
	}

	switch {
	case xRegion != 0 && yRegion != 0:
		corner := geometry.Vector2{X: x1, Y: y1}
		if xRegion > 0 {
			corner.X = x2
		}
		if yRegion > 0 {
			corner.Y = y2
		}
		return circlePoint(colliderPos, radius, corner)

	case xRegion != 0 && yRegion == 0:
		overlap, ok := edgeOverlap(colliderPos.X, radius, x1, x2, xRegion)
		if !ok {
			return Collision{}, false
		}
		return Collision{Penetration: geometry.Vector2{X: overlap * float64(xRegion)}, Distance: math.Abs(overlap)}, true

	case xRegion == 0 && yRegion != 0:
		overlap, ok := edgeOverlap(colliderPos.Y, radius, y1, y2, yRegion)
		if !ok {
			return Collision{}, false
		}
		return Collision{Penetration: geometry.Vector2{Y: overlap * float64(yRegion)}, Distance: math.Abs(overlap)}, true

	default:
		// Region 5, interior: prevented by prior resolution; treat as unstuck.
		return Collision{}, false
	}
}

// edgeOverlap computes the signed penetration depth of a circle of the
// given radius centered at `center` against the rectangle's extent
// [min, max] on one axis, for the edge region on the `region` side
// (region<0: beyond min; region>0: beyond max).
func edgeOverlap(center, radius, min, max float64, region int) (float64, bool) {
	var overlap float64
	if region > 0 {
		overlap = max - (center - radius)
	} else {
		overlap = (center + radius) - min
	}
	if round6(overlap) <= 0 {
		return 0, false
	}
	return overlap, true
}

// ElasticNormalSpeeds resolves the normal-axis 1D elastic collision between
// two masses (either of which may be +Inf) given their pre-collision normal
// speeds.
func ElasticNormalSpeeds(m1, v1, m2, v2 float64) (u1, u2 float64) {
	inf1, inf2 := math.IsInf(m1, 1), math.IsInf(m2, 1)
	switch {
	case inf1 && inf2:
		return v1, v2
	case inf1:
		return v1, -v2
	case inf2:
		return -v1, v2
	default:
		u1 = (v1*(m1-m2) + 2*m2*v2) / (m1 + m2)
		u2 = (v2*(m2-m1) + 2*m1*v1) / (m1 + m2)
		return u1, u2
	}
}

// ElasticCollisionVelocities decomposes each body's velocity into normal
// and tangential components along normal, resolves the normal components
// elastically, attenuates by the pair's material efficiencies, and
// recomposes. normal must be a unit vector.
func ElasticCollisionVelocities(m1 float64, vel1 geometry.Vector2, effN1, effT1 float64, m2 float64, vel2 geometry.Vector2, effN2, effT2 float64, normal geometry.Vector2) (v1, v2 geometry.Vector2) {
	v1n := vel1.Dot(normal)
	v2n := vel2.Dot(normal)
	v1t := vel1.Sub(normal.Scale(v1n))
	v2t := vel2.Sub(normal.Scale(v2n))

	u1n, u2n := ElasticNormalSpeeds(m1, v1n, m2, v2n)

	effN := effN1 * effN2
	effT := effT1 * effT2
	u1n *= effN
	u2n *= effN
	u1t := v1t.Scale(effT)
	u2t := v2t.Scale(effT)

	v1 = normal.Scale(u1n).Add(u1t)
	v2 = normal.Scale(u2n).Add(u2t)
	return v1, v2
}
