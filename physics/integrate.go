package physics

import "github.com/infiniworld/apocalypse-bunny/geometry"

// Integrate advances body by h seconds using the classical 4th-order
// Runge-Kutta scheme and returns the tentative (position, velocity) without
// mutating body. The caller applies and validates the result against
// collisions.
func Integrate(b *Body, h float64) (pos, vel geometry.Vector2) {
	x, v := b.Position, b.Velocity

	a1 := b.acceleration(x, v, 0)
	v1 := v
	v2 := v.Add(a1.Scale(0.5 * h))
	a2 := b.acceleration(x.Add(v1.Scale(0.5*h)), v2, h/2)
	v3 := v.Add(a2.Scale(0.5 * h))
	a3 := b.acceleration(x.Add(v2.Scale(0.5*h)), v3, h/2)
	v4 := v.Add(a3.Scale(h))
	a4 := b.acceleration(x.Add(v3.Scale(h)), v4, h)

	xPrime := x.Add(v1.Add(v2.Scale(2)).Add(v3.Scale(2)).Add(v4).Scale(h / 6))
	vPrime := v.Add(a1.Add(a2.Scale(2)).Add(a3.Scale(2)).Add(a4).Scale(h / 6))
	return xPrime, vPrime
}

// CollisionSubsteps returns how many equal substeps a displacement of
// distance delta over a circle of the given radius must be split into to
// guard against tunneling: ceil(delta/radius), at least 1.
func CollisionSubsteps(delta, radius float64) int {
	if delta <= radius {
		return 1
	}
	n := int(delta / radius)
	if float64(n)*radius < delta {
		n++
	}
	return n
}
