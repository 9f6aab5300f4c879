// Package geometry provides 2D vector algebra for the simulation core.
package geometry

import "math"

// Vector2 is a pair of finite real numbers. All operations are value
// semantics unless named with an I prefix (in-place, mutating the receiver).
type Vector2 struct {
	X, Y float64
}

// Zero is the additive identity.
var Zero = Vector2{}

func New(x, y float64) Vector2 { return Vector2{X: x, Y: y} }

// FromDirection builds a unit-length-scaled vector from an angle in radians.
func FromDirection(angle, magnitude float64) Vector2 {
	return Vector2{X: math.Cos(angle) * magnitude, Y: math.Sin(angle) * magnitude}
}

func (v Vector2) Add(w Vector2) Vector2 { return Vector2{v.X + w.X, v.Y + w.Y} }
func (v *Vector2) IAdd(w Vector2)        { v.X += w.X; v.Y += w.Y }

func (v Vector2) Sub(w Vector2) Vector2 { return Vector2{v.X - w.X, v.Y - w.Y} }
func (v *Vector2) ISub(w Vector2)        { v.X -= w.X; v.Y -= w.Y }

func (v Vector2) Scale(k float64) Vector2 { return Vector2{v.X * k, v.Y * k} }
func (v *Vector2) IScale(k float64)       { v.X *= k; v.Y *= k }

// Div is true (float) division by a scalar.
func (v Vector2) Div(k float64) Vector2 { return Vector2{v.X / k, v.Y / k} }
func (v *Vector2) IDiv(k float64)       { v.X /= k; v.Y /= k }

// FloorDiv floor-divides each component by k.
func (v Vector2) FloorDiv(k float64) Vector2 {
	return Vector2{math.Floor(v.X / k), math.Floor(v.Y / k)}
}
func (v *Vector2) IFloorDiv(k float64) { *v = v.FloorDiv(k) }

// Min returns the componentwise minimum of v and w.
func (v Vector2) Min(w Vector2) Vector2 { return Vector2{math.Min(v.X, w.X), math.Min(v.Y, w.Y)} }
func (v *Vector2) IMin(w Vector2)       { *v = v.Min(w) }

// Max returns the componentwise maximum of v and w.
func (v Vector2) Max(w Vector2) Vector2 { return Vector2{math.Max(v.X, w.X), math.Max(v.Y, w.Y)} }
func (v *Vector2) IMax(w Vector2)       { *v = v.Max(w) }

func (v Vector2) Dot(w Vector2) float64 { return v.X*w.X + v.Y*w.Y }

// Project returns the projection of v onto w.
func (v Vector2) Project(w Vector2) Vector2 {
	d := w.Dot(w)
	if d == 0 {
		return Zero
	}
	return w.Scale(v.Dot(w) / d)
}
func (v *Vector2) IProject(w Vector2) { *v = v.Project(w) }

func (v Vector2) NormSq() float64 { return v.X*v.X + v.Y*v.Y }
func (v Vector2) Norm() float64   { return math.Sqrt(v.NormSq()) }

// Normalize returns a unit vector in the direction of v, or Zero if v is Zero.
func (v Vector2) Normalize() Vector2 {
	n := v.Norm()
	if n == 0 {
		return Zero
	}
	return v.Scale(1 / n)
}
func (v *Vector2) INormalize() { *v = v.Normalize() }

// Normal returns the unit vector perpendicular to v (rotated +90 degrees).
func (v Vector2) Normal() Vector2 {
	return Vector2{-v.Y, v.X}.Normalize()
}

func (v Vector2) Dist(w Vector2) float64   { return v.Sub(w).Norm() }
func (v Vector2) DistSq(w Vector2) float64 { return v.Sub(w).NormSq() }

// Round rounds each component to n decimal places.
func (v Vector2) Round(n int) Vector2 {
	return Vector2{roundTo(v.X, n), roundTo(v.Y, n)}
}
func (v *Vector2) IRound(n int) { *v = v.Round(n) }

func (v Vector2) Equal(w Vector2) bool { return v.X == w.X && v.Y == w.Y }

func roundTo(x float64, n int) float64 {
	p := math.Pow(10, float64(n))
	return math.Round(x*p) / p
}
