// Package vec provides the immutable 3D vector value type used by the
// polyhedron generator. All operations return new values.
package vec

import "math"

// Vector3 is a 3-component vector (value type, stack-allocated).
type Vector3 struct {
	X, Y, Z float64
}

// Zero is the zero vector.
var Zero = Vector3{}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3) Scale(k float64) Vector3 {
	return Vector3{v.X * k, v.Y * k, v.Z * k}
}

// Div divides every component by k. Division by zero follows IEEE-754:
// the result carries ±Inf or NaN components.
func (v Vector3) Div(k float64) Vector3 {
	return Vector3{v.X / k, v.Y / k, v.Z / k}
}

func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Lerp returns v + alpha*(target-v).
func (v Vector3) Lerp(target Vector3, alpha float64) Vector3 {
	return Vector3{
		v.X + alpha*(target.X-v.X),
		v.Y + alpha*(target.Y-v.Y),
		v.Z + alpha*(target.Z-v.Z),
	}
}

func (v Vector3) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vector3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize returns v scaled to unit length. Zero-length and already
// unit-length vectors are returned unchanged.
func (v Vector3) Normalize() Vector3 {
	l := v.LenSq()
	if l == 0 || l == 1 {
		return v
	}
	return v.Scale(1 / math.Sqrt(l))
}

// ApproxEqual reports whether every component of v and o differs by at
// most eps.
func (v Vector3) ApproxEqual(o Vector3, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps &&
		math.Abs(v.Y-o.Y) <= eps &&
		math.Abs(v.Z-o.Z) <= eps
}

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vector3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Array returns the components as a [3]float64.
func (v Vector3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
