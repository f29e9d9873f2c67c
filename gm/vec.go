package gm

import (
	"fmt"
	"math"
)

// Vec is a 2d vector of float64 values. It is used for points as well as for directions.
type Vec struct {
	X, Y float64
}

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

// VecSplat returns a vector with both components set to the given value.
func VecSplat(value float64) Vec {
	return Vec{X: value, Y: value}
}

// VecFromAngle returns a unit vector pointing into the direction of the given angle.
func VecFromAngle(angle Rad) Vec {
	sin, cos := math.Sincos(float64(angle))
	return Vec{X: cos, Y: sin}
}

func (v Vec) Add(other Vec) Vec {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec) Sub(other Vec) Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec) Mul(scalar float64) Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec) MulEach(other Vec) Vec {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

// Neg returns the vector pointing into the opposite direction.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

func (v Vec) Dot(other Vec) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec) DistanceTo(other Vec) float64 {
	return other.Sub(v).Length()
}

// Normalized returns a vector of length one pointing into the same direction.
// The zero vector stays the zero vector.
func (v Vec) Normalized() Vec {
	length := v.Length()
	if length == 0 {
		return VecZero
	}

	v.X /= length
	v.Y /= length
	return v
}

// Angle returns the direction of the vector, see math.Atan2.
func (v Vec) Angle() Rad {
	return Rad(math.Atan2(v.Y, v.X))
}

func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Swapped returns the vector with X and Y exchanged.
func (v Vec) Swapped() Vec {
	return Vec{X: v.Y, Y: v.X}
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
