package gm

import "math"

type Rad float64

func (r Rad) Degrees() float64 {
	return float64(r) * (180 / math.Pi)
}

// Radians returns the value of the angle in radians as float64.
func (r Rad) Radians() float64 {
	return float64(r)
}

// Normalized returns the angle wrapped into the range (-π, π].
//
// Values a few turns off are corrected by adding or subtracting full turns until
// they fall into the range, larger values are reduced with math.Mod first.
func (r Rad) Normalized() Rad {
	angle := float64(r)
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return r
	}

	if math.Abs(angle) > 8*math.Pi {
		angle = math.Mod(angle, 2*math.Pi)
	}

	for angle > math.Pi {
		angle -= 2 * math.Pi
	}

	for angle <= -math.Pi {
		angle += 2 * math.Pi
	}

	return Rad(angle)
}

// DifferenceTo returns the smallest difference between to angles
// normalized to the range (-π, π]
func (r Rad) DifferenceTo(other Rad) Rad {
	return (r - other).Normalized()
}

// Cos returns the cosine of the angle.
func (r Rad) Cos() float64 {
	return math.Cos(float64(r))
}

// Sin returns the sine of the angle.
func (r Rad) Sin() float64 {
	return math.Sin(float64(r))
}

func (r Rad) SinCos() (sin, cos float64) {
	return math.Sincos(float64(r))
}

func DegToRad(deg float64) Rad {
	return Rad(math.Pi / 180 * deg)
}
