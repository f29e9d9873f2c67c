package gm

// Affine represents an affine transformation. It consists of a Matrix that describes
// rotation and scale, as well as a Translation vector.
//
// Use IdentityAffine to build a new identity transformation.
type Affine struct {
	Matrix      Mat
	Translation Vec
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{
		Matrix: IdentityMat(),
	}
}

func (a Affine) Rotate(angle Rad) Affine {
	return a.Mul(Affine{Matrix: RotationMat(angle)})
}

func (a Affine) Scale(scale Vec) Affine {
	return a.Mul(Affine{Matrix: ScaleMat(scale)})
}

func (a Affine) Translate(translate Vec) Affine {
	return a.Mul(Affine{Matrix: IdentityMat(), Translation: translate})
}

// Transform applies the affine transform to the given point and returns
// the transformed point.
func (a Affine) Transform(point Vec) Vec {
	return a.Matrix.Transform(point).Add(a.Translation)
}

// TransformVec applies the transform to a vector. This is different from transforming
// a point in that it will not apply the translation component of the Affine transform.
// The vector will only be rotated and scaled.
func (a Affine) TransformVec(vec Vec) Vec {
	return a.Matrix.Transform(vec)
}

// Mul multiplies the affine transformation with another transformation.
// The resulting transformation first applies other and then a.
func (a Affine) Mul(other Affine) Affine {
	return Affine{
		Matrix:      a.Matrix.Mul(other.Matrix),
		Translation: a.Matrix.Transform(other.Translation).Add(a.Translation),
	}
}

// TryInverse returns the inverse of the Affine transformation if possible.
func (a Affine) TryInverse() (inverse Affine, ok bool) {
	mat, ok := a.Matrix.TryInverse()
	if !ok {
		return Affine{}, false
	}

	inverse = Affine{
		Matrix:      mat,
		Translation: mat.Transform(a.Translation).Neg(),
	}

	return inverse, true
}

// ViewportTransform maps the world space rectangle viewport onto a screen of the given size.
// The y axis is flipped: world y points up, screen y points down.
func ViewportTransform(viewport Rect, screen Vec) Affine {
	size := viewport.Size()
	scale := min(screen.X/size.X, screen.Y/size.Y)

	return IdentityAffine().
		Translate(screen.Mul(0.5)).
		Scale(Vec{X: scale, Y: -scale}).
		Translate(viewport.Center().Neg())
}
