// Package gm (stands for geometry math) provides the geometry primitives used by the
// arena and its collision engine.
//
// It includes a 2d vector type called Vec, an axis aligned rectangle Rect,
// a 2d matrix type Mat and an affine transform matrix named Affine.
//
// Angles are represented by Rad. Rad.Normalized wraps an angle into the half open
// range (-π, π], which is the range all bounce calculations work in.
package gm
