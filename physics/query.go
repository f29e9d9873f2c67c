package physics

import (
	"fmt"
	"math"

	"github.com/oliverbestmann/arena/gm"
)

// ContactSlop is the largest separation that still counts as touching.
const ContactSlop = 1e-6

type Proximity uint8

const (
	Disjoint Proximity = iota
	WithinMargin
	Intersecting
)

func (p Proximity) String() string {
	switch p {
	case Disjoint:
		return "Disjoint"
	case WithinMargin:
		return "WithinMargin"
	case Intersecting:
		return "Intersecting"
	default:
		return fmt.Sprintf("Proximity(%d)", uint8(p))
	}
}

// Contact is the closest point pair of two touching shapes.
type Contact struct {
	// Point lies on the surface of the second shape.
	Point gm.Vec

	// Normal points from the first shape towards the second one.
	Normal gm.Vec

	// Depth of the penetration. Negative while the shapes are apart.
	Depth float64
}

// Query classifies how close two posed shapes are.
func Query(poseA Pose, shapeA Shape, poseB Pose, shapeB Shape, margin float64) Proximity {
	return QueryColliders(NewColliderAt(poseA, shapeA), NewColliderAt(poseB, shapeB), margin)
}

// QueryColliders is Query on colliders that are already posed.
func QueryColliders(a, b *Collider, margin float64) Proximity {
	contact, ok := closestPoints(a, b)
	if !ok {
		return Disjoint
	}

	separation := -contact.Depth
	switch {
	case separation <= ContactSlop:
		return Intersecting
	case separation <= margin:
		return WithinMargin
	default:
		return Disjoint
	}
}

// ContactOf returns the contact between two posed shapes, if they are
// closer than the given prediction distance.
func ContactOf(poseA Pose, shapeA Shape, poseB Pose, shapeB Shape, prediction float64) (Contact, bool) {
	return ContactColliders(NewColliderAt(poseA, shapeA), NewColliderAt(poseB, shapeB), prediction)
}

func ContactColliders(a, b *Collider, prediction float64) (Contact, bool) {
	contact, ok := closestPoints(a, b)
	if !ok || -contact.Depth > prediction+ContactSlop {
		return Contact{}, false
	}

	return contact, true
}

// closestPoints measures the distance between a ball and any other shape by
// querying the other shape with the center of the ball. Two cuboids are never
// compared: movable bodies are always balls and walls are never paired with each other.
func closestPoints(a, b *Collider) (Contact, bool) {
	switch {
	case a.shape.Kind == ShapeBall:
		info := b.cpShape.PointQuery(cpVecOf(a.pose.Position))

		point := toVec(info.Point)
		if math.IsNaN(point.X) || math.IsNaN(point.Y) {
			// the center of a lies exactly on the center of the ball b
			point = b.pose.Position.Add(toVec(info.Gradient).Mul(b.shape.Radius))
		}

		return Contact{
			Point:  point,
			Normal: toVec(info.Gradient).Neg(),
			Depth:  a.shape.Radius - info.Distance,
		}, true

	case b.shape.Kind == ShapeBall:
		info := a.cpShape.PointQuery(cpVecOf(b.pose.Position))
		gradient := toVec(info.Gradient)

		return Contact{
			Point:  b.pose.Position.Sub(gradient.Mul(b.shape.Radius)),
			Normal: gradient,
			Depth:  b.shape.Radius - info.Distance,
		}, true

	default:
		return Contact{}, false
	}
}
