package physics

import (
	"fmt"
	"math"

	"github.com/oliverbestmann/arena"
	"github.com/oliverbestmann/arena/gm"
)

// RectangleSide classifies where a contact hit a rectangular obstacle.
type RectangleSide uint8

const (
	SideCorner RectangleSide = iota
	SideTopBottom
	SideLeftRight
	SideOutside
)

func (s RectangleSide) String() string {
	switch s {
	case SideCorner:
		return "Corner"
	case SideTopBottom:
		return "TopBottom"
	case SideLeftRight:
		return "LeftRight"
	case SideOutside:
		return "Outside"
	default:
		return fmt.Sprintf("RectangleSide(%d)", uint8(s))
	}
}

// ClassifyRectangleContact decides which side of a rectangle was hit. The offset points
// from the contact point to the center of the rectangle. The checks run in a fixed order,
// the first match wins.
func ClassifyRectangleContact(offset, halfExtents gm.Vec) RectangleSide {
	withinX := math.Abs(offset.X) < halfExtents.X
	withinY := math.Abs(offset.Y) < halfExtents.Y

	switch {
	case withinX && withinY:
		return SideCorner
	case withinX:
		return SideTopBottom
	case withinY:
		return SideLeftRight
	default:
		return SideOutside
	}
}

// ResolveBounce reflects the incoming velocity on an obstacle of the given shape.
// The offset points from the contact point to the center of the obstacle. The
// returned velocity is not decayed.
func ResolveBounce(offset, halfExtents gm.Vec, shape arena.HitboxShape, incoming gm.Vec) gm.Vec {
	switch shape {
	case arena.HitboxRectangle:
		switch ClassifyRectangleContact(offset, halfExtents) {
		case SideTopBottom:
			return gm.Vec{X: incoming.X, Y: -incoming.Y}
		case SideLeftRight:
			return gm.Vec{X: -incoming.X, Y: incoming.Y}
		default:
			return incoming.Neg()
		}

	case arena.HitboxCircle:
		return bounceOffCircle(offset, incoming)

	default:
		panic(fmt.Sprintf("unknown obstacle shape %s", shape))
	}
}

// bounceOffCircle mirrors the direction of movement on the tangent at the contact point.
// The speed is kept.
func bounceOffCircle(offset, incoming gm.Vec) gm.Vec {
	speed := incoming.Length()
	if speed == 0 {
		return gm.VecZero
	}

	moving := incoming.Angle().Normalized()
	contact := offset.Angle().Normalized()

	tangent := (contact + math.Pi/2).Normalized()
	reflected := (tangent + (tangent - moving)).Normalized()

	return gm.VecFromAngle(reflected).Mul(speed)
}
