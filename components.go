package arena

import (
	"fmt"

	"github.com/oliverbestmann/arena/gm"
)

// Transform is the world space placement of an entity.
type Transform struct {
	Translation gm.Vec
	Rotation    gm.Rad
}

type HitboxShape uint8

const (
	HitboxCircle HitboxShape = iota
	HitboxRectangle
)

func (s HitboxShape) String() string {
	switch s {
	case HitboxCircle:
		return "Circle"
	case HitboxRectangle:
		return "Rectangle"
	default:
		return fmt.Sprintf("HitboxShape(%d)", uint8(s))
	}
}

// Hitbox describes the collision shape of an entity. A circle uses Width as its diameter.
type Hitbox struct {
	Shape  HitboxShape
	Width  float64
	Height float64
}

// HalfExtents returns half of the width and height.
func (h Hitbox) HalfExtents() gm.Vec {
	return gm.Vec{X: h.Width / 2, Y: h.Height / 2}
}

// CollisionPolicy decides how a body reacts to a contact. It is either Through or Bounce.
type CollisionPolicy interface {
	isCollisionPolicy()
}

// Through bodies are never affected by contacts.
type Through struct{}

// Bounce bodies are reflected on contact. MaxBounces limits the number of reflections,
// an empty MaxBounces never runs out. Once no bounces are left, the next contact stops the
// body and despawns it, unless Sticks is set. In that case the body stays where it is.
type Bounce struct {
	MaxBounces Option[uint32]
	Sticks     bool
}

func (Through) isCollisionPolicy() {}
func (*Bounce) isCollisionPolicy() {}

// RigidBody holds the physical state of a movable entity.
type RigidBody struct {
	Velocity gm.Vec

	// Mass scales the speed decay after a bounce, must be positive.
	Mass float64

	Hitbox Hitbox
	Policy CollisionPolicy

	// ExcludedPeer is a single entity this body never collides with,
	// e.g. the shooter of a projectile.
	ExcludedPeer Option[EntityId]
}

// Speed returns the length of the velocity.
func (r *RigidBody) Speed() float64 {
	return r.Velocity.Length()
}

// Body is a movable entity: players and projectiles.
type Body struct {
	Name      string
	Transform Transform
	RigidBody RigidBody

	// Lifetime despawns the body after the timer has finished.
	Lifetime Option[Timer]
}

// QuarterTurn is a rotation in steps of 90 degrees.
type QuarterTurn uint8

const (
	Rotate0 QuarterTurn = iota
	Rotate90
	Rotate180
	Rotate270
)

// QuarterTurnOf rounds the given angle to the closest multiple of 90 degrees.
func QuarterTurnOf(angle gm.Rad) QuarterTurn {
	deg := angle.Normalized().Degrees()
	if deg < 0 {
		deg += 360
	}

	return QuarterTurn(int(deg/90+0.5) % 4)
}

func (q QuarterTurn) Angle() gm.Rad {
	return gm.DegToRad(90 * float64(q%4))
}

// SwapsExtents returns true if width and height trade places at this rotation.
func (q QuarterTurn) SwapsExtents() bool {
	return q%2 == 1
}

type ArenaElementKind uint8

const (
	ArenaWall ArenaElementKind = iota
	ArenaZone
)

// ArenaElement is a static obstacle. It never moves after being spawned.
type ArenaElement struct {
	Name     string
	Kind     ArenaElementKind
	Position gm.Vec
	Rotation QuarterTurn
	Hitbox   Hitbox
}

// Footprint returns the axis aligned size of the element after applying its rotation.
func (a *ArenaElement) Footprint() gm.Vec {
	size := gm.Vec{X: a.Hitbox.Width, Y: a.Hitbox.Height}
	if a.Rotation.SwapsExtents() {
		size = size.Swapped()
	}

	return size
}

// Solid returns true if the element takes part in collisions.
func (a *ArenaElement) Solid() bool {
	return a.Kind == ArenaWall
}
