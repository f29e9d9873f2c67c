package physics

import (
	"fmt"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/arena"
	"github.com/oliverbestmann/arena/gm"
)

type ShapeKind uint8

const (
	ShapeBall ShapeKind = iota
	ShapeCuboid
)

// Shape is one of the two primitives the engine knows about: a ball or an axis aligned cuboid.
type Shape struct {
	Kind        ShapeKind
	Radius      float64
	HalfExtents gm.Vec
}

func Ball(radius float64) Shape {
	return Shape{Kind: ShapeBall, Radius: radius, HalfExtents: gm.VecSplat(radius)}
}

func Cuboid(halfExtents gm.Vec) Shape {
	return Shape{Kind: ShapeCuboid, HalfExtents: halfExtents}
}

func (s Shape) String() string {
	switch s.Kind {
	case ShapeBall:
		return fmt.Sprintf("Ball(r=%v)", s.Radius)
	case ShapeCuboid:
		return fmt.Sprintf("Cuboid(half=%s)", s.HalfExtents)
	default:
		return fmt.Sprintf("Shape(%d)", s.Kind)
	}
}

// Pose is the world space position and rotation of a collider.
type Pose struct {
	Position gm.Vec
	Rotation gm.Rad
}

func PoseOf(transform arena.Transform) Pose {
	return Pose{
		Position: transform.Translation,
		Rotation: transform.Rotation,
	}
}

// ShapeOf derives the collision primitive of a movable body. Bodies always collide as a
// ball with half of the hitbox width as radius, whatever the shape of their hitbox.
func ShapeOf(hitbox arena.Hitbox) Shape {
	return Ball(hitbox.Width / 2)
}

// ObstacleShapeOf returns the pose and shape of an arena element. The rotation is folded
// into the extents, so the returned pose is always axis aligned.
func ObstacleShapeOf(element *arena.ArenaElement) (Pose, Shape) {
	pose := Pose{Position: element.Position}

	if element.Hitbox.Shape == arena.HitboxCircle {
		return pose, Ball(element.Hitbox.Width / 2)
	}

	return pose, Cuboid(element.Footprint().Mul(0.5))
}

// Collider keeps a chipmunk shape in sync with a Pose, so the shape can be used for
// point and segment queries. Colliders are never added to a cp.Space.
type Collider struct {
	shape Shape
	pose  Pose

	body    *cp.Body
	cpShape *cp.Shape
}

func NewCollider(shape Shape) *Collider {
	body := cp.NewKinematicBody()

	var cpShape *cp.Shape
	switch shape.Kind {
	case ShapeBall:
		cpShape = cp.NewCircle(body, shape.Radius, cp.Vector{})
	case ShapeCuboid:
		cpShape = cp.NewBox(body, 2*shape.HalfExtents.X, 2*shape.HalfExtents.Y, 0)
	default:
		panic(fmt.Sprintf("unknown shape kind %d", shape.Kind))
	}

	collider := &Collider{shape: shape, body: body, cpShape: cpShape}
	collider.SetPose(Pose{})

	return collider
}

// NewColliderAt creates a new collider already moved to the given pose.
func NewColliderAt(pose Pose, shape Shape) *Collider {
	collider := NewCollider(shape)
	collider.SetPose(pose)
	return collider
}

func (c *Collider) Shape() Shape {
	return c.shape
}

func (c *Collider) Pose() Pose {
	return c.pose
}

func (c *Collider) SetPose(pose Pose) {
	c.pose = pose

	c.body.SetPosition(cpVecOf(pose.Position))
	c.body.SetAngle(float64(pose.Rotation))

	// update the transformed vertices used by the queries
	c.cpShape.CacheBB()
}

func cpVecOf(vec gm.Vec) cp.Vector {
	return cp.Vector{X: vec.X, Y: vec.Y}
}

func toVec(v cp.Vector) gm.Vec {
	return gm.Vec{X: v.X, Y: v.Y}
}
