package physics

import (
	"testing"

	"github.com/oliverbestmann/arena"
	"github.com/oliverbestmann/arena/gm"
	"github.com/stretchr/testify/require"
)

func TestShapeOf(t *testing.T) {
	ball := ShapeOf(arena.Hitbox{Shape: arena.HitboxCircle, Width: 4, Height: 4})
	require.Equal(t, ShapeBall, ball.Kind)
	require.Equal(t, 2.0, ball.Radius)

	// rectangular bodies still collide as a ball
	rectangle := ShapeOf(arena.Hitbox{Shape: arena.HitboxRectangle, Width: 4, Height: 6})
	require.Equal(t, ShapeBall, rectangle.Kind)
	require.Equal(t, 2.0, rectangle.Radius)
}

func TestObstacleShapeOf(t *testing.T) {
	element := &arena.ArenaElement{
		Position: gm.Vec{X: 10, Y: 20},
		Rotation: arena.Rotate90,
		Hitbox:   arena.Hitbox{Shape: arena.HitboxRectangle, Width: 4, Height: 10},
	}

	pose, shape := ObstacleShapeOf(element)
	require.Equal(t, Pose{Position: gm.Vec{X: 10, Y: 20}}, pose)
	require.Equal(t, gm.Vec{X: 5, Y: 2}, shape.HalfExtents)
}

func TestQuery(t *testing.T) {
	ball := Ball(1)
	wall := Cuboid(gm.Vec{X: 1, Y: 5})
	origin := Pose{}

	t.Run("intersecting", func(t *testing.T) {
		proximity := Query(Pose{Position: gm.Vec{X: -1.5}}, ball, origin, wall, 5)
		require.Equal(t, Intersecting, proximity)
	})

	t.Run("touching", func(t *testing.T) {
		proximity := Query(Pose{Position: gm.Vec{X: -2}}, ball, origin, wall, 5)
		require.Equal(t, Intersecting, proximity)
	})

	t.Run("within margin", func(t *testing.T) {
		proximity := Query(Pose{Position: gm.Vec{X: -5}}, ball, origin, wall, 5)
		require.Equal(t, WithinMargin, proximity)
	})

	t.Run("disjoint", func(t *testing.T) {
		proximity := Query(Pose{Position: gm.Vec{X: -10}}, ball, origin, wall, 5)
		require.Equal(t, Disjoint, proximity)
	})

	t.Run("symmetric", func(t *testing.T) {
		proximity := Query(origin, wall, Pose{Position: gm.Vec{X: -5}}, ball, 5)
		require.Equal(t, WithinMargin, proximity)
	})

	t.Run("two balls", func(t *testing.T) {
		require.Equal(t, Intersecting, Query(origin, ball, Pose{Position: gm.Vec{X: 1.5}}, ball, 5))
		require.Equal(t, WithinMargin, Query(origin, ball, Pose{Position: gm.Vec{X: 4}}, ball, 5))
		require.Equal(t, Disjoint, Query(origin, ball, Pose{Position: gm.Vec{X: 8}}, ball, 5))
	})

	t.Run("two cuboids", func(t *testing.T) {
		require.Equal(t, Disjoint, Query(origin, wall, origin, wall, 5))
	})
}

func TestContactOf(t *testing.T) {
	ball := Ball(1)
	wall := Cuboid(gm.Vec{X: 1, Y: 5})

	t.Run("ball against wall", func(t *testing.T) {
		contact, ok := ContactOf(Pose{Position: gm.Vec{X: -1.5, Y: 2}}, ball, Pose{}, wall, 0)
		require.True(t, ok)

		// point on the surface of the wall
		requireVecInDelta(t, gm.Vec{X: -1, Y: 2}, contact.Point)
		requireVecInDelta(t, gm.Vec{X: 1}, contact.Normal)
		require.InDelta(t, 0.5, contact.Depth, 1e-9)
	})

	t.Run("wall against ball", func(t *testing.T) {
		contact, ok := ContactOf(Pose{}, wall, Pose{Position: gm.Vec{X: -1.5, Y: 2}}, ball, 0)
		require.True(t, ok)

		// point on the surface of the ball
		requireVecInDelta(t, gm.Vec{X: -0.5, Y: 2}, contact.Point)
		requireVecInDelta(t, gm.Vec{X: -1}, contact.Normal)
		require.InDelta(t, 0.5, contact.Depth, 1e-9)
	})

	t.Run("apart", func(t *testing.T) {
		_, ok := ContactOf(Pose{Position: gm.Vec{X: -3}}, ball, Pose{}, wall, 0)
		require.False(t, ok)
	})

	t.Run("with prediction", func(t *testing.T) {
		contact, ok := ContactOf(Pose{Position: gm.Vec{X: -3}}, ball, Pose{}, wall, 2)
		require.True(t, ok)
		require.InDelta(t, -1, contact.Depth, 1e-9)
	})
}

func TestColliderFollowsPose(t *testing.T) {
	collider := NewCollider(Ball(1))
	other := NewColliderAt(Pose{Position: gm.Vec{X: 10}}, Ball(1))

	require.Equal(t, Disjoint, QueryColliders(collider, other, 1))

	collider.SetPose(Pose{Position: gm.Vec{X: 9}})
	require.Equal(t, Intersecting, QueryColliders(collider, other, 1))
	require.Equal(t, gm.Vec{X: 9}, collider.Pose().Position)
}
