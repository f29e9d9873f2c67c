package physics

import (
	"math"
	"testing"

	"github.com/oliverbestmann/arena"
	"github.com/oliverbestmann/arena/gm"
	"github.com/stretchr/testify/require"
)

func requireVecInDelta(t *testing.T, expected, actual gm.Vec) {
	t.Helper()
	require.InDelta(t, expected.X, actual.X, 1e-9, "x of %s", actual)
	require.InDelta(t, expected.Y, actual.Y, 1e-9, "y of %s", actual)
}

func TestClassifyRectangleContact(t *testing.T) {
	half := gm.Vec{X: 1, Y: 1}

	require.Equal(t, SideCorner, ClassifyRectangleContact(gm.Vec{X: 0.5, Y: 0.5}, half))
	require.Equal(t, SideTopBottom, ClassifyRectangleContact(gm.Vec{X: 0, Y: -1}, half))
	require.Equal(t, SideLeftRight, ClassifyRectangleContact(gm.Vec{X: 1, Y: 0}, half))
	require.Equal(t, SideOutside, ClassifyRectangleContact(gm.Vec{X: 1, Y: 1}, half))
}

func TestResolveBounceRectangle(t *testing.T) {
	half := gm.Vec{X: 1, Y: 1}

	t.Run("left edge", func(t *testing.T) {
		out := ResolveBounce(gm.Vec{X: 1}, half, arena.HitboxRectangle, gm.Vec{X: 1, Y: 1})
		require.Equal(t, gm.Vec{X: -1, Y: 1}, out)
	})

	t.Run("bottom edge", func(t *testing.T) {
		out := ResolveBounce(gm.Vec{Y: -1}, half, arena.HitboxRectangle, gm.Vec{X: 1, Y: -1})
		require.Equal(t, gm.Vec{X: 1, Y: 1}, out)
	})

	t.Run("corner", func(t *testing.T) {
		out := ResolveBounce(gm.Vec{X: 0.5, Y: -0.5}, half, arena.HitboxRectangle, gm.Vec{X: 3, Y: -2})
		require.Equal(t, gm.Vec{X: -3, Y: 2}, out)
	})

	t.Run("outside", func(t *testing.T) {
		out := ResolveBounce(gm.Vec{X: 2, Y: 2}, half, arena.HitboxRectangle, gm.Vec{X: 3, Y: -2})
		require.Equal(t, gm.Vec{X: -3, Y: 2}, out)
	})
}

func TestResolveBounceCircle(t *testing.T) {
	out := ResolveBounce(gm.Vec{X: 1}, gm.Vec{}, arena.HitboxCircle, gm.Vec{X: -1, Y: 1})
	requireVecInDelta(t, gm.Vec{X: 1, Y: 1}, out)

	t.Run("keeps speed", func(t *testing.T) {
		for _, incoming := range []gm.Vec{{X: 3, Y: 4}, {X: -10, Y: 0.5}, {X: 0, Y: -7}} {
			for _, offset := range []gm.Vec{{X: 1}, {X: -2, Y: 1}, {X: 0.3, Y: -0.8}} {
				out := ResolveBounce(offset, gm.Vec{}, arena.HitboxCircle, incoming)
				require.InDelta(t, incoming.Length(), out.Length(), 1e-9)
			}
		}
	})

	t.Run("resting body", func(t *testing.T) {
		out := ResolveBounce(gm.Vec{X: 1}, gm.Vec{}, arena.HitboxCircle, gm.Vec{})
		require.Equal(t, gm.VecZero, out)
	})

	t.Run("deterministic", func(t *testing.T) {
		offset := gm.Vec{X: 0.25, Y: -3}
		incoming := gm.Vec{X: -12, Y: 7}

		first := ResolveBounce(offset, gm.Vec{}, arena.HitboxCircle, incoming)
		for range 10 {
			require.Equal(t, first, ResolveBounce(offset, gm.Vec{}, arena.HitboxCircle, incoming))
		}
	})

	t.Run("angle wraps around", func(t *testing.T) {
		// the reflected angle lies beyond pi and must be wrapped back into range
		out := ResolveBounce(gm.Vec{X: -1, Y: 0.01}, gm.Vec{}, arena.HitboxCircle, gm.Vec{X: 1, Y: -1})
		require.False(t, math.IsNaN(out.X) || math.IsNaN(out.Y))
		require.InDelta(t, math.Sqrt2, out.Length(), 1e-9)
	})
}

func TestResolveBounceRandomized(t *testing.T) {
	for range 1000 {
		incoming := gm.VecFromAngle(gm.RandomAngle()).Mul(gm.RandomIn(0.1, 500))
		offset := gm.VecFromAngle(gm.RandomAngle()).Mul(gm.RandomIn(0.5, 20))

		circle := ResolveBounce(offset, gm.Vec{}, arena.HitboxCircle, incoming)
		require.InDelta(t, incoming.Length(), circle.Length(), 1e-6)

		// reflection on a rectangle only ever flips signs
		rect := ResolveBounce(offset, gm.Vec{X: 5, Y: 5}, arena.HitboxRectangle, incoming)
		require.Equal(t, math.Abs(incoming.X), math.Abs(rect.X))
		require.Equal(t, math.Abs(incoming.Y), math.Abs(rect.Y))
	}
}
