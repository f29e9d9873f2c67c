package physics

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/arena/gm"
)

// TimeOfImpact sweeps collider a with the given velocity, relative to b, and returns
// the time in seconds until both shapes first touch. No impact is reported if it
// happens after horizon seconds. Shapes that already overlap report an impact at time zero.
func TimeOfImpact(a, b *Collider, relativeVelocity gm.Vec, horizon float64) (float64, bool) {
	if horizon <= 0 || relativeVelocity.IsZero() {
		return 0, false
	}

	ball, target, velocity := a, b, relativeVelocity
	if ball.shape.Kind != ShapeBall {
		if target.shape.Kind != ShapeBall {
			return 0, false
		}

		// sweep the ball backwards through the other shape
		ball, target, velocity = b, a, relativeVelocity.Neg()
	}

	start := ball.pose.Position
	end := start.Add(velocity.Mul(horizon))

	var info cp.SegmentQueryInfo
	if !target.cpShape.SegmentQuery(cpVecOf(start), cpVecOf(end), ball.shape.Radius, &info) {
		return 0, false
	}

	return info.Alpha * horizon, true
}
