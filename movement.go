package arena

// integrateVelocitySystem moves every body by its velocity.
func integrateVelocitySystem(world *World, _ *Commands, t FixedTime) {
	for _, body := range world.Bodies() {
		velocity := body.RigidBody.Velocity
		if velocity.IsZero() {
			continue
		}

		body.Transform.Translation = body.Transform.Translation.Add(velocity.Mul(t.DeltaSecs))
	}
}
