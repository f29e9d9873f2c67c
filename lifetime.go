package arena

import "time"

// DespawnAfter returns a lifetime for Body.Lifetime that despawns the body
// after the given duration.
func DespawnAfter(duration time.Duration) Option[Timer] {
	return Some(NewTimer(duration))
}

func tickLifetimesSystem(world *World, commands *Commands, t FixedTime) {
	for entityId, body := range world.Bodies() {
		timer, ok := body.Lifetime.Get()
		if !ok {
			continue
		}

		timer.Tick(t.Delta)
		body.Lifetime = Some(timer)

		if timer.Finished() {
			commands.Entity(entityId).Despawn()
		}
	}
}
