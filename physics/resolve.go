package physics

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/oliverbestmann/arena"
	"github.com/oliverbestmann/arena/gm"
)

// participant is one side of a probed pair. Exactly one of body and element is set.
type participant struct {
	id       arena.EntityId
	collider *Collider

	body    *arena.Body
	element *arena.ArenaElement
}

func (p *participant) velocity() gm.Vec {
	if p.body == nil {
		return gm.VecZero
	}

	return p.body.RigidBody.Velocity
}

func (p *participant) mass() float64 {
	if p.body == nil {
		return math.Inf(1)
	}

	return p.body.RigidBody.Mass
}

// excludes returns true if one side has the other side as its excluded peer.
func (p *participant) excludes(other *participant) bool {
	if p.body == nil {
		return false
	}

	peer, ok := p.body.RigidBody.ExcludedPeer.Get()
	return ok && peer == other.id
}

// pendingContact is a contact that was started this step and waits for resolution.
type pendingContact struct {
	key     PairKey
	contact ContactRecord

	a, b participant

	// positions used for the query, after rewinding to a predicted impact
	positionA, positionB gm.Vec
}

// applyPolicy runs react if the policy of the body allows for another bounce.
// A body that has run out of bounces is stopped and despawned, unless it sticks.
func (e *Engine) applyPolicy(commands *arena.Commands, entityId arena.EntityId, body *arena.Body, react func()) {
	switch policy := body.RigidBody.Policy.(type) {
	case nil, arena.Through:
		return

	case *arena.Bounce:
		remaining, limited := policy.MaxBounces.Get()

		switch {
		case !limited:
			react()

		case remaining > 0:
			policy.MaxBounces = arena.Some(remaining - 1)
			react()

		default:
			body.RigidBody.Velocity = gm.VecZero

			if policy.Sticks {
				return
			}

			e.logger.Debug("Despawn body without bounces left", slog.Any("entity", entityId))
			commands.Entity(entityId).Despawn()
			e.despawned.Insert(entityId)
		}

	default:
		panic(fmt.Sprintf("unknown collision policy %T", policy))
	}
}

// resolveBodies pushes two movable bodies apart. The velocity change of each body
// is proportional to the mass of the other body.
func (e *Engine) resolveBodies(commands *arena.Commands, pending *pendingContact, dt float64) {
	massA, massB := pending.contact.MassA, pending.contact.MassB
	if massA+massB <= 0 {
		massA, massB = 1, 1
	}

	offset := pending.positionA.Sub(pending.contact.Point)

	e.applyPolicy(commands, pending.a.id, pending.a.body, func() {
		scale := e.Config.ImpulseFactor * 2 * massB / (massA + massB)
		bounceBody(pending.a.body, e.positionOf(&pending.a, pending.positionA), offset.Mul(scale), dt)
		e.resolved.Insert(pending.a.id)
	})

	if e.despawned.Has(pending.b.id) {
		return
	}

	e.applyPolicy(commands, pending.b.id, pending.b.body, func() {
		scale := e.Config.ImpulseFactor * 2 * massA / (massA + massB)
		bounceBody(pending.b.body, e.positionOf(&pending.b, pending.positionB), offset.Mul(-scale), dt)
		e.resolved.Insert(pending.b.id)
	})
}

func bounceBody(body *arena.Body, position, impulse gm.Vec, dt float64) {
	rb := &body.RigidBody
	rb.Velocity = rb.Velocity.Add(impulse)
	body.Transform.Translation = position.Add(rb.Velocity.Mul(dt))
}

// resolveStatic reflects a movable body on an arena element and moves it out of the element.
func (e *Engine) resolveStatic(commands *arena.Commands, mover, obstacle *participant, position, point gm.Vec, dt float64) {
	e.applyPolicy(commands, mover.id, mover.body, func() {
		rb := &mover.body.RigidBody

		offset := obstacle.element.Position.Sub(point)
		halfExtents := obstacle.element.Footprint().Mul(0.5)

		reflected := ResolveBounce(offset, halfExtents, obstacle.element.Hitbox.Shape, rb.Velocity)
		rb.Velocity = reflected.Mul(e.decayOf(rb.Mass))

		pushOut := point.Sub(position).Mul(e.Config.PushOutFraction)
		mover.body.Transform.Translation = e.positionOf(mover, position).Sub(pushOut).Add(rb.Velocity.Mul(dt))
		e.resolved.Insert(mover.id)
	})
}

// positionOf returns the position a resolution starts from. A body that was already
// moved by another contact of this step continues from its new translation.
func (e *Engine) positionOf(p *participant, probed gm.Vec) gm.Vec {
	if e.resolved.Has(p.id) {
		return p.body.Transform.Translation
	}

	return probed
}

func (e *Engine) decayOf(mass float64) float64 {
	switch e.Config.Decay {
	case DecayMass:
		return math.Exp(-e.Config.MassDecayRate * mass)
	default:
		return e.Config.WallDecay
	}
}
