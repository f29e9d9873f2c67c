package physics

import (
	"log/slog"

	"github.com/oliverbestmann/arena"
	"github.com/oliverbestmann/arena/gm"
	"github.com/oliverbestmann/arena/internal/set"
)

// Engine detects and resolves contacts between bodies and arena elements.
// It runs once per fixed step, after the velocities have been integrated.
type Engine struct {
	Config Config

	logger   *slog.Logger
	registry *Registry
	stats    *arena.TimingStats

	started *arena.Messages[ContactStarted]
	ended   *arena.Messages[ContactEnded]

	colliders map[arena.EntityId]*Collider
	despawned set.Set[arena.EntityId]

	// bodies that were already moved by a resolution of the current step
	resolved set.Set[arena.EntityId]

	// reused between steps
	movers  []participant
	statics []participant
	pending []pendingContact
}

func NewEngine(config Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("module", "physics"))

	return &Engine{
		Config:    config,
		logger:    logger,
		registry:  NewRegistry(logger),
		started:   &arena.Messages[ContactStarted]{},
		ended:     &arena.Messages[ContactEnded]{},
		colliders: map[arena.EntityId]*Collider{},
	}
}

// ApplyTo installs the engine into the FixedUpdate schedule of the app.
func (e *Engine) ApplyTo(app *arena.App) {
	e.stats = app.Stats()

	arena.RotateMessages(app, e.started)
	arena.RotateMessages(app, e.ended)

	app.AddSystems(arena.FixedUpdate, e.stepSystem)
}

func (e *Engine) stepSystem(world *arena.World, commands *arena.Commands, t arena.FixedTime) {
	e.Step(world, commands, t.DeltaSecs)
}

func (e *Engine) Registry() *Registry {
	return e.registry
}

func (e *Engine) ContactStarted() *arena.Messages[ContactStarted] {
	return e.started
}

func (e *Engine) ContactEnded() *arena.Messages[ContactEnded] {
	return e.ended
}

// Step runs one pass of the engine. All contacts are detected first, then every contact
// that started during this step is resolved exactly once. Bodies that run out of bounces
// are despawned through the given commands.
func (e *Engine) Step(world *arena.World, commands *arena.Commands, dt float64) {
	dt = max(dt, 0)
	e.despawned.Clear()
	e.resolved.Clear()

	e.purge(world)
	e.collect(world)

	stopNarrowPhase := e.stats.Measure("physics.narrow-phase")

	e.pending = e.pending[:0]
	for idx := range e.movers {
		a := &e.movers[idx]

		for jdx := idx + 1; jdx < len(e.movers); jdx++ {
			e.probe(a, &e.movers[jdx], dt)
		}

		for jdx := range e.statics {
			e.probe(a, &e.statics[jdx], dt)
		}
	}

	stopNarrowPhase.Stop()

	defer e.stats.Measure("physics.resolve").Stop()

	for idx := range e.pending {
		pending := &e.pending[idx]

		// a body might have been despawned by an earlier contact of this step
		if e.despawned.Has(pending.a.id) || e.despawned.Has(pending.b.id) {
			continue
		}

		if pending.b.element != nil {
			e.resolveStatic(commands, &pending.a, &pending.b, pending.positionA, pending.contact.Point, dt)
			continue
		}

		e.resolveBodies(commands, pending, dt)
	}
}

// purge forgets everything about entities that do not exist anymore.
func (e *Engine) purge(world *arena.World) {
	defer e.stats.Measure("physics.purge").Stop()

	for _, key := range e.registry.Purge(world.IsAlive) {
		e.ended.Send(ContactEnded{A: key.A, B: key.B})
	}

	for entityId := range e.colliders {
		if !world.IsAlive(entityId) {
			delete(e.colliders, entityId)
		}
	}
}

// collect poses the colliders of all bodies and solid arena elements.
func (e *Engine) collect(world *arena.World) {
	defer e.stats.Measure("physics.collect").Stop()

	e.movers = e.movers[:0]
	for entityId, body := range world.Bodies() {
		collider := e.colliderOf(entityId, ShapeOf(body.RigidBody.Hitbox))
		collider.SetPose(PoseOf(body.Transform))

		e.movers = append(e.movers, participant{
			id:       entityId,
			collider: collider,
			body:     body,
		})
	}

	e.statics = e.statics[:0]
	for entityId, element := range world.Obstacles() {
		if !element.Solid() {
			continue
		}

		pose, shape := ObstacleShapeOf(element)

		collider := e.colliderOf(entityId, shape)
		collider.SetPose(pose)

		e.statics = append(e.statics, participant{
			id:       entityId,
			collider: collider,
			element:  element,
		})
	}
}

func (e *Engine) colliderOf(entityId arena.EntityId, shape Shape) *Collider {
	collider, ok := e.colliders[entityId]
	if !ok || collider.Shape() != shape {
		collider = NewCollider(shape)
		e.colliders[entityId] = collider
	}

	return collider
}

// probe checks a single pair. The first participant is always a movable body.
func (e *Engine) probe(a, b *participant, dt float64) {
	if a.excludes(b) || b.excludes(a) {
		return
	}

	key, ok := e.registry.Key(a.id, b.id)
	if !ok {
		return
	}

	velocityA, velocityB := a.velocity(), b.velocity()

	poseA, poseB := a.collider.Pose(), b.collider.Pose()
	defer a.collider.SetPose(poseA)
	defer b.collider.SetPose(poseB)

	positionA, positionB := poseA.Position, poseB.Position

	// move both back to the moment of a predicted impact
	if overshoot, realized := e.registry.CountDown(key, dt); realized {
		positionA = positionA.Sub(velocityA.Mul(overshoot))
		positionB = positionB.Sub(velocityB.Mul(overshoot))

		a.collider.SetPose(Pose{Position: positionA, Rotation: poseA.Rotation})
		b.collider.SetPose(Pose{Position: positionB, Rotation: poseB.Rotation})

		e.logger.Debug("Rewind to predicted impact",
			slog.Any("pair", key),
			slog.Float64("overshoot", overshoot),
		)
	}

	speed := max(velocityA.Length(), velocityB.Length())
	fast := speed > e.Config.SpeedThreshold

	margin := e.Config.Margin
	if fast {
		margin = speed * dt * e.Config.HorizonScale
	}

	proximity := QueryColliders(a.collider, b.collider, margin)

	if fast && proximity == WithinMargin {
		e.predictImpact(key, a, b, velocityA, velocityB, dt)
	}

	var current *ContactRecord
	if proximity == Intersecting {
		if contact, ok := ContactColliders(a.collider, b.collider, 0); ok {
			current = &ContactRecord{
				Point:            contact.Point,
				Normal:           contact.Normal,
				MassA:            a.mass(),
				MassB:            b.mass(),
				RelativeVelocity: velocityA.Sub(velocityB),
			}
		}
	}

	switch e.registry.Reconcile(key, current) {
	case Started:
		// only reported for a non nil record
		contact := *current

		normal := contact.Normal
		if key.A != a.id {
			normal = normal.Neg()
		}

		e.logger.Debug("Contact started", slog.Any("pair", key), slog.Any("point", contact.Point))
		e.started.Send(ContactStarted{A: key.A, B: key.B, Position: contact.Point, Normal: normal})

		e.pending = append(e.pending, pendingContact{
			key:       key,
			contact:   contact,
			a:         *a,
			b:         *b,
			positionA: positionA,
			positionB: positionB,
		})

	case Ended:
		e.ended.Send(ContactEnded{A: key.A, B: key.B})
	}
}

func (e *Engine) predictImpact(key PairKey, a, b *participant, velocityA, velocityB gm.Vec, dt float64) {
	if _, exists := e.registry.Impact(key); exists {
		return
	}

	horizon := dt * e.Config.HorizonScale

	toi, ok := TimeOfImpact(a.collider, b.collider, velocityA.Sub(velocityB), horizon)
	if !ok {
		return
	}

	mover := a.id
	if velocityB.LengthSqr() > velocityA.LengthSqr() {
		mover = b.id
	}

	e.registry.PredictImpact(key, TOIRecord{Mover: mover, Remaining: toi})

	e.logger.Debug("Predicted impact",
		slog.Any("pair", key),
		slog.Any("mover", mover),
		slog.Float64("toi", toi),
	)
}
