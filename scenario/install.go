package scenario

import (
	"cmp"
	"log/slog"
	"slices"
	"time"

	"github.com/oliverbestmann/arena"
	"github.com/oliverbestmann/arena/gm"
	"github.com/oliverbestmann/arena/physics"
)

// Installed is a scenario that was spawned into an App.
type Installed struct {
	Engine *physics.Engine

	// Bodies maps the names of bodies to their entity ids.
	Bodies map[string]arena.EntityId
}

// Install spawns the scenario into the world of the app and adds a collision engine
// configured by the scenario. The scenario must have been validated.
func (s *Scenario) Install(app *arena.App, logger *slog.Logger) *Installed {
	if logger == nil {
		logger = slog.Default()
	}

	app.SetStepInterval(time.Second / time.Duration(s.StepRate))

	engine := physics.NewEngine(s.Physics, logger)
	app.AddPlugin(engine)

	world := app.World()

	for _, spec := range s.Obstacles {
		element, _ := spec.ArenaElement()
		world.SpawnObstacle(element)
	}

	installed := &Installed{
		Engine: engine,
		Bodies: map[string]arena.EntityId{},
	}

	for _, spec := range s.Bodies {
		body, _ := spec.Body()

		entityId := world.SpawnBody(body)
		if spec.Name != "" {
			installed.Bodies[spec.Name] = entityId
		}
	}

	if len(s.Shots) > 0 {
		app.AddSystems(arena.FixedPostUpdate, s.shotsSystem(installed.Bodies, logger))
	}

	logger.Info("Scenario installed",
		slog.String("name", s.Name),
		slog.Int("obstacles", len(s.Obstacles)),
		slog.Int("bodies", len(s.Bodies)),
		slog.Int("shots", len(s.Shots)),
	)

	return installed
}

// shotsSystem fires every shot once the elapsed time has reached its point in time.
func (s *Scenario) shotsSystem(shooters map[string]arena.EntityId, logger *slog.Logger) arena.System {
	shots := slices.Clone(s.Shots)
	slices.SortStableFunc(shots, func(lhs, rhs ShotSpec) int {
		return cmp.Compare(lhs.At, rhs.At)
	})

	return func(world *arena.World, commands *arena.Commands, t arena.FixedTime) {
		for len(shots) > 0 && shots[0].At <= t.Elapsed {
			shot := shots[0]
			shots = shots[1:]

			shooterId := shooters[shot.Shooter]

			shooter, ok := world.Body(shooterId)
			if !ok {
				logger.Warn("Shooter is gone, dropping shot", slog.String("shooter", shot.Shooter))
				continue
			}

			// zero points up
			aim := gm.DegToRad(shot.Aim + 90)

			projectileId := arena.FireProjectile(commands, shooterId, shooter.Transform, aim, shot.Weapon())

			logger.Debug("Fired projectile",
				slog.String("shooter", shot.Shooter),
				slog.Any("projectile", projectileId),
			)
		}
	}
}
