package arena

import (
	"testing"
	"time"

	"github.com/oliverbestmann/arena/gm"
	"github.com/stretchr/testify/require"
)

func TestAppRunsFixedSteps(t *testing.T) {
	var app App

	var steps []time.Duration
	app.AddSystems(FixedUpdate, func(_ *World, _ *Commands, t FixedTime) {
		steps = append(steps, t.Elapsed)
	})

	var frames int
	app.AddSystems(Last, func(*World, *Commands, FixedTime) {
		frames += 1
	})

	// not enough time for a full step
	require.Equal(t, 0, app.Update(DefaultStepInterval/2))
	require.Empty(t, steps)

	// two and a half steps worth of time
	require.Equal(t, 2, app.Update(2*DefaultStepInterval))
	require.Equal(t, []time.Duration{DefaultStepInterval, 2 * DefaultStepInterval}, steps)
	require.Equal(t, DefaultStepInterval/2, app.FixedTime().Overstep())

	require.Equal(t, 2, frames)
}

func TestAppScheduleOrder(t *testing.T) {
	var app App

	var order []string
	record := func(name string) System {
		return func(*World, *Commands, FixedTime) {
			order = append(order, name)
		}
	}

	app.AddSystems(FixedPostUpdate, record("post"))
	app.AddSystems(FixedUpdate, record("update-a"), record("update-b"))
	app.AddSystems(FixedPreUpdate, record("pre"))

	app.Step()

	require.Equal(t, []string{"pre", "update-a", "update-b", "post"}, order)
}

func TestAppAppliesCommandsBetweenSystems(t *testing.T) {
	var app App

	var spawned EntityId
	app.AddSystems(FixedUpdate,
		func(_ *World, commands *Commands, _ FixedTime) {
			spawned = commands.SpawnBody(testBody("a")).Id()
		},

		func(world *World, _ *Commands, _ FixedTime) {
			require.True(t, world.IsAlive(spawned))
		},
	)

	app.Step()
	require.True(t, app.World().IsAlive(spawned))
}

func TestAppMovesBodies(t *testing.T) {
	var app App
	app.SetStepInterval(time.Second / 10)

	body := testBody("a")
	body.RigidBody.Velocity = gm.Vec{X: 10, Y: -5}

	entityId := app.World().SpawnBody(body)

	app.Step()
	app.Step()

	moved, _ := app.World().Body(entityId)
	require.InDelta(t, 2, moved.Transform.Translation.X, 1e-9)
	require.InDelta(t, -1, moved.Transform.Translation.Y, 1e-9)
}

func TestAppDespawnsAfterLifetime(t *testing.T) {
	var app App
	app.SetStepInterval(100 * time.Millisecond)

	body := testBody("a")
	body.Lifetime = DespawnAfter(250 * time.Millisecond)

	entityId := app.World().SpawnBody(body)

	app.Step()
	app.Step()
	require.True(t, app.World().IsAlive(entityId))

	app.Step()
	require.False(t, app.World().IsAlive(entityId))
}

func TestAppPanicsOnInvalidStepInterval(t *testing.T) {
	var app App
	require.Panics(t, func() { app.SetStepInterval(0) })
}

func TestAppPanicsWhenModifyingRunningSchedule(t *testing.T) {
	var app App

	app.AddSystems(FixedUpdate, func(*World, *Commands, FixedTime) {
		app.AddSystems(FixedUpdate, func(*World, *Commands, FixedTime) {})
	})

	require.Panics(t, app.Step)
}

func TestAppCollectsTimings(t *testing.T) {
	var app App
	app.AddSystems(FixedUpdate, func(*World, *Commands, FixedTime) {})

	app.Step()
	app.Step()

	timings, ok := app.Stats().ByName[FixedUpdate.String()]
	require.True(t, ok)
	require.Equal(t, 2, timings.Count)
}

func TestPluginFunc(t *testing.T) {
	var app App

	var applied bool
	app.AddPlugin(PluginFunc(func(app *App) {
		applied = true
	}))

	require.True(t, applied)
}
