package arena

import (
	"fmt"
	"time"
)

// System is a single step within a schedule. Changes to the world should go
// through the given Commands, they are applied after the system returns.
type System func(world *World, commands *Commands, t FixedTime)

type App struct {
	world     *World
	commands  *Commands
	fixed     FixedTime
	schedules map[ScheduleId][]System
	stats     TimingStats

	running ScheduleId
}

func (a *App) init() {
	if a.world != nil {
		return
	}

	a.world = NewWorld()
	a.commands = NewCommands(a.world)
	a.schedules = map[ScheduleId][]System{}
	a.stats = NewTimingStats()

	configureSchedules(a)
}

func (a *App) World() *World {
	a.init()
	return a.world
}

// Commands returns the command buffer of the app. Commands queued outside
// of a system are applied before the next system runs.
func (a *App) Commands() *Commands {
	a.init()
	return a.commands
}

func (a *App) Stats() *TimingStats {
	a.init()
	return &a.stats
}

func (a *App) FixedTime() FixedTime {
	a.init()
	return a.fixed
}

// SetStepInterval changes the length of one fixed step.
func (a *App) SetStepInterval(interval time.Duration) {
	if interval <= 0 {
		panic(fmt.Sprintf("step interval must be positive, got %s", interval))
	}

	a.init()
	a.fixed.StepInterval = interval
}

func (a *App) AddPlugin(plugin Plugin) {
	a.init()
	plugin.ApplyTo(a)
}

// AddSystems appends systems to a schedule. Systems run in the order they were added.
func (a *App) AddSystems(scheduleId ScheduleId, system System, systems ...System) {
	a.init()

	if a.running == scheduleId {
		panic(fmt.Sprintf("The schedule %q was modified while it is being executed", scheduleId))
	}

	a.schedules[scheduleId] = append(a.schedules[scheduleId], system)
	a.schedules[scheduleId] = append(a.schedules[scheduleId], systems...)
}

// Update advances the app by the given frame time. It runs as many fixed steps
// as have accumulated and finishes the frame by running the Last schedule.
// It returns the number of fixed steps that were executed.
func (a *App) Update(delta time.Duration) int {
	a.init()
	a.fixed.accumulate(delta)

	var steps int
	for a.fixed.nextStep() {
		a.runFixedMain()
		steps += 1
	}

	a.runSchedule(Last)

	return steps
}

// Step runs exactly one fixed step, independent of any accumulated frame time.
func (a *App) Step() {
	a.init()

	a.fixed.Elapsed += a.fixed.StepInterval
	a.fixed.Delta = a.fixed.StepInterval
	a.fixed.DeltaSecs = a.fixed.StepInterval.Seconds()

	a.runFixedMain()
}

func (a *App) runFixedMain() {
	for _, scheduleId := range fixedSchedules {
		a.runSchedule(scheduleId)
	}
}

func (a *App) runSchedule(scheduleId ScheduleId) {
	systems := a.schedules[scheduleId]
	if len(systems) == 0 {
		return
	}

	a.running = scheduleId
	defer func() { a.running = nil }()

	defer a.stats.Measure(scheduleId.String()).Stop()

	// apply anything that was queued from outside a system
	a.commands.Apply()

	for _, system := range systems {
		system(a.world, a.commands, a.fixed)
		a.commands.Apply()
	}
}

type Plugin interface {
	ApplyTo(app *App)
}

type PluginFunc func(app *App)

func (plugin PluginFunc) ApplyTo(app *App) {
	plugin(app)
}
