package arena

import (
	"fmt"
	"time"
)

// ScheduleId identifies a schedule. All implementing types must be comparable.
type ScheduleId interface {
	fmt.Stringer
	isSchedule()
}

type scheduleId struct {
	name string
}

func (*scheduleId) isSchedule() {}

func (s *scheduleId) String() string {
	return s.name
}

// MakeScheduleId creates a new unique ScheduleId.
// The name passed to the schedule is used for debugging
func MakeScheduleId(name string) ScheduleId {
	return &scheduleId{name: name}
}

var (
	// FixedPreUpdate runs at the start of every fixed step. Movement and lifetimes live here.
	FixedPreUpdate = MakeScheduleId("FixedPreUpdate")

	// FixedUpdate holds the collision engine.
	FixedUpdate = MakeScheduleId("FixedUpdate")

	// FixedPostUpdate runs after the collision engine, e.g. for gameplay reacting to contacts.
	FixedPostUpdate = MakeScheduleId("FixedPostUpdate")

	// Last runs once per frame after all fixed steps of that frame.
	Last = MakeScheduleId("Last")
)

var fixedSchedules = []ScheduleId{FixedPreUpdate, FixedUpdate, FixedPostUpdate}

// DefaultStepInterval is the fixed step of 64 hz, same as bevy.
const DefaultStepInterval = time.Second / 64

func configureSchedules(app *App) {
	app.fixed.StepInterval = DefaultStepInterval

	app.AddSystems(FixedPreUpdate, tickLifetimesSystem, integrateVelocitySystem)
}
