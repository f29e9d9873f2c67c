package arena

import (
	"time"
)

// FixedTime measures the progression of time in fixed step systems.
//
// The App accumulates the real frame time and runs one fixed step whenever a full
// StepInterval has accumulated. The default value of StepInterval is 1/64s.
type FixedTime struct {
	Elapsed   time.Duration
	Delta     time.Duration
	DeltaSecs float64

	StepInterval time.Duration

	overstep time.Duration
}

// Overstep returns the accumulated time that did not yet make up a full step.
func (f FixedTime) Overstep() time.Duration {
	return f.overstep
}

func (f *FixedTime) accumulate(delta time.Duration) {
	f.overstep += max(0, delta)
}

// nextStep consumes one StepInterval of the accumulated time, if available.
func (f *FixedTime) nextStep() bool {
	step := f.StepInterval
	if step <= 0 || f.overstep < step {
		return false
	}

	f.overstep -= step

	f.Elapsed += step
	f.Delta = step
	f.DeltaSecs = step.Seconds()

	return true
}
