package arena

import (
	"time"
)

// Timer measures a fixed duration. It finishes once and stays finished until Reset.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration

	justFinished bool
}

// NewTimer creates a new timer
func NewTimer(duration time.Duration) Timer {
	return Timer{duration: duration}
}

// Tick adds the given amount of time to the Timer.
func (t *Timer) Tick(delta time.Duration) *Timer {
	t.justFinished = false

	if t.Finished() {
		return t
	}

	t.elapsed = min(t.elapsed+delta, t.duration)
	t.justFinished = t.Finished()

	return t
}

// Duration returns the configured duration of the Timer.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Elapsed returns the already elapsed time of the Timer.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns the remaining time of the Timer.
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// Fraction returns the fraction to that this timer has finished. A freshly started timer
// will have a Fraction value of 0.
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}

	return float64(t.elapsed) / float64(t.duration)
}

// Finished returns true if the timer has finished.
func (t *Timer) Finished() bool {
	return t.elapsed >= t.duration
}

// JustFinished returns true if the timer has reached its duration at the previous call to Tick.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Reset resets the timer back to its starting point.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.justFinished = false
}
