package arena

import (
	"log/slog"
	"time"
)

type Timings struct {
	Count         int
	Latest        time.Duration
	MovingAverage time.Duration
	Min, Max      time.Duration
}

func (t Timings) Add(d time.Duration) Timings {
	t.Latest = d

	if t.Count == 0 {
		t.Min = d
		t.Max = d
		t.MovingAverage = d
	} else {
		t.Min = min(t.Min, d)
		t.Max = max(t.Max, d)
		t.MovingAverage = (95*t.MovingAverage + 5*d) / 100
	}

	t.Count += 1

	return t
}

// TimingStats collects timings of named sections, e.g. schedules or engine phases.
type TimingStats struct {
	ByName map[string]Timings
	Order  []string
}

func NewTimingStats() TimingStats {
	return TimingStats{
		ByName: map[string]Timings{},
	}
}

// Measure starts a stopwatch for the named section.
// The elapsed time is recorded when calling Stop on the returned stopwatch.
func (t *TimingStats) Measure(name string) TimingStopwatch {
	if t == nil {
		return TimingStopwatch{Stop: func() {}}
	}

	startTime := time.Now()

	if _, ok := t.ByName[name]; !ok {
		if t.ByName == nil {
			t.ByName = map[string]Timings{}
		}

		t.Order = append(t.Order, name)
	}

	return TimingStopwatch{
		Stop: func() {
			duration := time.Since(startTime)
			t.ByName[name] = t.ByName[name].Add(duration)
		},
	}
}

// Log writes one debug record per section to the given logger.
func (t *TimingStats) Log(logger *slog.Logger) {
	for _, name := range t.Order {
		timings := t.ByName[name]
		logger.Debug("Timings",
			slog.String("section", name),
			slog.Int("count", timings.Count),
			slog.Duration("avg", timings.MovingAverage),
			slog.Duration("min", timings.Min),
			slog.Duration("max", timings.Max),
		)
	}
}

type TimingStopwatch struct {
	Stop func()
}
