package orbitview

import (
	"time"
)

// Time is the per-frame clock, the equivalent of a display frame callback.
type Time struct {
	Time  time.Time
	Dt    time.Duration
	Frame uint64
}

// TimeNanos is the frame start time handed to renderers.
func (t *Time) TimeNanos() int64 {
	return t.Time.UnixNano()
}

type TimeModule struct {
	// Now overrides the clock, mostly for tests.
	Now func() time.Time
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	now := mod.Now
	if now == nil {
		now = time.Now
	}
	cmd.AddResources(&Time{
		Time: now(),
		Dt:   0,
	})
	cmd.UseSystem(
		System(func(t *Time) { advanceTime(t, now()) }).
			InStage(Prelude),
	)
}

func advanceTime(timeResource *Time, now time.Time) {
	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
	timeResource.Frame++
}
