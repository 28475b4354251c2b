package mines

import (
	"fmt"
	"time"
)

// Clock tracks the start and end of a session. It starts on the first reveal,
// not on creation, and stops exactly once.
type Clock struct {
	now              func() time.Time
	start, end       time.Time
	started, stopped bool
}

func newClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

func (c *Clock) Start() {
	if c.started {
		return
	}
	c.start, c.started = c.now(), true
}

func (c *Clock) Stop() {
	if !c.started || c.stopped {
		return
	}
	c.end, c.stopped = c.now(), true
}

func (c *Clock) Started() bool {
	return c.started
}

func (c *Clock) Stopped() bool {
	return c.stopped
}

// StartTime returns the zero time before the first reveal.
func (c *Clock) StartTime() time.Time {
	return c.start
}

// EndTime returns the zero time while the game is in progress.
func (c *Clock) EndTime() time.Time {
	return c.end
}

func (c *Clock) Elapsed() time.Duration {
	switch {
	case c.stopped:
		return c.end.Sub(c.start)
	case c.started:
		return c.now().Sub(c.start)
	default:
		return 0
	}
}

// FormatDuration renders d as M:SS, truncated to whole seconds.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Second)
	m := int(d / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%d:%02d", m, s)
}
