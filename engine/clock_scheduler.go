package engine

import "time"

// ClockScheduler gates discrete simulation steps on a fixed logical interval
// It is polled from the render loop: Due reports whether a step should run now
// Each deadline is measured from the tick that consumed the previous one, so a
// stalled frame yields one late step and never a burst of catch-up steps
type ClockScheduler struct {
	clock TimeProvider

	tickInterval     time.Duration
	lastTickTime     time.Time // Last tick in clock time
	nextTickDeadline time.Time // lastTickTime + tickInterval

	tickCount uint64
}

// NewClockScheduler creates a scheduler whose first tick is due one interval from now
func NewClockScheduler(clock TimeProvider, tickInterval time.Duration) *ClockScheduler {
	cs := &ClockScheduler{
		clock:        clock,
		tickInterval: tickInterval,
	}
	cs.Reset()
	return cs
}

// Reset re-anchors the schedule at the current clock time and clears the tick count
func (cs *ClockScheduler) Reset() {
	now := cs.clock.Now()
	cs.tickCount = 0
	cs.lastTickTime = now
	cs.nextTickDeadline = now.Add(cs.tickInterval)
}

// SetInterval changes the logical interval, the next deadline is measured from the last tick
func (cs *ClockScheduler) SetInterval(d time.Duration) {
	cs.tickInterval = d
	cs.nextTickDeadline = cs.lastTickTime.Add(d)
}

// Interval returns the current logical interval
func (cs *ClockScheduler) Interval() time.Duration {
	return cs.tickInterval
}

// Due consumes one tick if its deadline has passed and returns the clock time elapsed since the previous tick
func (cs *ClockScheduler) Due() (time.Duration, bool) {
	now := cs.clock.Now()
	if now.Before(cs.nextTickDeadline) {
		return 0, false
	}

	elapsed := now.Sub(cs.lastTickTime)
	cs.lastTickTime = now
	cs.nextTickDeadline = now.Add(cs.tickInterval)

	cs.tickCount++
	return elapsed, true
}

// TickCount returns the number of ticks consumed since the last Reset
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount
}

// LastTickTime returns the clock time of the most recent tick (or Reset)
func (cs *ClockScheduler) LastTickTime() time.Time {
	return cs.lastTickTime
}
