package engine

import (
	"context"
	"time"
)

// FramePacer caps the render cadence by enforcing a minimum interval per loop iteration
type FramePacer struct {
	clock       TimeProvider
	minInterval time.Duration
	frameStart  time.Time
	frameNumber uint64
}

// NewFramePacer creates a pacer, the first Begin reports a zero delta
func NewFramePacer(clock TimeProvider, minInterval time.Duration) *FramePacer {
	return &FramePacer{
		clock:       clock,
		minInterval: minInterval,
	}
}

// Begin marks the start of a frame and returns the time since the previous frame start
func (fp *FramePacer) Begin() time.Duration {
	now := fp.clock.Now()
	var delta time.Duration
	if !fp.frameStart.IsZero() {
		delta = now.Sub(fp.frameStart)
	}
	fp.frameStart = now
	fp.frameNumber++
	return delta
}

// Remaining returns how long the current frame must still wait to honor the minimum interval
func (fp *FramePacer) Remaining() time.Duration {
	elapsed := fp.clock.Now().Sub(fp.frameStart)
	if elapsed >= fp.minInterval {
		return 0
	}
	return fp.minInterval - elapsed
}

// Wait sleeps out the remainder of the frame, returning early with ctx.Err() on cancellation
func (fp *FramePacer) Wait(ctx context.Context) error {
	d := fp.Remaining()
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FrameNumber returns the number of frames begun
func (fp *FramePacer) FrameNumber() uint64 {
	return fp.frameNumber
}
