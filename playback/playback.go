// Package playback steps through a precomputed trace.Trace.
//
// A Controller holds the trace and a current index. It moves forward,
// backward, jumps, and plays on a fixed interval. It never re-invokes the
// algorithm that produced the trace: all operations are index arithmetic
// over immutable steps, so stopping at any tick leaves no partial state.
//
// Concurrency: all methods are safe for concurrent use. Play runs its ticker
// loop in a single goroutine and delivers steps to onStep from there.
package playback

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/stepwise/trace"
)

// Sentinel errors for playback.
var (
	// ErrEmptyTrace is returned by navigation on a trace without steps.
	ErrEmptyTrace = errors.New("playback: trace is empty")

	// ErrBadInterval is returned by Play when interval <= 0.
	ErrBadInterval = errors.New("playback: interval must be positive")

	// ErrAlreadyPlaying is returned by Play while another Play is active.
	ErrAlreadyPlaying = errors.New("playback: already playing")
)

// Controller replays a trace one step at a time.
type Controller[S any] struct {
	mu      sync.Mutex
	tr      trace.Trace[S]
	current int
	cancel  context.CancelFunc // non-nil while playing
}

// New returns a Controller positioned at step 0.
func New[S any](tr trace.Trace[S]) *Controller[S] {
	return &Controller[S]{tr: tr}
}

// Len returns the number of steps in the underlying trace.
func (c *Controller[S]) Len() int { return c.tr.Len() }

// Index returns the current step index.
func (c *Controller[S]) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current
}

// Current returns the step at the current index.
// Returns ErrEmptyTrace if the trace has no steps.
func (c *Controller[S]) Current() (trace.Step[S], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stepLocked()
}

// AtEnd reports whether the current step is the last one.
func (c *Controller[S]) AtEnd() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current >= c.tr.Len()-1
}

// Advance moves one step forward and returns the new current step.
// At the last step it stays put and returns false.
func (c *Controller[S]) Advance() (trace.Step[S], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.advanceLocked()
}

// Retreat moves one step backward. At step 0 it stays put and returns false.
func (c *Controller[S]) Retreat() (trace.Step[S], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tr.Empty() || c.current == 0 {
		s, _ := c.stepLocked()
		return s, false
	}
	c.current--
	s, _ := c.stepLocked()

	return s, true
}

// JumpTo moves to step i.
// Returns trace.ErrStepOutOfRange (wrapped) for an invalid index; the current
// position is unchanged in that case.
func (c *Controller[S]) JumpTo(i int) (trace.Step[S], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.tr.At(i)
	if err != nil {
		return s, fmt.Errorf("playback: jump: %w", err)
	}
	c.current = i

	return s, nil
}

// Reset moves back to step 0.
func (c *Controller[S]) Reset() {
	c.mu.Lock()
	c.current = 0
	c.mu.Unlock()
}

// Playing reports whether a Play loop is active.
func (c *Controller[S]) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cancel != nil
}

// Play advances one step every interval and calls onStep with each new
// step. It blocks until the last step is reached, Stop is called, or ctx is
// done. Reaching the end or Stop returns nil; ctx cancellation returns
// ctx.Err(). Playback resumes from the current index, so Play after Stop
// continues where it left off.
func (c *Controller[S]) Play(ctx context.Context, interval time.Duration, onStep func(trace.Step[S])) error {
	if interval <= 0 {
		return fmt.Errorf("%w: %s", ErrBadInterval, interval)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		return ErrAlreadyPlaying
	}
	if c.tr.Empty() {
		c.mu.Unlock()
		return ErrEmptyTrace
	}
	playCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.cancel = nil
		c.mu.Unlock()
		cancel()
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-playCtx.Done():
			// Stop cancels only playCtx; the parent error wins if set.
			return ctx.Err()
		case <-ticker.C:
			c.mu.Lock()
			s, moved := c.advanceLocked()
			c.mu.Unlock()
			if !moved {
				return nil
			}
			if onStep != nil {
				onStep(s)
			}
		}
	}
}

// Stop halts an active Play at the next tick boundary. It does not wait for
// Play to return, so it may be called from onStep. It is a no-op when
// nothing is playing.
func (c *Controller[S]) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (c *Controller[S]) stepLocked() (trace.Step[S], error) {
	if c.tr.Empty() {
		var zero trace.Step[S]
		return zero, ErrEmptyTrace
	}

	return c.tr.At(c.current)
}

func (c *Controller[S]) advanceLocked() (trace.Step[S], bool) {
	if c.tr.Empty() || c.current >= c.tr.Len()-1 {
		s, _ := c.stepLocked()
		return s, false
	}
	c.current++
	s, _ := c.stepLocked()

	return s, true
}
