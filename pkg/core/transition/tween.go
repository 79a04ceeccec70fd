package transition

import (
	"context"
	"time"
)

// DefaultFrameInterval is the frame period of a [TickerTweener].
const DefaultFrameInterval = 16 * time.Millisecond

// Tweener interpolates a vector of values from one state to another over
// time, calling step with every intermediate frame.
type Tweener interface {
	Tween(ctx context.Context, from, to []float64, anim Animation, step func([]float64)) *Task
}

// Task is a running tween.
type Task struct {
	done   chan struct{}
	cancel context.CancelFunc
	err    error
}

// Done is closed when the task has finished or was cancelled.
func (t *Task) Done() <-chan struct{} { return t.done }

// Cancel stops the task and waits until its last frame has been applied.
func (t *Task) Cancel() {
	t.cancel()
	<-t.done
}

// Err returns nil while running or after completing, and the cancellation
// cause after the task was stopped early.
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Wait blocks until the task ends and returns [Task.Err].
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

// Go runs fn as a task. fn must return promptly once ctx is done.
func Go(ctx context.Context, fn func(ctx context.Context) error) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{done: make(chan struct{}), cancel: cancel}
	go func() {
		defer close(t.done)
		defer cancel()
		t.err = fn(ctx)
	}()
	return t
}

// TickerTweener emits frames at a fixed interval, derived from the wall
// clock. The final frame is exactly the target.
type TickerTweener struct {
	// Interval between frames. Zero means DefaultFrameInterval.
	Interval time.Duration
	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
}

// Tween implements [Tweener].
func (tw TickerTweener) Tween(ctx context.Context, from, to []float64, anim Animation, step func([]float64)) *Task {
	interval := tw.Interval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	now := tw.Now
	if now == nil {
		now = time.Now
	}
	ease := anim.EasingFunc()

	return Go(ctx, func(ctx context.Context) error {
		if anim.Duration <= 0 {
			step(Interpolate(from, to, 1))
			return nil
		}
		start := now()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
			p := float64(now().Sub(start)) / float64(anim.Duration)
			if p >= 1 {
				step(Interpolate(from, to, 1))
				return nil
			}
			step(Interpolate(from, to, ease(max(0, p))))
		}
	})
}
