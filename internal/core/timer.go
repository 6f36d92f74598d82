package core

import (
	"fmt"
	"time"
)

// FixedStep accumulates real elapsed time and hands it out in fixed-size
// simulation ticks, decoupling the tick rate from the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The accumulator starts empty.
func NewFixedStep(tps int) (*FixedStep, error) {
	fs := &FixedStep{}
	if err := fs.SetTPS(tps); err != nil {
		return nil, err
	}
	return fs, nil
}

// SetTPS changes the tick rate. It is safe to call from the main loop; the
// accumulated time is kept.
func (f *FixedStep) SetTPS(tps int) error {
	if tps <= 0 {
		return fmt.Errorf("%w: ticks per second must be positive, got %d", ErrInvalidConfig, tps)
	}
	step := time.Second / time.Duration(tps)
	if step <= 0 {
		return fmt.Errorf("%w: %d ticks per second is finer than 1ns", ErrInvalidConfig, tps)
	}
	f.step = step
	return nil
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Accumulated returns the simulated time not yet consumed by a tick.
func (f *FixedStep) Accumulated() time.Duration { return f.accumulator }

// Advance adds elapsed to the accumulator and reports how many whole ticks
// are now due. The due time is consumed from the accumulator. Negative
// elapsed values are ignored.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		f.accumulator += elapsed
	}
	ticks := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		ticks++
	}
	return ticks
}

// Discard drops any accumulated time.
func (f *FixedStep) Discard() { f.accumulator = 0 }
