// Package engine drives a simulation from a frame loop with a fixed tick rate.
package engine

import (
	"time"

	"lifeloop/internal/core"
)

// State describes what the scheduler did during the last frame.
type State int

const (
	// Idle means the accumulator stayed below one tick.
	Idle State = iota
	// Ticking means one or more ticks ran before rendering.
	Ticking
)

func (s State) String() string {
	if s == Ticking {
		return "ticking"
	}
	return "idle"
}

// Scheduler runs a Sim at a fixed rate independent of the frame rate.
type Scheduler struct {
	sim   core.Sim
	step  *core.FixedStep
	state State

	paused   bool
	tickOnce bool
	ticks    int
}

// NewScheduler binds sim to a fixed-step accumulator at tps ticks per second.
func NewScheduler(sim core.Sim, tps int) (*Scheduler, error) {
	fs, err := core.NewFixedStep(tps)
	if err != nil {
		return nil, err
	}
	return &Scheduler{sim: sim, step: fs}, nil
}

// Frame accounts for elapsed real time and runs every tick that became due,
// back-to-back. It returns the number of ticks executed. While paused the
// elapsed time is dropped.
func (s *Scheduler) Frame(elapsed time.Duration) int {
	n := 0
	if s.paused {
		s.step.Discard()
		if s.tickOnce {
			n = 1
		}
	} else {
		n = s.step.Advance(elapsed)
	}
	s.tickOnce = false
	for i := 0; i < n; i++ {
		s.sim.Step()
	}
	s.ticks += n
	s.state = Idle
	if n > 0 {
		s.state = Ticking
	}
	return n
}

// Sim returns the driven simulation.
func (s *Scheduler) Sim() core.Sim { return s.sim }

// State reports whether the last frame ran any ticks.
func (s *Scheduler) State() State { return s.state }

// Ticks returns the total number of ticks executed.
func (s *Scheduler) Ticks() int { return s.ticks }

// TickDuration returns the simulated time covered by one tick.
func (s *Scheduler) TickDuration() time.Duration { return s.step.Step() }

// SetTPS changes the tick rate.
func (s *Scheduler) SetTPS(tps int) error { return s.step.SetTPS(tps) }

// Paused reports whether ticking is suspended.
func (s *Scheduler) Paused() bool { return s.paused }

// Pause suspends ticking.
func (s *Scheduler) Pause() { s.paused = true }

// Resume continues ticking with an empty accumulator.
func (s *Scheduler) Resume() {
	if s.paused {
		s.step.Discard()
	}
	s.paused = false
}

// TogglePause flips between paused and running.
func (s *Scheduler) TogglePause() {
	if s.paused {
		s.Resume()
		return
	}
	s.Pause()
}

// StepOnce requests a single tick on the next frame while paused.
func (s *Scheduler) StepOnce() { s.tickOnce = true }

// Reset reseeds the simulation and empties the accumulator.
func (s *Scheduler) Reset(seed int64) {
	s.sim.Reset(seed)
	s.step.Discard()
	s.state = Idle
}
