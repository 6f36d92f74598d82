// Package ui formats simulation state for on-screen display.
package ui

import (
	"fmt"

	"lifeloop/internal/core"
	"lifeloop/internal/engine"
)

// Lines flattens the parameter snapshot of the loop's simulation into
// "Label: value" rows, followed by the scheduler state.
func Lines(loop *engine.Loop) []string {
	sched := loop.Scheduler()
	var lines []string
	if provider, ok := sched.Sim().(core.ParameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			for _, p := range group.Params {
				lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
			}
		}
	} else {
		lines = append(lines, fmt.Sprintf("Generation: %d", sched.Sim().Generation()))
	}
	status := sched.State().String()
	if sched.Paused() {
		status = "paused"
	}
	lines = append(lines, fmt.Sprintf("Tick: %s (%s)", sched.TickDuration(), status))
	return lines
}
