package task

import (
	"context"
	"time"
)

// TicDuration is the fixed length of one scheduler cycle.
const TicDuration = 100 * time.Millisecond

// Scheduler drives a set of tasks, resuming each live task exactly once per
// tick in registration order. Tasks spawned during a tick are buffered and
// first run on the following tick, so a tick always operates on the task set
// as it was at the tick boundary.
type Scheduler struct {
	tasks   []*Task
	pending []*Task
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Spawn registers a task. It becomes visible at the next tick boundary.
func (s *Scheduler) Spawn(t *Task) {
	s.pending = append(s.pending, t)
}

// Len returns the number of tasks the scheduler holds, including ones that
// have not run yet.
func (s *Scheduler) Len() int {
	return len(s.tasks) + len(s.pending)
}

// Tick merges pending tasks into the live list, resumes every live task once
// and drops the ones that completed.
func (s *Scheduler) Tick() {
	s.tasks = append(s.tasks, s.pending...)
	s.pending = s.pending[:0]

	kept := s.tasks[:0] // reuse backing array
	for _, t := range s.tasks {
		if t.Resume() == Suspended {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
}

// Stop terminates every task, including ones not merged yet, releasing their
// goroutines. The scheduler is empty afterwards and can be reused.
func (s *Scheduler) Stop() {
	s.tasks = append(s.tasks, s.pending...)
	s.pending = s.pending[:0]
	for _, t := range s.tasks {
		t.Stop()
	}
	s.tasks = s.tasks[:0]
}

// Run ticks forever at the fixed rate, calling render after each pass, until
// the context is cancelled. A tick that overruns the interval is followed
// immediately by the next one.
func (s *Scheduler) Run(ctx context.Context, render func()) {
	for {
		start := time.Now()

		s.Tick()
		if render != nil {
			render()
		}

		elapsed := time.Since(start)
		wait := TicDuration - elapsed
		if wait < 0 {
			wait = 0
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}
