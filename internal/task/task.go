// Package task provides the cooperative multitasking core: suspendable
// routines resumed once per tick by a fixed-rate scheduler.
package task

// Status is reported by Resume after each step of a task.
type Status int

const (
	// Suspended means the task yielded and can be resumed next tick.
	Suspended Status = iota
	// Done means the task body returned and the task will never run again.
	Done
)

// Task is a resumable unit of logic. The body runs on its own goroutine but
// never concurrently with the caller of Resume: the goroutine is parked on a
// handshake channel except for the window between Resume sending control and
// the body reaching its next yield.
type Task struct {
	resume chan bool // true to run one step, false to stop
	yield  chan Status
	done   bool
}

// Yielder is the handle a task body uses to give control back to the
// scheduler. It is only valid inside the body it was passed to.
type Yielder struct {
	t *Task
}

// stopped is the panic value Yield raises when the task is being torn down.
// Unwinding the body this way runs its deferred cleanup.
type stopped struct{}

// New creates a task running fn. The body does not start until the first
// Resume call.
func New(fn func(y *Yielder)) *Task {
	t := &Task{
		resume: make(chan bool),
		yield:  make(chan Status),
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(stopped); !ok {
					panic(r)
				}
				t.yield <- Done
			}
		}()
		if !<-t.resume {
			t.yield <- Done
			return
		}
		fn(&Yielder{t: t})
		t.yield <- Done
	}()
	return t
}

// Resume runs the task until its next yield or completion and reports which
// one happened. Resuming a completed task is a no-op.
func (t *Task) Resume() Status {
	if t.done {
		return Done
	}
	t.resume <- true
	st := <-t.yield
	if st == Done {
		t.done = true
	}
	return st
}

// Stop terminates a suspended task without running any more of its steps.
// The body unwinds through its deferred cleanup and the goroutine exits.
// Stopping a completed task is a no-op.
func (t *Task) Stop() {
	if t.done {
		return
	}
	t.resume <- false
	<-t.yield
	t.done = true
}

// Completed reports whether the task body has returned.
func (t *Task) Completed() bool {
	return t.done
}

// Yield suspends the task for exactly one tick.
func (y *Yielder) Yield() {
	y.t.yield <- Suspended
	if !<-y.t.resume {
		panic(stopped{})
	}
}

// Sleep suspends the task for n ticks. Non-positive n returns immediately.
func (y *Yielder) Sleep(n int) {
	for i := 0; i < n; i++ {
		y.Yield()
	}
}
