// Package timer provides a tick-driven task scheduler for game engines.
// Delayed and periodic callbacks are stored as explicit handles owned by
// the engine, so cancellation, pause, and resume are ordinary testable
// operations rather than ambient platform behavior. The scheduler has no
// notion of wall-clock time: it advances only when Tick is called, which
// engines do once per simulation step while playing.
package timer

import "sort"

// ID identifies a scheduled task. The zero ID is never assigned.
type ID int

type task struct {
	id        ID
	remaining uint64 // ticks until the task fires
	period    uint64 // reload value for periodic tasks; 0 = one-shot
	fn        func()
}

// Scheduler runs one-shot and periodic tasks off a tick counter.
// Tasks due on the same tick fire in scheduling order; callers must not
// rely on relative order between independent periodic tasks.
type Scheduler struct {
	nextID ID
	tasks  map[ID]*task
	paused bool
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{tasks: make(map[ID]*task)}
}

// After schedules fn to run once after the given number of ticks.
// A delay of zero fires on the next Tick.
func (s *Scheduler) After(ticks uint64, fn func()) ID {
	return s.add(ticks, 0, fn)
}

// Every schedules fn to run each time the given number of ticks elapses.
// The period must be at least one tick.
func (s *Scheduler) Every(ticks uint64, fn func()) ID {
	if ticks == 0 {
		ticks = 1
	}
	return s.add(ticks, ticks, fn)
}

func (s *Scheduler) add(remaining, period uint64, fn func()) ID {
	s.nextID++
	id := s.nextID
	if remaining == 0 {
		remaining = 1
	}
	s.tasks[id] = &task{id: id, remaining: remaining, period: period, fn: fn}
	return id
}

// Cancel removes a task. Cancelling an unknown or finished ID is a no-op.
func (s *Scheduler) Cancel(id ID) {
	delete(s.tasks, id)
}

// CancelAll removes every task. Used when a game or day ends so no
// callback fires into torn-down state.
func (s *Scheduler) CancelAll() {
	clear(s.tasks)
}

// Pause suspends the scheduler. Remaining durations are preserved
// exactly; Tick becomes a no-op until Resume.
func (s *Scheduler) Pause() {
	s.paused = true
}

// Resume lifts a pause. Tasks continue from their preserved remainder,
// so nothing fires twice and no progress is lost.
func (s *Scheduler) Resume() {
	s.paused = false
}

// Paused reports whether the scheduler is suspended.
func (s *Scheduler) Paused() bool {
	return s.paused
}

// Active reports whether the task is still scheduled.
func (s *Scheduler) Active(id ID) bool {
	_, ok := s.tasks[id]
	return ok
}

// Remaining returns the ticks left before the task fires.
// The second return is false for unknown or finished tasks.
func (s *Scheduler) Remaining(id ID) (uint64, bool) {
	t, ok := s.tasks[id]
	if !ok {
		return 0, false
	}
	return t.remaining, true
}

// Len returns the number of scheduled tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Tick advances the scheduler by one tick and fires every due task.
// One-shot tasks are removed before their callback runs, so a callback
// may freely schedule or cancel other tasks (including itself).
func (s *Scheduler) Tick() {
	if s.paused {
		return
	}

	var due []*task
	for _, t := range s.tasks {
		t.remaining--
		if t.remaining == 0 {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return
	}

	// Map iteration order is random; fire in scheduling order.
	sort.Slice(due, func(i, j int) bool { return due[i].id < due[j].id })

	for _, t := range due {
		if _, ok := s.tasks[t.id]; !ok {
			continue // cancelled by an earlier callback this tick
		}
		if t.period > 0 {
			t.remaining = t.period
		} else {
			delete(s.tasks, t.id)
		}
		t.fn()
	}
}

// Advance runs n ticks. Convenience for tests and fast-forwarding.
func (s *Scheduler) Advance(n uint64) {
	for i := uint64(0); i < n; i++ {
		s.Tick()
	}
}
