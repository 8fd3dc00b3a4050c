package game

import "time"

// Handle is a cancelable scheduled task.
type Handle interface {
	Cancel()
}

// Scheduler runs callbacks later on the controller's goroutine.
type Scheduler interface {
	// Every runs fn each d until the handle is cancelled.
	Every(d time.Duration, fn func()) Handle
	// After runs fn once after d unless the handle is cancelled first.
	After(d time.Duration, fn func()) Handle
}

// ArmFunc asks the host event loop to deliver id back to Fire after d.
type ArmFunc func(id uint64, d time.Duration)

// TimerSet implements Scheduler on top of a host event loop. The host arms a
// wake-up for an id and later calls Fire with it; ids cancelled in between
// are dropped, so a stale wake-up never reaches the controller.
//
// A TimerSet is not safe for concurrent use. Fire, Every, After and Cancel
// must all be called from the event loop goroutine.
type TimerSet struct {
	arm     ArmFunc
	next    uint64
	entries map[uint64]*timer
}

type timer struct {
	set   *TimerSet
	id    uint64
	every time.Duration
	fn    func()
}

// NewTimerSet returns a TimerSet that arms wake-ups through arm.
func NewTimerSet(arm ArmFunc) *TimerSet {
	return &TimerSet{
		arm:     arm,
		entries: map[uint64]*timer{},
	}
}

// Every implements Scheduler.
func (s *TimerSet) Every(d time.Duration, fn func()) Handle {
	return s.add(d, d, fn)
}

// After implements Scheduler.
func (s *TimerSet) After(d time.Duration, fn func()) Handle {
	return s.add(d, 0, fn)
}

func (s *TimerSet) add(d, every time.Duration, fn func()) Handle {
	s.next++
	t := &timer{set: s, id: s.next, every: every, fn: fn}
	s.entries[t.id] = t
	s.arm(t.id, d)
	return t
}

// Fire runs the callback registered under id. It reports false when the id
// was cancelled or already fired.
func (s *TimerSet) Fire(id uint64) bool {
	t, ok := s.entries[id]
	if !ok {
		return false
	}
	if t.every > 0 {
		s.arm(id, t.every)
	} else {
		delete(s.entries, id)
	}
	t.fn()
	return true
}

// Pending reports the number of live timers.
func (s *TimerSet) Pending() int {
	return len(s.entries)
}

// CancelAll drops every live timer.
func (s *TimerSet) CancelAll() {
	clear(s.entries)
}

func (t *timer) Cancel() {
	delete(t.set.entries, t.id)
}
