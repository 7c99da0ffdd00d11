package core

import (
	"sort"
	"time"
)

// EventID identifies a scheduled event for cancellation.
type EventID uint64

type scheduledEvent struct {
	id  EventID
	due time.Duration
	fn  func()
}

// Scheduler is a queue of one-shot callbacks keyed by simulated time. It
// is drained from the frame update, so callbacks run on the game loop and
// never concurrently with it.
type Scheduler struct {
	now    time.Duration
	nextID EventID
	events []scheduledEvent
}

// NewScheduler returns an empty queue starting at time zero.
func NewScheduler() *Scheduler { return &Scheduler{} }

// Now returns the time the queue was last advanced to.
func (s *Scheduler) Now() time.Duration { return s.now }

// Len returns the number of pending events.
func (s *Scheduler) Len() int { return len(s.events) }

// After schedules fn to run once delay has elapsed. Events with equal due
// times run in the order they were scheduled.
func (s *Scheduler) After(delay time.Duration, fn func()) EventID {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	ev := scheduledEvent{id: s.nextID, due: s.now + delay, fn: fn}
	i := sort.Search(len(s.events), func(i int) bool { return s.events[i].due > ev.due })
	s.events = append(s.events, scheduledEvent{})
	copy(s.events[i+1:], s.events[i:])
	s.events[i] = ev
	return ev.id
}

// Cancel removes a pending event. It reports whether the event was found.
func (s *Scheduler) Cancel(id EventID) bool {
	for i, ev := range s.events {
		if ev.id == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves the clock forward by dt and runs every event that became
// due, in due order. Callbacks may schedule further events; those run in
// the same call when they are already due.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}
	ran := 0
	for len(s.events) > 0 && s.events[0].due <= s.now {
		ev := s.events[0]
		s.events = s.events[1:]
		if ev.fn != nil {
			ev.fn()
		}
		ran++
	}
	return ran
}
