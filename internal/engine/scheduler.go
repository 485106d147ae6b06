package engine

// scheduler tracks every delayed effect created while a run is active:
// event deactivation, power-up expiry, anything with a deadline. Entries
// are keyed to the owning run by living inside the engine's scheduler
// instance, which is cleared en masse on run teardown so no callback can
// outlive the run that scheduled it.
type scheduler struct {
	nextID  int
	entries []schedEntry
}

type schedEntry struct {
	id      int
	dueTick uint64
	fn      func()
}

// after registers fn to fire once the run clock reaches now+delay ticks.
// Returns an id usable with cancel.
func (s *scheduler) after(now, delay uint64, fn func()) int {
	s.nextID++
	s.entries = append(s.entries, schedEntry{
		id:      s.nextID,
		dueTick: now + delay,
		fn:      fn,
	})
	return s.nextID
}

// advance fires every entry due at or before now, in scheduling order.
// Fired entries are removed before their callbacks run so a callback that
// schedules again cannot retrigger itself within the same advance.
func (s *scheduler) advance(now uint64) {
	var due []func()
	remaining := s.entries[:0]
	for _, e := range s.entries {
		if e.dueTick <= now {
			due = append(due, e.fn)
		} else {
			remaining = append(remaining, e)
		}
	}
	s.entries = remaining

	for _, fn := range due {
		fn()
	}
}

// cancel drops the entry with the given id if it is still pending.
func (s *scheduler) cancel(id int) {
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// cancelAll drops every pending entry. Called on run teardown.
func (s *scheduler) cancelAll() {
	s.entries = s.entries[:0]
}

// pending returns the number of scheduled entries.
func (s *scheduler) pending() int {
	return len(s.entries)
}
