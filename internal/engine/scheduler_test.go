package engine

import "testing"

func TestSchedulerFiresAtDeadline(t *testing.T) {
	var s scheduler
	fired := false
	s.after(10, 5, func() { fired = true })

	s.advance(14)
	if fired {
		t.Fatal("fired before the deadline")
	}
	s.advance(15)
	if !fired {
		t.Fatal("did not fire at the deadline")
	}
	if s.pending() != 0 {
		t.Errorf("%d entries left after firing", s.pending())
	}
}

func TestSchedulerFiresInOrder(t *testing.T) {
	var s scheduler
	var order []int
	s.after(0, 3, func() { order = append(order, 3) })
	s.after(0, 1, func() { order = append(order, 1) })
	s.after(0, 2, func() { order = append(order, 2) })

	// One big jump fires everything due, in scheduling order.
	s.advance(10)
	if len(order) != 3 {
		t.Fatalf("fired %d of 3", len(order))
	}
	if order[0] != 3 || order[1] != 1 || order[2] != 2 {
		t.Errorf("order %v, want scheduling order [3 1 2]", order)
	}
}

func TestSchedulerCancel(t *testing.T) {
	var s scheduler
	fired := false
	id := s.after(0, 5, func() { fired = true })
	keep := 0
	s.after(0, 5, func() { keep++ })

	s.cancel(id)
	s.advance(5)
	if fired {
		t.Error("cancelled entry fired")
	}
	if keep != 1 {
		t.Error("surviving entry did not fire")
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	var s scheduler
	count := 0
	for i := 0; i < 4; i++ {
		s.after(0, uint64(i+1), func() { count++ })
	}
	s.cancelAll()
	s.advance(100)
	if count != 0 {
		t.Errorf("%d cancelled entries fired", count)
	}
	if s.pending() != 0 {
		t.Errorf("pending %d after cancelAll", s.pending())
	}
}

func TestSchedulerCallbackMayReschedule(t *testing.T) {
	var s scheduler
	count := 0
	var again func()
	again = func() {
		count++
		s.after(5, 5, again)
	}
	s.after(0, 5, again)

	// The rescheduled entry is due at the same tick but must not fire
	// within the same advance.
	s.advance(5)
	if count != 1 {
		t.Fatalf("fired %d times within one advance", count)
	}
	s.advance(10)
	if count != 2 {
		t.Errorf("rescheduled entry fired %d times total", count)
	}
}
