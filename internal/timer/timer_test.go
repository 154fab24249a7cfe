package timer

import "testing"

func TestAfterFiresOnce(t *testing.T) {
	s := New()
	fired := 0
	s.After(3, func() { fired++ })

	s.Advance(2)
	if fired != 0 {
		t.Fatalf("fired too early: %d", fired)
	}

	s.Tick()
	if fired != 1 {
		t.Fatalf("expected 1 firing, got %d", fired)
	}

	s.Advance(10)
	if fired != 1 {
		t.Errorf("one-shot fired again: %d", fired)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty scheduler, got %d tasks", s.Len())
	}
}

func TestEveryFiresPeriodically(t *testing.T) {
	s := New()
	fired := 0
	s.Every(4, func() { fired++ })

	s.Advance(12)
	if fired != 3 {
		t.Errorf("expected 3 firings after 12 ticks, got %d", fired)
	}
}

func TestCancelPreventsFiring(t *testing.T) {
	s := New()
	fired := false
	id := s.After(5, func() { fired = true })

	s.Advance(2)
	s.Cancel(id)
	s.Advance(10)

	if fired {
		t.Error("cancelled task fired")
	}
	if s.Active(id) {
		t.Error("cancelled task still active")
	}
}

func TestCancelAllStopsEverything(t *testing.T) {
	s := New()
	fired := 0
	s.After(1, func() { fired++ })
	s.Every(1, func() { fired++ })
	s.Every(2, func() { fired++ })

	s.CancelAll()
	s.Advance(10)

	if fired != 0 {
		t.Errorf("expected no firings after CancelAll, got %d", fired)
	}
}

func TestPausePreservesRemaining(t *testing.T) {
	s := New()
	fired := false
	id := s.After(10, func() { fired = true })

	s.Advance(4)
	if rem, _ := s.Remaining(id); rem != 6 {
		t.Fatalf("expected 6 remaining, got %d", rem)
	}

	s.Pause()
	s.Advance(100)
	if fired {
		t.Fatal("task fired while paused")
	}
	if rem, _ := s.Remaining(id); rem != 6 {
		t.Errorf("remaining changed during pause: %d", rem)
	}

	s.Resume()
	s.Advance(5)
	if fired {
		t.Fatal("task fired before full delay elapsed")
	}
	s.Tick()
	if !fired {
		t.Error("task did not fire after resume")
	}
}

func TestSameTickOrderIsSchedulingOrder(t *testing.T) {
	s := New()
	var order []int
	s.After(3, func() { order = append(order, 1) })
	s.After(3, func() { order = append(order, 2) })
	s.After(3, func() { order = append(order, 3) })

	s.Advance(3)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("unexpected firing order: %v", order)
	}
}

func TestCallbackMayCancelSibling(t *testing.T) {
	s := New()
	fired := false
	var victim ID
	s.After(2, func() { s.Cancel(victim) })
	victim = s.After(2, func() { fired = true })

	s.Advance(2)

	if fired {
		t.Error("task fired after being cancelled by an earlier callback on the same tick")
	}
}

func TestCallbackMayReschedule(t *testing.T) {
	s := New()
	fired := 0
	var schedule func()
	schedule = func() {
		fired++
		if fired < 3 {
			s.After(2, schedule)
		}
	}
	s.After(2, schedule)

	s.Advance(6)
	if fired != 3 {
		t.Errorf("expected 3 chained firings, got %d", fired)
	}
}
