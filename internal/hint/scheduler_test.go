package hint

import (
	"testing"
	"time"
)

type countingRequester struct {
	calls int
}

func (c *countingRequester) RequestHint() bool {
	c.calls++
	return true
}

func TestScheduler_FiresOncePerWindow(t *testing.T) {
	s := New(time.Second)
	r := &countingRequester{}

	s.Reset()
	ticket, delay, ok := s.Next()
	if !ok {
		t.Fatal("expected a ticket after Reset")
	}
	if delay != time.Second {
		t.Errorf("delay = %v, want 1s", delay)
	}

	if !s.Fire(ticket, r) {
		t.Error("first Fire should request a hint")
	}
	if s.Fire(ticket, r) {
		t.Error("second Fire in the same window should be ignored")
	}
	if r.calls != 1 {
		t.Errorf("calls = %d, want 1", r.calls)
	}
	if s.Live() {
		t.Error("scheduler should not be live after firing")
	}
}

func TestScheduler_ResetInvalidatesOldTicket(t *testing.T) {
	s := New(time.Second)
	r := &countingRequester{}

	s.Reset()
	old, _, _ := s.Next()
	s.Reset()
	fresh, _, ok := s.Next()
	if !ok {
		t.Fatal("expected a fresh ticket")
	}

	if s.Fire(old, r) {
		t.Error("stale ticket should not fire")
	}
	if !s.Fire(fresh, r) {
		t.Error("fresh ticket should fire")
	}
	if r.calls != 1 {
		t.Errorf("calls = %d, want 1", r.calls)
	}
}

func TestScheduler_CancelPreventsFire(t *testing.T) {
	s := New(time.Second)
	r := &countingRequester{}

	s.Reset()
	ticket, _, _ := s.Next()
	s.Cancel()

	if s.Fire(ticket, r) {
		t.Error("canceled window should not fire")
	}
	if _, _, ok := s.Next(); ok {
		t.Error("Cancel should drop the pending ticket")
	}
	if r.calls != 0 {
		t.Errorf("calls = %d, want 0", r.calls)
	}
}

func TestScheduler_NextOnlyOncePerReset(t *testing.T) {
	s := New(0)
	if s.Delay() != DefaultDelay {
		t.Errorf("Delay = %v, want default %v", s.Delay(), DefaultDelay)
	}
	if _, _, ok := s.Next(); ok {
		t.Error("no ticket expected before Reset")
	}
	s.Reset()
	s.Reset()
	if _, _, ok := s.Next(); !ok {
		t.Error("expected one ticket")
	}
	if _, _, ok := s.Next(); ok {
		t.Error("ticket should only be handed out once")
	}
}
