package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// endless never runs out of key presses.
type endless struct{}

func (endless) PollEvent() tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)
}

// finite returns its events in order, then nil as a finalized screen does.
type finite struct {
	events []tcell.Event
}

func (f *finite) PollEvent() tcell.Event {
	if len(f.events) == 0 {
		return nil
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev
}

func TestPollStopsWhenLoopExits(t *testing.T) {
	out := make(chan tcell.Event, 1)
	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		poll(endless{}, out, done)
		close(stopped)
	}()

	// Nobody drains out, so the poller ends up blocked on a full channel.
	<-out
	close(done)

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("poller still blocked after the loop exited")
	}
}

func TestPollClosesOnFinalize(t *testing.T) {
	src := &finite{events: []tcell.Event{
		tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone),
	}}
	out := make(chan tcell.Event, 4)

	poll(src, out, make(chan struct{}))

	got := 0
	for range out {
		got++
	}
	if got != 2 {
		t.Errorf("forwarded %d events, want 2", got)
	}
}
