package app

import "synapse/hal"

// EventKind identifies an interaction.
type EventKind uint8

const (
	EventSelect EventKind = iota + 1
	EventReset
	EventScroll
	EventScrollTo
	EventPause
	EventQuit
)

// Event is an interaction queued for the next frame.
type Event struct {
	Kind EventKind
	// Index is the region for EventSelect.
	Index int
	// Delta is the scroll distance for EventScroll, or the target page y
	// for EventScrollTo.
	Delta float64
}

const scrollStep = 60

// pumpInput moves pending key presses into the event mailbox.
func (s *system) pumpInput() {
	in := s.h.Input()
	if in == nil || in.Keyboard() == nil {
		return
	}
	ch := in.Keyboard().Events()
	for {
		select {
		case ev := <-ch:
			if e, ok := s.keyEvent(ev); ok {
				if !s.Post(e) {
					s.logf("app: event queue full, dropped %v", e.Kind)
				}
			}
		default:
			return
		}
	}
}

func (s *system) keyEvent(ev hal.KeyEvent) (Event, bool) {
	if !ev.Press {
		return Event{}, false
	}
	_, vh := s.page.Viewport()
	jump := float64(vh) * 0.9

	switch ev.Code {
	case hal.KeyUp:
		return Event{Kind: EventScroll, Delta: -scrollStep}, true
	case hal.KeyDown:
		return Event{Kind: EventScroll, Delta: scrollStep}, true
	case hal.KeyPageUp:
		return Event{Kind: EventScroll, Delta: -jump}, true
	case hal.KeyPageDown:
		return Event{Kind: EventScroll, Delta: jump}, true
	case hal.KeyHome:
		return Event{Kind: EventScrollTo, Delta: 0}, true
	case hal.KeyEnd:
		return Event{Kind: EventScrollTo, Delta: float64(s.page.Height())}, true
	case hal.KeyEscape:
		return Event{Kind: EventQuit}, true
	}

	switch r := ev.Rune; {
	case r >= '1' && r <= '9':
		return Event{Kind: EventSelect, Index: int(r - '1')}, true
	case r == '0' || r == 'r':
		return Event{Kind: EventReset}, true
	case r == ' ':
		return Event{Kind: EventScroll, Delta: jump}, true
	case r == 'p':
		return Event{Kind: EventPause}, true
	case r == 'q':
		return Event{Kind: EventQuit}, true
	}
	return Event{}, false
}

// Post queues ev for the next frame. It is safe to call from any goroutine.
func (s *system) Post(ev Event) bool { return s.events.TrySend(ev) }

// apply performs ev and reports whether the app should quit.
func (s *system) apply(ev Event) bool {
	switch ev.Kind {
	case EventSelect:
		if s.brain == nil {
			s.logf("app: no brain explorer on this page")
			return false
		}
		if err := s.brain.SelectIndex(ev.Index); err != nil {
			s.logf("app: %v", err)
			return false
		}
		r, _ := s.brain.Active()
		s.logf("app: region %s", r.ID)
	case EventReset:
		if s.brain != nil {
			s.brain.Reset()
		}
	case EventScroll:
		s.page.ScrollBy(ev.Delta)
	case EventScrollTo:
		s.page.ScrollTo(ev.Delta)
	case EventPause:
		if s.paused {
			s.resume()
		} else {
			s.pause()
		}
	case EventQuit:
		return true
	}
	return false
}
