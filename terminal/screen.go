// Package terminal drives a tcell screen: it turns raw terminal key events
// into the input package's KeyDown/KeyUp vocabulary and posts them on the
// simulation's event bus, and exposes the screen for the render package to
// draw into.
//
// Grounded on cmd/vi-fighter/main.go's screen init/Fini and event-channel
// pump, and on infiniworld/controllers/keyboard.py's key-state tracking.
package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/infiniworld/apocalypse-bunny/event"
	"github.com/infiniworld/apocalypse-bunny/input"
)

// holdTimeout is how long a held key may go without a repeat event before
// Screen synthesizes a KeyUp for it. Terminals only ever deliver KeyDown
// (with OS-level auto-repeat while held); there is no KeyUp to read, so one
// is inferred from the repeat stream going quiet.
const holdTimeout = 120 * time.Millisecond

// Screen owns the tcell.Screen and the bus it feeds KeyDown/KeyUp/Quit
// events into.
type Screen struct {
	tcell tcell.Screen
	bus   *event.Bus

	mu   sync.Mutex
	held map[input.Key]time.Time

	resized chan struct{}
}

// NewScreen initializes and enters a tcell screen.
func NewScreen(bus *event.Bus) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()
	return &Screen{
		tcell:   s,
		bus:     bus,
		held:    make(map[input.Key]time.Time),
		resized: make(chan struct{}, 1),
	}, nil
}

// Tcell returns the underlying tcell.Screen for the render package to draw
// into.
func (s *Screen) Tcell() tcell.Screen { return s.tcell }

// Close restores the terminal. Safe to call once, deferred right after
// NewScreen succeeds.
func (s *Screen) Close() { s.tcell.Fini() }

// Resized reports, non-blockingly, whether the terminal was resized since
// the last call.
func (s *Screen) Resized() bool {
	select {
	case <-s.resized:
		return true
	default:
		return false
	}
}

// Run polls tcell events until stop is closed, posting KeyDown/KeyUp events
// on the bus and synthesizing KeyUp for keys whose repeat stream goes quiet.
// It blocks the calling goroutine; run it in its own goroutine alongside the
// game loop.
func (s *Screen) Run(stop <-chan struct{}) {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := s.tcell.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(holdTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case ev := <-events:
			s.handleEvent(ev)
		case <-ticker.C:
			s.releaseStale()
		}
	}
}

func (s *Screen) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			s.bus.Post(event.Quit{})
			return
		}
		key := translateKey(ev)
		if key == input.KeyUnknown {
			return
		}
		now := time.Now()
		s.mu.Lock()
		_, alreadyHeld := s.held[key]
		s.held[key] = now
		s.mu.Unlock()
		if !alreadyHeld {
			s.bus.Post(event.KeyDown{Key: int(key)})
		}
	case *tcell.EventResize:
		select {
		case s.resized <- struct{}{}:
		default:
		}
	}
}

func (s *Screen) releaseStale() {
	now := time.Now()
	s.mu.Lock()
	var stale []input.Key
	for k, last := range s.held {
		if now.Sub(last) >= holdTimeout {
			stale = append(stale, k)
		}
	}
	for _, k := range stale {
		delete(s.held, k)
	}
	s.mu.Unlock()
	for _, k := range stale {
		s.bus.Post(event.KeyUp{Key: int(k)})
	}
}
