package control

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Mouse presses move toward the pressed side of the screen. The middle band
// between the thresholds leaves that axis still.
const (
	mouseLow  = 0.45
	mouseHigh = 0.55
)

// Translator maps terminal events to actions
type Translator struct {
	Keys *KeyTable
}

// NewTranslator returns a translator over kt, or the default bindings when
// kt is nil
func NewTranslator(kt *KeyTable) *Translator {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Translator{Keys: kt}
}

// Translate returns the action for ev on a screen of w x h cells
func (t *Translator) Translate(ev tcell.Event, w, h int) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.Keys.Lookup(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 || w <= 0 || h <= 0 {
			return ActionNone
		}
		x, y := ev.Position()
		return ActionForDelta(axis(float64(x)/float64(w)), axis(float64(y)/float64(h)))
	}
	return ActionNone
}

func axis(f float64) int {
	switch {
	case f > mouseHigh:
		return 1
	case f < mouseLow:
		return -1
	}
	return 0
}

// EventSource is the part of tcell.Screen the poller reads from
type EventSource interface {
	PollEvent() tcell.Event
}

// Poller reads events on a goroutine and hands them out with a bounded wait
type Poller struct {
	events  chan tcell.Event
	timeout time.Duration
}

// NewPoller starts reading src. The reader exits when src returns nil, which
// tcell does once the screen is finalized.
func NewPoller(src EventSource, timeout time.Duration) *Poller {
	p := &Poller{
		events:  make(chan tcell.Event, 100),
		timeout: timeout,
	}
	go func() {
		defer close(p.events)
		for {
			ev := src.PollEvent()
			if ev == nil {
				return
			}
			p.events <- ev
		}
	}()
	return p
}

// Poll waits up to the poll timeout for an event. ok is false on timeout;
// closed is true once the source has shut down.
func (p *Poller) Poll() (ev tcell.Event, ok, closed bool) {
	timer := time.NewTimer(p.timeout)
	defer timer.Stop()

	select {
	case ev, open := <-p.events:
		if !open {
			return nil, false, true
		}
		return ev, true, false
	case <-timer.C:
		return nil, false, false
	}
}
