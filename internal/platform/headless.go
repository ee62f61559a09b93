package platform

import (
	"sync"
	"time"
)

// NewHeadlessWindow returns a backend with no OS surface behind it. Events
// arrive only via Push. It keeps the same delivery contract as the X11
// backend, which makes it the substitute for tests and displayless hosts.
func NewHeadlessWindow(conf WindowConfig) *HeadlessWindow {
	return &HeadlessWindow{
		events: make(chan Event, eventBuffer),
		width:  conf.Width,
		height: conf.Height,
	}
}

type HeadlessWindow struct {
	mtx    sync.Mutex
	events chan Event
	closed bool
	shown  bool
	width  int
	height int
}

// Push enqueues an event as if the OS had produced it. Returns false when
// the window is closed or the buffer is full.
func (w *HeadlessWindow) Push(ev Event) bool {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	if w.closed {
		return false
	}
	select {
	case w.events <- ev:
		return true
	default:
		return false
	}
}

func (w *HeadlessWindow) Show() {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.shown = true
}

func (w *HeadlessWindow) Shown() bool {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return w.shown
}

func (w *HeadlessWindow) Close() {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.closed = true
}

func (w *HeadlessWindow) Closed() bool {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return w.closed
}

func (w *HeadlessWindow) Size() (int, int) {
	return w.width, w.height
}

func (w *HeadlessWindow) NextEventTimeout(timeoutMs int) Event {
	if timeoutMs <= 0 {
		select {
		case ev := <-w.events:
			return ev
		default:
			return TimeoutEvent{}
		}
	}
	timer := time.NewTimer(time.Duration(timeoutMs) * time.Millisecond)
	defer timer.Stop()
	select {
	case ev := <-w.events:
		return ev
	case <-timer.C:
		return TimeoutEvent{}
	}
}
