package display

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/kjkrol/gokev/internal/platform"
	"github.com/kjkrol/gokev/pkg/event"
)

const (
	eventBufferSize = 1024
	maxEventWait    = 50 * time.Millisecond
)

// Emit injects a synthetic event as if the window had produced it. It never
// blocks; when the buffer is full the event is dropped.
func (d *Display) Emit(ev event.Event) {
	if d == nil || ev == nil {
		return
	}
	select {
	case d.events <- ev:
	default:
		slog.Debug("synthetic event dropped, buffer full", "type", ev.Type())
	}
}

// poll produces the next taxonomy event: fan-out leftovers first, then the
// synthetic bus, then the platform window. Only the pump goroutine calls
// poll, so pending needs no lock.
func (d *Display) poll(timeoutMs int) (event.Event, bool) {
	if len(d.pending) > 0 {
		ev := d.pending[0]
		d.pending = d.pending[1:]
		return ev, true
	}
	select {
	case ev := <-d.events:
		return ev, true
	default:
	}
	pev := d.win.NextEventTimeout(timeoutMs)
	if _, ok := pev.(platform.TimeoutEvent); ok {
		return nil, false
	}
	converted := convert(pev)
	if len(converted) == 0 {
		return nil, false
	}
	if len(converted) > 1 {
		d.pending = append(d.pending, converted[1:]...)
	}
	return converted[0], true
}

func (d *Display) dispatch(ev event.Event) {
	if !d.registry.Dispatch(ev) {
		slog.Debug("event not consumed", "display", d.id, "type", ev.Type())
	}
	if ev.Type() == event.WindowClosedType {
		d.mu.Lock()
		d.closeRequested = true
		d.mu.Unlock()
	}
}

// ProcessEvents runs one pump pass: it waits up to timeoutMs for the first
// event and dispatches per the strategy (DrainAll when nil). Returns the
// number of events dispatched.
func (d *Display) ProcessEvents(strategy ConsumerStrategy, timeoutMs int) int {
	if strategy == nil {
		strategy = DrainAll()
	}
	return strategy.Consume(d.poll, d.dispatch, timeoutMs)
}

// CloseRequested reports whether a WindowClosed event has been dispatched.
func (d *Display) CloseRequested() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closeRequested
}

// Run pumps events until the context is cancelled or the window reports it
// is closing. WindowClosed is dispatched to handlers before Run returns.
// The loop is locked to its OS thread for the benefit of the X connection.
func (d *Display) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	wait := int(maxEventWait / time.Millisecond)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			d.ProcessEvents(nil, wait)
			if d.CloseRequested() {
				return nil
			}
		}
	}
}
