package display

import (
	"github.com/kjkrol/gokev/internal/platform"
	"github.com/kjkrol/gokev/pkg/event"
)

// convert maps a platform event onto taxonomy events. One platform event
// can fan out: wheel buttons produce a MouseButton followed by a
// MouseWheel, key presses produce KeyRaw, KeyState and (for Latin-1
// symbols) KeyChar.
func convert(pev platform.Event) []event.Event {
	switch e := pev.(type) {
	case platform.MotionNotify:
		return []event.Event{event.MouseMove{X: e.X, Y: e.Y}}
	case platform.ButtonPress:
		out := []event.Event{event.MouseButton{Button: int(e.Button), State: event.Pressed}}
		switch e.Button {
		case event.ButtonWheelUp:
			out = append(out, event.MouseWheel{Delta: event.WheelUp})
		case event.ButtonWheelDown:
			out = append(out, event.MouseWheel{Delta: event.WheelDown})
		}
		return out
	case platform.ButtonRelease:
		return []event.Event{event.MouseButton{Button: int(e.Button), State: event.Released}}
	case platform.KeyPress:
		out := []event.Event{
			event.KeyRaw{Key: int(e.Raw), State: event.Pressed},
			event.KeyState{Key: int(e.Sym), State: event.Pressed},
		}
		if e.Char != 0 {
			out = append(out, event.KeyChar{Char: int(e.Char)})
		}
		return out
	case platform.KeyRelease:
		return []event.Event{
			event.KeyRaw{Key: int(e.Raw), State: event.Released},
			event.KeyState{Key: int(e.Sym), State: event.Released},
		}
	case platform.ClientMessage:
		return []event.Event{event.WindowClosed{}}
	case platform.DestroyNotify:
		return []event.Event{event.WindowClosed{}}
	}
	return nil
}
