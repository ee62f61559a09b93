package event

import "fmt"

// Type tags an event with one of the seven taxonomy variants. The numeric
// values are part of the contract and must not be reordered.
type Type uint16

const (
	// MouseMove: a = x-coordinate, b = y-coordinate.
	MouseMoveType Type = iota
	// MouseButton: a = button id (1 left, 2 middle, 3 right, 4 wheel up,
	// 5 wheel down), b = Pressed or Released.
	MouseButtonType
	// MouseWheel: a = -1 for scrolled up, +1 for scrolled down.
	MouseWheelType
	// KeyState: a = keysym with modifier translation applied,
	// b = Pressed or Released.
	KeyStateType
	// KeyRaw: a = keysym without modifier translation (letters always
	// lowercase), b = Pressed or Released.
	KeyRawType
	// KeyChar: a = ASCII character (0-255) after modifier translation.
	KeyCharType
	// WindowClosed: the window is closing, no parameters.
	WindowClosedType
)

// Button and key state values carried in the b parameter.
const (
	Released = 0
	Pressed  = 1
)

// Mouse button ids carried in the a parameter of MouseButton events.
const (
	ButtonLeft      = 1
	ButtonMiddle    = 2
	ButtonRight     = 3
	ButtonWheelUp   = 4
	ButtonWheelDown = 5
)

// Wheel directions carried in the a parameter of MouseWheel events.
const (
	WheelUp   = -1
	WheelDown = 1
)

func (t Type) String() string {
	switch t {
	case MouseMoveType:
		return "MOUSE_MOVE"
	case MouseButtonType:
		return "MOUSE_BUTTON"
	case MouseWheelType:
		return "MOUSE_WHEEL"
	case KeyStateType:
		return "KEY_STATE"
	case KeyRawType:
		return "KEY_RAW"
	case KeyCharType:
		return "KEY_CHAR"
	case WindowClosedType:
		return "WINDOW_CLOSED"
	}
	return fmt.Sprintf("Type(%d)", uint16(t))
}

// Event is the closed set of taxonomy variants. Every variant knows its tag
// and its flat (a, b) encoding, which is what handlers receive.
type Event interface {
	Type() Type
	Params() (a, b int)
}

type MouseMove struct {
	X, Y int
}

type MouseButton struct {
	Button int
	State  int // Pressed or Released
}

type MouseWheel struct {
	Delta int // WheelUp or WheelDown
}

type KeyState struct {
	Key   int // keysym with modifiers applied
	State int // Pressed or Released
}

type KeyRaw struct {
	Key   int // keysym without modifiers applied
	State int // Pressed or Released
}

type KeyChar struct {
	Char int // ASCII 0-255
}

type WindowClosed struct{}

func (e MouseMove) Type() Type    { return MouseMoveType }
func (e MouseButton) Type() Type  { return MouseButtonType }
func (e MouseWheel) Type() Type   { return MouseWheelType }
func (e KeyState) Type() Type     { return KeyStateType }
func (e KeyRaw) Type() Type       { return KeyRawType }
func (e KeyChar) Type() Type      { return KeyCharType }
func (e WindowClosed) Type() Type { return WindowClosedType }

func (e MouseMove) Params() (int, int)    { return e.X, e.Y }
func (e MouseButton) Params() (int, int)  { return e.Button, e.State }
func (e MouseWheel) Params() (int, int)   { return e.Delta, 0 }
func (e KeyState) Params() (int, int)     { return e.Key, e.State }
func (e KeyRaw) Params() (int, int)       { return e.Key, e.State }
func (e KeyChar) Params() (int, int)      { return e.Char, 0 }
func (e WindowClosed) Params() (int, int) { return 0, 0 }

// Decode rebuilds the variant for a flat (type, a, b) triple. It is the
// inverse of Params and rejects unknown tags and out-of-range states.
func Decode(typ Type, a, b int) (Event, error) {
	switch typ {
	case MouseMoveType:
		return MouseMove{X: a, Y: b}, nil
	case MouseButtonType:
		if b != Pressed && b != Released {
			return nil, fmt.Errorf("event: mouse button state %d is not binary", b)
		}
		return MouseButton{Button: a, State: b}, nil
	case MouseWheelType:
		return MouseWheel{Delta: a}, nil
	case KeyStateType:
		if b != Pressed && b != Released {
			return nil, fmt.Errorf("event: key state %d is not binary", b)
		}
		return KeyState{Key: a, State: b}, nil
	case KeyRawType:
		if b != Pressed && b != Released {
			return nil, fmt.Errorf("event: key state %d is not binary", b)
		}
		return KeyRaw{Key: a, State: b}, nil
	case KeyCharType:
		return KeyChar{Char: a}, nil
	case WindowClosedType:
		return WindowClosed{}, nil
	}
	return nil, fmt.Errorf("event: unknown event type %d", uint16(typ))
}
