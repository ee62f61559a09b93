package platform

// Capacity of the backend event queue between the OS event loop and the
// consumer. Producers drop rather than block when it fills up.
const eventBuffer = 256

type WindowConfig struct {
	PositionX   int
	PositionY   int
	Width       int
	Height      int
	BorderWidth int
	Title       string
}

// Window is the OS-facing side of a display. Implementations produce Event
// values; NextEventTimeout returns TimeoutEvent when nothing arrived within
// the given number of milliseconds (0 polls without waiting).
type Window interface {
	Show()
	Close()
	NextEventTimeout(timeoutMs int) Event
	Size() (int, int)
}
