package platform

type Event interface{}

type KeyPress struct {
	Sym  uint32 // keysym with modifier translation applied
	Raw  uint32 // keysym from column 0, unaffected by modifiers
	Char rune   // Latin-1 character, 0 when the key has none
}
type KeyRelease struct {
	Sym  uint32
	Raw  uint32
	Char rune
}
type ButtonPress struct {
	Button uint32
	X, Y   int
}
type ButtonRelease struct {
	Button uint32
	X, Y   int
}
type MotionNotify struct {
	X, Y int
}
type ClientMessage struct{} // WM_DELETE_WINDOW, close requested
type DestroyNotify struct{}
type UnexpectedEvent struct{}
type TimeoutEvent struct{}
