//go:build linux

package platform

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/ewmh"
	"github.com/jezek/xgbutil/keybind"
	"github.com/jezek/xgbutil/xevent"
	"github.com/jezek/xgbutil/xwindow"
)

// NewWindow opens an X11 window sized and titled per the config and starts
// the connection's event loop in a background goroutine. All X events land
// on an internal channel which NextEventTimeout drains.
func NewWindow(conf WindowConfig) (Window, error) {
	X, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("platform: open X display: %w", err)
	}

	keybind.Initialize(X)
	xevent.ErrorHandlerSet(X, func(err xgb.Error) {
		slog.Error("x11 event error", "err", err)
	})

	win, err := xwindow.Generate(X)
	if err != nil {
		X.Conn().Close()
		return nil, fmt.Errorf("platform: allocate window id: %w", err)
	}

	err = win.CreateChecked(X.RootWin(),
		conf.PositionX, conf.PositionY, conf.Width, conf.Height,
		xproto.CwBackPixel|xproto.CwEventMask,
		0xffffffff,
		xproto.EventMaskKeyPress|xproto.EventMaskKeyRelease|
			xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease|
			xproto.EventMaskPointerMotion|xproto.EventMaskStructureNotify)
	if err != nil {
		X.Conn().Close()
		return nil, fmt.Errorf("platform: create window: %w", err)
	}

	if conf.Title != "" {
		if err := ewmh.WmNameSet(X, win.Id, conf.Title); err != nil {
			slog.Warn("set window title", "err", err)
		}
	}

	w := &x11Window{
		X:      X,
		win:    win,
		events: make(chan Event, eventBuffer),
		width:  conf.Width,
		height: conf.Height,
	}
	w.connect()

	go func() {
		xevent.Main(X)
		w.writeEvent(DestroyNotify{})
	}()

	return w, nil
}

type x11Window struct {
	mtx    sync.Mutex
	X      *xgbutil.XUtil
	win    *xwindow.Window
	events chan Event
	closed bool
	width  int
	height int
}

func (w *x11Window) connect() {
	xevent.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		sym, raw, char := w.translate(ev.Detail, ev.State)
		w.writeEvent(KeyPress{Sym: sym, Raw: raw, Char: char})
	}).Connect(w.X, w.win.Id)

	xevent.KeyReleaseFun(func(xu *xgbutil.XUtil, ev xevent.KeyReleaseEvent) {
		sym, raw, char := w.translate(ev.Detail, ev.State)
		w.writeEvent(KeyRelease{Sym: sym, Raw: raw, Char: char})
	}).Connect(w.X, w.win.Id)

	xevent.ButtonPressFun(func(xu *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
		w.writeEvent(ButtonPress{Button: uint32(ev.Detail), X: int(ev.EventX), Y: int(ev.EventY)})
	}).Connect(w.X, w.win.Id)

	xevent.ButtonReleaseFun(func(xu *xgbutil.XUtil, ev xevent.ButtonReleaseEvent) {
		w.writeEvent(ButtonRelease{Button: uint32(ev.Detail), X: int(ev.EventX), Y: int(ev.EventY)})
	}).Connect(w.X, w.win.Id)

	xevent.MotionNotifyFun(func(xu *xgbutil.XUtil, ev xevent.MotionNotifyEvent) {
		w.writeEvent(MotionNotify{X: int(ev.EventX), Y: int(ev.EventY)})
	}).Connect(w.X, w.win.Id)

	w.win.WMGracefulClose(func(win *xwindow.Window) {
		w.writeEvent(ClientMessage{})
	})
}

// translate resolves a keycode into the raw keysym (column 0, no modifier
// influence) and the modifier-translated keysym. Shift and Lock select the
// shifted column; for Latin-1 symbols the translated keysym doubles as the
// character.
func (w *x11Window) translate(code xproto.Keycode, mods uint16) (sym, raw uint32, char rune) {
	raw = uint32(keybind.KeysymGet(w.X, code, 0))

	var column byte
	shift := mods&xproto.ModMaskShift != 0
	lock := mods&xproto.ModMaskLock != 0
	if shift != lock {
		column = 1
	}
	sym = uint32(keybind.KeysymGet(w.X, code, column))
	if sym == 0 {
		sym = raw
	}
	if sym >= 0x20 && sym <= 0xff {
		char = rune(sym)
	}
	return sym, raw, char
}

func (w *x11Window) writeEvent(ev Event) {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	if w.closed {
		return
	}
	select {
	case w.events <- ev:
	default:
		slog.Debug("x11 event dropped, buffer full")
	}
}

func (w *x11Window) Show() {
	w.win.Map()
}

func (w *x11Window) Close() {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	xevent.Quit(w.X)
	w.win.Destroy()
	w.X.Conn().Close()
}

func (w *x11Window) Size() (int, int) {
	return w.width, w.height
}

func (w *x11Window) NextEventTimeout(timeoutMs int) Event {
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
