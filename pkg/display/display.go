package display

import (
	"sync"

	"github.com/kjkrol/gokev/internal/platform"
	"github.com/kjkrol/gokev/pkg/event"
)

type Config struct {
	PositionX   int
	PositionY   int
	Width       int
	Height      int
	BorderWidth int
	Title       string

	// Headless selects the in-memory backend instead of the X server.
	Headless bool
}

func (c Config) convert() platform.WindowConfig {
	return platform.WindowConfig{
		PositionX:   c.PositionX,
		PositionY:   c.PositionY,
		Width:       c.Width,
		Height:      c.Height,
		BorderWidth: c.BorderWidth,
		Title:       c.Title,
	}
}

// Display owns a platform window and the handler registry events from that
// window are dispatched into. Displays get process-wide ids in creation
// order; the first one (id 0) is the default registration target.
type Display struct {
	id       uint32
	win      platform.Window
	registry *event.Registry

	events  chan event.Event // synthetic events injected via Emit
	pending []event.Event    // fan-out carryover, pump goroutine only

	mu             sync.Mutex
	closed         bool
	closeRequested bool
}

// Open creates a display window and binds it to the process-wide table.
// Handlers already registered for its id are adopted.
func Open(conf Config) (*Display, error) {
	var (
		win platform.Window
		err error
	)
	if conf.Headless {
		win = platform.NewHeadlessWindow(conf.convert())
	} else {
		win, err = newPlatformWindow(conf.convert())
		if err != nil {
			return nil, err
		}
	}

	d := &Display{
		win:    win,
		events: make(chan event.Event, eventBufferSize),
	}

	table.mu.Lock()
	d.id = table.nextID
	table.nextID++
	d.registry = table.registryLocked(d.id)
	table.displays[d.id] = d
	table.mu.Unlock()

	win.Show()
	return d, nil
}

func (d *Display) ID() uint32 { return d.id }

func (d *Display) Size() (int, int) {
	if d == nil || d.win == nil {
		return 0, 0
	}
	return d.win.Size()
}

// Register adds a handler scoped to this display.
func (d *Display) Register(h event.Handler, user any) error {
	return d.registry.Register(h, user)
}

// Unregister removes all registrations of the (handler, user) pair from
// this display.
func (d *Display) Unregister(h event.Handler, user any) {
	d.registry.Unregister(h, user)
}

// Close tears down the window and clears the display's registry from the
// table. Safe to call more than once.
func (d *Display) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	d.win.Close()

	table.mu.Lock()
	delete(table.displays, d.id)
	delete(table.registries, d.id)
	table.mu.Unlock()

	d.registry.Clear()
}

// Options scopes a registration. The zero value matches the historical
// defaults: no user value, default display.
type Options struct {
	User    any
	Display uint32
}

// RegisterEvents adds a handler for events on the display named in opts.
// The display does not have to exist yet; its registry is created on first
// registration and adopted when the display opens.
func RegisterEvents(h event.Handler, opts Options) error {
	table.mu.Lock()
	reg := table.registryLocked(opts.Display)
	table.mu.Unlock()
	return reg.Register(h, opts.User)
}

// UnregisterEvents removes every registration of the (handler, user) pair
// across all displays. Unknown pairs are a no-op.
func UnregisterEvents(h event.Handler, user any) {
	table.mu.Lock()
	regs := make([]*event.Registry, 0, len(table.registries))
	for _, reg := range table.registries {
		regs = append(regs, reg)
	}
	table.mu.Unlock()

	for _, reg := range regs {
		reg.Unregister(h, user)
	}
}

// Process-wide display table. Registries outlive their displays on the
// registration side: registering against an id that has not opened yet
// parks the handlers until Open adopts them.
var table = displayTable{
	registries: make(map[uint32]*event.Registry),
	displays:   make(map[uint32]*Display),
}

type displayTable struct {
	mu         sync.Mutex
	registries map[uint32]*event.Registry
	displays   map[uint32]*Display
	nextID     uint32
}

func (t *displayTable) registryLocked(id uint32) *event.Registry {
	reg, ok := t.registries[id]
	if !ok {
		reg = event.NewRegistry()
		t.registries[id] = reg
	}
	return reg
}
