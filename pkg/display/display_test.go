package display

import (
	"context"
	"testing"

	"github.com/kjkrol/gokev/internal/platform"
	"github.com/kjkrol/gokev/pkg/event"
)

type received struct {
	typ  event.Type
	a, b int
	user any
}

func collector(sink *[]received) event.Handler {
	return func(typ event.Type, a, b int, user any) bool {
		*sink = append(*sink, received{typ: typ, a: a, b: b, user: user})
		return true
	}
}

func openHeadless(t *testing.T) (*Display, *platform.HeadlessWindow) {
	t.Helper()
	d, err := Open(Config{Width: 320, Height: 200, Title: "test", Headless: true})
	if err != nil {
		t.Fatalf("open headless display: %v", err)
	}
	t.Cleanup(d.Close)
	return d, d.win.(*platform.HeadlessWindow)
}

func TestPumpDispatchesToHandler(t *testing.T) {
	d, win := openHeadless(t)

	var got []received
	ctx := "user context"
	if err := d.Register(collector(&got), ctx); err != nil {
		t.Fatal(err)
	}

	if !win.Push(platform.MotionNotify{X: 7, Y: 9}) {
		t.Fatal("push failed")
	}
	if n := d.ProcessEvents(nil, 50); n != 1 {
		t.Fatalf("expected 1 dispatched event, got %d", n)
	}
	if len(got) != 1 {
		t.Fatalf("handler called %d times", len(got))
	}
	if got[0] != (received{typ: event.MouseMoveType, a: 7, b: 9, user: ctx}) {
		t.Errorf("unexpected delivery %#v", got[0])
	}
}

func TestPumpKeyFanOut(t *testing.T) {
	d, win := openHeadless(t)

	var got []received
	if err := d.Register(collector(&got), nil); err != nil {
		t.Fatal(err)
	}

	win.Push(platform.KeyPress{Sym: event.KeyA, Raw: event.Keya, Char: 'A'})
	if n := d.ProcessEvents(nil, 50); n != 3 {
		t.Fatalf("expected raw+state+char, got %d", n)
	}

	wantTypes := []event.Type{event.KeyRawType, event.KeyStateType, event.KeyCharType}
	for i, want := range wantTypes {
		if got[i].typ != want {
			t.Errorf("event %d: got %v want %v", i, got[i].typ, want)
		}
	}
	if got[0].a != event.Keya || got[1].a != event.KeyA || got[2].a != 'A' {
		t.Errorf("unexpected payloads %#v", got)
	}
}

func TestEmitSyntheticEvent(t *testing.T) {
	d, _ := openHeadless(t)

	var got []received
	if err := d.Register(collector(&got), nil); err != nil {
		t.Fatal(err)
	}

	d.Emit(event.KeyChar{Char: 'q'})
	if n := d.ProcessEvents(nil, 0); n != 1 {
		t.Fatalf("expected the synthetic event, got %d", n)
	}
	if got[0].typ != event.KeyCharType || got[0].a != 'q' {
		t.Errorf("unexpected delivery %#v", got[0])
	}
}

func TestRegisterBeforeOpenIsAdopted(t *testing.T) {
	table.mu.Lock()
	upcoming := table.nextID
	table.mu.Unlock()

	var got []received
	h := collector(&got)
	if err := RegisterEvents(h, Options{Display: upcoming}); err != nil {
		t.Fatal(err)
	}
	defer UnregisterEvents(h, nil)

	d, win := openHeadless(t)
	if d.ID() != upcoming {
		t.Fatalf("display id %d, registered for %d", d.ID(), upcoming)
	}

	win.Push(platform.MotionNotify{X: 1, Y: 2})
	d.ProcessEvents(nil, 50)
	if len(got) != 1 {
		t.Fatalf("pre-registered handler not adopted, %d calls", len(got))
	}
}

func TestUnregisterEventsSearchesAllDisplays(t *testing.T) {
	first, _ := openHeadless(t)
	second, _ := openHeadless(t)

	var got []received
	h := collector(&got)
	user := struct{ tag string }{"shared"}
	if err := first.Register(h, user); err != nil {
		t.Fatal(err)
	}
	if err := second.Register(h, user); err != nil {
		t.Fatal(err)
	}

	UnregisterEvents(h, user)
	if n := first.registry.Len(); n != 0 {
		t.Errorf("first display still has %d registrations", n)
	}
	if n := second.registry.Len(); n != 0 {
		t.Errorf("second display still has %d registrations", n)
	}
}

func TestRunStopsOnWindowClosed(t *testing.T) {
	d, win := openHeadless(t)

	var got []received
	if err := d.Register(collector(&got), nil); err != nil {
		t.Fatal(err)
	}

	win.Push(platform.ClientMessage{})
	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if !d.CloseRequested() {
		t.Error("close not recorded")
	}
	if len(got) != 1 || got[0].typ != event.WindowClosedType {
		t.Errorf("WindowClosed not delivered before exit, got %#v", got)
	}
	if got[0].a != 0 || got[0].b != 0 {
		t.Errorf("WindowClosed carries payload %#v", got[0])
	}
}

func TestRunHonorsContext(t *testing.T) {
	d, _ := openHeadless(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.Run(ctx); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCloseClearsTheTable(t *testing.T) {
	d, win := openHeadless(t)
	id := d.ID()

	if err := d.Register(collector(&[]received{}), nil); err != nil {
		t.Fatal(err)
	}

	d.Close()
	d.Close() // idempotent

	if !win.Closed() {
		t.Error("backend window not closed")
	}
	table.mu.Lock()
	_, haveDisplay := table.displays[id]
	_, haveRegistry := table.registries[id]
	table.mu.Unlock()
	if haveDisplay || haveRegistry {
		t.Error("table still references the closed display")
	}
}

func TestDefaultOptionsTargetDefaultDisplay(t *testing.T) {
	var got []received
	h := collector(&got)
	if err := RegisterEvents(h, Options{}); err != nil {
		t.Fatal(err)
	}
	defer UnregisterEvents(h, nil)

	table.mu.Lock()
	reg := table.registryLocked(0)
	table.mu.Unlock()
	if reg.Len() == 0 {
		t.Error("zero options did not land on display 0")
	}
}
