package event

import (
	"errors"
	"reflect"
	"sync"
)

// Handler receives a dispatched event as its flat encoding plus the user
// value supplied at registration. The return value reports whether the
// handler consumed the event; it does not stop delivery to the remaining
// handlers.
type Handler func(typ Type, a, b int, user any) bool

var ErrNilHandler = errors.New("event: nil handler")

type registration struct {
	fn   Handler
	code uintptr // code pointer, identity for Unregister matching
	user any
}

// Registry is an ordered list of handler registrations. Registration and
// dispatch may happen from different goroutines; dispatch runs over a
// snapshot, so handlers can register or unregister mid-dispatch without
// affecting the in-flight pass.
type Registry struct {
	mu      sync.Mutex
	entries []registration
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends the (handler, user) pair. The same pair may be
// registered more than once and will then be invoked once per entry.
func (r *Registry) Register(h Handler, user any) error {
	if h == nil {
		return ErrNilHandler
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, registration{
		fn:   h,
		code: reflect.ValueOf(h).Pointer(),
		user: user,
	})
	return nil
}

// Unregister removes every registration matching both the handler identity
// and the user value. Handler identity is the underlying code pointer, the
// same notion of equality a function pointer has in C. Removing a pair that
// was never registered is a no-op.
func (r *Registry) Unregister(h Handler, user any) {
	if h == nil {
		return
	}
	code := reflect.ValueOf(h).Pointer()
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.entries[:0]
	for _, entry := range r.entries {
		if entry.code == code && sameUser(entry.user, user) {
			continue
		}
		kept = append(kept, entry)
	}
	r.entries = kept
}

// sameUser compares registration user values. Comparable values compare by
// equality; funcs, maps and slices are opaque handles and compare by
// identity, so passing the same value to Unregister always matches.
func sameUser(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	switch ta.Kind() {
	case reflect.Func, reflect.Map, reflect.Slice:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	if !ta.Comparable() {
		return false
	}
	return a == b
}

// Dispatch invokes all registered handlers in registration order, passing
// the event's flat encoding and each registration's user value. Every
// handler sees every event; the return value reports whether at least one
// handler consumed it.
func (r *Registry) Dispatch(ev Event) bool {
	if ev == nil {
		return false
	}
	r.mu.Lock()
	snapshot := make([]registration, len(r.entries))
	copy(snapshot, r.entries)
	r.mu.Unlock()

	a, b := ev.Params()
	consumed := false
	for _, entry := range snapshot {
		if entry.fn(ev.Type(), a, b, entry.user) {
			consumed = true
		}
	}
	return consumed
}

// Len reports the number of active registrations.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Clear drops all registrations.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
