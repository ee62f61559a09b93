package display

import "github.com/kjkrol/gokev/pkg/event"

// ConsumerStrategy decides how many events a single pump pass takes off the
// queue. poll blocks up to timeoutMs for the first event; follow-up polls
// are non-blocking.
type ConsumerStrategy interface {
	Consume(poll func(timeoutMs int) (event.Event, bool), handle func(event.Event), timeoutMs int) int
}

type drainAllStrategy struct{}

func (drainAllStrategy) Consume(poll func(timeoutMs int) (event.Event, bool), handle func(event.Event), timeoutMs int) int {
	count := 0
	ev, ok := poll(timeoutMs)
	if !ok {
		return 0
	}
	handle(ev)
	count++
	for {
		ev, ok = poll(0)
		if !ok {
			return count
		}
		handle(ev)
		count++
	}
}

type drainMaxStrategy struct {
	max int
}

func (s drainMaxStrategy) Consume(poll func(timeoutMs int) (event.Event, bool), handle func(event.Event), timeoutMs int) int {
	max := s.max
	if max <= 0 {
		max = 1
	}
	count := 0
	ev, ok := poll(timeoutMs)
	if !ok {
		return 0
	}
	handle(ev)
	count++
	for count < max {
		ev, ok = poll(0)
		if !ok {
			return count
		}
		handle(ev)
		count++
	}
	return count
}

// DrainAll dispatches everything that is queued before returning.
func DrainAll() ConsumerStrategy {
	return drainAllStrategy{}
}

// DrainMax dispatches at most max events per pass, bounding the time spent
// in handlers before control returns to the caller.
func DrainMax(max int) ConsumerStrategy {
	return drainMaxStrategy{max: max}
}
