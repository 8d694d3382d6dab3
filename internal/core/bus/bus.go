// Package bus is a small in-process publish/subscribe channel for
// payload-free signals.
package bus

import "sync"

// Signal names a broadcast event.
type Signal string

// WorkSessionComplete fires once for every finished work phase.
const WorkSessionComplete Signal = "work_session_complete"

type subscription struct {
	id      int
	handler func()
}

// Bus delivers signals synchronously to every current subscriber.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[Signal][]subscription
	nextID      int
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{
		subscribers: make(map[Signal][]subscription),
	}
}

// Subscribe registers handler for signal and returns a function that removes it.
func (bus *Bus) Subscribe(signal Signal, handler func()) func() {
	bus.mu.Lock()
	bus.nextID++
	id := bus.nextID
	bus.subscribers[signal] = append(bus.subscribers[signal], subscription{id: id, handler: handler})
	bus.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			bus.unsubscribe(signal, id)
		})
	}
}

// Emit calls every handler of signal in subscription order and returns
// once all of them have returned.
func (bus *Bus) Emit(signal Signal) {
	bus.mu.RLock()
	handlers := append([]subscription(nil), bus.subscribers[signal]...)
	bus.mu.RUnlock()

	for _, sub := range handlers {
		sub.handler()
	}
}

// SubscriberCount returns the number of handlers registered for signal.
func (bus *Bus) SubscriberCount(signal Signal) int {
	bus.mu.RLock()
	defer bus.mu.RUnlock()
	return len(bus.subscribers[signal])
}

func (bus *Bus) unsubscribe(signal Signal, id int) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	subs := bus.subscribers[signal]
	for i, sub := range subs {
		if sub.id == id {
			bus.subscribers[signal] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}
