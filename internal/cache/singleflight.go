package cache

import "sync"

type flightResult[V any] struct {
	done  chan struct{}
	value V
	err   error
}

// FlightGroup guarantees at most one in-flight fetch per key. Concurrent
// callers for the same uncached key block on the leader's result instead of
// each triggering their own upstream call.
type FlightGroup[V any] struct {
	mu       sync.Mutex
	inflight map[string]*flightResult[V]
}

// NewFlightGroup constructs an empty FlightGroup.
func NewFlightGroup[V any]() *FlightGroup[V] {
	return &FlightGroup[V]{inflight: make(map[string]*flightResult[V])}
}

// Do runs fn once per key at a time. The first caller for a key executes fn;
// callers arriving while it runs wait and share the same result.
func (g *FlightGroup[V]) Do(key string, fn func() (V, error)) (V, error) {
	g.mu.Lock()
	if flight, ok := g.inflight[key]; ok {
		g.mu.Unlock()
		<-flight.done
		return flight.value, flight.err
	}

	flight := &flightResult[V]{done: make(chan struct{})}
	g.inflight[key] = flight
	g.mu.Unlock()

	// Deregister even when fn panics, so the key is not wedged for every
	// later caller.
	defer func() {
		g.mu.Lock()
		delete(g.inflight, key)
		g.mu.Unlock()
		close(flight.done)
	}()

	flight.value, flight.err = fn()
	return flight.value, flight.err
}
