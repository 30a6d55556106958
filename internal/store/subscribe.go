package store

import (
	"context"
	"slices"
	"sync"
)

// Subscribe registers fn to receive a snapshot after every transition and
// returns a function that removes it. Calling the returned function more
// than once is harmless.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	s.nextListener++
	id := s.nextListener
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.listeners = slices.DeleteFunc(s.listeners, func(l listenerEntry) bool {
				return l.id == id
			})
		})
	}
}

// Watch returns a channel holding the latest snapshot, starting with the
// current one. Intermediate snapshots are dropped if the reader falls
// behind. The channel is closed once ctx is done.
func (s *Store) Watch(ctx context.Context) <-chan State {
	ch := make(chan State, 1)

	var (
		mu     sync.Mutex
		closed bool
		sent   bool
		latest uint64
	)
	offer := func(st State) {
		mu.Lock()
		defer mu.Unlock()
		if closed || (sent && st.Version <= latest) {
			return
		}
		select {
		case <-ch:
		default:
		}
		ch <- st
		sent = true
		latest = st.Version
	}

	unsubscribe := s.Subscribe(offer)
	offer(s.Snapshot())

	go func() {
		<-ctx.Done()
		unsubscribe()
		mu.Lock()
		closed = true
		close(ch)
		mu.Unlock()
	}()

	return ch
}
