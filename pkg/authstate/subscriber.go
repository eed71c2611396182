package authstate

import (
	"context"
	"sync"
)

type subscriber struct {
	ch     chan State
	closed bool
	mu     sync.RWMutex
}

func (sub *subscriber) send(state State) bool {
	sub.mu.RLock()
	defer sub.mu.RUnlock()

	if sub.closed {
		return false
	}

	select {
	case sub.ch <- state:
		return true
	default:
		// Slow consumers miss intermediate states rather than blocking the
		// writer; they always converge on the next published state.
		return false
	}
}

func (sub *subscriber) close() error {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	if !sub.closed {
		close(sub.ch)
		sub.closed = true
	}
	return nil
}

// Subscribe registers an observer of state changes. Each Update, Reset and
// successful Restore is delivered as a full state copy. The subscription ends
// and the channel closes when ctx is cancelled or the store is closed.
func (s *Store) Subscribe(ctx context.Context) <-chan State {
	sub := &subscriber{ch: make(chan State, s.subBuf)}

	s.subMu.Lock()
	if s.closed {
		s.subMu.Unlock()
		_ = sub.close()
		return sub.ch
	}
	s.subs[sub] = struct{}{}
	s.subMu.Unlock()

	if ctx.Done() != nil {
		s.cleanup.Add(1)
		go func() {
			defer s.cleanup.Done()
			select {
			case <-ctx.Done():
				s.unsubscribe(sub)
			case <-s.done:
			}
		}()
	}

	return sub.ch
}

func (s *Store) notify(state State) {
	s.subMu.RLock()
	defer s.subMu.RUnlock()

	if s.closed {
		return
	}

	for sub := range s.subs {
		_ = sub.send(state.Clone())
	}
}

func (s *Store) unsubscribe(sub *subscriber) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	delete(s.subs, sub)
	_ = sub.close()
}
