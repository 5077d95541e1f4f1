// Package keylock provides mutual exclusion per string key.
package keylock

import "sync"

type entry struct {
	waiters []chan struct{}
}

// Locker hands out one lock per key. Waiters on the same key acquire it in
// the order they called Lock; different keys never block each other. The
// zero value is ready to use.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*entry
}

// Lock blocks until key is free.
func (l *Locker) Lock(key string) {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*entry)
	}
	e, held := l.locks[key]
	if !held {
		l.locks[key] = &entry{}
		l.mu.Unlock()
		return
	}
	ch := make(chan struct{})
	e.waiters = append(e.waiters, ch)
	l.mu.Unlock()

	<-ch
}

// Unlock releases key, passing ownership straight to the oldest waiter.
// Unlocking a key that is not locked panics.
func (l *Locker) Unlock(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, held := l.locks[key]
	if !held {
		panic("keylock: unlock of unlocked key " + key)
	}
	if len(e.waiters) == 0 {
		delete(l.locks, key)
		return
	}
	next := e.waiters[0]
	e.waiters = e.waiters[1:]
	close(next)
}

// Len returns how many keys are currently held.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
