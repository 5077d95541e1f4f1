package keylock_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oggyb/nearby/internal/utils/keylock"
)

func TestLocker_SerializesSameKey(t *testing.T) {
	var l keylock.Locker
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Lock("u1")
			defer l.Unlock("u1")
			v := counter
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
	assert.Equal(t, 0, l.Len())
}

func TestLocker_IndependentKeys(t *testing.T) {
	var l keylock.Locker
	l.Lock("a")
	done := make(chan struct{})
	go func() {
		l.Lock("b")
		l.Unlock("b")
		close(done)
	}()
	<-done
	assert.Equal(t, 1, l.Len())
	l.Unlock("a")
	assert.Equal(t, 0, l.Len())
}

func TestLocker_UnlockUnknownPanics(t *testing.T) {
	var l keylock.Locker
	assert.Panics(t, func() { l.Unlock("nope") })
}
