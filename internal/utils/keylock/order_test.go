package keylock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waiting(l *Locker, key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if e, ok := l.locks[key]; ok {
		return len(e.waiters)
	}
	return 0
}

func TestLocker_ArrivalOrder(t *testing.T) {
	var l Locker
	l.Lock("u1")

	order := make(chan int, 5)
	for i := 0; i < 5; i++ {
		go func(i int) {
			l.Lock("u1")
			order <- i
			l.Unlock("u1")
		}(i)
		require.Eventually(t, func() bool { return waiting(&l, "u1") == i+1 }, time.Second, time.Millisecond)
	}

	l.Unlock("u1")
	for want := 0; want < 5; want++ {
		assert.Equal(t, want, <-order)
	}
}
