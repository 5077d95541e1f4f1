package realtime_test

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/nearby/internal/realtime"
)

func TestRegistry_SendToUserReachesEveryConnection(t *testing.T) {
	reg := realtime.NewRegistry()
	phone := realtime.NewClient("u1", 4)
	laptop := realtime.NewClient("u1", 4)
	other := realtime.NewClient("u2", 4)
	reg.Register(phone)
	reg.Register(laptop)
	reg.Register(other)

	assert.Equal(t, 3, reg.Count())
	assert.True(t, reg.IsConnected("u1"))

	n, err := reg.SendToUser("u1", map[string]string{"type": "ping"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, c := range []*realtime.Client{phone, laptop} {
		var got map[string]string
		require.NoError(t, json.Unmarshal(<-c.Send, &got))
		assert.Equal(t, "ping", got["type"])
	}
	assert.Empty(t, other.Send)

	n, err = reg.SendToUser("nobody", "x")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRegistry_CloseDeregisters(t *testing.T) {
	reg := realtime.NewRegistry()
	c := realtime.NewClient("u1", 1)
	reg.Register(c)

	c.Close()
	c.Close()

	assert.False(t, reg.IsConnected("u1"))
	assert.Zero(t, reg.Count())

	_, ok := <-c.Send
	assert.False(t, ok, "send channel is closed")
}

func TestRegistry_FullBufferIsSkipped(t *testing.T) {
	reg := realtime.NewRegistry()
	c := realtime.NewClient("u1", 1)
	reg.Register(c)

	n, _ := reg.SendToUser("u1", 1)
	assert.Equal(t, 1, n)
	n, _ = reg.SendToUser("u1", 2)
	assert.Zero(t, n)
}

func TestRegistry_SendWhileClosing(t *testing.T) {
	reg := realtime.NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		c := realtime.NewClient("u1", 8)
		reg.Register(c)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = reg.SendToUser("u1", "hello")
		}()
		go func() {
			defer wg.Done()
			c.Close()
		}()
	}
	wg.Wait()
	assert.Zero(t, reg.Count())
}
