package notify_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oggyb/nearby/internal/cache"
	"github.com/oggyb/nearby/internal/config"
	"github.com/oggyb/nearby/internal/db"
	"github.com/oggyb/nearby/internal/logger"
	"github.com/oggyb/nearby/internal/notify"
	"github.com/oggyb/nearby/internal/testutil"
)

// recorder is a Deliverer that remembers what it was handed.
type recorder struct {
	mu   sync.Mutex
	msgs map[string][]notify.Message
}

func (r *recorder) SendToUser(userID string, payload any) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.msgs == nil {
		r.msgs = map[string][]notify.Message{}
	}
	r.msgs[userID] = append(r.msgs[userID], payload.(notify.Message))
	return 1, nil
}

func (r *recorder) For(userID string) []notify.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Message(nil), r.msgs[userID]...)
}

func newDispatcher(t *testing.T, gdb *gorm.DB, mr *miniredis.Miniredis, instance string, local notify.Deliverer, queue int) *notify.Dispatcher {
	t.Helper()
	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	cfg.App.InstanceID = instance
	cfg.Notify.Workers = 2
	cfg.Notify.QueueSize = queue
	cfg.Notify.Channel = "notifications-test"

	rc := cache.NewRedisCache(cfg)
	t.Cleanup(func() { rc.Close() })
	return notify.NewDispatcher(gdb, rc, local, cfg, logger.Discard())
}

func TestDispatcher_StoresDeliversAndPublishes(t *testing.T) {
	gdb := testutil.NewDB(t)
	mr, rc := testutil.NewRedis(t)
	local := &recorder{}
	d := newDispatcher(t, gdb, mr, "a", local, 16)

	sub := rc.Subscribe(context.Background(), "notifications-test")
	defer sub.Close()
	_, err := sub.Receive(context.Background())
	require.NoError(t, err)

	d.Start()
	d.Notify(&db.Notification{UserID: "u1", Type: db.NotificationWave, Title: "New wave", Body: "bob waved at you",
		Data: map[string]any{"fromUserId": "bob"}})
	d.Stop()

	var stored []db.Notification
	require.NoError(t, gdb.Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Equal(t, "u1", stored[0].UserID)
	assert.False(t, stored[0].IsRead)

	msgs := local.For("u1")
	require.Len(t, msgs, 1)
	assert.Equal(t, "notification", msgs[0].Type)
	assert.Equal(t, stored[0].ID, msgs[0].Notification.ID)
	assert.Equal(t, "bob", msgs[0].Notification.Data["fromUserId"])

	select {
	case m := <-sub.Channel():
		var env notify.Envelope
		require.NoError(t, json.Unmarshal([]byte(m.Payload), &env))
		assert.Equal(t, "a", env.Origin)
		assert.Equal(t, "u1", env.Notification.UserID)
	case <-time.After(2 * time.Second):
		t.Fatal("no event published")
	}
}

func TestDispatcher_FanOutSkipsOwnEvents(t *testing.T) {
	gdb := testutil.NewDB(t)
	mr, _ := testutil.NewRedis(t)

	localA, localB := &recorder{}, &recorder{}
	a := newDispatcher(t, gdb, mr, "instance-a", localA, 16)
	b := newDispatcher(t, gdb, mr, "instance-b", localB, 16)

	ctx, cancel := context.WithCancel(context.Background())
	go a.Run(ctx)
	go b.Run(ctx)
	require.Eventually(t, func() bool {
		return mr.PubSubNumSub("notifications-test")["notifications-test"] == 2
	}, 2*time.Second, 10*time.Millisecond)

	a.Start()
	a.Notify(&db.Notification{UserID: "u1", Type: db.NotificationMatch, Title: "It's a match!"})

	require.Eventually(t, func() bool { return len(localB.For("u1")) == 1 }, 2*time.Second, 10*time.Millisecond)
	a.Stop()

	// a delivered locally once from its worker and ignored its own echo
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, localA.For("u1"), 1)

	cancel()
	for _, d := range []*notify.Dispatcher{a, b} {
		select {
		case <-d.Done():
		case <-time.After(2 * time.Second):
			t.Fatal("subscriber did not stop")
		}
	}
}

func TestDispatcher_FullQueueDrops(t *testing.T) {
	gdb := testutil.NewDB(t)
	mr, _ := testutil.NewRedis(t)
	d := newDispatcher(t, gdb, mr, "a", nil, 1)

	// not started: nothing drains the queue
	d.Notify(&db.Notification{UserID: "u1", Type: db.NotificationWave, Title: "1"})
	d.Notify(&db.Notification{UserID: "u1", Type: db.NotificationWave, Title: "2"})
	assert.EqualValues(t, 1, d.Dropped())

	d.Start()
	d.Stop()
	d.Notify(&db.Notification{UserID: "u1", Type: db.NotificationWave, Title: "3"})
	assert.EqualValues(t, 2, d.Dropped())

	var count int64
	require.NoError(t, gdb.Model(&db.Notification{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
