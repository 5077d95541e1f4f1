package wave_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/nearby/internal/db"
	svcErr "github.com/oggyb/nearby/internal/errors"
	"github.com/oggyb/nearby/internal/service/wave"
	"github.com/oggyb/nearby/internal/testutil"
)

func TestSendWave_CooldownPerOrderedPair(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	svc := wave.NewService(env.App)
	alice := testutil.CreateUser(t, env.DB, "alice")
	bob := testutil.CreateUser(t, env.DB, "bob")

	w, err := svc.SendWave(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, w.FromUserID)
	assert.False(t, w.IsRead)

	env.Clock.Advance(time.Hour)
	_, err = svc.SendWave(ctx, alice.ID, bob.ID)
	require.True(t, svcErr.Is(err, svcErr.KindRateLimited))
	var de *svcErr.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 23*time.Hour, de.RetryAfter)

	can, remaining, err := svc.CanSendWave(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, can)
	assert.Equal(t, 23*time.Hour, remaining)

	// bob waving back is a different pair
	_, err = svc.SendWave(ctx, bob.ID, alice.ID)
	require.NoError(t, err)

	env.Clock.Advance(23 * time.Hour)
	can, _, err = svc.CanSendWave(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, can)
	_, err = svc.SendWave(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
}

func TestSendWave_Errors(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	svc := wave.NewService(env.App)
	me := testutil.CreateUser(t, env.DB, "me")
	hidden := testutil.CreateUser(t, env.DB, "hidden", testutil.Invisible())

	_, err := svc.SendWave(ctx, me.ID, me.ID)
	assert.True(t, svcErr.Is(err, svcErr.KindInvalidOperation))

	_, err = svc.SendWave(ctx, me.ID, "ghost")
	assert.True(t, svcErr.Is(err, svcErr.KindNotFound))

	_, err = svc.SendWave(ctx, "ghost", me.ID)
	assert.True(t, svcErr.Is(err, svcErr.KindNotFound))

	_, err = svc.SendWave(ctx, me.ID, hidden.ID)
	assert.True(t, svcErr.Is(err, svcErr.KindNotFound))

	_, err = svc.SendWave(ctx, "", me.ID)
	assert.True(t, svcErr.Is(err, svcErr.KindInvalidArgument))
}

func TestSendWave_NotifiesRecipient(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	svc := wave.NewService(env.App)
	alice := testutil.CreateUser(t, env.DB, "alice")
	bob := testutil.CreateUser(t, env.DB, "bob")

	w, err := svc.SendWave(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	notes := env.Notifier.Of(db.NotificationWave)
	require.Len(t, notes, 1)
	assert.Equal(t, bob.ID, notes[0].UserID)
	assert.Equal(t, "alice waved at you", notes[0].Body)
	assert.Equal(t, w.ID, notes[0].Data["waveId"])
}

func TestSendWave_ConcurrentSamePair(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	svc := wave.NewService(env.App)
	alice := testutil.CreateUser(t, env.DB, "alice")
	bob := testutil.CreateUser(t, env.DB, "bob")

	const n = 5
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.SendWave(ctx, alice.ID, bob.ID)
		}(i)
	}
	wg.Wait()

	var sent int
	for _, err := range errs {
		if err == nil {
			sent++
			continue
		}
		assert.True(t, svcErr.Is(err, svcErr.KindRateLimited), err)
	}
	assert.Equal(t, 1, sent)
}

func TestReceivedWaves_ReadState(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	svc := wave.NewService(env.App)
	me := testutil.CreateUser(t, env.DB, "me")
	first := testutil.CreateUser(t, env.DB, "first")
	second := testutil.CreateUser(t, env.DB, "second")
	gone := testutil.CreateUser(t, env.DB, "gone")

	w1, err := svc.SendWave(ctx, first.ID, me.ID)
	require.NoError(t, err)
	env.Clock.Advance(time.Minute)
	_, err = svc.SendWave(ctx, second.ID, me.ID)
	require.NoError(t, err)
	env.Clock.Advance(time.Minute)
	_, err = svc.SendWave(ctx, gone.ID, me.ID)
	require.NoError(t, err)
	require.NoError(t, env.DB.Model(&db.User{}).Where("id = ?", gone.ID).UpdateColumn("is_banned", true).Error)

	received, err := svc.ReceivedWaves(ctx, me.ID, 0)
	require.NoError(t, err)
	require.Len(t, received, 3)
	assert.Nil(t, received[0].From, "banned sender is not exposed")
	assert.Equal(t, "second", received[1].From.Username)
	assert.Equal(t, "first", received[2].From.Username)

	limited, err := svc.ReceivedWaves(ctx, me.ID, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	n, err := svc.UnreadCount(ctx, me.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	// only the recipient can mark a wave read
	err = svc.MarkAsRead(ctx, first.ID, w1.ID)
	assert.True(t, svcErr.Is(err, svcErr.KindNotFound))
	err = svc.MarkAsRead(ctx, me.ID, "missing")
	assert.True(t, svcErr.Is(err, svcErr.KindNotFound))

	require.NoError(t, svc.MarkAsRead(ctx, me.ID, w1.ID))
	require.NoError(t, svc.MarkAsRead(ctx, me.ID, w1.ID))

	n, err = svc.UnreadCount(ctx, me.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	updated, err := svc.MarkAllAsRead(ctx, me.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated)

	n, err = svc.UnreadCount(ctx, me.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUnreadCount_CachedAndInvalidated(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	svc := wave.NewService(env.App)
	me := testutil.CreateUser(t, env.DB, "me")
	a := testutil.CreateUser(t, env.DB, "a")
	b := testutil.CreateUser(t, env.DB, "b")
	key := env.App.RedisCache.KeyForUnreadWaves(me.ID)

	w, err := svc.SendWave(ctx, a.ID, me.ID)
	require.NoError(t, err)
	assert.False(t, env.Redis.Exists(key))

	n, err := svc.UnreadCount(ctx, me.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	cached, err := env.Redis.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "1", cached)
	assert.Positive(t, env.Redis.TTL(key))

	// served from Redis while the key lives
	require.NoError(t, env.DB.Model(&db.Wave{}).Where("id = ?", w.ID).UpdateColumn("is_read", true).Error)
	n, err = svc.UnreadCount(ctx, me.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	require.NoError(t, env.DB.Model(&db.Wave{}).Where("id = ?", w.ID).UpdateColumn("is_read", false).Error)

	// a new wave drops the cached count
	_, err = svc.SendWave(ctx, b.ID, me.ID)
	require.NoError(t, err)
	assert.False(t, env.Redis.Exists(key))
	n, err = svc.UnreadCount(ctx, me.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	require.NoError(t, svc.MarkAsRead(ctx, me.ID, w.ID))
	assert.False(t, env.Redis.Exists(key))
	n, err = svc.UnreadCount(ctx, me.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = svc.MarkAllAsRead(ctx, me.ID)
	require.NoError(t, err)
	assert.False(t, env.Redis.Exists(key))
	n, err = svc.UnreadCount(ctx, me.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUnreadCount_RedisDownFallsBackToStore(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	svc := wave.NewService(env.App)
	me := testutil.CreateUser(t, env.DB, "me")
	a := testutil.CreateUser(t, env.DB, "a")

	_, err := svc.SendWave(ctx, a.ID, me.ID)
	require.NoError(t, err)

	env.Redis.SetError("LOADING")
	defer env.Redis.SetError("")

	n, err := svc.UnreadCount(ctx, me.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
