package boost_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/nearby/internal/db"
	svcErr "github.com/oggyb/nearby/internal/errors"
	"github.com/oggyb/nearby/internal/service/boost"
	"github.com/oggyb/nearby/internal/service/discovery"
	"github.com/oggyb/nearby/internal/testutil"
)

func TestActivateBoost_ConflictThenRenewAfterExpiry(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	svc := boost.NewService(env.App)
	u := testutil.CreateUser(t, env.DB, "premium", testutil.WithTier(db.TierPremium))

	start := env.Clock.Now()
	until, err := svc.ActivateBoost(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, start.Add(boost.Duration), until)

	env.Clock.Advance(10 * time.Minute)
	_, err = svc.ActivateBoost(ctx, u.ID)
	assert.True(t, svcErr.Is(err, svcErr.KindConflict))

	st, err := svc.GetBoostStatus(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, st.IsBoosted)
	require.NotNil(t, st.BoostedUntil)
	assert.True(t, until.Equal(*st.BoostedUntil))

	// the window is half-open: at boosted_until the boost is over
	env.Clock.Advance(20 * time.Minute)
	st, err = svc.GetBoostStatus(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, st.IsBoosted)
	assert.Nil(t, st.BoostedUntil)

	renewed, err := svc.ActivateBoost(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, env.Clock.Now().Add(30*time.Minute), renewed)
}

func TestActivateBoost_Errors(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	svc := boost.NewService(env.App)
	free := testutil.CreateUser(t, env.DB, "free")

	_, err := svc.ActivateBoost(ctx, free.ID)
	assert.True(t, svcErr.Is(err, svcErr.KindForbidden))

	_, err = svc.ActivateBoost(ctx, "ghost")
	assert.True(t, svcErr.Is(err, svcErr.KindNotFound))

	_, err = svc.GetBoostStatus(ctx, "ghost")
	assert.True(t, svcErr.Is(err, svcErr.KindNotFound))

	_, err = svc.ActivateBoost(ctx, "")
	assert.True(t, svcErr.Is(err, svcErr.KindInvalidArgument))
}

func TestActivateBoost_ConcurrentOnlyOneWins(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	svc := boost.NewService(env.App)
	u := testutil.CreateUser(t, env.DB, "vip", testutil.WithTier(db.TierVIP))

	const n = 6
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.ActivateBoost(ctx, u.ID)
		}(i)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case svcErr.Is(err, svcErr.KindConflict):
			conflicts++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, conflicts)
}

func TestActivateBoost_RanksFirstInDiscovery(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	svc := boost.NewService(env.App)
	feed := discovery.NewService(env.App)

	viewer := testutil.CreateUser(t, env.DB, "viewer")
	testutil.CreateUser(t, env.DB, "verified", testutil.WithVerification(100))
	booster := testutil.CreateUser(t, env.DB, "booster", testutil.WithTier(db.TierBasic))

	_, err := svc.ActivateBoost(ctx, booster.ID)
	require.NoError(t, err)

	page, err := feed.GetCandidates(ctx, viewer.ID, discovery.Filters{})
	require.NoError(t, err)
	require.Len(t, page.Profiles, 2)
	assert.Equal(t, "booster", page.Profiles[0].Username)

	env.Clock.Advance(boost.Duration)
	page, err = feed.GetCandidates(ctx, viewer.ID, discovery.Filters{})
	require.NoError(t, err)
	assert.Equal(t, "verified", page.Profiles[0].Username)
}
