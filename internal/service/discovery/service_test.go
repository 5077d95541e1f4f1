package discovery_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/nearby/internal/db"
	svcErr "github.com/oggyb/nearby/internal/errors"
	"github.com/oggyb/nearby/internal/service/discovery"
	"github.com/oggyb/nearby/internal/testutil"
)

func usernames(users []db.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Username)
	}
	return out
}

func swipe(t *testing.T, env *testutil.Env, from, to *db.User, kind db.SwipeKind) {
	t.Helper()
	require.NoError(t, env.DB.Create(&db.Swipe{SwiperID: from.ID, SwipedID: to.ID, Kind: kind}).Error)
}

func TestGetCandidates_Exclusions(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	svc := discovery.NewService(env.App)

	me := testutil.CreateUser(t, env.DB, "me")
	testutil.CreateUser(t, env.DB, "ok")
	liked := testutil.CreateUser(t, env.DB, "liked")
	passed := testutil.CreateUser(t, env.DB, "passed")
	testutil.CreateUser(t, env.DB, "hidden", testutil.Invisible())
	testutil.CreateUser(t, env.DB, "banned", testutil.Banned())
	testutil.CreateUser(t, env.DB, "fresh", testutil.NotOnboarded())
	testutil.CreateUser(t, env.DB, "young", testutil.WithAge(17))
	testutil.CreateUser(t, env.DB, "old", testutil.WithAge(101))
	inactive := testutil.CreateUser(t, env.DB, "inactive")
	require.NoError(t, env.DB.Model(&db.User{}).Where("id = ?", inactive.ID).UpdateColumn("is_active", false).Error)

	swipe(t, env, me, liked, db.SwipeLike)
	swipe(t, env, me, passed, db.SwipePass)
	// being swiped on does not hide anyone
	likedMe := testutil.CreateUser(t, env.DB, "likedme")
	swipe(t, env, likedMe, me, db.SwipeLike)

	page, err := svc.GetCandidates(ctx, me.ID, discovery.Filters{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ok", "likedme"}, usernames(page.Profiles))
	assert.EqualValues(t, 2, page.Total)
	assert.False(t, page.HasMore)
}

func TestGetCandidates_GenderAndAge(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	svc := discovery.NewService(env.App)

	me := testutil.CreateUser(t, env.DB, "me", testutil.WithGender("male", "female"))
	testutil.CreateUser(t, env.DB, "f30", testutil.WithGender("female", "male"), testutil.WithAge(30))
	testutil.CreateUser(t, env.DB, "f40", testutil.WithGender("female", "male"), testutil.WithAge(40))
	testutil.CreateUser(t, env.DB, "m30", testutil.WithGender("male", "female"), testutil.WithAge(30))

	page, err := svc.GetCandidates(ctx, me.ID, discovery.Filters{MinAge: 25, MaxAge: 35})
	require.NoError(t, err)
	assert.Equal(t, []string{"f30"}, usernames(page.Profiles))

	open := testutil.CreateUser(t, env.DB, "open", testutil.WithGender("male", "everyone"))
	page, err = svc.GetCandidates(ctx, open.ID, discovery.Filters{})
	require.NoError(t, err)
	assert.Len(t, page.Profiles, 4)
}

func TestGetCandidates_Ordering(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	svc := discovery.NewService(env.App)
	now := env.Clock.Now()

	me := testutil.CreateUser(t, env.DB, "me")
	testutil.CreateUser(t, env.DB, "expired-boost", testutil.WithBoostUntil(now.Add(-time.Minute)), testutil.WithVerification(0))
	testutil.CreateUser(t, env.DB, "mid-score", testutil.WithVerification(50))
	testutil.CreateUser(t, env.DB, "never-seen", testutil.WithVerification(90))
	testutil.CreateUser(t, env.DB, "seen-hour-ago", testutil.WithVerification(90), testutil.WithLastSeen(now.Add(-time.Hour)))
	testutil.CreateUser(t, env.DB, "seen-now", testutil.WithVerification(90), testutil.WithLastSeen(now.Add(-time.Minute)))
	testutil.CreateUser(t, env.DB, "boosted", testutil.WithBoostUntil(now.Add(10*time.Minute)), testutil.WithVerification(10))

	page, err := svc.GetCandidates(ctx, me.ID, discovery.Filters{})
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"boosted", "seen-now", "seen-hour-ago", "never-seen", "mid-score", "expired-boost"},
		usernames(page.Profiles))
}

func TestGetCandidates_Distance(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	svc := discovery.NewService(env.App)

	me := testutil.CreateUser(t, env.DB, "me", testutil.WithPosition(51.5074, -0.1278))
	testutil.CreateUser(t, env.DB, "camden", testutil.WithPosition(51.5390, -0.1426))  // ~3.6 km
	testutil.CreateUser(t, env.DB, "brighton", testutil.WithPosition(50.8225, -0.1372)) // ~76 km
	testutil.CreateUser(t, env.DB, "paris", testutil.WithPosition(48.8566, 2.3522))     // ~344 km
	testutil.CreateUser(t, env.DB, "nowhere")

	page, err := svc.GetCandidates(ctx, me.ID, discovery.Filters{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"camden", "brighton"}, usernames(page.Profiles))

	page, err = svc.GetCandidates(ctx, me.ID, discovery.Filters{MaxDistanceKm: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"camden"}, usernames(page.Profiles))

	// no position of our own: no distance filter at all
	drifter := testutil.CreateUser(t, env.DB, "drifter")
	page, err = svc.GetCandidates(ctx, drifter.ID, discovery.Filters{MaxDistanceKm: 1})
	require.NoError(t, err)
	assert.Len(t, page.Profiles, 5)
}

func TestGetCandidates_Pagination(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	svc := discovery.NewService(env.App)

	me := testutil.CreateUser(t, env.DB, "me")
	for i := 0; i < 5; i++ {
		testutil.CreateUser(t, env.DB, "user"+string(rune('a'+i)), testutil.WithVerification(100-i))
	}

	page, err := svc.GetCandidates(ctx, me.ID, discovery.Filters{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"usera", "userb"}, usernames(page.Profiles))
	assert.EqualValues(t, 5, page.Total)
	assert.True(t, page.HasMore)

	page, err = svc.GetCandidates(ctx, me.ID, discovery.Filters{Skip: 4, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"usere"}, usernames(page.Profiles))
	assert.False(t, page.HasMore)

	page, err = svc.GetCandidates(ctx, me.ID, discovery.Filters{Limit: 500})
	require.NoError(t, err)
	assert.Len(t, page.Profiles, 5)
}

func TestGetCandidates_Errors(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	svc := discovery.NewService(env.App)
	me := testutil.CreateUser(t, env.DB, "me")

	_, err := svc.GetCandidates(ctx, "ghost", discovery.Filters{})
	assert.True(t, svcErr.Is(err, svcErr.KindNotFound))

	_, err = svc.GetCandidates(ctx, me.ID, discovery.Filters{MinAge: 40, MaxAge: 30})
	assert.True(t, svcErr.Is(err, svcErr.KindInvalidArgument))

	_, err = svc.GetCandidates(ctx, me.ID, discovery.Filters{Skip: -1})
	assert.True(t, svcErr.Is(err, svcErr.KindInvalidArgument))
}
