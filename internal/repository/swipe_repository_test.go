package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/nearby/internal/db"
	"github.com/oggyb/nearby/internal/repository"
	"github.com/oggyb/nearby/internal/testutil"
	"github.com/oggyb/nearby/internal/utils/pagination"
)

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestSwipeCreate_DuplicatePairIsUniqueViolation(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.NewDB(t)
	repo := repository.NewSwipeRepository(gdb)

	require.NoError(t, repo.Create(ctx, &db.Swipe{SwiperID: "a", SwipedID: "b", Kind: db.SwipeLike, CreatedAt: base}))

	err := repo.Create(ctx, &db.Swipe{SwiperID: "a", SwipedID: "b", Kind: db.SwipePass, CreatedAt: base})
	require.Error(t, err)
	assert.True(t, repository.IsUniqueViolation(err))

	// the reverse pair is independent
	require.NoError(t, repo.Create(ctx, &db.Swipe{SwiperID: "b", SwipedID: "a", Kind: db.SwipePass, CreatedAt: base}))
}

func TestSwipe_HasLikedAndExists(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.NewDB(t)
	repo := repository.NewSwipeRepository(gdb)

	require.NoError(t, repo.Create(ctx, &db.Swipe{SwiperID: "a", SwipedID: "b", Kind: db.SwipeSuperLike, CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, &db.Swipe{SwiperID: "a", SwipedID: "c", Kind: db.SwipePass, CreatedAt: base}))

	liked, err := repo.HasLiked(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = repo.HasLiked(ctx, "a", "c")
	require.NoError(t, err)
	assert.False(t, liked)

	exists, err := repo.Exists(ctx, "a", "c")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, "c", "a")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSwipe_LatestAndDelete(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.NewDB(t)
	repo := repository.NewSwipeRepository(gdb)

	_, err := repo.Latest(ctx, "a")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Create(ctx, &db.Swipe{SwiperID: "a", SwipedID: "b", Kind: db.SwipeLike, CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, &db.Swipe{SwiperID: "a", SwipedID: "c", Kind: db.SwipePass, CreatedAt: base.Add(time.Second)}))

	latest, err := repo.Latest(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "c", latest.SwipedID)

	n, err := repo.Delete(ctx, "a", "c")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.Delete(ctx, "a", "c")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSwipe_LikesReceivedPagination(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.NewDB(t)
	repo := repository.NewSwipeRepository(gdb)
	matches := repository.NewMatchRepository(gdb)

	for i, from := range []string{"u1", "u2", "u3", "u4", "u5"} {
		kind := db.SwipeLike
		if i == 2 {
			kind = db.SwipePass
		}
		require.NoError(t, repo.Create(ctx, &db.Swipe{SwiperID: from, SwipedID: "me", Kind: kind, CreatedAt: base.Add(time.Duration(i) * time.Second)}))
	}
	// u4 is already a match
	_, _, err := matches.CreateIfAbsent(ctx, "me", "u4", base)
	require.NoError(t, err)

	page, next, err := repo.LikesReceived(ctx, "me", nil, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "u5", page[0].SwiperID)
	assert.Equal(t, "u2", page[1].SwiperID)
	require.NotNil(t, next)

	page, next, err = repo.LikesReceived(ctx, "me", next, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "u1", page[0].SwiperID)
	assert.Nil(t, next)

	all, next, err := repo.LikesReceived(ctx, "me", nil, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Nil(t, next)

	bad := "%%%"
	_, _, err = repo.LikesReceived(ctx, "me", &bad, 2)
	assert.ErrorIs(t, err, pagination.ErrInvalidToken)
}
