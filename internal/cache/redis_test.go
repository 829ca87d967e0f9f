package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

type cachedProfile struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestGetSetJSON(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	found, err := GetJSON(ctx, "missing", &cachedProfile{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, UserKey(7), cachedProfile{ID: 7, Name: "painter"}, UserTTL))

	var got cachedProfile
	found, err = GetJSON(ctx, UserKey(7), &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint(7), got.ID)
	assert.Equal(t, "painter", got.Name)
}

func TestGetSetJSON_NilClientIsNoop(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, "key", cachedProfile{}, time.Minute))
	found, err := GetJSON(ctx, "key", &cachedProfile{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAside(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedProfile) func() error {
		return func() error {
			fetches++
			dest.ID = 3
			dest.Name = "sculptor"
			return nil
		}
	}

	var first cachedProfile
	require.NoError(t, Aside(ctx, UserKey(3), &first, UserTTL, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "sculptor", first.Name)

	// Second read comes from the cache without fetching.
	var second cachedProfile
	require.NoError(t, Aside(ctx, UserKey(3), &second, UserTTL, fetch(&second)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "sculptor", second.Name)
}

func TestAside_FetchErrorPropagates(t *testing.T) {
	setupMiniredis(t)

	wantErr := errors.New("row not found")
	var dest cachedProfile
	err := Aside(context.Background(), UserKey(9), &dest, UserTTL, func() error {
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)
}

func TestInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, ArtworkKey(5), cachedProfile{ID: 5}, ArtworkTTL))
	require.NoError(t, SetJSON(ctx, LikeCountKey(5), 12, LikeCountTTL))

	InvalidateArtwork(ctx, 5)

	assert.False(t, mr.Exists(ArtworkKey(5)))
	assert.False(t, mr.Exists(LikeCountKey(5)))
}
