package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rathoremon/car-repair-sub000/domain"
)

func testStore(t *testing.T) (domain.DraftStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisDraftStore(client, time.Hour), mr
}

func TestRedisDraftStore_RoundTrip(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "prov-1", []byte(`{"step":3}`)))

	draft, err := store.Get(ctx, "prov-1")
	require.NoError(t, err)
	assert.Equal(t, `{"step":3}`, string(draft))
}

func TestRedisDraftStore_Missing(t *testing.T) {
	store, _ := testStore(t)
	_, err := store.Get(context.Background(), "prov-unknown")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestRedisDraftStore_TTLAndExpiry(t *testing.T) {
	store, mr := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "prov-1", []byte("draft")))
	assert.Equal(t, time.Hour, mr.TTL("onboarding:draft:prov-1"))

	mr.FastForward(2 * time.Hour)
	_, err := store.Get(ctx, "prov-1")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestRedisDraftStore_OverwriteKeepsLatest(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "prov-1", []byte("v1")))
	require.NoError(t, store.Put(ctx, "prov-1", []byte("v2")))

	draft, err := store.Get(ctx, "prov-1")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(draft))
}
