package storage

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T, mr *miniredis.Miniredis) *RedisStore {
	t.Helper()

	store, err := NewRedisStore(mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestRedisStore_SetGetDelete(t *testing.T) {
	mr := miniredis.RunT(t)
	store := newTestRedisStore(t, mr)

	_, err := store.Get("clients")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set("clients", []byte(`[{"id":"cli-1"}]`)))

	got, err := store.Get("clients")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"cli-1"}]`), got)

	// Chave gravada com prefixo próprio no Redis
	assert.True(t, mr.Exists("wsm:store:clients"))

	require.NoError(t, store.Delete("clients"))
	_, err = store.Get("clients")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisStore_KeysRemovePrefixo(t *testing.T) {
	mr := miniredis.RunT(t)
	store := newTestRedisStore(t, mr)

	require.NoError(t, store.Set("users", []byte(`[]`)))
	require.NoError(t, store.Set("invoices", []byte(`[]`)))

	keys, err := store.Keys()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"users", "invoices"}, keys)
}

func TestRedisStore_NotificaApenasOutrasInstancias(t *testing.T) {
	mr := miniredis.RunT(t)
	writer := newTestRedisStore(t, mr)
	observer := newTestRedisStore(t, mr)

	var writerNotified, observerNotified atomic.Int32
	writer.Subscribe(func(key string) { writerNotified.Add(1) })
	observer.Subscribe(func(key string) {
		if key == "clients" {
			observerNotified.Add(1)
		}
	})

	// Dar tempo para as assinaturas pub/sub se estabelecerem
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, writer.Set("clients", []byte(`[]`)))

	assert.Eventually(t, func() bool {
		return observerNotified.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(0), writerNotified.Load())
}
