package storage

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SetGetDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get("agreements")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set("agreements", []byte(`[{"id":"agr-1"}]`)))

	got, err := store.Get("agreements")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"agr-1"}]`), got)

	require.NoError(t, store.Delete("agreements"))
	_, err = store.Get("agreements")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Remover chave inexistente não é erro
	assert.NoError(t, store.Delete("agreements"))
}

func TestFileStore_PersisteEntreAberturas(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("users", []byte(`[{"id":"usr-1"}]`)))
	require.NoError(t, store.Close())

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)

	got, err := reopened.Get("users")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"usr-1"}]`), got)
}

func TestFileStore_KeysIgnoraArquivosEstranhos(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("clients", []byte(`[]`)))
	require.NoError(t, store.Set("products", []byte(`[]`)))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notas.txt"), []byte("x"), 0o644))

	keys, err := store.Keys()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"clients", "products"}, keys)
}

func TestFileStore_NotificaApenasOutrosHandles(t *testing.T) {
	first, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	second := first.NewHandle()

	var firstNotified, secondNotified atomic.Int32
	first.Subscribe(func(key string) { firstNotified.Add(1) })
	second.Subscribe(func(key string) { secondNotified.Add(1) })

	require.NoError(t, second.Set("invoices", []byte(`[]`)))

	assert.Eventually(t, func() bool {
		return firstNotified.Load() == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(0), secondNotified.Load())
}
