package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/workspace-manager-api/infrastructure/storage"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
)

func TestSessionRepository_CicloDeSessao(t *testing.T) {
	repo := NewSessionRepository(storage.NewMemoryStore())

	// Sem sessão persistida
	assert.Nil(t, repo.GetCurrentUser())

	user := &domain.User{
		ID:     "usr-1",
		Name:   "Ana",
		Email:  "ana@example.com.br",
		Active: true,
		RoleID: 1,
	}
	require.NoError(t, repo.SetCurrentUser(user))

	restored := repo.GetCurrentUser()
	require.NotNil(t, restored)
	assert.Equal(t, user.ID, restored.ID)
	assert.Equal(t, user.Email, restored.Email)

	require.NoError(t, repo.ClearCurrentUser())
	assert.Nil(t, repo.GetCurrentUser())
}

func TestSessionRepository_RegistroCorrompidoRetornaNil(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.KeyCurrentUser, []byte(`{invalid`)))

	repo := NewSessionRepository(store)
	assert.Nil(t, repo.GetCurrentUser())
}
