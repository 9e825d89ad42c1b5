package repository

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/workspace-manager-api/infrastructure/storage"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
)

// SessionRepository guarda o registro de sessão corrente (chave
// current_user): um único usuário logado por instância, como no modelo de
// operador único do painel.
type SessionRepository interface {
	SetCurrentUser(user *domain.User) error
	// GetCurrentUser retorna nil quando não há sessão ou o registro está
	// corrompido — nunca erro de leitura para quem chama.
	GetCurrentUser() *domain.User
	ClearCurrentUser() error
}

type sessionRepository struct {
	store storage.Store
}

func NewSessionRepository(store storage.Store) SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) SetCurrentUser(user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	if err := r.store.Set(storage.KeyCurrentUser, raw); err != nil {
		return errors.Wrap(err, "erro ao persistir a sessão corrente")
	}

	return nil
}

func (r *sessionRepository) GetCurrentUser() *domain.User {
	raw, err := r.store.Get(storage.KeyCurrentUser)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			logrus.WithError(err).Warn("Erro ao ler a sessão corrente")
		}
		return nil
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		logrus.WithError(err).Warn("Registro de sessão corrompido no armazenamento")
		return nil
	}

	return &user
}

func (r *sessionRepository) ClearCurrentUser() error {
	return r.store.Delete(storage.KeyCurrentUser)
}
