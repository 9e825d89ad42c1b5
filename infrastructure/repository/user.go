package repository

import (
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/workspace-manager-api/infrastructure/storage"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
	"github.com/vfg2006/workspace-manager-api/pkg/utils"
)

const userIDPrefix = "usr"

type UserRepository interface {
	Create(user domain.User) (*domain.User, error)
	GetByID(id string) *domain.User
	// GetByEmail localiza o usuário por e-mail, sem diferenciar maiúsculas.
	GetByEmail(email string) *domain.User
	List() []domain.User
}

type userRepository struct {
	store storage.Store

	mu    sync.RWMutex
	users []domain.User
}

func NewUserRepository(store storage.Store) UserRepository {
	r := &userRepository{
		store: store,
		users: loadCollection[domain.User](store, storage.KeyUsers),
	}

	store.Subscribe(func(key string) {
		if key == storage.KeyUsers {
			r.reload()
		}
	})

	return r
}

func (r *userRepository) reload() {
	users := loadCollection[domain.User](r.store, storage.KeyUsers)

	r.mu.Lock()
	r.users = users
	r.mu.Unlock()
}

func (r *userRepository) Create(user domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := utils.GenerateID(userIDPrefix)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now

	updated := make([]domain.User, len(r.users), len(r.users)+1)
	copy(updated, r.users)
	updated = append(updated, user)

	if err := persistCollection(r.store, storage.KeyUsers, updated); err != nil {
		return nil, err
	}

	r.users = updated
	return &user, nil
}

func (r *userRepository) GetByID(id string) *domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			u := user
			return &u
		}
	}

	return nil
}

func (r *userRepository) GetByEmail(email string) *domain.User {
	normalized := strings.ToLower(strings.TrimSpace(email))

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.ToLower(user.Email) == normalized {
			u := user
			return &u
		}
	}

	return nil
}

func (r *userRepository) List() []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out
}
