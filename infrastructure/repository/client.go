package repository

import (
	"sync"
	"time"

	"github.com/vfg2006/workspace-manager-api/infrastructure/storage"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
	"github.com/vfg2006/workspace-manager-api/pkg/utils"
)

const clientIDPrefix = "cli"

type ClientRepository interface {
	Create(req *domain.CreateClientRequest) (*domain.Client, error)
	Update(id string, req *domain.UpdateClientRequest) (*domain.Client, error)
	Delete(id string) (bool, error)
	GetByID(id string) *domain.Client
	List() []domain.Client
}

type clientRepository struct {
	store storage.Store

	mu      sync.RWMutex
	clients []domain.Client
}

// NewClientRepository carrega o espelho da coleção de clientes e passa a
// observar alterações externas da chave para recarregá-lo.
func NewClientRepository(store storage.Store) ClientRepository {
	r := &clientRepository{
		store:   store,
		clients: loadCollection[domain.Client](store, storage.KeyClients),
	}

	store.Subscribe(func(key string) {
		if key == storage.KeyClients {
			r.reload()
		}
	})

	return r
}

func (r *clientRepository) reload() {
	clients := loadCollection[domain.Client](r.store, storage.KeyClients)

	r.mu.Lock()
	r.clients = clients
	r.mu.Unlock()
}

func (r *clientRepository) Create(req *domain.CreateClientRequest) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := utils.GenerateID(clientIDPrefix)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	client := domain.Client{
		ID:            id,
		CompanyName:   req.CompanyName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	updated := make([]domain.Client, len(r.clients), len(r.clients)+1)
	copy(updated, r.clients)
	updated = append(updated, client)

	if err := persistCollection(r.store, storage.KeyClients, updated); err != nil {
		return nil, err
	}

	r.clients = updated
	return &client, nil
}

func (r *clientRepository) Update(id string, req *domain.UpdateClientRequest) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]domain.Client, len(r.clients))
	copy(updated, r.clients)

	idx := -1
	for i := range updated {
		if updated[i].ID != id {
			continue
		}
		idx = i

		if req.CompanyName != nil {
			updated[i].CompanyName = *req.CompanyName
		}
		if req.Email != nil {
			updated[i].Email = *req.Email
		}
		if req.Phone != nil {
			updated[i].Phone = *req.Phone
		}
		if req.Address != nil {
			updated[i].Address = *req.Address
		}
		if req.ContactPerson != nil {
			updated[i].ContactPerson = *req.ContactPerson
		}
		updated[i].UpdatedAt = time.Now().UTC()
		break
	}

	// Id ausente é um no-op, mas a coleção é regravada mesmo assim.
	if err := persistCollection(r.store, storage.KeyClients, updated); err != nil {
		return nil, err
	}

	r.clients = updated
	if idx < 0 {
		return nil, nil
	}

	client := updated[idx]
	return &client, nil
}

func (r *clientRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]domain.Client, 0, len(r.clients))
	found := false
	for _, client := range r.clients {
		if client.ID == id {
			found = true
			continue
		}
		updated = append(updated, client)
	}

	if err := persistCollection(r.store, storage.KeyClients, updated); err != nil {
		return false, err
	}

	r.clients = updated
	return found, nil
}

func (r *clientRepository) GetByID(id string) *domain.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, client := range r.clients {
		if client.ID == id {
			c := client
			return &c
		}
	}

	return nil
}

func (r *clientRepository) List() []domain.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Client, len(r.clients))
	copy(out, r.clients)
	return out
}
