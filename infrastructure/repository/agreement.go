package repository

import (
	"sync"
	"time"

	"github.com/vfg2006/workspace-manager-api/infrastructure/storage"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
	"github.com/vfg2006/workspace-manager-api/pkg/utils"
)

const agreementIDPrefix = "agr"

type AgreementRepository interface {
	// Create recebe o contrato já montado pelo serviço (snapshot de produtos
	// e totalValue calculados) e atribui id e timestamps.
	Create(agreement domain.Agreement) (*domain.Agreement, error)
	Update(id string, req *domain.UpdateAgreementRequest) (*domain.Agreement, error)
	Delete(id string) (bool, error)
	GetByID(id string) *domain.Agreement
	List() []domain.Agreement
	ListByClient(clientID string) []domain.Agreement
}

type agreementRepository struct {
	store storage.Store

	mu         sync.RWMutex
	agreements []domain.Agreement
}

func NewAgreementRepository(store storage.Store) AgreementRepository {
	r := &agreementRepository{
		store:      store,
		agreements: loadCollection[domain.Agreement](store, storage.KeyAgreements),
	}

	store.Subscribe(func(key string) {
		if key == storage.KeyAgreements {
			r.reload()
		}
	})

	return r
}

func (r *agreementRepository) reload() {
	agreements := loadCollection[domain.Agreement](r.store, storage.KeyAgreements)

	r.mu.Lock()
	r.agreements = agreements
	r.mu.Unlock()
}

func (r *agreementRepository) Create(agreement domain.Agreement) (*domain.Agreement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := utils.GenerateID(agreementIDPrefix)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	agreement.ID = id
	agreement.CreatedAt = now
	agreement.UpdatedAt = now

	updated := make([]domain.Agreement, len(r.agreements), len(r.agreements)+1)
	copy(updated, r.agreements)
	updated = append(updated, agreement)

	if err := persistCollection(r.store, storage.KeyAgreements, updated); err != nil {
		return nil, err
	}

	r.agreements = updated
	return &agreement, nil
}

func (r *agreementRepository) Update(id string, req *domain.UpdateAgreementRequest) (*domain.Agreement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]domain.Agreement, len(r.agreements))
	copy(updated, r.agreements)

	idx := -1
	for i := range updated {
		if updated[i].ID != id {
			continue
		}
		idx = i

		if req.StartDate != nil {
			updated[i].StartDate = *req.StartDate
		}
		if req.EndDate != nil {
			updated[i].EndDate = *req.EndDate
		}
		if req.TermsAndConditions != nil {
			updated[i].TermsAndConditions = *req.TermsAndConditions
		}
		if req.Status != nil {
			updated[i].Status = *req.Status
		}
		updated[i].UpdatedAt = time.Now().UTC()
		break
	}

	if err := persistCollection(r.store, storage.KeyAgreements, updated); err != nil {
		return nil, err
	}

	r.agreements = updated
	if idx < 0 {
		return nil, nil
	}

	agreement := updated[idx]
	return &agreement, nil
}

func (r *agreementRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]domain.Agreement, 0, len(r.agreements))
	found := false
	for _, agreement := range r.agreements {
		if agreement.ID == id {
			found = true
			continue
		}
		updated = append(updated, agreement)
	}

	if err := persistCollection(r.store, storage.KeyAgreements, updated); err != nil {
		return false, err
	}

	r.agreements = updated
	return found, nil
}

func (r *agreementRepository) GetByID(id string) *domain.Agreement {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, agreement := range r.agreements {
		if agreement.ID == id {
			a := agreement
			return &a
		}
	}

	return nil
}

func (r *agreementRepository) List() []domain.Agreement {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Agreement, len(r.agreements))
	copy(out, r.agreements)
	return out
}

func (r *agreementRepository) ListByClient(clientID string) []domain.Agreement {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Agreement, 0)
	for _, agreement := range r.agreements {
		if agreement.ClientID == clientID {
			out = append(out, agreement)
		}
	}

	return out
}
