package repository

import (
	"sync"
	"time"

	"github.com/vfg2006/workspace-manager-api/infrastructure/storage"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
	"github.com/vfg2006/workspace-manager-api/pkg/utils"
)

const productIDPrefix = "prd"

type ProductRepository interface {
	// Create recebe o registro sem id nem createdAt (atribuídos aqui) e o
	// persiste. TotalPrice chega calculado pelo serviço de reservas.
	Create(product domain.Product) (*domain.Product, error)
	Update(id string, req *domain.UpdateProductRequest) (*domain.Product, error)
	Delete(id string) (bool, error)
	GetByID(id string) *domain.Product
	List() []domain.Product
	ListByClient(clientID string) []domain.Product
}

type productRepository struct {
	store storage.Store

	mu       sync.RWMutex
	products []domain.Product
}

func NewProductRepository(store storage.Store) ProductRepository {
	r := &productRepository{
		store:    store,
		products: loadCollection[domain.Product](store, storage.KeyProducts),
	}

	store.Subscribe(func(key string) {
		if key == storage.KeyProducts {
			r.reload()
		}
	})

	return r
}

func (r *productRepository) reload() {
	products := loadCollection[domain.Product](r.store, storage.KeyProducts)

	r.mu.Lock()
	r.products = products
	r.mu.Unlock()
}

func (r *productRepository) Create(product domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := utils.GenerateID(productIDPrefix)
	if err != nil {
		return nil, err
	}

	product.ID = id
	product.CreatedAt = time.Now().UTC()

	updated := make([]domain.Product, len(r.products), len(r.products)+1)
	copy(updated, r.products)
	updated = append(updated, product)

	if err := persistCollection(r.store, storage.KeyProducts, updated); err != nil {
		return nil, err
	}

	r.products = updated
	return &product, nil
}

func (r *productRepository) Update(id string, req *domain.UpdateProductRequest) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]domain.Product, len(r.products))
	copy(updated, r.products)

	idx := -1
	for i := range updated {
		if updated[i].ID != id {
			continue
		}
		idx = i

		if req.Type != nil {
			updated[i].Type = *req.Type
		}
		if req.CustomType != nil {
			updated[i].CustomType = *req.CustomType
		}
		if req.Quantity != nil {
			updated[i].Quantity = *req.Quantity
		}
		if req.StartDate != nil {
			updated[i].StartDate = *req.StartDate
		}
		if req.EndDate != nil {
			updated[i].EndDate = *req.EndDate
		}
		if req.PricePerUnit != nil {
			updated[i].PricePerUnit = *req.PricePerUnit
		}
		if req.Comments != nil {
			updated[i].Comments = *req.Comments
		}
		if req.Status != nil {
			updated[i].Status = *req.Status
		}

		// Mantém o invariante TotalPrice = Quantity × PricePerUnit quando
		// qualquer um dos fatores muda.
		if req.Quantity != nil || req.PricePerUnit != nil {
			updated[i].TotalPrice = utils.RoundWithTwoDecimalPlace(
				float64(updated[i].Quantity) * updated[i].PricePerUnit,
			)
		}
		break
	}

	if err := persistCollection(r.store, storage.KeyProducts, updated); err != nil {
		return nil, err
	}

	r.products = updated
	if idx < 0 {
		return nil, nil
	}

	product := updated[idx]
	return &product, nil
}

func (r *productRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]domain.Product, 0, len(r.products))
	found := false
	for _, product := range r.products {
		if product.ID == id {
			found = true
			continue
		}
		updated = append(updated, product)
	}

	if err := persistCollection(r.store, storage.KeyProducts, updated); err != nil {
		return false, err
	}

	r.products = updated
	return found, nil
}

func (r *productRepository) GetByID(id string) *domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, product := range r.products {
		if product.ID == id {
			p := product
			return &p
		}
	}

	return nil
}

func (r *productRepository) List() []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out
}

// ListByClient filtra o espelho em memória; não consulta o armazenamento.
func (r *productRepository) ListByClient(clientID string) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0)
	for _, product := range r.products {
		if product.ClientID == clientID {
			out = append(out, product)
		}
	}

	return out
}
