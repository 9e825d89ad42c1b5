package repository

import (
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/workspace-manager-api/infrastructure/storage"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
	"github.com/vfg2006/workspace-manager-api/pkg/utils"
)

const invoiceIDPrefix = "inv"

type InvoiceRepository interface {
	Create(invoice domain.Invoice) (*domain.Invoice, error)
	Update(id string, req *domain.UpdateInvoiceRequest) (*domain.Invoice, error)
	Delete(id string) (bool, error)
	GetByID(id string) *domain.Invoice
	List() []domain.Invoice
	ListByClient(clientID string) []domain.Invoice

	// NextInvoiceNumber consome o contador monotônico persistido do ano e
	// devolve o número formatado (INV-{ano}-{NNN}). Números nunca são
	// reutilizados, mesmo após exclusão de faturas.
	NextInvoiceNumber(year int) (string, error)
}

type invoiceRepository struct {
	store storage.Store

	mu       sync.RWMutex
	invoices []domain.Invoice

	counterMu sync.Mutex
}

func NewInvoiceRepository(store storage.Store) InvoiceRepository {
	r := &invoiceRepository{
		store:    store,
		invoices: loadCollection[domain.Invoice](store, storage.KeyInvoices),
	}

	store.Subscribe(func(key string) {
		if key == storage.KeyInvoices {
			r.reload()
		}
	})

	return r
}

func (r *invoiceRepository) reload() {
	invoices := loadCollection[domain.Invoice](r.store, storage.KeyInvoices)

	r.mu.Lock()
	r.invoices = invoices
	r.mu.Unlock()
}

func (r *invoiceRepository) Create(invoice domain.Invoice) (*domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := utils.GenerateID(invoiceIDPrefix)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	invoice.ID = id
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	updated := make([]domain.Invoice, len(r.invoices), len(r.invoices)+1)
	copy(updated, r.invoices)
	updated = append(updated, invoice)

	if err := persistCollection(r.store, storage.KeyInvoices, updated); err != nil {
		return nil, err
	}

	r.invoices = updated
	return &invoice, nil
}

func (r *invoiceRepository) Update(id string, req *domain.UpdateInvoiceRequest) (*domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]domain.Invoice, len(r.invoices))
	copy(updated, r.invoices)

	idx := -1
	for i := range updated {
		if updated[i].ID != id {
			continue
		}
		idx = i

		if req.DueDate != nil {
			updated[i].DueDate = *req.DueDate
		}
		if req.Status != nil {
			updated[i].Status = *req.Status
		}
		if req.Notes != nil {
			updated[i].Notes = *req.Notes
		}
		if req.SentAt != nil {
			sentAt := *req.SentAt
			updated[i].SentAt = &sentAt
		}
		if req.PaidAt != nil {
			paidAt := *req.PaidAt
			updated[i].PaidAt = &paidAt
		}
		updated[i].UpdatedAt = time.Now().UTC()
		break
	}

	if err := persistCollection(r.store, storage.KeyInvoices, updated); err != nil {
		return nil, err
	}

	r.invoices = updated
	if idx < 0 {
		return nil, nil
	}

	invoice := updated[idx]
	return &invoice, nil
}

func (r *invoiceRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]domain.Invoice, 0, len(r.invoices))
	found := false
	for _, invoice := range r.invoices {
		if invoice.ID == id {
			found = true
			continue
		}
		updated = append(updated, invoice)
	}

	if err := persistCollection(r.store, storage.KeyInvoices, updated); err != nil {
		return false, err
	}

	r.invoices = updated
	return found, nil
}

func (r *invoiceRepository) GetByID(id string) *domain.Invoice {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, invoice := range r.invoices {
		if invoice.ID == id {
			inv := invoice
			return &inv
		}
	}

	return nil
}

func (r *invoiceRepository) List() []domain.Invoice {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Invoice, len(r.invoices))
	copy(out, r.invoices)
	return out
}

func (r *invoiceRepository) ListByClient(clientID string) []domain.Invoice {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Invoice, 0)
	for _, invoice := range r.invoices {
		if invoice.ClientID == clientID {
			out = append(out, invoice)
		}
	}

	return out
}

func (r *invoiceRepository) NextInvoiceNumber(year int) (string, error) {
	r.counterMu.Lock()
	defer r.counterMu.Unlock()

	counters := map[string]int{}
	raw, err := r.store.Get(storage.KeyInvoiceCounters)
	if err == nil {
		if err := json.Unmarshal(raw, &counters); err != nil {
			logrus.WithError(err).Warn("Contadores de fatura corrompidos no armazenamento, reiniciando")
			counters = map[string]int{}
		}
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		return "", errors.Wrap(err, "erro ao ler contadores de fatura")
	}

	yearKey := strconv.Itoa(year)
	counters[yearKey]++

	raw, err = json.Marshal(counters)
	if err != nil {
		return "", err
	}

	if err := r.store.Set(storage.KeyInvoiceCounters, raw); err != nil {
		return "", errors.Wrap(err, "erro ao persistir contadores de fatura")
	}

	return utils.FormatInvoiceNumber(year, counters[yearKey]), nil
}
