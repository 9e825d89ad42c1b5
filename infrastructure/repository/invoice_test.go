package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/workspace-manager-api/infrastructure/storage"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
)

func TestInvoiceRepository_NextInvoiceNumber(t *testing.T) {
	repo := NewInvoiceRepository(storage.NewMemoryStore())

	first, err := repo.NextInvoiceNumber(2025)
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-001", first)

	second, err := repo.NextInvoiceNumber(2025)
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-002", second)

	// Cada ano tem contador próprio
	otherYear, err := repo.NextInvoiceNumber(2026)
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-001", otherYear)
}

func TestInvoiceRepository_NumeroNaoEReutilizadoAposExclusao(t *testing.T) {
	repo := NewInvoiceRepository(storage.NewMemoryStore())

	number, err := repo.NextInvoiceNumber(2025)
	require.NoError(t, err)

	created, err := repo.Create(domain.Invoice{
		InvoiceNumber: number,
		ClientID:      "cli-1",
		Status:        domain.InvoiceStatusDraft,
	})
	require.NoError(t, err)

	found, err := repo.Delete(created.ID)
	require.NoError(t, err)
	require.True(t, found)

	next, err := repo.NextInvoiceNumber(2025)
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-002", next)
}

func TestInvoiceRepository_ContadorCorrompidoReinicia(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.KeyInvoiceCounters, []byte(`{oops`)))

	repo := NewInvoiceRepository(store)

	number, err := repo.NextInvoiceNumber(2025)
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-001", number)
}

func TestInvoiceRepository_ListByClient(t *testing.T) {
	repo := NewInvoiceRepository(storage.NewMemoryStore())

	_, err := repo.Create(domain.Invoice{ClientID: "cli-1", Status: domain.InvoiceStatusPaid})
	require.NoError(t, err)
	_, err = repo.Create(domain.Invoice{ClientID: "cli-2", Status: domain.InvoiceStatusSent})
	require.NoError(t, err)
	_, err = repo.Create(domain.Invoice{ClientID: "cli-1", Status: domain.InvoiceStatusDraft})
	require.NoError(t, err)

	byClient := repo.ListByClient("cli-1")
	assert.Len(t, byClient, 2)
	for _, invoice := range byClient {
		assert.Equal(t, "cli-1", invoice.ClientID)
	}

	assert.Empty(t, repo.ListByClient("cli-3"))
}

func TestInvoiceRepository_UpdateTransicaoDeStatus(t *testing.T) {
	repo := NewInvoiceRepository(storage.NewMemoryStore())

	created, err := repo.Create(domain.Invoice{
		ClientID: "cli-1",
		Status:   domain.InvoiceStatusDraft,
		DueDate:  "2025-04-10",
	})
	require.NoError(t, err)

	status := domain.InvoiceStatusSent
	updated, err := repo.Update(created.ID, &domain.UpdateInvoiceRequest{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, domain.InvoiceStatusSent, updated.Status)
	assert.Equal(t, "2025-04-10", updated.DueDate)
	assert.Equal(t, created.InvoiceNumber, updated.InvoiceNumber)
}
