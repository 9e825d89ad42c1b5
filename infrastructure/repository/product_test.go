package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/workspace-manager-api/infrastructure/storage"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
)

func TestProductRepository_CreateAtribuiIdETimestamp(t *testing.T) {
	repo := NewProductRepository(storage.NewMemoryStore())

	created, err := repo.Create(domain.Product{
		Type:         domain.ProductTypeWorkDesk,
		Quantity:     4,
		PricePerUnit: 650,
		TotalPrice:   2600,
		ClientID:     "cli-1",
		Status:       domain.ProductStatusActive,
	})
	require.NoError(t, err)

	assert.Regexp(t, `^prd-\d+-[a-z0-9]{6}$`, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestProductRepository_UpdateRecalculaTotalPrice(t *testing.T) {
	repo := NewProductRepository(storage.NewMemoryStore())

	created, err := repo.Create(domain.Product{
		Type:         domain.ProductTypeWorkDesk,
		Quantity:     4,
		PricePerUnit: 650,
		TotalPrice:   2600,
		ClientID:     "cli-1",
		Status:       domain.ProductStatusActive,
	})
	require.NoError(t, err)

	quantity := 6
	updated, err := repo.Update(created.ID, &domain.UpdateProductRequest{Quantity: &quantity})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, 6, updated.Quantity)
	assert.Equal(t, 3900.0, updated.TotalPrice)

	price := 700.0
	updated, err = repo.Update(created.ID, &domain.UpdateProductRequest{PricePerUnit: &price})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 4200.0, updated.TotalPrice)
}

func TestProductRepository_ListByClient(t *testing.T) {
	repo := NewProductRepository(storage.NewMemoryStore())

	_, err := repo.Create(domain.Product{Type: domain.ProductTypeWorkDesk, Quantity: 1, ClientID: "cli-1", Status: domain.ProductStatusActive})
	require.NoError(t, err)
	_, err = repo.Create(domain.Product{Type: domain.ProductTypeMeetingRoom, Quantity: 1, ClientID: "cli-2", Status: domain.ProductStatusPending})
	require.NoError(t, err)

	assert.Len(t, repo.ListByClient("cli-1"), 1)
	assert.Len(t, repo.ListByClient("cli-2"), 1)
	assert.Empty(t, repo.ListByClient("cli-3"))
}
