package contracting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/workspace-manager-api/infrastructure/repository"
	"github.com/vfg2006/workspace-manager-api/infrastructure/storage"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
)

type fixture struct {
	service     ContractingService
	productRepo repository.ProductRepository
	client      *domain.Client
	products    []*domain.Product
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := storage.NewMemoryStore()
	clientRepo := repository.NewClientRepository(store)
	productRepo := repository.NewProductRepository(store)
	agreementRepo := repository.NewAgreementRepository(store)

	cli, err := clientRepo.Create(&domain.CreateClientRequest{
		CompanyName: "Acme Tecnologia Ltda",
		Email:       "contato@acmetec.com.br",
	})
	require.NoError(t, err)

	desk, err := productRepo.Create(domain.Product{
		Type:         domain.ProductTypeWorkDesk,
		Quantity:     4,
		PricePerUnit: 650,
		TotalPrice:   2600,
		ClientID:     cli.ID,
		Status:       domain.ProductStatusActive,
	})
	require.NoError(t, err)

	cabin, err := productRepo.Create(domain.Product{
		Type:         domain.ProductTypePrivateCabin,
		Quantity:     1,
		PricePerUnit: 2400,
		TotalPrice:   2400,
		ClientID:     cli.ID,
		Status:       domain.ProductStatusActive,
	})
	require.NoError(t, err)

	return &fixture{
		service:     NewService(agreementRepo, productRepo, clientRepo),
		productRepo: productRepo,
		client:      cli,
		products:    []*domain.Product{desk, cabin},
	}
}

func TestCreateAgreement_SomaProdutosEAplicaStatusPadrao(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.CreateAgreement(&domain.CreateAgreementRequest{
		ClientID:   f.client.ID,
		ProductIDs: []string{f.products[0].ID, f.products[1].ID},
		StartDate:  "2025-01-01",
		EndDate:    "2025-12-31",
	})
	require.NoError(t, err)

	assert.Equal(t, 5000.0, created.TotalValue)
	assert.Equal(t, domain.AgreementStatusDraft, created.Status)
	assert.Len(t, created.Products, 2)
	assert.NotEmpty(t, created.ID)
}

func TestCreateAgreement_Validacoes(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name    string
		req     *domain.CreateAgreementRequest
		wantErr error
	}{
		{
			name:    "Cliente inexistente",
			req:     &domain.CreateAgreementRequest{ClientID: "cli-nao-existe", ProductIDs: []string{f.products[0].ID}},
			wantErr: ErrClientNotFound,
		},
		{
			name:    "Sem produtos",
			req:     &domain.CreateAgreementRequest{ClientID: f.client.ID},
			wantErr: ErrNoProducts,
		},
		{
			name:    "Produto inexistente",
			req:     &domain.CreateAgreementRequest{ClientID: f.client.ID, ProductIDs: []string{"prd-nao-existe"}},
			wantErr: ErrProductNotFound,
		},
		{
			name:    "Status inválido",
			req:     &domain.CreateAgreementRequest{ClientID: f.client.ID, ProductIDs: []string{f.products[0].ID}, Status: "assinado"},
			wantErr: ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.CreateAgreement(tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateAgreement_SnapshotCongelaOsProdutos(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.CreateAgreement(&domain.CreateAgreementRequest{
		ClientID:   f.client.ID,
		ProductIDs: []string{f.products[0].ID},
	})
	require.NoError(t, err)

	price := 999.0
	_, err = f.productRepo.Update(f.products[0].ID, &domain.UpdateProductRequest{PricePerUnit: &price})
	require.NoError(t, err)

	found, err := f.service.GetAgreement(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 650.0, found.Products[0].PricePerUnit)
	assert.Equal(t, 2600.0, found.TotalValue)
}

func TestUpdateAgreement_TransicaoDeStatus(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.CreateAgreement(&domain.CreateAgreementRequest{
		ClientID:   f.client.ID,
		ProductIDs: []string{f.products[0].ID},
	})
	require.NoError(t, err)

	approved := domain.AgreementStatusApproved
	updated, err := f.service.UpdateAgreement(created.ID, &domain.UpdateAgreementRequest{Status: &approved})
	require.NoError(t, err)
	assert.Equal(t, domain.AgreementStatusApproved, updated.Status)

	bad := "assinado"
	_, err = f.service.UpdateAgreement(created.ID, &domain.UpdateAgreementRequest{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = f.service.UpdateAgreement("agr-nao-existe", &domain.UpdateAgreementRequest{Status: &approved})
	assert.ErrorIs(t, err, ErrAgreementNotFound)
}

func TestDeleteAgreement(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.CreateAgreement(&domain.CreateAgreementRequest{
		ClientID:   f.client.ID,
		ProductIDs: []string{f.products[0].ID},
	})
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteAgreement(created.ID))
	assert.ErrorIs(t, f.service.DeleteAgreement(created.ID), ErrAgreementNotFound)
}
