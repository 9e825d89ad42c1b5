package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/workspace-manager-api/infrastructure/repository"
	"github.com/vfg2006/workspace-manager-api/infrastructure/storage"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
)

func newBookingFixture(t *testing.T) (BookingService, *domain.Client) {
	t.Helper()

	store := storage.NewMemoryStore()
	clientRepo := repository.NewClientRepository(store)
	productRepo := repository.NewProductRepository(store)

	cli, err := clientRepo.Create(&domain.CreateClientRequest{
		CompanyName: "Acme Tecnologia Ltda",
		Email:       "contato@acmetec.com.br",
	})
	require.NoError(t, err)

	return NewService(productRepo, clientRepo), cli
}

func TestCreateProduct_CalculaTotalEAplicaStatusPadrao(t *testing.T) {
	service, cli := newBookingFixture(t)

	created, err := service.CreateProduct(&domain.CreateProductRequest{
		Type:         domain.ProductTypeWorkDesk,
		Quantity:     4,
		StartDate:    "2025-01-01",
		EndDate:      "2025-12-31",
		PricePerUnit: 650.555,
		ClientID:     cli.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, 2602.22, created.TotalPrice)
	assert.Equal(t, domain.ProductStatusPending, created.Status)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateProduct_Validacoes(t *testing.T) {
	service, cli := newBookingFixture(t)

	valid := func() *domain.CreateProductRequest {
		return &domain.CreateProductRequest{
			Type:         domain.ProductTypePrivateCabin,
			Quantity:     1,
			StartDate:    "2025-01-01",
			EndDate:      "2025-06-30",
			PricePerUnit: 2400,
			ClientID:     cli.ID,
		}
	}

	tests := []struct {
		name    string
		mutate  func(req *domain.CreateProductRequest)
		wantErr error
	}{
		{
			name:    "Tipo desconhecido",
			mutate:  func(req *domain.CreateProductRequest) { req.Type = "sala_vip" },
			wantErr: ErrInvalidType,
		},
		{
			name:    "Tipo others sem descrição",
			mutate:  func(req *domain.CreateProductRequest) { req.Type = domain.ProductTypeOthers },
			wantErr: ErrMissingCustomType,
		},
		{
			name:    "Quantidade zero",
			mutate:  func(req *domain.CreateProductRequest) { req.Quantity = 0 },
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "Quantidade negativa",
			mutate:  func(req *domain.CreateProductRequest) { req.Quantity = -2 },
			wantErr: ErrInvalidQuantity,
		},
		{
			name: "Período invertido",
			mutate: func(req *domain.CreateProductRequest) {
				req.StartDate = "2025-06-30"
				req.EndDate = "2025-01-01"
			},
			wantErr: ErrInvalidPeriod,
		},
		{
			name:    "Data mal formatada",
			mutate:  func(req *domain.CreateProductRequest) { req.StartDate = "30/06/2025" },
			wantErr: ErrInvalidPeriod,
		},
		{
			name:    "Cliente inexistente",
			mutate:  func(req *domain.CreateProductRequest) { req.ClientID = "cli-nao-existe" },
			wantErr: ErrClientNotFound,
		},
		{
			name:    "Status inválido",
			mutate:  func(req *domain.CreateProductRequest) { req.Status = "reservado" },
			wantErr: ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)

			_, err := service.CreateProduct(req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateProduct_OthersComDescricaoEAceito(t *testing.T) {
	service, cli := newBookingFixture(t)

	created, err := service.CreateProduct(&domain.CreateProductRequest{
		Type:         domain.ProductTypeOthers,
		CustomType:   "Estúdio de gravação",
		Quantity:     1,
		PricePerUnit: 900,
		ClientID:     cli.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Estúdio de gravação", created.CustomType)
}

func TestCreateProduct_PeriodoAbertoEAceito(t *testing.T) {
	service, cli := newBookingFixture(t)

	// Sem datas: reserva por prazo indeterminado
	_, err := service.CreateProduct(&domain.CreateProductRequest{
		Type:         domain.ProductTypeFloatingSeat,
		Quantity:     2,
		PricePerUnit: 350,
		ClientID:     cli.ID,
	})
	assert.NoError(t, err)
}

func TestUpdateProduct_ValidaPatch(t *testing.T) {
	service, cli := newBookingFixture(t)

	created, err := service.CreateProduct(&domain.CreateProductRequest{
		Type:         domain.ProductTypeWorkDesk,
		Quantity:     4,
		PricePerUnit: 650,
		ClientID:     cli.ID,
	})
	require.NoError(t, err)

	badQty := 0
	_, err = service.UpdateProduct(created.ID, &domain.UpdateProductRequest{Quantity: &badQty})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	badType := "sala_vip"
	_, err = service.UpdateProduct(created.ID, &domain.UpdateProductRequest{Type: &badType})
	assert.ErrorIs(t, err, ErrInvalidType)

	qty := 6
	updated, err := service.UpdateProduct(created.ID, &domain.UpdateProductRequest{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Quantity)
	assert.Equal(t, 3900.0, updated.TotalPrice)

	_, err = service.UpdateProduct("prd-nao-existe", &domain.UpdateProductRequest{Quantity: &qty})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	service, cli := newBookingFixture(t)

	created, err := service.CreateProduct(&domain.CreateProductRequest{
		Type:         domain.ProductTypeMeetingRoom,
		Quantity:     1,
		PricePerUnit: 180,
		ClientID:     cli.ID,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteProduct(created.ID))
	assert.ErrorIs(t, service.DeleteProduct(created.ID), ErrProductNotFound)

	_, err = service.GetProduct(created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
