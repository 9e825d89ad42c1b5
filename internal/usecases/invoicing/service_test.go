package invoicing

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/workspace-manager-api/infrastructure/repository"
	"github.com/vfg2006/workspace-manager-api/infrastructure/storage"
	"github.com/vfg2006/workspace-manager-api/internal/config"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
)

type fixture struct {
	service     InvoicingService
	invoiceRepo repository.InvoiceRepository
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
	invoiceRepo := repository.NewInvoiceRepository(store)

	cfg := &config.Config{
		Billing: config.Billing{DefaultTaxRate: 0.05},
	}

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
		service:     NewService(invoiceRepo, productRepo, clientRepo, agreementRepo, cfg),
		invoiceRepo: invoiceRepo,
		productRepo: productRepo,
		client:      cli,
		products:    []*domain.Product{desk, cabin},
	}
}

func TestCreateInvoice_CalculaTotaisENumeracao(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.CreateInvoice(&domain.CreateInvoiceRequest{
		ClientID:   f.client.ID,
		ProductIDs: []string{f.products[0].ID, f.products[1].ID},
		DueDate:    "2025-04-10",
	})
	require.NoError(t, err)

	assert.Equal(t, 5000.0, created.Subtotal)
	assert.Equal(t, 250.0, created.Tax) // 5% configurado
	assert.Equal(t, 5250.0, created.Total)
	assert.Equal(t, domain.InvoiceStatusDraft, created.Status)
	assert.Len(t, created.Products, 2)

	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("INV-%d-001", year), created.InvoiceNumber)

	second, err := f.service.CreateInvoice(&domain.CreateInvoiceRequest{
		ClientID:   f.client.ID,
		ProductIDs: []string{f.products[0].ID},
		DueDate:    "2025-05-10",
	})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("INV-%d-002", year), second.InvoiceNumber)
}

func TestCreateInvoice_ImpostoInformadoTemPrecedencia(t *testing.T) {
	f := newFixture(t)

	tax := 100.0
	created, err := f.service.CreateInvoice(&domain.CreateInvoiceRequest{
		ClientID:   f.client.ID,
		ProductIDs: []string{f.products[0].ID},
		Tax:        &tax,
		DueDate:    "2025-04-10",
	})
	require.NoError(t, err)

	assert.Equal(t, 2600.0, created.Subtotal)
	assert.Equal(t, 100.0, created.Tax)
	assert.Equal(t, 2700.0, created.Total)
}

func TestCreateInvoice_Validacoes(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name    string
		req     *domain.CreateInvoiceRequest
		wantErr error
	}{
		{
			name:    "Cliente inexistente",
			req:     &domain.CreateInvoiceRequest{ClientID: "cli-nao-existe", ProductIDs: []string{f.products[0].ID}},
			wantErr: ErrClientNotFound,
		},
		{
			name:    "Sem produtos",
			req:     &domain.CreateInvoiceRequest{ClientID: f.client.ID},
			wantErr: ErrNoProducts,
		},
		{
			name:    "Produto inexistente",
			req:     &domain.CreateInvoiceRequest{ClientID: f.client.ID, ProductIDs: []string{"prd-nao-existe"}},
			wantErr: ErrProductNotFound,
		},
		{
			name:    "Status inválido",
			req:     &domain.CreateInvoiceRequest{ClientID: f.client.ID, ProductIDs: []string{f.products[0].ID}, Status: "faturado"},
			wantErr: ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.CreateInvoice(tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateInvoice_SnapshotNaoAcompanhaOProduto(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.CreateInvoice(&domain.CreateInvoiceRequest{
		ClientID:   f.client.ID,
		ProductIDs: []string{f.products[0].ID},
		DueDate:    "2025-04-10",
	})
	require.NoError(t, err)

	// Alterar o produto depois da emissão não muda a fatura
	price := 999.0
	_, err = f.productRepo.Update(f.products[0].ID, &domain.UpdateProductRequest{PricePerUnit: &price})
	require.NoError(t, err)

	found, err := f.service.GetInvoice(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 650.0, found.Products[0].PricePerUnit)
	assert.Equal(t, 2600.0, found.Subtotal)
}

func TestSendEMarkPaid_RegistramTimestamps(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.CreateInvoice(&domain.CreateInvoiceRequest{
		ClientID:   f.client.ID,
		ProductIDs: []string{f.products[0].ID},
		DueDate:    "2025-04-10",
	})
	require.NoError(t, err)
	assert.Nil(t, created.SentAt)
	assert.Nil(t, created.PaidAt)

	sent, err := f.service.Send(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusSent, sent.Status)
	require.NotNil(t, sent.SentAt)

	paid, err := f.service.MarkPaid(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
	require.NotNil(t, paid.SentAt)

	_, err = f.service.Send("inv-nao-existe")
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestMarkOverdue_MarcaApenasVencidasEnviadasOuPendentes(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	mkInvoice := func(status, dueDate string) *domain.Invoice {
		created, err := f.invoiceRepo.Create(domain.Invoice{
			ClientID: f.client.ID,
			Status:   status,
			DueDate:  dueDate,
		})
		require.NoError(t, err)
		return created
	}

	overdueSent := mkInvoice(domain.InvoiceStatusSent, "2025-06-01")
	overduePending := mkInvoice(domain.InvoiceStatusPending, "2025-05-20")
	futureSent := mkInvoice(domain.InvoiceStatusSent, "2025-07-01")
	pastDraft := mkInvoice(domain.InvoiceStatusDraft, "2025-06-01")
	pastPaid := mkInvoice(domain.InvoiceStatusPaid, "2025-06-01")

	marked, err := f.service.MarkOverdue(now)
	require.NoError(t, err)
	assert.Equal(t, 2, marked)

	assertStatus := func(id, want string) {
		found, err := f.service.GetInvoice(id)
		require.NoError(t, err)
		assert.Equal(t, want, found.Status)
	}

	assertStatus(overdueSent.ID, domain.InvoiceStatusOverdue)
	assertStatus(overduePending.ID, domain.InvoiceStatusOverdue)
	assertStatus(futureSent.ID, domain.InvoiceStatusSent)
	assertStatus(pastDraft.ID, domain.InvoiceStatusDraft)
	assertStatus(pastPaid.ID, domain.InvoiceStatusPaid)

	// Uma segunda varredura não encontra nada novo
	marked, err = f.service.MarkOverdue(now)
	require.NoError(t, err)
	assert.Equal(t, 0, marked)
}
