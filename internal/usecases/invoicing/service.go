// Package invoicing trata a emissão e o ciclo de vida das faturas.
// A numeração vem de um contador monotônico persistido por ano; Subtotal,
// Tax e Total são calculados aqui (Total = Subtotal + Tax), nunca no
// repositório.
package invoicing

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/workspace-manager-api/infrastructure/repository"
	"github.com/vfg2006/workspace-manager-api/internal/config"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
	"github.com/vfg2006/workspace-manager-api/pkg/utils"
)

var (
	ErrInvoiceNotFound   = errors.New("fatura não encontrada")
	ErrClientNotFound    = errors.New("cliente não encontrado")
	ErrAgreementNotFound = errors.New("contrato não encontrado")
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrNoProducts        = errors.New("fatura precisa de ao menos um produto")
	ErrInvalidStatus     = errors.New("status de fatura inválido")
)

type InvoicingService interface {
	CreateInvoice(req *domain.CreateInvoiceRequest) (*domain.Invoice, error)
	UpdateInvoice(id string, req *domain.UpdateInvoiceRequest) (*domain.Invoice, error)
	DeleteInvoice(id string) error
	GetInvoice(id string) (*domain.Invoice, error)
	ListInvoices() []domain.Invoice
	ListInvoicesByClient(clientID string) []domain.Invoice

	// Send e MarkPaid são transições de status com payload fixo sobre o
	// Update do repositório.
	Send(id string) (*domain.Invoice, error)
	MarkPaid(id string) (*domain.Invoice, error)

	// MarkOverdue marca como vencidas as faturas enviadas/pendentes com
	// vencimento anterior a now e devolve quantas foram alteradas.
	MarkOverdue(now time.Time) (int, error)
}

type Service struct {
	invoiceRepo   repository.InvoiceRepository
	productRepo   repository.ProductRepository
	clientRepo    repository.ClientRepository
	agreementRepo repository.AgreementRepository
	cfg           *config.Config
}

func NewService(
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	agreementRepo repository.AgreementRepository,
	cfg *config.Config,
) InvoicingService {
	return &Service{
		invoiceRepo:   invoiceRepo,
		productRepo:   productRepo,
		clientRepo:    clientRepo,
		agreementRepo: agreementRepo,
		cfg:           cfg,
	}
}

func (s *Service) CreateInvoice(req *domain.CreateInvoiceRequest) (*domain.Invoice, error) {
	if s.clientRepo.GetByID(req.ClientID) == nil {
		return nil, ErrClientNotFound
	}

	if req.AgreementID != nil && s.agreementRepo.GetByID(*req.AgreementID) == nil {
		return nil, ErrAgreementNotFound
	}

	if len(req.ProductIDs) == 0 {
		return nil, ErrNoProducts
	}

	status := req.Status
	if status == "" {
		status = domain.InvoiceStatusDraft
	}
	if !domain.ValidInvoiceStatus(status) {
		return nil, ErrInvalidStatus
	}

	snapshots := make([]domain.Product, 0, len(req.ProductIDs))
	subtotal := 0.0
	for _, productID := range req.ProductIDs {
		product := s.productRepo.GetByID(productID)
		if product == nil {
			return nil, ErrProductNotFound
		}

		snapshots = append(snapshots, product.Snapshot())
		subtotal += product.TotalPrice
	}
	subtotal = utils.RoundWithTwoDecimalPlace(subtotal)

	tax := utils.RoundWithTwoDecimalPlace(subtotal * s.cfg.Billing.DefaultTaxRate)
	if req.Tax != nil {
		tax = utils.RoundWithTwoDecimalPlace(*req.Tax)
	}

	number, err := s.invoiceRepo.NextInvoiceNumber(time.Now().Year())
	if err != nil {
		return nil, err
	}

	invoice := domain.Invoice{
		InvoiceNumber: number,
		ClientID:      req.ClientID,
		AgreementID:   req.AgreementID,
		Products:      snapshots,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         utils.RoundWithTwoDecimalPlace(subtotal + tax),
		DueDate:       req.DueDate,
		Status:        status,
		Notes:         req.Notes,
	}

	return s.invoiceRepo.Create(invoice)
}

func (s *Service) UpdateInvoice(id string, req *domain.UpdateInvoiceRequest) (*domain.Invoice, error) {
	if req.Status != nil && !domain.ValidInvoiceStatus(*req.Status) {
		return nil, ErrInvalidStatus
	}

	invoice, err := s.invoiceRepo.Update(id, req)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	return invoice, nil
}

func (s *Service) DeleteInvoice(id string) error {
	found, err := s.invoiceRepo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrInvoiceNotFound
	}

	return nil
}

func (s *Service) GetInvoice(id string) (*domain.Invoice, error) {
	invoice := s.invoiceRepo.GetByID(id)
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	return invoice, nil
}

func (s *Service) ListInvoices() []domain.Invoice {
	return s.invoiceRepo.List()
}

func (s *Service) ListInvoicesByClient(clientID string) []domain.Invoice {
	return s.invoiceRepo.ListByClient(clientID)
}

func (s *Service) Send(id string) (*domain.Invoice, error) {
	now := time.Now().UTC()
	status := domain.InvoiceStatusSent

	invoice, err := s.invoiceRepo.Update(id, &domain.UpdateInvoiceRequest{
		Status: &status,
		SentAt: &now,
	})
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	return invoice, nil
}

func (s *Service) MarkPaid(id string) (*domain.Invoice, error) {
	now := time.Now().UTC()
	status := domain.InvoiceStatusPaid

	invoice, err := s.invoiceRepo.Update(id, &domain.UpdateInvoiceRequest{
		Status: &status,
		PaidAt: &now,
	})
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	return invoice, nil
}

func (s *Service) MarkOverdue(now time.Time) (int, error) {
	overdue := domain.InvoiceStatusOverdue
	marked := 0

	for _, invoice := range s.invoiceRepo.List() {
		if invoice.Status != domain.InvoiceStatusSent && invoice.Status != domain.InvoiceStatusPending {
			continue
		}

		if !utils.DateBefore(invoice.DueDate, now) {
			continue
		}

		if _, err := s.invoiceRepo.Update(invoice.ID, &domain.UpdateInvoiceRequest{Status: &overdue}); err != nil {
			return marked, err
		}

		logrus.WithFields(logrus.Fields{
			"invoice_id":     invoice.ID,
			"invoice_number": invoice.InvoiceNumber,
			"due_date":       invoice.DueDate,
		}).Info("Fatura marcada como vencida")
		marked++
	}

	return marked, nil
}
