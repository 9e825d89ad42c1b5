// Package reporting deriva os totais exibidos no dashboard a partir das
// coleções persistidas. Nada aqui é armazenado: todo resultado é
// recalculado a cada chamada.
package reporting

import (
	"github.com/vfg2006/workspace-manager-api/infrastructure/repository"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
	"github.com/vfg2006/workspace-manager-api/pkg/utils"
)

type ReportingService interface {
	GlobalStats() domain.DashboardStats
	ClientStats(clientID string) domain.DashboardStats
}

type Service struct {
	clientRepo    repository.ClientRepository
	productRepo   repository.ProductRepository
	agreementRepo repository.AgreementRepository
	invoiceRepo   repository.InvoiceRepository
}

func NewService(
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	agreementRepo repository.AgreementRepository,
	invoiceRepo repository.InvoiceRepository,
) ReportingService {
	return &Service{
		clientRepo:    clientRepo,
		productRepo:   productRepo,
		agreementRepo: agreementRepo,
		invoiceRepo:   invoiceRepo,
	}
}

func (s *Service) GlobalStats() domain.DashboardStats {
	return domain.DashboardStats{
		TotalClients:       len(s.clientRepo.List()),
		TotalProducts:      len(s.productRepo.List()),
		ApprovedAgreements: countApproved(s.agreementRepo.List()),
		PendingInvoices:    countPending(s.invoiceRepo.List()),
		PaidInvoices:       countPaid(s.invoiceRepo.List()),
		TotalRevenue:       sumRevenue(s.invoiceRepo.List()),
	}
}

// ClientStats devolve os mesmos agregados restritos a um cliente.
// TotalClients fica em zero: o campo não faz sentido no recorte por
// cliente e o dashboard o ignora nesse modo.
func (s *Service) ClientStats(clientID string) domain.DashboardStats {
	invoices := s.invoiceRepo.ListByClient(clientID)

	return domain.DashboardStats{
		TotalClients:       0,
		TotalProducts:      len(s.productRepo.ListByClient(clientID)),
		ApprovedAgreements: countApproved(s.agreementRepo.ListByClient(clientID)),
		PendingInvoices:    countPending(invoices),
		PaidInvoices:       countPaid(invoices),
		TotalRevenue:       sumRevenue(invoices),
	}
}

func countApproved(agreements []domain.Agreement) int {
	count := 0
	for _, agreement := range agreements {
		if agreement.Status == domain.AgreementStatusApproved {
			count++
		}
	}

	return count
}

// countPending conta as faturas em aberto: pendentes e enviadas ainda
// aguardam pagamento, então ambas entram no total do dashboard.
func countPending(invoices []domain.Invoice) int {
	count := 0
	for _, invoice := range invoices {
		if invoice.Status == domain.InvoiceStatusPending || invoice.Status == domain.InvoiceStatusSent {
			count++
		}
	}

	return count
}

func countPaid(invoices []domain.Invoice) int {
	count := 0
	for _, invoice := range invoices {
		if invoice.Status == domain.InvoiceStatusPaid {
			count++
		}
	}

	return count
}

// sumRevenue soma apenas faturas pagas.
func sumRevenue(invoices []domain.Invoice) float64 {
	total := 0.0
	for _, invoice := range invoices {
		if invoice.Status == domain.InvoiceStatusPaid {
			total += invoice.Total
		}
	}

	return utils.RoundWithTwoDecimalPlace(total)
}
