// Package contracting trata os contratos. Na criação os produtos
// referenciados são copiados para dentro do contrato (snapshot): o que foi
// contratado fica congelado mesmo que os produtos mudem depois.
package contracting

import (
	"errors"

	"github.com/vfg2006/workspace-manager-api/infrastructure/repository"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
	"github.com/vfg2006/workspace-manager-api/pkg/utils"
)

var (
	ErrAgreementNotFound = errors.New("contrato não encontrado")
	ErrClientNotFound    = errors.New("cliente não encontrado")
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrNoProducts        = errors.New("contrato precisa de ao menos um produto")
	ErrInvalidStatus     = errors.New("status de contrato inválido")
)

type ContractingService interface {
	CreateAgreement(req *domain.CreateAgreementRequest) (*domain.Agreement, error)
	UpdateAgreement(id string, req *domain.UpdateAgreementRequest) (*domain.Agreement, error)
	DeleteAgreement(id string) error
	GetAgreement(id string) (*domain.Agreement, error)
	ListAgreements() []domain.Agreement
	ListAgreementsByClient(clientID string) []domain.Agreement
}

type Service struct {
	agreementRepo repository.AgreementRepository
	productRepo   repository.ProductRepository
	clientRepo    repository.ClientRepository
}

func NewService(
	agreementRepo repository.AgreementRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
) ContractingService {
	return &Service{
		agreementRepo: agreementRepo,
		productRepo:   productRepo,
		clientRepo:    clientRepo,
	}
}

func (s *Service) CreateAgreement(req *domain.CreateAgreementRequest) (*domain.Agreement, error) {
	if s.clientRepo.GetByID(req.ClientID) == nil {
		return nil, ErrClientNotFound
	}

	if len(req.ProductIDs) == 0 {
		return nil, ErrNoProducts
	}

	status := req.Status
	if status == "" {
		status = domain.AgreementStatusDraft
	}
	if !domain.ValidAgreementStatus(status) {
		return nil, ErrInvalidStatus
	}

	// Snapshot dos produtos no momento da criação + soma dos totais.
	snapshots := make([]domain.Product, 0, len(req.ProductIDs))
	totalValue := 0.0
	for _, productID := range req.ProductIDs {
		product := s.productRepo.GetByID(productID)
		if product == nil {
			return nil, ErrProductNotFound
		}

		snapshots = append(snapshots, product.Snapshot())
		totalValue += product.TotalPrice
	}

	agreement := domain.Agreement{
		ClientID:           req.ClientID,
		Products:           snapshots,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		TermsAndConditions: req.TermsAndConditions,
		Status:             status,
		TotalValue:         utils.RoundWithTwoDecimalPlace(totalValue),
	}

	return s.agreementRepo.Create(agreement)
}

func (s *Service) UpdateAgreement(id string, req *domain.UpdateAgreementRequest) (*domain.Agreement, error) {
	if req.Status != nil && !domain.ValidAgreementStatus(*req.Status) {
		return nil, ErrInvalidStatus
	}

	agreement, err := s.agreementRepo.Update(id, req)
	if err != nil {
		return nil, err
	}
	if agreement == nil {
		return nil, ErrAgreementNotFound
	}

	return agreement, nil
}

func (s *Service) DeleteAgreement(id string) error {
	found, err := s.agreementRepo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrAgreementNotFound
	}

	return nil
}

func (s *Service) GetAgreement(id string) (*domain.Agreement, error) {
	agreement := s.agreementRepo.GetByID(id)
	if agreement == nil {
		return nil, ErrAgreementNotFound
	}

	return agreement, nil
}

func (s *Service) ListAgreements() []domain.Agreement {
	return s.agreementRepo.List()
}

func (s *Service) ListAgreementsByClient(clientID string) []domain.Agreement {
	return s.agreementRepo.ListByClient(clientID)
}
