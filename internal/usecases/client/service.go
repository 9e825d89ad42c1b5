// Package client concentra as operações sobre clientes, inclusive a decisão
// de cascata: excluir um cliente remove também os produtos, contratos e
// faturas dele, num único caminho de código para todos os chamadores.
package client

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/workspace-manager-api/infrastructure/repository"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
)

var (
	ErrClientNotFound = errors.New("cliente não encontrado")
	ErrMissingFields  = errors.New("razão social e e-mail são obrigatórios")
)

type ClientService interface {
	CreateClient(req *domain.CreateClientRequest) (*domain.Client, error)
	UpdateClient(id string, req *domain.UpdateClientRequest) (*domain.Client, error)
	DeleteClient(id string) error
	GetClient(id string) (*domain.Client, error)
	ListClients() []domain.Client
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
) ClientService {
	return &Service{
		clientRepo:    clientRepo,
		productRepo:   productRepo,
		agreementRepo: agreementRepo,
		invoiceRepo:   invoiceRepo,
	}
}

func (s *Service) CreateClient(req *domain.CreateClientRequest) (*domain.Client, error) {
	if req.CompanyName == "" || req.Email == "" {
		return nil, ErrMissingFields
	}

	return s.clientRepo.Create(req)
}

func (s *Service) UpdateClient(id string, req *domain.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.clientRepo.Update(id, req)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	return client, nil
}

// DeleteClient remove o cliente e, em cascata, todos os registros
// dependentes. Os repositórios em si nunca fazem cascata.
func (s *Service) DeleteClient(id string) error {
	found, err := s.clientRepo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrClientNotFound
	}

	removed := 0
	for _, product := range s.productRepo.ListByClient(id) {
		if _, err := s.productRepo.Delete(product.ID); err != nil {
			return err
		}
		removed++
	}

	for _, agreement := range s.agreementRepo.ListByClient(id) {
		if _, err := s.agreementRepo.Delete(agreement.ID); err != nil {
			return err
		}
		removed++
	}

	for _, invoice := range s.invoiceRepo.ListByClient(id) {
		if _, err := s.invoiceRepo.Delete(invoice.ID); err != nil {
			return err
		}
		removed++
	}

	logrus.WithFields(logrus.Fields{
		"client_id":       id,
		"records_removed": removed,
	}).Info("Cliente excluído com registros dependentes")

	return nil
}

func (s *Service) GetClient(id string) (*domain.Client, error) {
	client := s.clientRepo.GetByID(id)
	if client == nil {
		return nil, ErrClientNotFound
	}

	return client, nil
}

func (s *Service) ListClients() []domain.Client {
	return s.clientRepo.List()
}
