// Package booking trata as reservas de espaço (produtos). É aqui — no papel
// de chamador do repositório — que os invariantes de formulário são
// aplicados: quantidade mínima, tipo válido, datas coerentes e o cálculo de
// TotalPrice = Quantity × PricePerUnit.
package booking

import (
	"errors"

	"github.com/vfg2006/workspace-manager-api/infrastructure/repository"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
	"github.com/vfg2006/workspace-manager-api/pkg/utils"
)

var (
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrClientNotFound    = errors.New("cliente não encontrado")
	ErrInvalidType       = errors.New("tipo de produto inválido")
	ErrMissingCustomType = errors.New("descrição do tipo é obrigatória para o tipo 'others'")
	ErrInvalidQuantity   = errors.New("quantidade deve ser no mínimo 1")
	ErrInvalidStatus     = errors.New("status de produto inválido")
	ErrInvalidPeriod     = errors.New("data final não pode ser anterior à inicial")
)

type BookingService interface {
	CreateProduct(req *domain.CreateProductRequest) (*domain.Product, error)
	UpdateProduct(id string, req *domain.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(id string) error
	GetProduct(id string) (*domain.Product, error)
	ListProducts() []domain.Product
	ListProductsByClient(clientID string) []domain.Product
}

type Service struct {
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
}

func NewService(
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
) BookingService {
	return &Service{
		productRepo: productRepo,
		clientRepo:  clientRepo,
	}
}

func (s *Service) CreateProduct(req *domain.CreateProductRequest) (*domain.Product, error) {
	if !domain.ValidProductType(req.Type) {
		return nil, ErrInvalidType
	}

	if req.Type == domain.ProductTypeOthers && req.CustomType == "" {
		return nil, ErrMissingCustomType
	}

	if req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	if err := validatePeriod(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	if s.clientRepo.GetByID(req.ClientID) == nil {
		return nil, ErrClientNotFound
	}

	status := req.Status
	if status == "" {
		status = domain.ProductStatusPending
	}
	if !domain.ValidProductStatus(status) {
		return nil, ErrInvalidStatus
	}

	product := domain.Product{
		Type:         req.Type,
		CustomType:   req.CustomType,
		Quantity:     req.Quantity,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		PricePerUnit: req.PricePerUnit,
		TotalPrice:   utils.RoundWithTwoDecimalPlace(float64(req.Quantity) * req.PricePerUnit),
		Comments:     req.Comments,
		ClientID:     req.ClientID,
		Status:       status,
	}

	return s.productRepo.Create(product)
}

func (s *Service) UpdateProduct(id string, req *domain.UpdateProductRequest) (*domain.Product, error) {
	if req.Type != nil && !domain.ValidProductType(*req.Type) {
		return nil, ErrInvalidType
	}

	if req.Quantity != nil && *req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	if req.Status != nil && !domain.ValidProductStatus(*req.Status) {
		return nil, ErrInvalidStatus
	}

	if req.StartDate != nil && req.EndDate != nil {
		if err := validatePeriod(*req.StartDate, *req.EndDate); err != nil {
			return nil, err
		}
	}

	product, err := s.productRepo.Update(id, req)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return product, nil
}

func (s *Service) DeleteProduct(id string) error {
	found, err := s.productRepo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrProductNotFound
	}

	return nil
}

func (s *Service) GetProduct(id string) (*domain.Product, error) {
	product := s.productRepo.GetByID(id)
	if product == nil {
		return nil, ErrProductNotFound
	}

	return product, nil
}

func (s *Service) ListProducts() []domain.Product {
	return s.productRepo.List()
}

func (s *Service) ListProductsByClient(clientID string) []domain.Product {
	return s.productRepo.ListByClient(clientID)
}

func validatePeriod(startDate, endDate string) error {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return ErrInvalidPeriod
	}

	end, err := utils.ParseDate(endDate)
	if err != nil {
		return ErrInvalidPeriod
	}

	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return ErrInvalidPeriod
	}

	return nil
}
