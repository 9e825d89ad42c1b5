package domain

import "time"

// Tipos de produto (modalidades de reserva do espaço)
const (
	ProductTypePrivateCabin   = "private_cabin"
	ProductTypeWorkDesk       = "work_desk"
	ProductTypeFloatingSeat   = "floating_seat"
	ProductTypeConferenceRoom = "conference_room"
	ProductTypeMeetingRoom    = "meeting_room"
	ProductTypeOthers         = "others"
)

// Status possíveis de um produto
const (
	ProductStatusActive    = "active"
	ProductStatusPending   = "pending"
	ProductStatusCompleted = "completed"
	ProductStatusCancelled = "cancelled"
)

// ProductTypes lista os tipos aceitos, na ordem exibida nos formulários.
var ProductTypes = []string{
	ProductTypePrivateCabin,
	ProductTypeWorkDesk,
	ProductTypeFloatingSeat,
	ProductTypeConferenceRoom,
	ProductTypeMeetingRoom,
	ProductTypeOthers,
}

// Product representa uma reserva de espaço (cabine, mesa, sala) de um cliente.
// TotalPrice é calculado pelo serviço de reservas (Quantity × PricePerUnit);
// o repositório persiste o valor recebido sem recalcular.
type Product struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	CustomType   string    `json:"customType,omitempty"`
	Quantity     int       `json:"quantity"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	PricePerUnit float64   `json:"pricePerUnit"`
	TotalPrice   float64   `json:"totalPrice"`
	Comments     string    `json:"comments,omitempty"`
	ClientID     string    `json:"clientId"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateProductRequest struct {
	Type         string  `json:"type"`
	CustomType   string  `json:"customType"`
	Quantity     int     `json:"quantity"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Comments     string  `json:"comments"`
	ClientID     string  `json:"clientId"`
	Status       string  `json:"status"`
}

type UpdateProductRequest struct {
	Type         *string  `json:"type"`
	CustomType   *string  `json:"customType"`
	Quantity     *int     `json:"quantity"`
	StartDate    *string  `json:"startDate"`
	EndDate      *string  `json:"endDate"`
	PricePerUnit *float64 `json:"pricePerUnit"`
	Comments     *string  `json:"comments"`
	Status       *string  `json:"status"`
}

// ValidProductType verifica se o tipo informado é um dos tipos aceitos.
func ValidProductType(t string) bool {
	for _, pt := range ProductTypes {
		if t == pt {
			return true
		}
	}
	return false
}

// ValidProductStatus verifica se o status informado é aceito.
func ValidProductStatus(s string) bool {
	switch s {
	case ProductStatusActive, ProductStatusPending, ProductStatusCompleted, ProductStatusCancelled:
		return true
	}
	return false
}

// Snapshot retorna uma cópia imutável do produto para ser embutida em
// contratos e faturas. Edições posteriores do produto não alteram a cópia.
func (p Product) Snapshot() Product {
	return p
}
