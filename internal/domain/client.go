package domain

import "time"

// Client representa uma empresa cliente do espaço de coworking.
// Products, Agreements e Invoices referenciam o cliente pelo campo clientId.
type Client struct {
	ID            string    `json:"id"`
	CompanyName   string    `json:"companyName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	ContactPerson string    `json:"contactPerson"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateClientRequest é o payload de criação: id e timestamps são
// atribuídos pelo repositório.
type CreateClientRequest struct {
	CompanyName   string `json:"companyName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ContactPerson string `json:"contactPerson"`
}

// UpdateClientRequest é o patch de atualização parcial: apenas os campos
// não-nulos são aplicados sobre o registro existente.
type UpdateClientRequest struct {
	CompanyName   *string `json:"companyName"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	ContactPerson *string `json:"contactPerson"`
}
