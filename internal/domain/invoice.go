package domain

import "time"

// Status possíveis de uma fatura
const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusPending = "pending"
	InvoiceStatusOverdue = "overdue"
)

// Invoice representa uma fatura emitida para um cliente. Products é um
// snapshot (cópia no momento da emissão). O invariante Total = Subtotal + Tax
// é garantido pelo serviço de faturamento, não pelo repositório.
type Invoice struct {
	ID            string     `json:"id"`
	InvoiceNumber string     `json:"invoiceNumber"`
	ClientID      string     `json:"clientId"`
	AgreementID   *string    `json:"agreementId,omitempty"`
	Products      []Product  `json:"products"`
	Subtotal      float64    `json:"subtotal"`
	Tax           float64    `json:"tax"`
	Total         float64    `json:"total"`
	DueDate       string     `json:"dueDate"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes,omitempty"`
	SentAt        *time.Time `json:"sentAt,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type CreateInvoiceRequest struct {
	ClientID    string   `json:"clientId"`
	AgreementID *string  `json:"agreementId"`
	ProductIDs  []string `json:"productIds"`
	Tax         *float64 `json:"tax"`
	DueDate     string   `json:"dueDate"`
	Status      string   `json:"status"`
	Notes       string   `json:"notes"`
}

type UpdateInvoiceRequest struct {
	DueDate *string    `json:"dueDate"`
	Status  *string    `json:"status"`
	Notes   *string    `json:"notes"`
	SentAt  *time.Time `json:"sentAt"`
	PaidAt  *time.Time `json:"paidAt"`
}

// ValidInvoiceStatus verifica se o status informado é aceito.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusPending, InvoiceStatusOverdue:
		return true
	}
	return false
}
