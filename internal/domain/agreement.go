package domain

import "time"

// Status possíveis de um contrato
const (
	AgreementStatusDraft    = "draft"
	AgreementStatusPending  = "pending"
	AgreementStatusApproved = "approved"
	AgreementStatusRejected = "rejected"
)

// Agreement representa um contrato firmado com um cliente. Products é um
// snapshot dos produtos no momento da criação (cópia, não referência):
// edições posteriores dos produtos não alteram o que foi contratado.
type Agreement struct {
	ID                 string    `json:"id"`
	ClientID           string    `json:"clientId"`
	Products           []Product `json:"products"`
	StartDate          string    `json:"startDate"`
	EndDate            string    `json:"endDate"`
	TermsAndConditions string    `json:"termsAndConditions"`
	Status             string    `json:"status"`
	TotalValue         float64   `json:"totalValue"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type CreateAgreementRequest struct {
	ClientID           string   `json:"clientId"`
	ProductIDs         []string `json:"productIds"`
	StartDate          string   `json:"startDate"`
	EndDate            string   `json:"endDate"`
	TermsAndConditions string   `json:"termsAndConditions"`
	Status             string   `json:"status"`
}

type UpdateAgreementRequest struct {
	StartDate          *string `json:"startDate"`
	EndDate            *string `json:"endDate"`
	TermsAndConditions *string `json:"termsAndConditions"`
	Status             *string `json:"status"`
}

// ValidAgreementStatus verifica se o status informado é aceito.
func ValidAgreementStatus(s string) bool {
	switch s {
	case AgreementStatusDraft, AgreementStatusPending, AgreementStatusApproved, AgreementStatusRejected:
		return true
	}
	return false
}
