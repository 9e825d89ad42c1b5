package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
	"github.com/vfg2006/workspace-manager-api/internal/usecases/invoicing"
	"github.com/vfg2006/workspace-manager-api/pkg/apiErrors"
	"github.com/vfg2006/workspace-manager-api/pkg/log"
)

func ListInvoices(service invoicing.InvoicingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var invoices []domain.Invoice
		if clientID := resolveClientScope(r); clientID != "" {
			invoices = service.ListInvoicesByClient(clientID)
		} else {
			invoices = service.ListInvoices()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(invoices); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao serializar lista de faturas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

func CreateInvoice(service invoicing.InvoicingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateInvoiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateInvoice(&req)
		if err != nil {
			handleInvoiceError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetInvoice(service invoicing.InvoicingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da fatura não fornecido", nil)
			return
		}

		found, err := service.GetInvoice(id)
		if err != nil {
			handleInvoiceError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(found)
	}
}

func UpdateInvoice(service invoicing.InvoicingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da fatura não fornecido", nil)
			return
		}

		var req domain.UpdateInvoiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		updated, err := service.UpdateInvoice(id, &req)
		if err != nil {
			handleInvoiceError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteInvoice(service invoicing.InvoicingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da fatura não fornecido", nil)
			return
		}

		if err := service.DeleteInvoice(id); err != nil {
			handleInvoiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// SendInvoice marca a fatura como enviada, registrando o momento do envio
func SendInvoice(service invoicing.InvoicingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da fatura não fornecido", nil)
			return
		}

		sent, err := service.Send(id)
		if err != nil {
			handleInvoiceError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sent)
	}
}

// PayInvoice marca a fatura como paga, registrando o momento do pagamento
func PayInvoice(service invoicing.InvoicingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da fatura não fornecido", nil)
			return
		}

		paid, err := service.MarkPaid(id)
		if err != nil {
			handleInvoiceError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(paid)
	}
}

func handleInvoiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, invoicing.ErrInvoiceNotFound),
		errors.Is(err, invoicing.ErrClientNotFound),
		errors.Is(err, invoicing.ErrAgreementNotFound),
		errors.Is(err, invoicing.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	case errors.Is(err, invoicing.ErrNoProducts),
		errors.Is(err, invoicing.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao persistir fatura")
		apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao persistir fatura", nil)
	}
}
