package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
	"github.com/vfg2006/workspace-manager-api/internal/usecases/contracting"
	"github.com/vfg2006/workspace-manager-api/pkg/apiErrors"
	"github.com/vfg2006/workspace-manager-api/pkg/log"
)

func ListAgreements(service contracting.ContractingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var agreements []domain.Agreement
		if clientID := resolveClientScope(r); clientID != "" {
			agreements = service.ListAgreementsByClient(clientID)
		} else {
			agreements = service.ListAgreements()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(agreements); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao serializar lista de contratos")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

func CreateAgreement(service contracting.ContractingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateAgreementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateAgreement(&req)
		if err != nil {
			handleAgreementError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetAgreement(service contracting.ContractingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do contrato não fornecido", nil)
			return
		}

		found, err := service.GetAgreement(id)
		if err != nil {
			handleAgreementError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(found)
	}
}

func UpdateAgreement(service contracting.ContractingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do contrato não fornecido", nil)
			return
		}

		var req domain.UpdateAgreementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		updated, err := service.UpdateAgreement(id, &req)
		if err != nil {
			handleAgreementError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteAgreement(service contracting.ContractingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do contrato não fornecido", nil)
			return
		}

		if err := service.DeleteAgreement(id); err != nil {
			handleAgreementError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleAgreementError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, contracting.ErrAgreementNotFound),
		errors.Is(err, contracting.ErrClientNotFound),
		errors.Is(err, contracting.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	case errors.Is(err, contracting.ErrNoProducts),
		errors.Is(err, contracting.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao persistir contrato")
		apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao persistir contrato", nil)
	}
}
