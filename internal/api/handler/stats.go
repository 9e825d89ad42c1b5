package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
	"github.com/vfg2006/workspace-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/workspace-manager-api/pkg/apiErrors"
	"github.com/vfg2006/workspace-manager-api/pkg/log"
	"github.com/vfg2006/workspace-manager-api/pkg/middleware"
)

// GetStats retorna os agregados do dashboard. Usuários com papel de cliente
// recebem os totais restritos ao próprio cliente; administradores recebem os
// totais globais.
func GetStats(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var stats domain.DashboardStats
		if userClaims.UserRoleID == middleware.RoleClient && userClaims.UserClientID != nil {
			stats = service.ClientStats(*userClaims.UserClientID)
		} else {
			stats = service.GlobalStats()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao serializar estatísticas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetClientStats retorna os agregados de um cliente específico
func GetClientStats(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		stats := service.ClientStats(id)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao serializar estatísticas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
