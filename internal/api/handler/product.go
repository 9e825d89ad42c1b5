package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
	"github.com/vfg2006/workspace-manager-api/internal/usecases/booking"
	"github.com/vfg2006/workspace-manager-api/pkg/apiErrors"
	"github.com/vfg2006/workspace-manager-api/pkg/log"
	"github.com/vfg2006/workspace-manager-api/pkg/middleware"
)

// resolveClientScope devolve o clientId efetivo da listagem: usuários com
// papel de cliente enxergam apenas os próprios registros; administradores
// podem filtrar via query string.
func resolveClientScope(r *http.Request) string {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if ok && userClaims.UserRoleID == middleware.RoleClient && userClaims.UserClientID != nil {
		return *userClaims.UserClientID
	}

	return r.URL.Query().Get("clientId")
}

func ListProducts(service booking.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var products []domain.Product
		if clientID := resolveClientScope(r); clientID != "" {
			products = service.ListProductsByClient(clientID)
		} else {
			products = service.ListProducts()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao serializar lista de produtos")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

func CreateProduct(service booking.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateProduct(&req)
		if err != nil {
			handleProductError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetProduct(service booking.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		found, err := service.GetProduct(id)
		if err != nil {
			handleProductError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(found)
	}
}

func UpdateProduct(service booking.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		var req domain.UpdateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		updated, err := service.UpdateProduct(id, &req)
		if err != nil {
			handleProductError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteProduct(service booking.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		if err := service.DeleteProduct(id); err != nil {
			handleProductError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleProductError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, booking.ErrProductNotFound),
		errors.Is(err, booking.ErrClientNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	case errors.Is(err, booking.ErrInvalidType),
		errors.Is(err, booking.ErrMissingCustomType),
		errors.Is(err, booking.ErrInvalidQuantity),
		errors.Is(err, booking.ErrInvalidStatus),
		errors.Is(err, booking.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao persistir produto")
		apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao persistir produto", nil)
	}
}
