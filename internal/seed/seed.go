// Package seed popula o armazenamento com dados de demonstração na primeira
// execução. Cada chave é verificada individualmente: se já existe, nada é
// sobrescrito — rodar o seed duas vezes nunca duplica dados.
package seed

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/workspace-manager-api/infrastructure/storage"
	"github.com/vfg2006/workspace-manager-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Ids fixos das fixtures, referenciados entre coleções.
const (
	ClientAcmeID   = "cli-1735689600000-acme01"
	ClientOrbitaID = "cli-1735689600000-orb001"

	ProductDesksID   = "prd-1735689600000-mesa01"
	ProductCabinID   = "prd-1735689600000-cab001"
	ProductMeetingID = "prd-1735689600000-sal001"

	AgreementAcmeID = "agr-1735776000000-ctr001"

	AdminEmail = "admin@workspacemanager.com.br"
)

// Load popula as chaves ausentes com as fixtures. Idempotente por chave.
func Load(store storage.Store) error {
	seededAt := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)

	entries := []struct {
		key   string
		value any
	}{
		{storage.KeyUsers, seedUsers(seededAt)},
		{storage.KeyClients, seedClients(seededAt)},
		{storage.KeyProducts, seedProducts(seededAt)},
		{storage.KeyAgreements, seedAgreements(seededAt)},
		{storage.KeyInvoices, seedInvoices(seededAt)},
		{storage.KeyInvoiceCounters, map[string]int{"2025": 3}},
	}

	for _, entry := range entries {
		if _, err := store.Get(entry.key); err == nil {
			continue
		} else if !errors.Is(err, storage.ErrKeyNotFound) {
			return errors.Wrapf(err, "erro ao verificar a chave %q", entry.key)
		}

		raw, err := json.Marshal(entry.value)
		if err != nil {
			return errors.Wrapf(err, "erro ao serializar fixtures da chave %q", entry.key)
		}

		if err := store.Set(entry.key, raw); err != nil {
			return errors.Wrapf(err, "erro ao gravar fixtures da chave %q", entry.key)
		}

		logrus.WithField("key", entry.key).Info("Fixtures carregadas")
	}

	return nil
}

func strPtr(s string) *string { return &s }

func seedUsers(at time.Time) []domain.User {
	return []domain.User{
		{
			ID:        "usr-1735689600000-adm001",
			Name:      "Ana",
			Lastname:  "Souza",
			Email:     AdminEmail,
			Active:    true,
			RoleID:    1,
			CreatedAt: at,
			UpdatedAt: at,
		},
		{
			ID:        "usr-1735689600000-cli001",
			Name:      "Carlos",
			Lastname:  "Lima",
			Email:     "carlos.lima@acmetec.com.br",
			Active:    true,
			RoleID:    2,
			ClientID:  strPtr(ClientAcmeID),
			CreatedAt: at,
			UpdatedAt: at,
		},
		{
			ID:        "usr-1735689600000-cli002",
			Name:      "Marina",
			Lastname:  "Alves",
			Email:     "marina@orbitadesign.com.br",
			Active:    true,
			RoleID:    2,
			ClientID:  strPtr(ClientOrbitaID),
			CreatedAt: at,
			UpdatedAt: at,
		},
	}
}

func seedClients(at time.Time) []domain.Client {
	return []domain.Client{
		{
			ID:            ClientAcmeID,
			CompanyName:   "Acme Tecnologia Ltda",
			Email:         "contato@acmetec.com.br",
			Phone:         "+55 11 98765-4321",
			Address:       "Av. Paulista, 1578 - São Paulo/SP",
			ContactPerson: "Carlos Lima",
			CreatedAt:     at,
			UpdatedAt:     at,
		},
		{
			ID:            ClientOrbitaID,
			CompanyName:   "Órbita Design Studio",
			Email:         "oi@orbitadesign.com.br",
			Phone:         "+55 48 99123-0001",
			Address:       "Rua Lauro Linhares, 589 - Florianópolis/SC",
			ContactPerson: "Marina Alves",
			CreatedAt:     at,
			UpdatedAt:     at,
		},
	}
}

func seedProducts(at time.Time) []domain.Product {
	return []domain.Product{
		{
			ID:           ProductDesksID,
			Type:         domain.ProductTypeWorkDesk,
			Quantity:     4,
			StartDate:    "2025-01-06",
			EndDate:      "2025-12-31",
			PricePerUnit: 650,
			TotalPrice:   2600,
			ClientID:     ClientAcmeID,
			Status:       domain.ProductStatusActive,
			CreatedAt:    at,
		},
		{
			ID:           ProductCabinID,
			Type:         domain.ProductTypePrivateCabin,
			Quantity:     1,
			StartDate:    "2025-01-06",
			EndDate:      "2025-06-30",
			PricePerUnit: 2400,
			TotalPrice:   2400,
			Comments:     "Cabine com isolamento acústico",
			ClientID:     ClientAcmeID,
			Status:       domain.ProductStatusActive,
			CreatedAt:    at,
		},
		{
			ID:           ProductMeetingID,
			Type:         domain.ProductTypeMeetingRoom,
			Quantity:     2,
			StartDate:    "2025-02-01",
			EndDate:      "2025-02-28",
			PricePerUnit: 180,
			TotalPrice:   360,
			ClientID:     ClientOrbitaID,
			Status:       domain.ProductStatusPending,
			CreatedAt:    at,
		},
	}
}

func seedAgreements(at time.Time) []domain.Agreement {
	products := seedProducts(at)

	return []domain.Agreement{
		{
			ID:                 AgreementAcmeID,
			ClientID:           ClientAcmeID,
			Products:           []domain.Product{products[0], products[1]},
			StartDate:          "2025-01-06",
			EndDate:            "2025-12-31",
			TermsAndConditions: "Pagamento até o dia 5 de cada mês. Reajuste anual pelo IGP-M.",
			Status:             domain.AgreementStatusApproved,
			TotalValue:         5000,
			CreatedAt:          at,
			UpdatedAt:          at,
		},
	}
}

func seedInvoices(at time.Time) []domain.Invoice {
	products := seedProducts(at)
	paidJan := time.Date(2025, 1, 4, 14, 30, 0, 0, time.UTC)
	paidFeb := time.Date(2025, 2, 5, 10, 15, 0, 0, time.UTC)
	sentMar := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	agreementID := AgreementAcmeID

	return []domain.Invoice{
		{
			ID:            "inv-1735776000000-fat001",
			InvoiceNumber: "INV-2025-001",
			ClientID:      ClientAcmeID,
			AgreementID:   &agreementID,
			Products:      []domain.Product{products[0], products[1]},
			Subtotal:      5000,
			Tax:           250,
			Total:         5250,
			DueDate:       "2025-01-05",
			Status:        domain.InvoiceStatusPaid,
			PaidAt:        &paidJan,
			CreatedAt:     at,
			UpdatedAt:     at,
		},
		{
			ID:            "inv-1738454400000-fat002",
			InvoiceNumber: "INV-2025-002",
			ClientID:      ClientAcmeID,
			AgreementID:   &agreementID,
			Products:      []domain.Product{products[0], products[1]},
			Subtotal:      5000,
			Tax:           250,
			Total:         5250,
			DueDate:       "2025-02-05",
			Status:        domain.InvoiceStatusPaid,
			PaidAt:        &paidFeb,
			CreatedAt:     at,
			UpdatedAt:     at,
		},
		{
			ID:            "inv-1740787200000-fat003",
			InvoiceNumber: "INV-2025-003",
			ClientID:      ClientOrbitaID,
			Products:      []domain.Product{products[2]},
			Subtotal:      360,
			Tax:           18,
			Total:         378,
			DueDate:       "2025-03-10",
			Status:        domain.InvoiceStatusSent,
			SentAt:        &sentMar,
			CreatedAt:     at,
			UpdatedAt:     at,
		},
	}
}
