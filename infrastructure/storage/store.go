// Package storage fornece o armazenamento chave-valor que sustenta todas as
// coleções da aplicação. Cada chave guarda um blob JSON completo; toda
// mutação reescreve o blob inteiro (modelo read-modify-write herdado do
// armazenamento local do navegador que este serviço substitui).
package storage

import "errors"

// Chaves das coleções persistidas
const (
	KeyUsers           = "users"
	KeyClients         = "clients"
	KeyProducts        = "products"
	KeyAgreements      = "agreements"
	KeyInvoices        = "invoices"
	KeyCurrentUser     = "current_user"
	KeyInvoiceCounters = "invoice_counters"
)

// ErrKeyNotFound indica que a chave não existe no armazenamento.
var ErrKeyNotFound = errors.New("chave não encontrada no armazenamento")

// Store é o contrato de armazenamento síncrono chave-valor. Subscribe
// registra um observador de alterações: ele é acionado apenas por escritas
// feitas por OUTRO handle ou instância (semântica do evento de storage entre
// abas), nunca pela escrita do próprio handle.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Subscribe(fn func(key string))
	Close() error
}
