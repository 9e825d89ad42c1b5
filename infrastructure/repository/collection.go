// Package repository é a única porta de acesso às coleções persistidas.
// Cada repositório mantém um espelho em memória da sua coleção e toda
// mutação regrava o blob JSON completo no armazenamento, de forma síncrona,
// antes de trocar o espelho: quem chama nunca observa memória e
// armazenamento divergentes.
package repository

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/workspace-manager-api/infrastructure/storage"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// loadCollection lê e decodifica a coleção persistida sob a chave informada.
// Chave ausente ou JSON malformado resultam em coleção vazia, nunca em erro
// propagado — a recuperação é sempre por substituição local.
func loadCollection[T any](store storage.Store, key string) []T {
	raw, err := store.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			logrus.WithError(err).Warnf("Erro ao ler a coleção %q, iniciando vazia", key)
		}
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		logrus.WithError(err).Warnf("Coleção %q corrompida no armazenamento, iniciando vazia", key)
		return []T{}
	}

	return items
}

// persistCollection serializa e grava a coleção inteira sob a chave.
func persistCollection[T any](store storage.Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "erro ao serializar a coleção %q", key)
	}

	if err := store.Set(key, raw); err != nil {
		return errors.Wrapf(err, "erro ao persistir a coleção %q", key)
	}

	return nil
}
