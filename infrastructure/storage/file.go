package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore é o driver padrão: um arquivo JSON por chave dentro de um
// diretório de dados. É o análogo mais direto do armazenamento local do
// navegador — persistência local, síncrona, sem servidor.
type FileStore struct {
	dir    string
	mu     *sync.Mutex
	bc     *broadcaster
	handle int
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório de dados %s: %w", dir, err)
	}

	bc := newBroadcaster()
	return &FileStore{
		dir:    dir,
		mu:     &sync.Mutex{},
		bc:     bc,
		handle: bc.register(),
	}, nil
}

// NewHandle retorna um novo handle sobre o mesmo diretório de dados.
// Escritas não são observadas por outros processos; apenas handles do mesmo
// processo recebem notificação.
func (s *FileStore) NewHandle() *FileStore {
	return &FileStore{dir: s.dir, mu: s.mu, bc: s.bc, handle: s.bc.register()}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a chave %s: %w", key, err)
	}

	return data, nil
}

func (s *FileStore) Set(key string, value []byte) error {
	s.mu.Lock()

	// Escrita em arquivo temporário seguida de rename para que leitores
	// nunca observem um blob parcial.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("erro ao gravar a chave %s: %w", key, err)
	}

	if err := os.Rename(tmp, s.path(key)); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("erro ao gravar a chave %s: %w", key, err)
	}

	s.mu.Unlock()

	s.bc.notify(s.handle, key)
	return nil
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.mu.Unlock()
		return fmt.Errorf("erro ao remover a chave %s: %w", key, err)
	}

	s.mu.Unlock()

	s.bc.notify(s.handle, key)
	return nil
}

func (s *FileStore) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar chaves: %w", err)
	}

	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}

	return keys, nil
}

func (s *FileStore) Subscribe(fn func(key string)) {
	s.bc.subscribe(s.handle, fn)
}

func (s *FileStore) Close() error {
	return nil
}
