package storage

import "sync"

type memoryCore struct {
	mu   sync.RWMutex
	data map[string][]byte
	bc   *broadcaster
}

// MemoryStore é o driver em memória. Usado nos testes e como base de
// referência do contrato Store. NewHandle simula uma segunda "aba" sobre o
// mesmo conteúdo: escritas de um handle notificam apenas os outros.
type MemoryStore struct {
	core   *memoryCore
	handle int
}

func NewMemoryStore() *MemoryStore {
	core := &memoryCore{
		data: make(map[string][]byte),
		bc:   newBroadcaster(),
	}

	return &MemoryStore{core: core, handle: core.bc.register()}
}

// NewHandle retorna um novo handle sobre o mesmo armazenamento.
func (s *MemoryStore) NewHandle() *MemoryStore {
	return &MemoryStore{core: s.core, handle: s.core.bc.register()}
}

func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.core.mu.RLock()
	defer s.core.mu.RUnlock()

	value, ok := s.core.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	s.core.mu.Lock()
	s.core.data[key] = stored
	s.core.mu.Unlock()

	s.core.bc.notify(s.handle, key)
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.core.mu.Lock()
	delete(s.core.data, key)
	s.core.mu.Unlock()

	s.core.bc.notify(s.handle, key)
	return nil
}

func (s *MemoryStore) Keys() ([]string, error) {
	s.core.mu.RLock()
	defer s.core.mu.RUnlock()

	keys := make([]string, 0, len(s.core.data))
	for key := range s.core.data {
		keys = append(keys, key)
	}
	return keys, nil
}

func (s *MemoryStore) Subscribe(fn func(key string)) {
	s.core.bc.subscribe(s.handle, fn)
}

func (s *MemoryStore) Close() error {
	return nil
}
