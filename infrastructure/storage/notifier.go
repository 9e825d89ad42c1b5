package storage

import "sync"

// broadcaster distribui notificações de alteração entre handles do mesmo
// armazenamento em processo. O handle de origem da escrita nunca recebe a
// notificação: o espelho dele já reflete a mudança.
type broadcaster struct {
	mu   sync.Mutex
	subs map[int][]func(key string)
	next int
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[int][]func(key string))}
}

// register cria a identidade de um novo handle.
func (b *broadcaster) register() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	b.subs[id] = nil
	return id
}

func (b *broadcaster) subscribe(handle int, fn func(key string)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subs[handle] = append(b.subs[handle], fn)
}

// notify entrega a alteração aos observadores de todos os handles, exceto o
// de origem. A entrega é assíncrona para não segurar o lock do escritor.
func (b *broadcaster) notify(origin int, key string) {
	b.mu.Lock()
	var fns []func(key string)
	for handle, subs := range b.subs {
		if handle == origin {
			continue
		}
		fns = append(fns, subs...)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		go fn(key)
	}
}
