// Package keylock serializa trabajo por key (en este repo, por persona).
package keylock

import (
	"context"
	"sync"
)

// Map guarda un semáforo de 1 (canal) por key para poder abortar por ctx.
// La entrada se libera de la tabla cuando nadie la usa.
type Map struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	ch   chan struct{}
	refs int
}

func New() *Map {
	return &Map{locks: make(map[string]*entry)}
}

// Lock bloquea hasta tomar la key o hasta que ctx termine.
// Devuelve unlock, que debe llamarse exactamente una vez.
func (m *Map) Lock(ctx context.Context, key string) (func(), error) {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &entry{ch: make(chan struct{}, 1)}
		m.locks[key] = l
	}
	l.refs++
	m.mu.Unlock()

	select {
	case l.ch <- struct{}{}:
		return func() {
			<-l.ch
			m.release(key, l)
		}, nil
	case <-ctx.Done():
		m.release(key, l)
		return nil, ctx.Err()
	}
}

func (m *Map) release(key string, l *entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(m.locks, key)
	}
}

// Len es la cantidad de keys tomadas o con alguien esperando.
func (m *Map) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
