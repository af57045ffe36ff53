package storage

import (
	"context"
	"sync"
)

var _ Backend = (*MemoryBackend)(nil)

// MemoryBackend backend en memoria del proceso (tests y ejecuciones efímeras).
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
	// failWrites simula un almacenamiento lleno o no disponible.
	failWrites error
}

// NewMemoryBackend construye un backend vacío.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

// Get devuelve una copia del valor almacenado.
func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set guarda una copia del valor.
func (b *MemoryBackend) Set(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failWrites != nil {
		return b.failWrites
	}
	b.data[key] = append([]byte(nil), value...)
	return nil
}

// SetFailWrites activa o desactiva el fallo simulado de escritura.
func (b *MemoryBackend) SetFailWrites(err error) {
	b.mu.Lock()
	b.failWrites = err
	b.mu.Unlock()
}
