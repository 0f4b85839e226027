package blobstore

import (
	"context"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore guarda los blobs en un mapa en memoria. Es el modo "dataset
// mock" y el backend de los tests; no persiste entre ejecuciones.
type MemoryStore struct {
	mu    sync.Mutex
	datos map[string][]byte
}

// NewMemoryStore construye el store en memoria.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{datos: make(map[string][]byte)}
}

// Load devuelve una copia del blob, o nil si la clave no existe.
func (s *MemoryStore) Load(_ context.Context, clave string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	datos, ok := s.datos[clave]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(datos))
	copy(cp, datos)
	return cp, nil
}

// Mutate ejecuta fn bajo el mutex y reemplaza el blob solo si fn no falla.
func (s *MemoryStore) Mutate(_ context.Context, clave string, fn func(datos []byte) ([]byte, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	nuevo, err := fn(s.datos[clave])
	if err != nil {
		return err
	}
	s.datos[clave] = nuevo
	return nil
}
