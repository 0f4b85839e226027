package blobstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var _ Store = (*FileStore)(nil)

// FileStore persiste cada clave como un archivo JSON dentro de un directorio
// de datos. La escritura es a archivo temporal + rename para que un fallo a
// mitad de escritura no deje el blob corrupto.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore construye el store sobre el directorio dado (lo crea si falta).
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) ruta(clave string) string {
	return filepath.Join(s.dir, clave+".json")
}

// Load lee el archivo de la clave, o devuelve nil si no existe.
func (s *FileStore) Load(_ context.Context, clave string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.leer(clave)
}

func (s *FileStore) leer(clave string) ([]byte, error) {
	datos, err := os.ReadFile(s.ruta(clave))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer %s: %w", clave, err)
	}
	return datos, nil
}

// Mutate ejecuta fn bajo el mutex y escribe el resultado de forma atómica.
// Si fn devuelve error el archivo anterior queda intacto.
func (s *FileStore) Mutate(_ context.Context, clave string, fn func(datos []byte) ([]byte, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	datos, err := s.leer(clave)
	if err != nil {
		return err
	}
	nuevo, err := fn(datos)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, clave+"-*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal %s: %w", clave, err)
	}
	if _, err := tmp.Write(nuevo); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("escribir %s: %w", clave, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cerrar temporal %s: %w", clave, err)
	}
	if err := os.Rename(tmp.Name(), s.ruta(clave)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("reemplazar %s: %w", clave, err)
	}
	return nil
}
