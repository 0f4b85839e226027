// Package jsonstore adapta el blobstore de bajo nivel a los puertos tipados
// del dominio: cada colección es un array JSON bajo su clave con namespace.
package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoseph/loomtrack-api/internal/infrastructure/blobstore"
)

// Claves de las colecciones persistidas. El sufijo de versión viene del
// esquema original; cambiarlo invalida los datos existentes.
const (
	ClaveMateriales = "loomtrack_materials_v1"
	ClaveClientes   = "loomtrack_clientes_v1"
	ClavePedidos    = "loomtrack_pedidos_v1"
	ClaveProductos  = "loomtrack_productos_v1"
	ClaveUsuarios   = "loomtrack_usuarios_v1"
)

// Coleccion implementa repository.Coleccion[T] sobre un blobstore.Store.
type Coleccion[T any] struct {
	store blobstore.Store
	clave string
}

// NewColeccion construye el adaptador para una clave.
func NewColeccion[T any](store blobstore.Store, clave string) *Coleccion[T] {
	return &Coleccion[T]{store: store, clave: clave}
}

// LoadAll lee y deserializa la colección completa. Clave ausente = colección vacía.
func (c *Coleccion[T]) LoadAll(ctx context.Context) ([]T, error) {
	datos, err := c.store.Load(ctx, c.clave)
	if err != nil {
		return nil, err
	}
	return c.decodificar(datos)
}

// Mutate ejecuta fn sobre la colección deserializada y persiste el resultado.
// La exclusión mutua y la atomicidad las garantiza el blobstore subyacente.
func (c *Coleccion[T]) Mutate(ctx context.Context, fn func(list []T) ([]T, error)) error {
	return c.store.Mutate(ctx, c.clave, func(datos []byte) ([]byte, error) {
		list, err := c.decodificar(datos)
		if err != nil {
			return nil, err
		}
		list, err = fn(list)
		if err != nil {
			return nil, err
		}
		nuevo, err := json.Marshal(list)
		if err != nil {
			return nil, fmt.Errorf("serializar %s: %w", c.clave, err)
		}
		return nuevo, nil
	})
}

func (c *Coleccion[T]) decodificar(datos []byte) ([]T, error) {
	if len(datos) == 0 {
		return []T{}, nil
	}
	var list []T
	if err := json.Unmarshal(datos, &list); err != nil {
		return nil, fmt.Errorf("deserializar %s: %w", c.clave, err)
	}
	return list, nil
}
