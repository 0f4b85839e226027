package repository

import (
	"context"

	"github.com/jhoseph/loomtrack-api/internal/domain/entity"
)

// Coleccion define el puerto de persistencia de una colección completa (DIP).
// El estado persistido es un único array JSON bajo una clave con namespace;
// cada operación lee la colección entera, muta y la reescribe completa.
//
// Mutate es la frontera de atomicidad: la implementación garantiza que fn se
// ejecuta bajo exclusión mutua (mutex en proceso, o transacción con bloqueo de
// fila en PostgreSQL) y que si fn devuelve error no se persiste nada.
type Coleccion[T any] interface {
	LoadAll(ctx context.Context) ([]T, error)
	Mutate(ctx context.Context, fn func(list []T) ([]T, error)) error
}

// Puertos por agregado.
type (
	MaterialStore = Coleccion[entity.Material]
	ClienteStore  = Coleccion[entity.Cliente]
	PedidoStore   = Coleccion[entity.Pedido]
	ProductoStore = Coleccion[entity.Producto]
	UsuarioStore  = Coleccion[entity.Usuario]
)
