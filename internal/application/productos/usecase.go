// Package productos implementa el CRUD del catálogo de productos terminados.
package productos

import (
	"context"

	"github.com/jhoseph/loomtrack-api/internal/application/dto"
	"github.com/jhoseph/loomtrack-api/internal/domain"
	"github.com/jhoseph/loomtrack-api/internal/domain/entity"
	"github.com/jhoseph/loomtrack-api/internal/domain/repository"
	"github.com/jhoseph/loomtrack-api/pkg/texto"
)

// UseCase casos de uso CRUD para productos.
type UseCase struct {
	store repository.ProductoStore
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.ProductoStore) *UseCase {
	return &UseCase{store: store}
}

// Listar devuelve los productos cuyo nombre, SKU o categoría contiene q.
func (uc *UseCase) Listar(ctx context.Context, q string) ([]entity.Producto, error) {
	list, err := uc.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]entity.Producto, 0, len(list))
	for _, p := range list {
		if texto.Contiene(p.Nombre, q) || texto.Contiene(p.SKU, q) || texto.Contiene(p.Categoria, q) {
			items = append(items, p)
		}
	}
	return items, nil
}

// Obtener devuelve el producto por ID.
func (uc *UseCase) Obtener(ctx context.Context, id int64) (*entity.Producto, error) {
	list, err := uc.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Crear crea un producto; SKU duplicado se rechaza.
func (uc *UseCase) Crear(ctx context.Context, in dto.CrearProductoRequest) (*entity.Producto, error) {
	var creado *entity.Producto
	err := uc.store.Mutate(ctx, func(list []entity.Producto) ([]entity.Producto, error) {
		for _, p := range list {
			if p.SKU == in.SKU {
				return nil, domain.ErrDuplicate
			}
		}
		estado := in.Estado
		if estado == "" {
			estado = "Disponible"
		}
		unidad := in.Unidad
		if unidad == "" {
			unidad = "unidad"
		}
		p := entity.Producto{
			ID:          proximoID(list),
			SKU:         in.SKU,
			Nombre:      in.Nombre,
			Categoria:   in.Categoria,
			Precio:      in.Precio,
			Stock:       in.Stock,
			Unidad:      unidad,
			Proveedor:   in.Proveedor,
			Tallas:      in.Tallas,
			Colores:     in.Colores,
			Estado:      estado,
			Fecha:       in.Fecha,
			Descripcion: in.Descripcion,
		}
		creado = &p
		return append(list, p), nil
	})
	if err != nil {
		return nil, err
	}
	return creado, nil
}

// Actualizar sobreescribe los campos presentes, preservando el ID. Un cambio
// de SKU que colisione con otro producto se rechaza.
func (uc *UseCase) Actualizar(ctx context.Context, id int64, in dto.ActualizarProductoRequest) (*entity.Producto, error) {
	var actualizado *entity.Producto
	err := uc.store.Mutate(ctx, func(list []entity.Producto) ([]entity.Producto, error) {
		idx := indicePorID(list, id)
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		p := &list[idx]
		if in.SKU != nil {
			for i := range list {
				if i != idx && list[i].SKU == *in.SKU {
					return nil, domain.ErrDuplicate
				}
			}
			p.SKU = *in.SKU
		}
		if in.Nombre != nil {
			p.Nombre = *in.Nombre
		}
		if in.Categoria != nil {
			p.Categoria = *in.Categoria
		}
		if in.Precio != nil {
			p.Precio = *in.Precio
		}
		if in.Stock != nil {
			p.Stock = *in.Stock
		}
		if in.Unidad != nil {
			p.Unidad = *in.Unidad
		}
		if in.Proveedor != nil {
			p.Proveedor = *in.Proveedor
		}
		if in.Tallas != nil {
			p.Tallas = in.Tallas
		}
		if in.Colores != nil {
			p.Colores = in.Colores
		}
		if in.Estado != nil {
			p.Estado = *in.Estado
		}
		if in.Fecha != nil {
			p.Fecha = *in.Fecha
		}
		if in.Descripcion != nil {
			p.Descripcion = *in.Descripcion
		}
		cp := *p
		actualizado = &cp
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return actualizado, nil
}

// Eliminar borra el producto de la colección.
func (uc *UseCase) Eliminar(ctx context.Context, id int64) error {
	return uc.store.Mutate(ctx, func(list []entity.Producto) ([]entity.Producto, error) {
		idx := indicePorID(list, id)
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		return append(list[:idx], list[idx+1:]...), nil
	})
}

func proximoID(list []entity.Producto) int64 {
	var max int64
	for _, p := range list {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func indicePorID(list []entity.Producto, id int64) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
