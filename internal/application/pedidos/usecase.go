// Package pedidos implementa el CRUD de pedidos de confección. El total de
// cada pedido se recalcula siempre de sus líneas, nunca se acepta del cliente.
package pedidos

import (
	"context"
	"time"

	"github.com/jhoseph/loomtrack-api/internal/application/dto"
	"github.com/jhoseph/loomtrack-api/internal/domain"
	"github.com/jhoseph/loomtrack-api/internal/domain/entity"
	"github.com/jhoseph/loomtrack-api/internal/domain/repository"
	"github.com/jhoseph/loomtrack-api/pkg/texto"
)

// UseCase casos de uso CRUD para pedidos.
type UseCase struct {
	store repository.PedidoStore
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.PedidoStore) *UseCase {
	return &UseCase{store: store}
}

// Listar devuelve los pedidos cuyo cliente o alguno de sus artículos contiene q.
func (uc *UseCase) Listar(ctx context.Context, q string) ([]entity.Pedido, error) {
	list, err := uc.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]entity.Pedido, 0, len(list))
	for _, p := range list {
		if coincide(p, q) {
			items = append(items, p)
		}
	}
	return items, nil
}

func coincide(p entity.Pedido, q string) bool {
	if texto.Contiene(p.Cliente, q) {
		return true
	}
	for _, it := range p.Items {
		if texto.Contiene(it.Producto, q) {
			return true
		}
	}
	return false
}

// Obtener devuelve el pedido por ID.
func (uc *UseCase) Obtener(ctx context.Context, id int64) (*entity.Pedido, error) {
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

// Crear crea un pedido con ID max+1 y total calculado.
func (uc *UseCase) Crear(ctx context.Context, in dto.GuardarPedidoRequest) (*entity.Pedido, error) {
	var creado *entity.Pedido
	err := uc.store.Mutate(ctx, func(list []entity.Pedido) ([]entity.Pedido, error) {
		p := desdeRequest(in)
		p.ID = proximoID(list)
		creado = &p
		return append(list, p), nil
	})
	if err != nil {
		return nil, err
	}
	return creado, nil
}

// Actualizar reemplaza el pedido completo (el modal del front edita todo el
// objeto), preservando el ID y recalculando el total.
func (uc *UseCase) Actualizar(ctx context.Context, id int64, in dto.GuardarPedidoRequest) (*entity.Pedido, error) {
	var actualizado *entity.Pedido
	err := uc.store.Mutate(ctx, func(list []entity.Pedido) ([]entity.Pedido, error) {
		idx := indicePorID(list, id)
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		p := desdeRequest(in)
		p.ID = id
		list[idx] = p
		cp := p
		actualizado = &cp
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return actualizado, nil
}

// Eliminar borra el pedido de la colección.
func (uc *UseCase) Eliminar(ctx context.Context, id int64) error {
	return uc.store.Mutate(ctx, func(list []entity.Pedido) ([]entity.Pedido, error) {
		idx := indicePorID(list, id)
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		return append(list[:idx], list[idx+1:]...), nil
	})
}

func desdeRequest(in dto.GuardarPedidoRequest) entity.Pedido {
	estado := in.Estado
	if estado == "" {
		estado = entity.PedidoPendiente
	}
	fecha := in.Fecha
	if fecha == "" {
		fecha = time.Now().Format("2006-01-02")
	}
	items := make([]entity.ItemPedido, 0, len(in.Items))
	for i, it := range in.Items {
		items = append(items, entity.ItemPedido{
			ID:       int64(i + 1),
			Producto: it.Producto,
			Cantidad: it.Cantidad,
			Talla:    it.Talla,
			Color:    it.Color,
			Precio:   it.Precio,
		})
	}
	p := entity.Pedido{
		Cliente:         in.Cliente,
		Telefono:        in.Telefono,
		Direccion:       in.Direccion,
		Items:           items,
		Fecha:           fecha,
		Estado:          estado,
		Comprobante:     in.Comprobante,
		MetodoPago:      in.MetodoPago,
		TipoComprobante: in.TipoComprobante,
		Prioridad:       in.Prioridad,
		Observaciones:   in.Observaciones,
	}
	p.Total = p.CalcularTotal()
	return p
}

func proximoID(list []entity.Pedido) int64 {
	var max int64
	for _, p := range list {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func indicePorID(list []entity.Pedido, id int64) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
