// Package clientes implementa el CRUD de clientes del taller.
package clientes

import (
	"context"
	"strconv"
	"time"

	"github.com/jhoseph/loomtrack-api/internal/application/dto"
	"github.com/jhoseph/loomtrack-api/internal/domain"
	"github.com/jhoseph/loomtrack-api/internal/domain/entity"
	"github.com/jhoseph/loomtrack-api/internal/domain/repository"
	"github.com/jhoseph/loomtrack-api/pkg/csvexport"
	"github.com/jhoseph/loomtrack-api/pkg/texto"
)

// UseCase casos de uso CRUD para clientes.
type UseCase struct {
	store repository.ClienteStore
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.ClienteStore) *UseCase {
	return &UseCase{store: store}
}

// Listar devuelve los clientes cuyo nombre, identificación o correo contiene q.
func (uc *UseCase) Listar(ctx context.Context, q string) ([]entity.Cliente, error) {
	list, err := uc.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]entity.Cliente, 0, len(list))
	for _, c := range list {
		if texto.Contiene(c.Nombre, q) || texto.Contiene(c.Identificacion, q) || texto.Contiene(c.Correo, q) {
			items = append(items, c)
		}
	}
	return items, nil
}

// Obtener devuelve el cliente por ID.
func (uc *UseCase) Obtener(ctx context.Context, id int64) (*entity.Cliente, error) {
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

// Crear crea un cliente con ID max+1.
func (uc *UseCase) Crear(ctx context.Context, in dto.CrearClienteRequest) (*entity.Cliente, error) {
	var creado *entity.Cliente
	err := uc.store.Mutate(ctx, func(list []entity.Cliente) ([]entity.Cliente, error) {
		tipo := in.TipoCliente
		if tipo == "" {
			tipo = entity.ClienteNatural
		}
		c := entity.Cliente{
			ID:             proximoID(list),
			TipoCliente:    tipo,
			Nombre:         in.Nombre,
			Identificacion: in.Identificacion,
			Correo:         in.Correo,
			Telefono:       in.Telefono,
			Direccion:      in.Direccion,
			Notas:          in.Notas,
			FechaRegistro:  time.Now(),
		}
		creado = &c
		return append(list, c), nil
	})
	if err != nil {
		return nil, err
	}
	return creado, nil
}

// Actualizar sobreescribe los campos presentes, preservando el ID.
func (uc *UseCase) Actualizar(ctx context.Context, id int64, in dto.ActualizarClienteRequest) (*entity.Cliente, error) {
	var actualizado *entity.Cliente
	err := uc.store.Mutate(ctx, func(list []entity.Cliente) ([]entity.Cliente, error) {
		idx := indicePorID(list, id)
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		c := &list[idx]
		if in.TipoCliente != nil {
			c.TipoCliente = *in.TipoCliente
		}
		if in.Nombre != nil {
			c.Nombre = *in.Nombre
		}
		if in.Identificacion != nil {
			c.Identificacion = *in.Identificacion
		}
		if in.Correo != nil {
			c.Correo = *in.Correo
		}
		if in.Telefono != nil {
			c.Telefono = *in.Telefono
		}
		if in.Direccion != nil {
			c.Direccion = *in.Direccion
		}
		if in.Notas != nil {
			c.Notas = *in.Notas
		}
		cp := *c
		actualizado = &cp
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return actualizado, nil
}

// Eliminar borra el cliente de la colección.
func (uc *UseCase) Eliminar(ctx context.Context, id int64) error {
	return uc.store.Mutate(ctx, func(list []entity.Cliente) ([]entity.Cliente, error) {
		idx := indicePorID(list, id)
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		return append(list[:idx], list[idx+1:]...), nil
	})
}

// ExportarCSV serializa el listado filtrado en el formato del front.
func (uc *UseCase) ExportarCSV(ctx context.Context, q string) ([]byte, string, error) {
	items, err := uc.Listar(ctx, q)
	if err != nil {
		return nil, "", err
	}
	if len(items) == 0 {
		return []byte("No hay datos"), "text/plain; charset=utf-8", nil
	}
	columnas := []string{"id", "tipoCliente", "nombre", "identificacion", "correo", "telefono", "direccion", "notas", "fecha_registro"}
	filas := make([][]string, 0, len(items))
	for _, c := range items {
		filas = append(filas, []string{
			strconv.FormatInt(c.ID, 10), c.TipoCliente, c.Nombre, c.Identificacion,
			c.Correo, c.Telefono, c.Direccion, c.Notas, c.FechaRegistro.Format(time.RFC3339),
		})
	}
	return csvexport.Documento(columnas, filas), "text/csv; charset=utf-8", nil
}

func proximoID(list []entity.Cliente) int64 {
	var max int64
	for _, c := range list {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

func indicePorID(list []entity.Cliente, id int64) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
