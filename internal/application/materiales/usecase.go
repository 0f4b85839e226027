// Package materiales implementa el servicio del libro de materiales: toda
// lectura y mutación de materiales y de sus movimientos pasa por aquí.
package materiales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoseph/loomtrack-api/internal/application/dto"
	"github.com/jhoseph/loomtrack-api/internal/domain"
	"github.com/jhoseph/loomtrack-api/internal/domain/entity"
	"github.com/jhoseph/loomtrack-api/internal/domain/ledger"
	"github.com/jhoseph/loomtrack-api/internal/domain/repository"
	"github.com/jhoseph/loomtrack-api/pkg/texto"
)

// StockBajo es el valor del filtro de stock que restringe el listado a los
// materiales en o bajo su umbral mínimo.
const StockBajo = "low"

// Filtro parámetros de listado de materiales.
type Filtro struct {
	Q     string // substring sobre nombre, sin mayúsculas ni acentos
	Stock string // "low" -> solo stock_actual <= stock_minimo
}

// UseCase casos de uso del libro de materiales.
type UseCase struct {
	store repository.MaterialStore
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.MaterialStore) *UseCase {
	return &UseCase{store: store}
}

// Listar devuelve los materiales no eliminados que cumplen el filtro, en el
// orden del store. Filtro vacío devuelve todos.
func (uc *UseCase) Listar(ctx context.Context, f Filtro) ([]entity.Material, error) {
	list, err := uc.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]entity.Material, 0, len(list))
	for _, m := range list {
		if !m.Activo {
			continue
		}
		if !texto.Contiene(m.Nombre, f.Q) {
			continue
		}
		if f.Stock == StockBajo && !m.StockBajo() {
			continue
		}
		items = append(items, m)
	}
	return items, nil
}

// Obtener devuelve el material por ID sin filtrar por activo: los eliminados
// lógicamente siguen siendo consultables con su libro completo.
func (uc *UseCase) Obtener(ctx context.Context, id int64) (*entity.Material, error) {
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

// Crear crea un material con un asiento inicial "creacion" sembrado con el
// stock inicial. El ID es max(existentes)+1, también sobre los eliminados,
// para que nunca se reutilice.
func (uc *UseCase) Crear(ctx context.Context, in dto.CrearMaterialRequest) (*entity.Material, error) {
	var creado *entity.Material
	err := uc.store.Mutate(ctx, func(list []entity.Material) ([]entity.Material, error) {
		now := time.Now()
		unidad := in.Unidad
		if unidad == "" {
			unidad = "unidad"
		}
		usuario := in.Usuario
		if usuario == "" {
			usuario = "system"
		}
		fechaIngreso := now
		if in.FechaIngreso != nil {
			fechaIngreso = *in.FechaIngreso
		}
		activo := true
		if in.Activo != nil {
			activo = *in.Activo
		}
		m := entity.Material{
			ID:             proximoID(list),
			Nombre:         in.Nombre,
			Tipo:           in.Tipo,
			Unidad:         unidad,
			StockActual:    in.StockActual,
			StockMinimo:    in.StockMinimo,
			Peso:           in.Peso,
			Color:          in.Color,
			PrecioUnitario: in.PrecioUnitario,
			ProveedorID:    in.ProveedorID,
			FechaIngreso:   fechaIngreso,
			Descripcion:    in.Descripcion,
			Activo:         activo,
			Movimientos: []entity.Movimiento{{
				ID:         1,
				TipoMov:    entity.TipoMovCreacion,
				Cantidad:   in.StockActual,
				Usuario:    usuario,
				FechaMov:   now,
				Comentario: "Creación inicial",
			}},
		}
		creado = &m
		return append(list, m), nil
	})
	if err != nil {
		return nil, err
	}
	return creado, nil
}

// Actualizar sobreescribe los campos presentes en el request, preservando ID
// y movimientos. Nota: StockActual por esta vía es una corrección
// administrativa que NO añade asiento al libro y puede desincronizar el
// invariante de derivación; se mantiene a propósito como capacidad separada
// de AjustarStock (comportamiento heredado del sistema original).
func (uc *UseCase) Actualizar(ctx context.Context, id int64, in dto.ActualizarMaterialRequest) (*entity.Material, error) {
	var actualizado *entity.Material
	err := uc.store.Mutate(ctx, func(list []entity.Material) ([]entity.Material, error) {
		idx := indicePorID(list, id)
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		m := &list[idx]
		if in.Nombre != nil {
			m.Nombre = *in.Nombre
		}
		if in.Tipo != nil {
			m.Tipo = *in.Tipo
		}
		if in.Unidad != nil {
			m.Unidad = *in.Unidad
		}
		if in.StockActual != nil {
			m.StockActual = *in.StockActual
		}
		if in.StockMinimo != nil {
			m.StockMinimo = *in.StockMinimo
		}
		if in.Peso != nil {
			m.Peso = in.Peso
		}
		if in.Color != nil {
			m.Color = *in.Color
		}
		if in.PrecioUnitario != nil {
			m.PrecioUnitario = in.PrecioUnitario
		}
		if in.ProveedorID != nil {
			m.ProveedorID = in.ProveedorID
		}
		if in.FechaIngreso != nil {
			m.FechaIngreso = *in.FechaIngreso
		}
		if in.Descripcion != nil {
			m.Descripcion = *in.Descripcion
		}
		if in.Activo != nil {
			m.Activo = *in.Activo
		}
		cp := *m
		actualizado = &cp
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return actualizado, nil
}

// AjustarStock registra un movimiento (entrada/salida/ajuste) y materializa el
// stock resultante. Todo ocurre dentro de Mutate: ningún otro ajuste puede
// aplicar sobre un stock obsoleto, y si el resultado sería negativo se
// devuelve ErrStockNegativo sin persistir nada (el registro queda intacto,
// libro incluido).
func (uc *UseCase) AjustarStock(ctx context.Context, id int64, in dto.AjusteStockRequest) (*entity.Material, error) {
	switch in.TipoMov {
	case entity.TipoMovEntrada, entity.TipoMovSalida, entity.TipoMovAjuste:
	default:
		return nil, domain.ErrInvalidInput
	}
	var actualizado *entity.Material
	err := uc.store.Mutate(ctx, func(list []entity.Material) ([]entity.Material, error) {
		idx := indicePorID(list, id)
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		m := &list[idx]

		nuevoStock, err := ledger.Aplicar(m.StockActual, in.TipoMov, in.Cantidad)
		if err != nil {
			return nil, err
		}
		if nuevoStock.IsNegative() {
			return nil, domain.ErrStockNegativo
		}

		usuario := in.Usuario
		if usuario == "" {
			usuario = "system"
		}
		mov := entity.Movimiento{
			ID:         m.ProximoMovimientoID(),
			TipoMov:    in.TipoMov,
			Cantidad:   in.Cantidad,
			Usuario:    usuario,
			FechaMov:   time.Now(),
			Comentario: in.Comentario,
		}
		m.Movimientos = append(m.Movimientos, mov)
		m.StockActual = nuevoStock

		cp := *m
		actualizado = &cp
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return actualizado, nil
}

// Eliminar marca el material como inactivo (borrado lógico). El libro se
// conserva íntegro y el ID nunca se reutiliza. Idempotente sobre activo.
func (uc *UseCase) Eliminar(ctx context.Context, id int64) (*entity.Material, error) {
	var eliminado *entity.Material
	err := uc.store.Mutate(ctx, func(list []entity.Material) ([]entity.Material, error) {
		idx := indicePorID(list, id)
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		list[idx].Activo = false
		cp := list[idx]
		eliminado = &cp
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return eliminado, nil
}

// FiltroMovimientos parámetros del reporte global de movimientos.
type FiltroMovimientos struct {
	Tipo string // tipo_mov exacto; vacío = todos
	Q    string // substring sobre el nombre del material
}

// ListarMovimientos aplana los libros de todos los materiales (incluidos los
// eliminados: son registro de auditoría) en un reporte global.
func (uc *UseCase) ListarMovimientos(ctx context.Context, f FiltroMovimientos) ([]dto.MovimientoGlobal, error) {
	list, err := uc.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	filas := make([]dto.MovimientoGlobal, 0)
	for _, m := range list {
		if !texto.Contiene(m.Nombre, f.Q) {
			continue
		}
		for _, mov := range m.Movimientos {
			if f.Tipo != "" && mov.TipoMov != f.Tipo {
				continue
			}
			filas = append(filas, dto.MovimientoGlobal{
				MaterialID:     m.ID,
				MaterialNombre: m.Nombre,
				Unidad:         m.Unidad,
				Movimiento:     mov,
			})
		}
	}
	return filas, nil
}

// VerificarLibro comprueba el invariante de derivación de un material:
// el stock materializado contra el fold de su libro. Devuelve ambos valores
// para diagnóstico (pueden divergir tras una corrección administrativa).
func (uc *UseCase) VerificarLibro(ctx context.Context, id int64) (materializado, derivado decimal.Decimal, err error) {
	m, err := uc.Obtener(ctx, id)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	derivado, err = ledger.Reproducir(m.Movimientos)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return m.StockActual, derivado, nil
}

// proximoID devuelve max(id)+1 sobre la colección completa, eliminados
// incluidos: los IDs no se reutilizan nunca.
func proximoID(list []entity.Material) int64 {
	var max int64
	for _, m := range list {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}

func indicePorID(list []entity.Material, id int64) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
