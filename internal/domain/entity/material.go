package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de materiales (value object conceptual).
const (
	TipoMovCreacion = "creacion" // asiento inicial al crear el material
	TipoMovEntrada  = "entrada"  // suma al stock
	TipoMovSalida   = "salida"   // resta del stock
	TipoMovAjuste   = "ajuste"   // reemplazo absoluto del stock
)

// Material representa una materia prima con su libro de movimientos.
// StockActual es derivable del libro; se materializa para consultas rápidas
// y toda escritura debe mantener ambos consistentes.
// Los tags JSON son a la vez el esquema persistido (blob por colección) y la
// forma que espera el front end.
type Material struct {
	ID             int64            `json:"id"`
	Nombre         string           `json:"nombre"`
	Tipo           string           `json:"tipo"`
	Unidad         string           `json:"unidad"`
	StockActual    decimal.Decimal  `json:"stock_actual"`
	StockMinimo    decimal.Decimal  `json:"stock_minimo"`
	Peso           *decimal.Decimal `json:"peso"`
	Color          string           `json:"color"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario"`
	ProveedorID    *int64           `json:"proveedor_id"`
	FechaIngreso   time.Time        `json:"fecha_ingreso"`
	Descripcion    string           `json:"descripcion"`
	Activo         bool             `json:"activo"`
	Movimientos    []Movimiento     `json:"movements"`
}

// Movimiento es un asiento del libro de un material. La lista Movimientos es
// el registro de auditoría: solo crece, nunca se trunca ni se reordena.
type Movimiento struct {
	ID         int64           `json:"id"`
	TipoMov    string          `json:"tipo_mov"`
	Cantidad   decimal.Decimal `json:"cantidad"` // para ajuste: valor absoluto resultante, no delta
	Usuario    string          `json:"usuario"`
	FechaMov   time.Time       `json:"fecha_mov"`
	Comentario string          `json:"comentario"`
}

// StockBajo indica si el material está en o bajo su umbral de reposición.
func (m *Material) StockBajo() bool {
	return m.StockActual.LessThanOrEqual(m.StockMinimo)
}

// ProximoMovimientoID devuelve max(id)+1 sobre el libro del material.
func (m *Material) ProximoMovimientoID() int64 {
	var max int64
	for _, mov := range m.Movimientos {
		if mov.ID > max {
			max = mov.ID
		}
	}
	return max + 1
}
