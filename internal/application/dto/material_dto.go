package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoseph/loomtrack-api/internal/domain/entity"
)

// CrearMaterialRequest entrada para crear un material. Los campos omitidos
// toman los valores por defecto (numéricos 0, strings vacíos, unidad
// "unidad", activo true); la validación de campos obligatorios es
// responsabilidad de la capa de presentación.
type CrearMaterialRequest struct {
	Nombre         string           `json:"nombre"`
	Tipo           string           `json:"tipo"`
	Unidad         string           `json:"unidad"`
	StockActual    decimal.Decimal  `json:"stock_actual"`
	StockMinimo    decimal.Decimal  `json:"stock_minimo"`
	Peso           *decimal.Decimal `json:"peso"`
	Color          string           `json:"color"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario"`
	ProveedorID    *int64           `json:"proveedor_id"`
	FechaIngreso   *time.Time       `json:"fecha_ingreso"`
	Descripcion    string           `json:"descripcion"`
	Activo         *bool            `json:"activo"`
	Usuario        string           `json:"usuario"` // autor del asiento de creación
}

// ActualizarMaterialRequest entrada para actualizar un material: solo los
// campos presentes se sobreescriben; ID y movimientos nunca se tocan.
// StockActual aquí es la vía de corrección administrativa: sobreescribe el
// valor sin asiento en el libro (ver nota en el caso de uso).
type ActualizarMaterialRequest struct {
	Nombre         *string          `json:"nombre"`
	Tipo           *string          `json:"tipo"`
	Unidad         *string          `json:"unidad"`
	StockActual    *decimal.Decimal `json:"stock_actual"`
	StockMinimo    *decimal.Decimal `json:"stock_minimo"`
	Peso           *decimal.Decimal `json:"peso"`
	Color          *string          `json:"color"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario"`
	ProveedorID    *int64           `json:"proveedor_id"`
	FechaIngreso   *time.Time       `json:"fecha_ingreso"`
	Descripcion    *string          `json:"descripcion"`
	Activo         *bool            `json:"activo"`
}

// AjusteStockRequest entrada para registrar un movimiento de stock.
// Para tipo_mov "ajuste", cantidad es el stock absoluto resultante.
type AjusteStockRequest struct {
	TipoMov    string          `json:"tipo_mov"` // entrada | salida | ajuste
	Cantidad   decimal.Decimal `json:"cantidad"`
	Usuario    string          `json:"usuario"`
	Comentario string          `json:"comentario"`
}

// VerificacionLibroResponse contrasta el stock materializado de un material
// contra el derivado de plegar su libro. Divergen tras una corrección
// administrativa del stock (update sin asiento).
type VerificacionLibroResponse struct {
	MaterialID         int64           `json:"material_id"`
	StockMaterializado decimal.Decimal `json:"stock_materializado"`
	StockDerivado      decimal.Decimal `json:"stock_derivado"`
	Coincide           bool            `json:"coincide"`
}

// MovimientoGlobal es una fila del reporte global de movimientos: un asiento
// del libro con el material al que pertenece.
type MovimientoGlobal struct {
	MaterialID     int64  `json:"material_id"`
	MaterialNombre string `json:"material_nombre"`
	Unidad         string `json:"unidad"`
	entity.Movimiento
}
