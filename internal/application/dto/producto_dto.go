package dto

import "github.com/shopspring/decimal"

// CrearProductoRequest entrada para crear un producto del catálogo.
type CrearProductoRequest struct {
	SKU         string          `json:"sku"`
	Nombre      string          `json:"nombre"`
	Categoria   string          `json:"categoria"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       decimal.Decimal `json:"stock"`
	Unidad      string          `json:"unidad"`
	Proveedor   string          `json:"proveedor"`
	Tallas      []string        `json:"tallas"`
	Colores     []string        `json:"colores"`
	Estado      string          `json:"estado"`
	Fecha       string          `json:"fecha"`
	Descripcion string          `json:"descripcion"`
}

// ActualizarProductoRequest entrada para actualizar un producto (parcial).
type ActualizarProductoRequest struct {
	SKU         *string          `json:"sku"`
	Nombre      *string          `json:"nombre"`
	Categoria   *string          `json:"categoria"`
	Precio      *decimal.Decimal `json:"precio"`
	Stock       *decimal.Decimal `json:"stock"`
	Unidad      *string          `json:"unidad"`
	Proveedor   *string          `json:"proveedor"`
	Tallas      []string         `json:"tallas"`
	Colores     []string         `json:"colores"`
	Estado      *string          `json:"estado"`
	Fecha       *string          `json:"fecha"`
	Descripcion *string          `json:"descripcion"`
}
