package entity

import "github.com/shopspring/decimal"

// Producto representa un producto terminado del catálogo.
type Producto struct {
	ID          int64           `json:"id"`
	SKU         string          `json:"sku"` // único en el catálogo
	Nombre      string          `json:"nombre"`
	Categoria   string          `json:"categoria"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       decimal.Decimal `json:"stock"`
	Unidad      string          `json:"unidad"`
	Proveedor   string          `json:"proveedor"`
	Tallas      []string        `json:"tallas"`
	Colores     []string        `json:"colores"`
	Estado      string          `json:"estado"` // Disponible, Agotado, Descontinuado
	Fecha       string          `json:"fecha"`  // YYYY-MM-DD
	Descripcion string          `json:"descripcion"`
}
