package dto

import "github.com/shopspring/decimal"

// ItemPedidoRequest línea de artículo dentro de un pedido.
type ItemPedidoRequest struct {
	Producto string          `json:"producto"`
	Cantidad decimal.Decimal `json:"cantidad"`
	Talla    string          `json:"talla"`
	Color    string          `json:"color"`
	Precio   decimal.Decimal `json:"precio"`
}

// GuardarPedidoRequest entrada para crear o reemplazar un pedido.
// El total no se acepta del cliente: siempre se recalcula de las líneas.
type GuardarPedidoRequest struct {
	Cliente         string              `json:"cliente"`
	Telefono        string              `json:"telefono"`
	Direccion       string              `json:"direccion"`
	Items           []ItemPedidoRequest `json:"items"`
	Fecha           string              `json:"fecha"`
	Estado          string              `json:"estado"`
	Comprobante     string              `json:"comprobante"`
	MetodoPago      string              `json:"metodoPago"`
	TipoComprobante string              `json:"tipoComprobante"`
	Prioridad       string              `json:"prioridad"`
	Observaciones   string              `json:"observaciones"`
}
