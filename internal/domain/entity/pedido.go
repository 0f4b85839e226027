package entity

import "github.com/shopspring/decimal"

// Estados de un pedido.
const (
	PedidoPendiente    = "Pendiente"
	PedidoConfirmado   = "Confirmado"
	PedidoEnProduccion = "En producción"
	PedidoEntregado    = "Entregado"
	PedidoCancelado    = "Cancelado"
)

// Pedido representa un pedido de confección con sus líneas de artículos.
type Pedido struct {
	ID              int64           `json:"id"`
	Cliente         string          `json:"cliente"`
	Telefono        string          `json:"telefono"`
	Direccion       string          `json:"direccion"`
	Items           []ItemPedido    `json:"items"`
	Fecha           string          `json:"fecha"` // YYYY-MM-DD, como lo maneja el front
	Estado          string          `json:"estado"`
	Comprobante     string          `json:"comprobante"`
	MetodoPago      string          `json:"metodoPago"`
	TipoComprobante string          `json:"tipoComprobante"`
	Prioridad       string          `json:"prioridad"`
	Observaciones   string          `json:"observaciones"`
	Total           decimal.Decimal `json:"total"`
}

// ItemPedido es una línea de artículo dentro de un pedido.
type ItemPedido struct {
	ID       int64           `json:"id"`
	Producto string          `json:"producto"`
	Cantidad decimal.Decimal `json:"cantidad"`
	Talla    string          `json:"talla"`
	Color    string          `json:"color"`
	Precio   decimal.Decimal `json:"precio"`
}

// Subtotal = cantidad × precio, redondeado a 2 decimales.
func (i ItemPedido) Subtotal() decimal.Decimal {
	return i.Cantidad.Mul(i.Precio).Round(2)
}

// CalcularTotal suma los subtotales de todas las líneas.
func (p *Pedido) CalcularTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range p.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}
