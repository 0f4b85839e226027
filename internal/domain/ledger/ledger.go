// Package ledger implementa la regla de derivación del stock de un material
// a partir de su libro de movimientos (servicio de dominio).
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoseph/loomtrack-api/internal/domain"
	"github.com/jhoseph/loomtrack-api/internal/domain/entity"
)

// Aplicar calcula el stock resultante de aplicar un movimiento sobre el stock
// actual. Entrada suma, salida resta; ajuste y creación reemplazan el valor
// (cantidad es el stock absoluto resultante, no un delta).
func Aplicar(actual decimal.Decimal, tipoMov string, cantidad decimal.Decimal) (decimal.Decimal, error) {
	switch tipoMov {
	case entity.TipoMovEntrada:
		return actual.Add(cantidad), nil
	case entity.TipoMovSalida:
		return actual.Sub(cantidad), nil
	case entity.TipoMovAjuste, entity.TipoMovCreacion:
		return cantidad, nil
	default:
		return decimal.Zero, domain.ErrInvalidInput
	}
}

// Reproducir pliega el libro completo desde cero y devuelve el stock que los
// movimientos implican. El invariante del sistema es que el StockActual
// materializado coincide siempre con este valor.
func Reproducir(movimientos []entity.Movimiento) (decimal.Decimal, error) {
	stock := decimal.Zero
	for _, mov := range movimientos {
		var err error
		stock, err = Aplicar(stock, mov.TipoMov, mov.Cantidad)
		if err != nil {
			return decimal.Zero, err
		}
	}
	return stock, nil
}
