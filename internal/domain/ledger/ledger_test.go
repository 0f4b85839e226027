package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoseph/loomtrack-api/internal/domain"
	"github.com/jhoseph/loomtrack-api/internal/domain/entity"
	"github.com/jhoseph/loomtrack-api/internal/domain/ledger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAplicar_EntradaSuma(t *testing.T) {
	got, err := ledger.Aplicar(dec("100"), entity.TipoMovEntrada, dec("50"))
	require.NoError(t, err)
	assert.True(t, dec("150").Equal(got))
}

func TestAplicar_SalidaResta(t *testing.T) {
	got, err := ledger.Aplicar(dec("100"), entity.TipoMovSalida, dec("30"))
	require.NoError(t, err)
	assert.True(t, dec("70").Equal(got))
}

func TestAplicar_AjusteReemplaza(t *testing.T) {
	// Ajuste es valor absoluto resultante, no delta.
	got, err := ledger.Aplicar(dec("100"), entity.TipoMovAjuste, dec("10"))
	require.NoError(t, err)
	assert.True(t, dec("10").Equal(got))
}

func TestAplicar_CreacionReemplaza(t *testing.T) {
	got, err := ledger.Aplicar(decimal.Zero, entity.TipoMovCreacion, dec("25.5"))
	require.NoError(t, err)
	assert.True(t, dec("25.5").Equal(got))
}

func TestAplicar_TipoDesconocidoEsError(t *testing.T) {
	_, err := ledger.Aplicar(dec("100"), "devolucion", dec("5"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAplicar_SalidaPuedeDarNegativo(t *testing.T) {
	// La regla de derivación no valida el signo; eso lo decide el caso de uso.
	got, err := ledger.Aplicar(dec("10"), entity.TipoMovSalida, dec("25"))
	require.NoError(t, err)
	assert.True(t, got.IsNegative())
}

func TestReproducir_PliegaElLibroCompleto(t *testing.T) {
	movs := []entity.Movimiento{
		{ID: 1, TipoMov: entity.TipoMovCreacion, Cantidad: dec("100")},
		{ID: 2, TipoMov: entity.TipoMovEntrada, Cantidad: dec("50")},
		{ID: 3, TipoMov: entity.TipoMovSalida, Cantidad: dec("40")},
		{ID: 4, TipoMov: entity.TipoMovAjuste, Cantidad: dec("10")},
		{ID: 5, TipoMov: entity.TipoMovEntrada, Cantidad: dec("2.5")},
	}
	got, err := ledger.Reproducir(movs)
	require.NoError(t, err)
	assert.True(t, dec("12.5").Equal(got))
}

func TestReproducir_LibroVacioEsCero(t *testing.T) {
	got, err := ledger.Reproducir(nil)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestReproducir_MovimientoInvalidoCortaElFold(t *testing.T) {
	movs := []entity.Movimiento{
		{ID: 1, TipoMov: entity.TipoMovCreacion, Cantidad: dec("100")},
		{ID: 2, TipoMov: "otro", Cantidad: dec("1")},
	}
	_, err := ledger.Reproducir(movs)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
