package materiales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoseph/loomtrack-api/internal/application/dto"
	"github.com/jhoseph/loomtrack-api/internal/application/materiales"
	"github.com/jhoseph/loomtrack-api/internal/domain"
	"github.com/jhoseph/loomtrack-api/internal/domain/entity"
	"github.com/jhoseph/loomtrack-api/internal/infrastructure/blobstore"
	"github.com/jhoseph/loomtrack-api/internal/infrastructure/jsonstore"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func nuevoUseCase() *materiales.UseCase {
	store := jsonstore.NewColeccion[entity.Material](blobstore.NewMemoryStore(), jsonstore.ClaveMateriales)
	return materiales.NewUseCase(store)
}

func crearTela(t *testing.T, uc *materiales.UseCase) *entity.Material {
	t.Helper()
	m, err := uc.Crear(context.Background(), dto.CrearMaterialRequest{
		Nombre:      "Tela Algodón",
		Tipo:        "Tela",
		Unidad:      "metros",
		StockActual: dec("100"),
		StockMinimo: dec("20"),
		Usuario:     "jhoseph",
	})
	require.NoError(t, err)
	return m
}

// Ciclo de vida completo: creación, entrada, salida rechazada por stock
// insuficiente y ajuste absoluto.
func TestAjustarStock_CicloCompleto(t *testing.T) {
	ctx := context.Background()
	uc := nuevoUseCase()
	m := crearTela(t, uc)

	require.Equal(t, int64(1), m.ID)
	require.True(t, dec("100").Equal(m.StockActual))
	require.Len(t, m.Movimientos, 1)
	assert.Equal(t, entity.TipoMovCreacion, m.Movimientos[0].TipoMov)

	// Entrada de 50: stock 150, segundo asiento.
	m, err := uc.AjustarStock(ctx, m.ID, dto.AjusteStockRequest{
		TipoMov: entity.TipoMovEntrada, Cantidad: dec("50"), Usuario: "jhoseph",
	})
	require.NoError(t, err)
	assert.True(t, dec("150").Equal(m.StockActual))
	assert.Len(t, m.Movimientos, 2)

	// Salida de 200: daría negativo, se rechaza sin tocar nada.
	_, err = uc.AjustarStock(ctx, m.ID, dto.AjusteStockRequest{
		TipoMov: entity.TipoMovSalida, Cantidad: dec("200"),
	})
	assert.ErrorIs(t, err, domain.ErrStockNegativo)

	m, err = uc.Obtener(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, dec("150").Equal(m.StockActual), "el rechazo no debe alterar el stock")
	assert.Len(t, m.Movimientos, 2, "el rechazo no debe añadir asiento")

	// Ajuste absoluto a 10: queda en stock bajo (mínimo 20).
	m, err = uc.AjustarStock(ctx, m.ID, dto.AjusteStockRequest{
		TipoMov: entity.TipoMovAjuste, Cantidad: dec("10"), Comentario: "Inventario físico",
	})
	require.NoError(t, err)
	assert.True(t, dec("10").Equal(m.StockActual))
	assert.Len(t, m.Movimientos, 3)
	assert.True(t, m.StockBajo())
}

func TestAjustarStock_TipoDesconocidoRechazado(t *testing.T) {
	ctx := context.Background()
	uc := nuevoUseCase()
	m := crearTela(t, uc)

	_, err := uc.AjustarStock(ctx, m.ID, dto.AjusteStockRequest{
		TipoMov: "devolucion", Cantidad: dec("5"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	m, err = uc.Obtener(ctx, m.ID)
	require.NoError(t, err)
	assert.Len(t, m.Movimientos, 1)
}

func TestAjustarStock_MaterialInexistente(t *testing.T) {
	uc := nuevoUseCase()
	_, err := uc.AjustarStock(context.Background(), 99, dto.AjusteStockRequest{
		TipoMov: entity.TipoMovEntrada, Cantidad: dec("5"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAjustarStock_IDsDeMovimientoMonotonicos(t *testing.T) {
	ctx := context.Background()
	uc := nuevoUseCase()
	m := crearTela(t, uc)

	for i := 0; i < 3; i++ {
		var err error
		m, err = uc.AjustarStock(ctx, m.ID, dto.AjusteStockRequest{
			TipoMov: entity.TipoMovEntrada, Cantidad: dec("1"),
		})
		require.NoError(t, err)
	}
	require.Len(t, m.Movimientos, 4)
	for i, mov := range m.Movimientos {
		assert.Equal(t, int64(i+1), mov.ID)
	}
}

func TestCrear_DefaultsYAsientoInicial(t *testing.T) {
	ctx := context.Background()
	uc := nuevoUseCase()

	m, err := uc.Crear(ctx, dto.CrearMaterialRequest{Nombre: "Botones"})
	require.NoError(t, err)
	assert.Equal(t, "unidad", m.Unidad)
	assert.True(t, m.Activo)
	assert.True(t, m.StockActual.IsZero())
	require.Len(t, m.Movimientos, 1)
	assert.Equal(t, entity.TipoMovCreacion, m.Movimientos[0].TipoMov)
	assert.Equal(t, "system", m.Movimientos[0].Usuario)
	assert.Equal(t, "Creación inicial", m.Movimientos[0].Comentario)
	assert.True(t, m.Movimientos[0].Cantidad.IsZero())
}

// Los IDs nunca se reutilizan, ni siquiera tras un borrado lógico.
func TestCrear_IDNoSeReutilizaTrasEliminar(t *testing.T) {
	ctx := context.Background()
	uc := nuevoUseCase()

	crearTela(t, uc)
	m2, err := uc.Crear(ctx, dto.CrearMaterialRequest{Nombre: "Hilo"})
	require.NoError(t, err)
	require.Equal(t, int64(2), m2.ID)

	_, err = uc.Eliminar(ctx, m2.ID)
	require.NoError(t, err)

	m3, err := uc.Crear(ctx, dto.CrearMaterialRequest{Nombre: "Cremallera"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), m3.ID, "el ID del eliminado no debe reutilizarse")
}

func TestListar_FiltraEliminadosQYStockBajo(t *testing.T) {
	ctx := context.Background()
	uc := nuevoUseCase()

	crearTela(t, uc) // stock 100, mínimo 20
	m2, err := uc.Crear(ctx, dto.CrearMaterialRequest{
		Nombre: "Hilo Poliéster", StockActual: dec("5"), StockMinimo: dec("10"),
	})
	require.NoError(t, err)
	m3, err := uc.Crear(ctx, dto.CrearMaterialRequest{Nombre: "Cremallera"})
	require.NoError(t, err)
	_, err = uc.Eliminar(ctx, m3.ID)
	require.NoError(t, err)

	// Sin filtro: solo los activos.
	items, err := uc.Listar(ctx, materiales.Filtro{})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// Búsqueda insensible a mayúsculas y acentos.
	items, err = uc.Listar(ctx, materiales.Filtro{Q: "poliester"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, m2.ID, items[0].ID)

	// Solo stock bajo.
	items, err = uc.Listar(ctx, materiales.Filtro{Stock: materiales.StockBajo})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, m2.ID, items[0].ID)
}

func TestObtener_IncluyeEliminados(t *testing.T) {
	ctx := context.Background()
	uc := nuevoUseCase()
	m := crearTela(t, uc)

	_, err := uc.Eliminar(ctx, m.ID)
	require.NoError(t, err)

	got, err := uc.Obtener(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, got.Activo)
	assert.Len(t, got.Movimientos, 1, "el libro se conserva tras eliminar")
}

func TestEliminar_IdempotenteEInexistente(t *testing.T) {
	ctx := context.Background()
	uc := nuevoUseCase()
	m := crearTela(t, uc)

	_, err := uc.Eliminar(ctx, m.ID)
	require.NoError(t, err)
	_, err = uc.Eliminar(ctx, m.ID)
	assert.NoError(t, err, "eliminar un ya eliminado no es error")

	_, err = uc.Eliminar(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActualizar_PreservaIDYMovimientos(t *testing.T) {
	ctx := context.Background()
	uc := nuevoUseCase()
	m := crearTela(t, uc)

	nombre := "Tela Algodón Premium"
	minimo := dec("30")
	got, err := uc.Actualizar(ctx, m.ID, dto.ActualizarMaterialRequest{
		Nombre: &nombre, StockMinimo: &minimo,
	})
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)
	assert.Equal(t, nombre, got.Nombre)
	assert.True(t, minimo.Equal(got.StockMinimo))
	assert.Len(t, got.Movimientos, 1, "actualizar no toca el libro")
	assert.True(t, dec("100").Equal(got.StockActual))
}

// La corrección administrativa de stock vía Actualizar no asienta en el libro
// y deja el invariante de derivación divergente a propósito.
func TestActualizar_CorreccionAdministrativaDivergeDelLibro(t *testing.T) {
	ctx := context.Background()
	uc := nuevoUseCase()
	m := crearTela(t, uc)

	corregido := dec("77")
	_, err := uc.Actualizar(ctx, m.ID, dto.ActualizarMaterialRequest{StockActual: &corregido})
	require.NoError(t, err)

	materializado, derivado, err := uc.VerificarLibro(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, corregido.Equal(materializado))
	assert.True(t, dec("100").Equal(derivado))
}

func TestVerificarLibro_CoincideTrasAjustes(t *testing.T) {
	ctx := context.Background()
	uc := nuevoUseCase()
	m := crearTela(t, uc)

	_, err := uc.AjustarStock(ctx, m.ID, dto.AjusteStockRequest{TipoMov: entity.TipoMovEntrada, Cantidad: dec("50")})
	require.NoError(t, err)
	_, err = uc.AjustarStock(ctx, m.ID, dto.AjusteStockRequest{TipoMov: entity.TipoMovSalida, Cantidad: dec("30")})
	require.NoError(t, err)

	materializado, derivado, err := uc.VerificarLibro(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, materializado.Equal(derivado))
	assert.True(t, dec("120").Equal(materializado))
}

func TestListarMovimientos_ReporteGlobal(t *testing.T) {
	ctx := context.Background()
	uc := nuevoUseCase()

	m1 := crearTela(t, uc)
	m2, err := uc.Crear(ctx, dto.CrearMaterialRequest{Nombre: "Hilo", StockActual: dec("10")})
	require.NoError(t, err)
	_, err = uc.AjustarStock(ctx, m1.ID, dto.AjusteStockRequest{TipoMov: entity.TipoMovEntrada, Cantidad: dec("5")})
	require.NoError(t, err)
	_, err = uc.Eliminar(ctx, m2.ID)
	require.NoError(t, err)

	// Sin filtro: todos los asientos, eliminados incluidos.
	filas, err := uc.ListarMovimientos(ctx, materiales.FiltroMovimientos{})
	require.NoError(t, err)
	assert.Len(t, filas, 3)

	// Por tipo.
	filas, err = uc.ListarMovimientos(ctx, materiales.FiltroMovimientos{Tipo: entity.TipoMovEntrada})
	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Equal(t, m1.ID, filas[0].MaterialID)
	assert.Equal(t, "Tela Algodón", filas[0].MaterialNombre)

	// Por nombre de material.
	filas, err = uc.ListarMovimientos(ctx, materiales.FiltroMovimientos{Q: "hilo"})
	require.NoError(t, err)
	assert.Len(t, filas, 1)
}
