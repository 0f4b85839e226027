package productos_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoseph/loomtrack-api/internal/application/dto"
	"github.com/jhoseph/loomtrack-api/internal/application/productos"
	"github.com/jhoseph/loomtrack-api/internal/domain"
	"github.com/jhoseph/loomtrack-api/internal/domain/entity"
	"github.com/jhoseph/loomtrack-api/internal/infrastructure/blobstore"
	"github.com/jhoseph/loomtrack-api/internal/infrastructure/jsonstore"
)

func nuevoUseCase() *productos.UseCase {
	store := jsonstore.NewColeccion[entity.Producto](blobstore.NewMemoryStore(), jsonstore.ClaveProductos)
	return productos.NewUseCase(store)
}

func TestCrear_DefaultsYSKUUnico(t *testing.T) {
	ctx := context.Background()
	uc := nuevoUseCase()

	p, err := uc.Crear(ctx, dto.CrearProductoRequest{SKU: "CAM-OXF-001", Nombre: "Camisa Oxford"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "Disponible", p.Estado)
	assert.Equal(t, "unidad", p.Unidad)

	_, err = uc.Crear(ctx, dto.CrearProductoRequest{SKU: "CAM-OXF-001", Nombre: "Otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestActualizar_ColisionDeSKURechazada(t *testing.T) {
	ctx := context.Background()
	uc := nuevoUseCase()
	_, err := uc.Crear(ctx, dto.CrearProductoRequest{SKU: "A-1", Nombre: "Uno"})
	require.NoError(t, err)
	p2, err := uc.Crear(ctx, dto.CrearProductoRequest{SKU: "B-2", Nombre: "Dos"})
	require.NoError(t, err)

	sku := "A-1"
	_, err = uc.Actualizar(ctx, p2.ID, dto.ActualizarProductoRequest{SKU: &sku})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Conservar el propio SKU no es colisión.
	propio := "B-2"
	got, err := uc.Actualizar(ctx, p2.ID, dto.ActualizarProductoRequest{SKU: &propio})
	require.NoError(t, err)
	assert.Equal(t, "B-2", got.SKU)
}

func TestListar_BuscaPorNombreSKUYCategoria(t *testing.T) {
	ctx := context.Background()
	uc := nuevoUseCase()
	_, err := uc.Crear(ctx, dto.CrearProductoRequest{SKU: "CAM-OXF-001", Nombre: "Camisa Oxford", Categoria: "Camisas"})
	require.NoError(t, err)
	_, err = uc.Crear(ctx, dto.CrearProductoRequest{SKU: "PAN-DRL-001", Nombre: "Pantalón Drill", Categoria: "Pantalones"})
	require.NoError(t, err)

	items, err := uc.Listar(ctx, "oxf")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = uc.Listar(ctx, "pantalon")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = uc.Listar(ctx, "")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestEliminar_Definitivo(t *testing.T) {
	ctx := context.Background()
	uc := nuevoUseCase()
	p, err := uc.Crear(ctx, dto.CrearProductoRequest{SKU: "X-1", Nombre: "Temporal"})
	require.NoError(t, err)

	require.NoError(t, uc.Eliminar(ctx, p.ID))
	_, err = uc.Obtener(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
