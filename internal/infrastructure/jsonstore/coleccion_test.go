package jsonstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoseph/loomtrack-api/internal/infrastructure/blobstore"
	"github.com/jhoseph/loomtrack-api/internal/infrastructure/jsonstore"
)

type fila struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

func TestLoadAll_ClaveAusenteEsColeccionVacia(t *testing.T) {
	col := jsonstore.NewColeccion[fila](blobstore.NewMemoryStore(), "clave")
	list, err := col.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMutate_PersisteYRelee(t *testing.T) {
	ctx := context.Background()
	col := jsonstore.NewColeccion[fila](blobstore.NewMemoryStore(), "clave")

	err := col.Mutate(ctx, func(list []fila) ([]fila, error) {
		return append(list, fila{ID: 1, Nombre: "Tela"}), nil
	})
	require.NoError(t, err)

	list, err := col.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Tela", list[0].Nombre)
}

func TestMutate_ErrorDeFnNoPersisteNada(t *testing.T) {
	ctx := context.Background()
	col := jsonstore.NewColeccion[fila](blobstore.NewMemoryStore(), "clave")
	require.NoError(t, col.Mutate(ctx, func(list []fila) ([]fila, error) {
		return append(list, fila{ID: 1}), nil
	}))

	boom := errors.New("boom")
	err := col.Mutate(ctx, func(list []fila) ([]fila, error) {
		list[0].Nombre = "mutado"
		return list, boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := col.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Nombre, "el cambio de una mutación fallida no debe verse")
}

func TestMutate_BlobCorruptoEsError(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Mutate(ctx, "clave", func([]byte) ([]byte, error) {
		return []byte("esto no es json"), nil
	}))

	col := jsonstore.NewColeccion[fila](store, "clave")
	_, err := col.LoadAll(ctx)
	assert.Error(t, err)
}
