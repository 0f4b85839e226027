package blobstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoseph/loomtrack-api/internal/infrastructure/blobstore"
)

func TestMemoryStore_LoadClaveAusente(t *testing.T) {
	s := blobstore.NewMemoryStore()
	datos, err := s.Load(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, datos)
}

func TestMemoryStore_MutatePersisteResultado(t *testing.T) {
	ctx := context.Background()
	s := blobstore.NewMemoryStore()

	err := s.Mutate(ctx, "k", func(datos []byte) ([]byte, error) {
		assert.Nil(t, datos, "primera mutación parte de nil")
		return []byte(`[1,2]`), nil
	})
	require.NoError(t, err)

	datos, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(datos))
}

func TestMemoryStore_ErrorDeFnNoPersiste(t *testing.T) {
	ctx := context.Background()
	s := blobstore.NewMemoryStore()
	require.NoError(t, s.Mutate(ctx, "k", func([]byte) ([]byte, error) {
		return []byte("original"), nil
	}))

	boom := errors.New("boom")
	err := s.Mutate(ctx, "k", func([]byte) ([]byte, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	datos, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "original", string(datos), "el blob anterior debe quedar intacto")
}

func TestMemoryStore_LoadDevuelveCopia(t *testing.T) {
	ctx := context.Background()
	s := blobstore.NewMemoryStore()
	require.NoError(t, s.Mutate(ctx, "k", func([]byte) ([]byte, error) {
		return []byte("abc"), nil
	}))

	datos, err := s.Load(ctx, "k")
	require.NoError(t, err)
	datos[0] = 'X'

	otra, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(otra), "mutar lo devuelto no debe afectar al store")
}
