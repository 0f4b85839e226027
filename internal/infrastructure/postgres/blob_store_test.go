package postgres_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoseph/loomtrack-api/internal/infrastructure/postgres"
)

// Estas pruebas necesitan un PostgreSQL real; se saltan si
// LOOMTRACK_TEST_DATABASE_URL no está definida.
func abrirStore(t *testing.T) *postgres.BlobStore {
	t.Helper()
	dsn := os.Getenv("LOOMTRACK_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("LOOMTRACK_TEST_DATABASE_URL no definida")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	store := postgres.NewBlobStore(pool)
	require.NoError(t, store.Init(ctx))
	return store
}

func claveTest(t *testing.T) string {
	t.Helper()
	return fmt.Sprintf("loomtrack_test_%s_%d", t.Name(), time.Now().UnixNano())
}

func TestLoad_ClaveAusente(t *testing.T) {
	store := abrirStore(t)

	datos, err := store.Load(context.Background(), claveTest(t))
	require.NoError(t, err)
	assert.Nil(t, datos)
}

// Dos procesos que escriben por primera vez la misma clave deben quedar
// serializados: ninguna de las dos mutaciones puede perderse.
func TestMutate_PrimeraEscrituraConcurrente(t *testing.T) {
	store := abrirStore(t)
	ctx := context.Background()
	clave := claveTest(t)

	agregar := func(valor string) error {
		return store.Mutate(ctx, clave, func(datos []byte) ([]byte, error) {
			var list []string
			if len(datos) > 0 {
				if err := json.Unmarshal(datos, &list); err != nil {
					return nil, err
				}
			}
			return json.Marshal(append(list, valor))
		})
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, valor := range []string{"a", "b"} {
		wg.Add(1)
		go func(i int, valor string) {
			defer wg.Done()
			errs[i] = agregar(valor)
		}(i, valor)
	}
	wg.Wait()
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	datos, err := store.Load(ctx, clave)
	require.NoError(t, err)
	var list []string
	require.NoError(t, json.Unmarshal(datos, &list))
	assert.ElementsMatch(t, []string{"a", "b"}, list)
}

func TestMutate_ErrorDeFnNoPersiste(t *testing.T) {
	store := abrirStore(t)
	ctx := context.Background()
	clave := claveTest(t)

	require.NoError(t, store.Mutate(ctx, clave, func([]byte) ([]byte, error) {
		return []byte(`["a"]`), nil
	}))
	err := store.Mutate(ctx, clave, func([]byte) ([]byte, error) {
		return nil, fmt.Errorf("algo salió mal")
	})
	require.Error(t, err)

	datos, err := store.Load(ctx, clave)
	require.NoError(t, err)
	assert.JSONEq(t, `["a"]`, string(datos))
}
