package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoseph/loomtrack-api/internal/infrastructure/blobstore"
)

var _ blobstore.Store = (*BlobStore)(nil)

// BlobStore implementa blobstore.Store sobre una tabla clave → documento JSONB.
// Mutate corre en una transacción con SELECT ... FOR UPDATE sobre la fila de
// la clave, de modo que el ciclo leer-modificar-escribir queda serializado
// también entre procesos (requisito para que el stock nunca quede negativo
// con clientes concurrentes).
type BlobStore struct {
	pool *pgxpool.Pool
}

// NewBlobStore construye el store sobre el pool.
func NewBlobStore(pool *pgxpool.Pool) *BlobStore {
	return &BlobStore{pool: pool}
}

// Init crea la tabla de colecciones si no existe. datos admite NULL: una
// fila con datos NULL es un marcador que Mutate inserta para poder bloquear
// claves que todavía no tienen documento.
func (s *BlobStore) Init(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS colecciones (
			clave          text PRIMARY KEY,
			datos          jsonb,
			actualizado_en timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("crear tabla colecciones: %w", err)
	}
	return nil
}

// Load devuelve el documento de la clave, o nil si no existe.
func (s *BlobStore) Load(ctx context.Context, clave string) ([]byte, error) {
	var datos []byte
	err := s.pool.QueryRow(ctx,
		`SELECT datos FROM colecciones WHERE clave = $1`, clave).Scan(&datos)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load %s: %w", clave, err)
	}
	return datos, nil
}

// Mutate bloquea la fila de la clave (FOR UPDATE), ejecuta fn y hace
// Commit con el documento nuevo, o Rollback si fn falla. La fila se
// materializa antes del bloqueo: un FOR UPDATE sobre cero filas no bloquea
// nada, y dos primeras escrituras concurrentes de la misma clave se
// pisarían entre sí.
func (s *BlobStore) Mutate(ctx context.Context, clave string, fn func(datos []byte) ([]byte, error)) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO colecciones (clave, datos)
		VALUES ($1, NULL)
		ON CONFLICT (clave) DO NOTHING`, clave)
	if err != nil {
		return fmt.Errorf("materializar %s: %w", clave, err)
	}

	var datos []byte
	err = tx.QueryRow(ctx,
		`SELECT datos FROM colecciones WHERE clave = $1 FOR UPDATE`, clave).Scan(&datos)
	if err != nil {
		return fmt.Errorf("lock %s: %w", clave, err)
	}

	nuevo, err := fn(datos)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO colecciones (clave, datos, actualizado_en)
		VALUES ($1, $2, now())
		ON CONFLICT (clave)
		DO UPDATE SET datos = EXCLUDED.datos, actualizado_en = now()`,
		clave, nuevo)
	if err != nil {
		return fmt.Errorf("guardar %s: %w", clave, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
