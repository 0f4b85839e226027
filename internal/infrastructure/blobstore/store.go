// Package blobstore define el almacenamiento de colecciones como blobs JSON
// bajo claves con namespace (el equivalente del localStorage del front end),
// con implementaciones en memoria y sobre archivos. La implementación sobre
// PostgreSQL vive en internal/infrastructure/postgres.
package blobstore

import "context"

// Store es el puerto de bajo nivel: un valor opaco por clave.
//
// Load devuelve (nil, nil) si la clave no existe. Mutate ejecuta fn bajo
// exclusión mutua sobre la clave y persiste el resultado solo si fn no
// devuelve error; el ciclo completo leer-modificar-escribir es atómico.
type Store interface {
	Load(ctx context.Context, clave string) ([]byte, error)
	Mutate(ctx context.Context, clave string, fn func(datos []byte) ([]byte, error)) error
}
