// Package csvexport serializa tablas al formato CSV que espera el front end:
// fila de cabecera con las claves sin comillas, y cada campo de datos entre
// comillas dobles con las comillas internas escapadas duplicándolas. Las
// filas se unen con "\n" sin newline final.
//
// encoding/csv no sirve aquí: no permite forzar comillas en todos los campos
// y añade newline final, y el formato es contrato observable del exportador.
package csvexport

import "strings"

// Documento construye el CSV completo (cabecera + filas).
func Documento(columnas []string, filas [][]string) []byte {
	lineas := make([]string, 0, len(filas)+1)
	lineas = append(lineas, strings.Join(columnas, ","))
	for _, fila := range filas {
		campos := make([]string, len(fila))
		for i, v := range fila {
			campos[i] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
		}
		lineas = append(lineas, strings.Join(campos, ","))
	}
	return []byte(strings.Join(lineas, "\n"))
}
