package materiales

import (
	"context"
	"strconv"
	"time"

	"github.com/jhoseph/loomtrack-api/internal/domain/entity"
	"github.com/jhoseph/loomtrack-api/pkg/csvexport"
)

// Content types de los documentos exportados.
const (
	ContentTypeCSV   = "text/csv; charset=utf-8"
	ContentTypeTexto = "text/plain; charset=utf-8"
	ContentTypePDF   = "application/pdf"
)

// PlaceholderVacio es el cuerpo devuelto cuando el filtro no produce filas:
// el export nunca es un stream vacío ni un error.
const PlaceholderVacio = "No hay datos"

// columnasCSV es el orden fijo de columnas del export (contrato observable).
var columnasCSV = []string{
	"id", "nombre", "tipo", "unidad", "stock_actual", "stock_minimo",
	"peso", "color", "precio_unitario", "proveedor_id", "fecha_ingreso", "descripcion",
}

// ListadoPDFGenerator genera la versión imprimible del listado de materiales.
type ListadoPDFGenerator interface {
	GenerarListadoPDF(ctx context.Context, items []entity.Material) ([]byte, error)
}

// ExportarCSV aplica Listar(filtro) y serializa el resultado. Devuelve el
// cuerpo y su content type ("No hay datos" como text/plain si no hay filas).
func (uc *UseCase) ExportarCSV(ctx context.Context, f Filtro) ([]byte, string, error) {
	items, err := uc.Listar(ctx, f)
	if err != nil {
		return nil, "", err
	}
	if len(items) == 0 {
		return []byte(PlaceholderVacio), ContentTypeTexto, nil
	}
	filas := make([][]string, 0, len(items))
	for _, m := range items {
		filas = append(filas, filaCSV(m))
	}
	return csvexport.Documento(columnasCSV, filas), ContentTypeCSV, nil
}

func filaCSV(m entity.Material) []string {
	peso := ""
	if m.Peso != nil {
		peso = m.Peso.String()
	}
	precio := ""
	if m.PrecioUnitario != nil {
		precio = m.PrecioUnitario.String()
	}
	proveedor := ""
	if m.ProveedorID != nil {
		proveedor = strconv.FormatInt(*m.ProveedorID, 10)
	}
	return []string{
		strconv.FormatInt(m.ID, 10),
		m.Nombre,
		m.Tipo,
		m.Unidad,
		m.StockActual.String(),
		m.StockMinimo.String(),
		peso,
		m.Color,
		precio,
		proveedor,
		m.FechaIngreso.Format(time.RFC3339),
		m.Descripcion,
	}
}

// ExportarPDF genera el listado imprimible con el mismo filtro que Listar.
func (uc *UseCase) ExportarPDF(ctx context.Context, f Filtro, gen ListadoPDFGenerator) ([]byte, error) {
	items, err := uc.Listar(ctx, f)
	if err != nil {
		return nil, err
	}
	return gen.GenerarListadoPDF(ctx, items)
}
