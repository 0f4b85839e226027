// Package pdf genera la versión imprimible del listado de materiales
// (el "imprimir" del front end, renderizado en el servidor con Maroto v2).
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────────────────┐
//	│  LoomTrack - Materia Prima            fecha de emisión   │
//	│  ──────────────────────────────────────────────────────  │
//	│  TABLA: ID | Nombre | Tipo | Stock | Mínimo | Unidad     │
//	│  (filas en stock bajo resaltadas)                        │
//	│  ──────────────────────────────────────────────────────  │
//	│  Total de materiales listados                            │
//	└──────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoseph/loomtrack-api/internal/application/materiales"
	"github.com/jhoseph/loomtrack-api/internal/domain/entity"
)

var (
	colorPrimario = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlerta   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

var _ materiales.ListadoPDFGenerator = (*MarotoListadoGenerator)(nil)

// MarotoListadoGenerator implementa materiales.ListadoPDFGenerator usando Maroto v2.
type MarotoListadoGenerator struct{}

// NewMarotoListadoGenerator construye el generador.
func NewMarotoListadoGenerator() *MarotoListadoGenerator { return &MarotoListadoGenerator{} }

// GenerarListadoPDF genera el PDF del listado y devuelve sus bytes.
func (g *MarotoListadoGenerator) GenerarListadoPDF(_ context.Context, items []entity.Material) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("LoomTrack - Materia Prima", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(filaTitulo())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))
	m.AddRows(filaCabecera())
	for _, mat := range items {
		m.AddRows(filaMaterial(mat))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))
	m.AddRows(filaResumen(items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF del listado: %w", err)
	}
	return doc.GetBytes(), nil
}

func filaTitulo() core.Row {
	return row.New(10).Add(
		col.New(8).Add(
			text.New("LoomTrack - Materia Prima", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimario,
			}),
		),
		col.New(4).Add(
			text.New("Emitido: "+time.Now().Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Color: colorGris,
			}),
		),
	)
}

func filaCabecera() core.Row {
	estilo := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimario}
	return row.New(7).Add(
		col.New(1).Add(text.New("ID", estilo)),
		col.New(4).Add(text.New("Nombre", estilo)),
		col.New(2).Add(text.New("Tipo", estilo)),
		col.New(2).Add(text.New("Stock", estilo)),
		col.New(2).Add(text.New("Mínimo", estilo)),
		col.New(1).Add(text.New("Unidad", estilo)),
	)
}

func filaMaterial(mat entity.Material) core.Row {
	estilo := props.Text{Size: 8}
	if mat.StockBajo() {
		estilo.Color = colorAlerta
		estilo.Style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(1).Add(text.New(strconv.FormatInt(mat.ID, 10), estilo)),
		col.New(4).Add(text.New(mat.Nombre, estilo)),
		col.New(2).Add(text.New(mat.Tipo, estilo)),
		col.New(2).Add(text.New(mat.StockActual.String(), estilo)),
		col.New(2).Add(text.New(mat.StockMinimo.String(), estilo)),
		col.New(1).Add(text.New(mat.Unidad, estilo)),
	)
}

func filaResumen(items []entity.Material) core.Row {
	bajos := 0
	for _, mat := range items {
		if mat.StockBajo() {
			bajos++
		}
	}
	texto := fmt.Sprintf("%d materiales listados, %d en stock bajo", len(items), bajos)
	return row.New(8).Add(
		col.New(12).Add(text.New(texto, props.Text{Size: 8, Color: colorGris})),
	)
}
