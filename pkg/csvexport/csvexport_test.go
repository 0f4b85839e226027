package csvexport_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoseph/loomtrack-api/pkg/csvexport"
)

func TestDocumento_CabeceraSinComillasDatosEntrecomillados(t *testing.T) {
	got := csvexport.Documento(
		[]string{"id", "nombre"},
		[][]string{{"1", "Tela"}, {"2", "Hilo"}},
	)
	esperado := "id,nombre\n" + `"1","Tela"` + "\n" + `"2","Hilo"`
	assert.Equal(t, esperado, string(got))
}

func TestDocumento_EscapaComillasDuplicandolas(t *testing.T) {
	got := csvexport.Documento([]string{"nombre"}, [][]string{{`Tela "Premium"`}})
	assert.Equal(t, "nombre\n"+`"Tela ""Premium"""`, string(got))
}

func TestDocumento_ComasYSaltosQuedanDentroDeComillas(t *testing.T) {
	got := csvexport.Documento([]string{"notas"}, [][]string{{"uno, dos"}})
	assert.Equal(t, "notas\n"+`"uno, dos"`, string(got))
}

func TestDocumento_SinFilasSoloCabecera(t *testing.T) {
	got := csvexport.Documento([]string{"a", "b"}, nil)
	assert.Equal(t, "a,b", string(got))
	assert.False(t, strings.HasSuffix(string(got), "\n"))
}
