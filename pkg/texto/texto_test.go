package texto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoseph/loomtrack-api/pkg/texto"
)

func TestNormalizar(t *testing.T) {
	casos := []struct {
		in, out string
	}{
		{"Algodón", "algodon"},
		{"POLIÉSTER", "poliester"},
		{"Jurídica", "juridica"},
		{"sin acentos", "sin acentos"},
		{"", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.out, texto.Normalizar(c.in), "entrada: %q", c.in)
	}
}

func TestContiene(t *testing.T) {
	assert.True(t, texto.Contiene("Tela Algodón", "algodon"))
	assert.True(t, texto.Contiene("Tela Algodón", "ALGODÓN"))
	assert.True(t, texto.Contiene("Hilo Poliéster", "poliester"))
	assert.False(t, texto.Contiene("Tela Algodón", "drill"))
}

func TestContiene_SubVacioSiempreCoincide(t *testing.T) {
	assert.True(t, texto.Contiene("lo que sea", ""))
	assert.True(t, texto.Contiene("", ""))
}
