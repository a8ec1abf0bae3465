package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizarNome(t *testing.T) {
	cases := []struct {
		entrada string
		quer    string
	}{
		{"Açúcar Refinado", "acucar refinado"},
		{"AÇÚCAR REFINADO", "acucar refinado"},
		{"Café", "cafe"},
		{"  Pão  de  Queijo!!", "pao de queijo"},
		{"Leite Condensado 395g", "leite condensado 395g"},
		{"", ""},
		{"!!! ---", ""},
		{"ÀÁÂÃ èéê Íî õÕ úÜ ç", "aaaa eee ii oo uu c"},
	}
	for _, c := range cases {
		assert.Equal(t, c.quer, NormalizarNome(c.entrada), "entrada %q", c.entrada)
	}
}

func TestNormalizarNomeCaseInsensitive(t *testing.T) {
	nomes := []string{"Brigadeiro Gourmet", "pão francês", "Queijo Minas 1/2kg"}
	for _, n := range nomes {
		assert.Equal(t, NormalizarNome(n), NormalizarNome(strings.ToUpper(n)))
	}
}

func TestIndiceDeNomesPrimeiraOcorrenciaVence(t *testing.T) {
	primeiro := uuid.New()
	segundo := uuid.New()
	idx := indiceDeNomes([]nomeado{
		{id: primeiro, nome: "Açúcar"},
		{id: segundo, nome: "ACUCAR"},
		{id: uuid.New(), nome: "Farinha"},
	})

	assert.Len(t, idx, 2)
	assert.Equal(t, primeiro, idx["acucar"])
}
