package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardapioListaApenasAtivosComPrecos(t *testing.T) {
	b := &bancoFalso{}
	empresa := b.novaEmpresa("Doceria da Ana")
	brig := b.novoProduto(empresa, "Brigadeiro", 4.00, 1)
	b.novoPreco(empresa, brig, "ifood", 8.50)
	inativo := b.novoProduto(empresa, "Bolo Antigo", 30.00, 10)
	for i := range b.produtos {
		if b.produtos[i].ID == inativo {
			b.produtos[i].Ativo = false
		}
	}

	svc := NewCardapioService(&empresasFalso{b}, &produtosFalso{b}, &precosFalso{b}, nil, 0)
	resp, err := svc.Obter(context.Background(), empresa)
	require.NoError(t, err)

	assert.Equal(t, "Doceria da Ana", resp.Empresa)
	require.Len(t, resp.Itens, 1)
	item := resp.Itens[0]
	assert.Equal(t, "Brigadeiro", item.Nome)
	assert.True(t, item.PrecoVenda.Equal(decimal.NewFromFloat(4.00)))
	require.Len(t, item.Precos, 1)
	assert.Equal(t, "ifood", item.Precos[0].Canal)
	assert.True(t, item.Precos[0].Preco.Equal(decimal.NewFromFloat(8.50)))
}

func TestCardapioEmpresaInexistente(t *testing.T) {
	b := &bancoFalso{}

	svc := NewCardapioService(&empresasFalso{b}, &produtosFalso{b}, &precosFalso{b}, nil, 0)
	_, err := svc.Obter(context.Background(), uuid.New())
	assert.Error(t, err)
}
