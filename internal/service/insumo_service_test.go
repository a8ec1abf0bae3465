package service

import (
	"context"
	"testing"

	"tempero/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoServicoInsumo(b *bancoFalso) InsumoService {
	return NewInsumoService(&insumosFalso{b}, &receitasFalso{b})
}

func TestCriarInsumoCompostoComComponentes(t *testing.T) {
	b := &bancoFalso{}
	empresa := b.novaEmpresa("Matriz")
	leite := b.novoInsumo(empresa, "Leite Condensado", 6.00, 10)
	cacau := b.novoInsumo(empresa, "Cacau", 30.00, 2)

	svc := novoServicoInsumo(b)
	resp, err := svc.Criar(context.Background(), empresa, dto.CriarInsumoRequest{
		Nome:          "Massa de Brigadeiro",
		UnidadeMedida: "un",
		Composto:      true,
		Rendimento:    decimal.NewFromInt(20),
		Componentes: []dto.ComponenteRequest{
			{InsumoID: leite.String(), Quantidade: decimal.NewFromInt(2)},
			{InsumoID: cacau.String(), Quantidade: decimal.NewFromFloat(0.2)},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Composto)
	require.Len(t, resp.Componentes, 2)
	assert.Equal(t, "Leite Condensado", resp.Componentes[0].Nome)
}

func TestCriarInsumoComponenteDeOutraEmpresa(t *testing.T) {
	b := &bancoFalso{}
	empresa := b.novaEmpresa("Matriz")
	outra := b.novaEmpresa("Outra")
	alheio := b.novoInsumo(outra, "Leite", 4.00, 10)

	svc := novoServicoInsumo(b)
	_, err := svc.Criar(context.Background(), empresa, dto.CriarInsumoRequest{
		Nome:          "Massa",
		UnidadeMedida: "un",
		Composto:      true,
		Rendimento:    decimal.NewFromInt(5),
		Componentes: []dto.ComponenteRequest{
			{InsumoID: alheio.String(), Quantidade: decimal.NewFromInt(1)},
		},
	})
	assert.EqualError(t, err, "componente não encontrado na empresa")
}

func TestAtualizarInsumoParcial(t *testing.T) {
	b := &bancoFalso{}
	empresa := b.novaEmpresa("Matriz")
	id := b.novoInsumo(empresa, "Farinha", 5.00, 25)

	novoCusto := decimal.NewFromFloat(5.80)
	svc := novoServicoInsumo(b)
	resp, err := svc.Atualizar(context.Background(), empresa, id, dto.AtualizarInsumoRequest{
		CustoUnitario: &novoCusto,
	})
	require.NoError(t, err)

	assert.True(t, resp.CustoUnitario.Equal(novoCusto))
	assert.Equal(t, "Farinha", resp.Nome, "campos omitidos ficam como estavam")
	assert.True(t, resp.EstoqueAtual.Equal(decimal.NewFromInt(25)))
}

func TestObterInsumoDeOutraEmpresa(t *testing.T) {
	b := &bancoFalso{}
	dona := b.novaEmpresa("Matriz")
	intrusa := b.novaEmpresa("Outra")
	id := b.novoInsumo(dona, "Farinha", 5.00, 25)

	svc := novoServicoInsumo(b)
	_, err := svc.ObterPorID(context.Background(), intrusa, id)
	assert.ErrorIs(t, err, ErrInsumoNaoEncontrado)
}

func TestExcluirInsumo(t *testing.T) {
	b := &bancoFalso{}
	empresa := b.novaEmpresa("Matriz")
	id := b.novoInsumo(empresa, "Farinha", 5.00, 25)

	svc := novoServicoInsumo(b)
	require.NoError(t, svc.Excluir(context.Background(), empresa, id))
	assert.Empty(t, b.insumosDaEmpresa(empresa))

	err := svc.Excluir(context.Background(), empresa, uuid.New())
	assert.ErrorIs(t, err, ErrInsumoNaoEncontrado)
}
