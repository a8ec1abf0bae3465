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

func novoServicoProduto(b *bancoFalso) ProdutoService {
	return NewProdutoService(
		&produtosFalso{b}, &insumosFalso{b}, &receitasFalso{b},
		&fichasFalso{b}, &precosFalso{b},
	)
}

func TestCustoProdutoSimples(t *testing.T) {
	b := &bancoFalso{}
	empresa := b.novaEmpresa("Matriz")
	farinha := b.novoInsumo(empresa, "Farinha", 5.00, 10)
	acucar := b.novoInsumo(empresa, "Açúcar", 8.00, 10)
	// Um batch de 10 porções: 0.5kg de farinha + 0.25kg de açúcar.
	bolo := b.novoProduto(empresa, "Bolo Simples", 6.75, 10)
	b.novaFicha(bolo, farinha, 0.5)
	b.novaFicha(bolo, acucar, 0.25)

	svc := novoServicoProduto(b)
	custo, err := svc.Custo(context.Background(), empresa, bolo)
	require.NoError(t, err)

	// batch = 0.5×5 + 0.25×8 = 4.50 → porção = 0.45
	assert.True(t, custo.CustoBatch.Equal(decimal.NewFromFloat(4.50)), "batch = %s", custo.CustoBatch)
	assert.True(t, custo.CustoPorcao.Equal(decimal.NewFromFloat(0.45)), "porção = %s", custo.CustoPorcao)
	// margem = (6.75 − 0.45) / 0.45 × 100 = 1400%
	assert.True(t, custo.MargemPct.Equal(decimal.NewFromInt(1400)), "margem = %s", custo.MargemPct)
}

func TestCustoProdutoComInsumoComposto(t *testing.T) {
	b := &bancoFalso{}
	empresa := b.novaEmpresa("Matriz")
	leite := b.novoInsumo(empresa, "Leite Condensado", 6.00, 10)
	cacau := b.novoInsumo(empresa, "Cacau", 30.00, 2)
	// Massa: 2 latas de leite + 0.2kg de cacau rendem 20 unidades.
	// Custo derivado = (2×6 + 0.2×30) / 20 = 0.90 por unidade; o custo
	// armazenado fica obsoleto de propósito.
	massa := b.novoComposto(empresa, "Massa de Brigadeiro", 0.10, 20)
	b.novaReceita(massa, leite, 2)
	b.novaReceita(massa, cacau, 0.2)
	brig := b.novoProduto(empresa, "Brigadeiro", 4.00, 1)
	b.novaFicha(brig, massa, 1)

	svc := novoServicoProduto(b)
	custo, err := svc.Custo(context.Background(), empresa, brig)
	require.NoError(t, err)

	assert.True(t, custo.CustoBatch.Equal(decimal.NewFromFloat(0.90)), "batch = %s", custo.CustoBatch)
}

func TestCustoProdutoDeOutraEmpresa(t *testing.T) {
	b := &bancoFalso{}
	dona := b.novaEmpresa("Matriz")
	intrusa := b.novaEmpresa("Outra")
	bolo := b.novoProduto(dona, "Bolo", 10.00, 1)

	svc := novoServicoProduto(b)
	_, err := svc.Custo(context.Background(), intrusa, bolo)
	assert.ErrorIs(t, err, ErrProdutoNaoEncontrado)
}

func TestSubstituirPrecosUpsert(t *testing.T) {
	b := &bancoFalso{}
	empresa := b.novaEmpresa("Matriz")
	brig := b.novoProduto(empresa, "Brigadeiro", 4.00, 1)
	b.novoPreco(empresa, brig, "ifood", 7.00)

	svc := novoServicoProduto(b)
	precos, err := svc.SubstituirPrecos(context.Background(), empresa, brig, dto.SubstituirPrecosRequest{
		Precos: []dto.PrecoCanalRequest{
			{Canal: "ifood", Preco: decimal.NewFromFloat(8.50)},
			{Canal: "balcao", Preco: decimal.NewFromFloat(4.00)},
		},
	})
	require.NoError(t, err)
	assert.Len(t, precos, 2)

	// ifood existia e foi atualizado no lugar; balcão foi criado.
	porCanal := map[string]decimal.Decimal{}
	for _, p := range b.precos {
		if p.ProdutoID == brig {
			porCanal[p.Canal] = p.Preco
		}
	}
	require.Len(t, porCanal, 2)
	assert.True(t, porCanal["ifood"].Equal(decimal.NewFromFloat(8.50)))
	assert.True(t, porCanal["balcao"].Equal(decimal.NewFromFloat(4.00)))
}

func TestSubstituirFichaRejeitaInsumoDeOutraEmpresa(t *testing.T) {
	b := &bancoFalso{}
	dona := b.novaEmpresa("Matriz")
	outra := b.novaEmpresa("Outra")
	alheio := b.novoInsumo(outra, "Farinha", 5.00, 10)
	bolo := b.novoProduto(dona, "Bolo", 10.00, 1)

	svc := novoServicoProduto(b)
	_, err := svc.SubstituirFicha(context.Background(), dona, bolo, dto.SubstituirFichaRequest{
		Linhas: []dto.FichaLinhaRequest{
			{InsumoID: alheio.String(), Quantidade: decimal.NewFromInt(1)},
		},
	})
	require.Error(t, err)

	var linhas int
	for _, l := range b.fichas {
		if l.ProdutoID == bolo {
			linhas++
		}
	}
	assert.Zero(t, linhas, "nenhuma linha pode apontar para insumo de outro tenant")
}

func TestDesativarProduto(t *testing.T) {
	b := &bancoFalso{}
	empresa := b.novaEmpresa("Matriz")
	bolo := b.novoProduto(empresa, "Bolo", 10.00, 1)

	svc := novoServicoProduto(b)
	require.NoError(t, svc.Desativar(context.Background(), empresa, bolo))

	p, err := (&produtosFalso{b}).ObterPorID(context.Background(), bolo)
	require.NoError(t, err)
	assert.False(t, p.Ativo)

	ativos, err := (&produtosFalso{b}).ListarAtivosPorEmpresa(context.Background(), empresa)
	require.NoError(t, err)
	assert.Empty(t, ativos)
}

func TestDesativarProdutoInexistente(t *testing.T) {
	b := &bancoFalso{}
	empresa := b.novaEmpresa("Matriz")

	svc := novoServicoProduto(b)
	err := svc.Desativar(context.Background(), empresa, uuid.New())
	assert.ErrorIs(t, err, ErrProdutoNaoEncontrado)
}
