//go:build integration

package service

// Integration coverage for the migration pipeline against real Postgres via
// testcontainers. Run with: go test -tags integration ./internal/service/... -v

import (
	"context"
	"testing"

	"tempero/internal/infra"
	"tempero/internal/model"
	"tempero/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

func setupBanco(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("tempero_test"),
		tcPostgres.WithUsername("tempero"),
		tcPostgres.WithPassword("tempero"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := infra.NewDatabase(dsn)
	require.NoError(t, err)
	return db
}

func TestMigracaoContraPostgres(t *testing.T) {
	db := setupBanco(t)
	ctx := context.Background()

	empresas := repository.NewEmpresaRepository(db)
	insumos := repository.NewInsumoRepository(db)
	receitas := repository.NewReceitaRepository(db)
	produtos := repository.NewProdutoRepository(db)
	fichas := repository.NewFichaRepository(db)
	precos := repository.NewPrecoCanalRepository(db)

	origem := &model.Empresa{Nome: "Matriz", Ativo: true}
	destino := &model.Empresa{Nome: "Filial", Ativo: true}
	require.NoError(t, empresas.Criar(ctx, origem))
	require.NoError(t, empresas.Criar(ctx, destino))

	leite := &model.Insumo{
		EmpresaID:     origem.ID,
		Nome:          "Leite Condensado",
		UnidadeMedida: "un",
		CustoUnitario: decimal.NewFromFloat(6.00),
		EstoqueAtual:  decimal.NewFromInt(10),
	}
	require.NoError(t, insumos.Criar(ctx, leite))

	massa := &model.Insumo{
		EmpresaID:     origem.ID,
		Nome:          "Massa de Brigadeiro",
		UnidadeMedida: "un",
		Composto:      true,
		Rendimento:    decimal.NewFromInt(20),
	}
	require.NoError(t, insumos.Criar(ctx, massa))
	require.NoError(t, receitas.Criar(ctx, &model.ReceitaIntermediaria{
		InsumoCompostoID:   massa.ID,
		InsumoComponenteID: leite.ID,
		Quantidade:         decimal.NewFromInt(2),
	}))

	brig := &model.Produto{
		EmpresaID:        origem.ID,
		Nome:             "Brigadeiro",
		PrecoVenda:       decimal.NewFromFloat(4.00),
		RendimentoPadrao: decimal.NewFromInt(1),
		Ativo:            true,
	}
	require.NoError(t, produtos.Criar(ctx, brig))
	require.NoError(t, fichas.Criar(ctx, &model.FichaTecnica{
		ProdutoID:  brig.ID,
		InsumoID:   massa.ID,
		Quantidade: decimal.NewFromFloat(0.05),
	}))
	require.NoError(t, precos.Criar(ctx, &model.PrecoCanal{
		EmpresaID: origem.ID,
		ProdutoID: brig.ID,
		Canal:     "ifood",
		Preco:     decimal.NewFromFloat(8.50),
	}))

	svc := NewMigracaoService(empresas, insumos, receitas, produtos, fichas, precos, nil, 0)

	preview, err := svc.Preview(ctx, origem.ID, destino.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), preview.Insumos)
	assert.Equal(t, int64(1), preview.ReceitasIntermediarias)
	assert.Equal(t, int64(1), preview.Produtos)
	assert.Equal(t, int64(1), preview.FichasTecnicas)
	assert.Equal(t, int64(1), preview.PrecosCanais)

	primeira, err := svc.Migrar(ctx, origem.ID, destino.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, primeira.Insumos.Copied)
	assert.Equal(t, 1, primeira.ReceitasIntermediarias.Copied)
	assert.Equal(t, 1, primeira.Produtos.Copied)
	assert.Equal(t, 1, primeira.FichasTecnicas.Copied)
	assert.Equal(t, 1, primeira.PrecosCanais.Copied)

	// Rodar de novo precisa virar update puro, sem acumular linhas.
	segunda, err := svc.Migrar(ctx, origem.ID, destino.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, segunda.Insumos.Copied)
	assert.Equal(t, 1, segunda.Insumos.Updated)
	assert.Equal(t, 0, segunda.Produtos.Copied)
	assert.Equal(t, 1, segunda.Produtos.Updated)
	assert.Equal(t, 1, segunda.PrecosCanais.Updated)

	copiados, err := insumos.ListarPorEmpresa(ctx, destino.ID, nil)
	require.NoError(t, err)
	require.Len(t, copiados, 2)
	for _, i := range copiados {
		assert.True(t, i.EstoqueAtual.IsZero(), "estoque de %q deveria ser zero", i.Nome)
	}

	destinoProdutos, err := produtos.ListarPorEmpresa(ctx, destino.ID)
	require.NoError(t, err)
	require.Len(t, destinoProdutos, 1)

	linhas, err := fichas.ListarPorProduto(ctx, destinoProdutos[0].ID)
	require.NoError(t, err)
	assert.Len(t, linhas, 1, "re-migração não pode duplicar linhas de ficha")

	precoDestino, err := precos.ObterPorProdutoCanal(ctx, destinoProdutos[0].ID, "ifood")
	require.NoError(t, err)
	assert.True(t, precoDestino.Preco.Equal(decimal.NewFromFloat(8.50)))
}
