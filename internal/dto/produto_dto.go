package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Nome             string          `json:"nome"              validate:"required,min=1,max=150"`
	PrecoVenda       decimal.Decimal `json:"preco_venda"       validate:"min=0"`
	Categoria        string          `json:"categoria"         validate:"max=100"`
	RendimentoPadrao decimal.Decimal `json:"rendimento_padrao" validate:"min=0"`
	Observacoes      *string         `json:"observacoes"`
	ImagemURL        *string         `json:"imagem_url"        validate:"omitempty,url"`
}

type AtualizarProdutoRequest struct {
	Nome             *string          `json:"nome"              validate:"omitempty,min=1,max=150"`
	PrecoVenda       *decimal.Decimal `json:"preco_venda"`
	Categoria        *string          `json:"categoria"         validate:"omitempty,max=100"`
	RendimentoPadrao *decimal.Decimal `json:"rendimento_padrao"`
	Observacoes      *string          `json:"observacoes"`
	Ativo            *bool            `json:"ativo"`
	ImagemURL        *string          `json:"imagem_url"        validate:"omitempty,url"`
}

// SubstituirFichaRequest replaces a produto's whole bill-of-materials.
type SubstituirFichaRequest struct {
	Linhas []FichaLinhaRequest `json:"linhas" validate:"required,dive"`
}

type FichaLinhaRequest struct {
	InsumoID   string          `json:"insumo_id"  validate:"required,uuid"`
	Quantidade decimal.Decimal `json:"quantidade" validate:"required"`
}

// SubstituirPrecosRequest upserts channel prices for a produto.
type SubstituirPrecosRequest struct {
	Precos []PrecoCanalRequest `json:"precos" validate:"required,dive"`
}

type PrecoCanalRequest struct {
	Canal string          `json:"canal" validate:"required,min=1,max=50"`
	Preco decimal.Decimal `json:"preco" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProdutoResponse struct {
	ID               uuid.UUID       `json:"id"`
	Nome             string          `json:"nome"`
	PrecoVenda       decimal.Decimal `json:"preco_venda"`
	Categoria        string          `json:"categoria"`
	RendimentoPadrao decimal.Decimal `json:"rendimento_padrao"`
	Observacoes      *string         `json:"observacoes,omitempty"`
	Ativo            bool            `json:"ativo"`
	ImagemURL        *string         `json:"imagem_url,omitempty"`
	EstoquePronto    decimal.Decimal `json:"estoque_pronto"`
}

type FichaLinhaResponse struct {
	InsumoID   uuid.UUID       `json:"insumo_id"`
	Nome       string          `json:"nome"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

type PrecoCanalResponse struct {
	Canal string          `json:"canal"`
	Preco decimal.Decimal `json:"preco"`
}

// CustoProdutoResponse is the recipe-costing read model: the cost of producing
// one batch of the produto, the cost per portion, and the margin against the
// base sale price.
type CustoProdutoResponse struct {
	ProdutoID   uuid.UUID       `json:"produto_id"`
	Nome        string          `json:"nome"`
	CustoBatch  decimal.Decimal `json:"custo_batch"`
	CustoPorcao decimal.Decimal `json:"custo_porcao"`
	PrecoVenda  decimal.Decimal `json:"preco_venda"`
	MargemPct   decimal.Decimal `json:"margem_pct"`
}
