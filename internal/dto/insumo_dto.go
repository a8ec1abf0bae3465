package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarInsumoRequest struct {
	Nome          string          `json:"nome"           validate:"required,min=1,max=150"`
	UnidadeMedida string          `json:"unidade_medida" validate:"required,min=1,max=20"`
	CustoUnitario decimal.Decimal `json:"custo_unitario" validate:"min=0"`
	EstoqueAtual  decimal.Decimal `json:"estoque_atual"  validate:"min=0"`
	EstoqueMinimo decimal.Decimal `json:"estoque_minimo" validate:"min=0"`
	Composto      bool            `json:"composto"`
	Rendimento    decimal.Decimal `json:"rendimento"     validate:"min=0"`
	// Componentes only applies when Composto=true; replaces the whole recipe.
	Componentes []ComponenteRequest `json:"componentes" validate:"omitempty,dive"`
}

type AtualizarInsumoRequest struct {
	Nome          *string          `json:"nome"           validate:"omitempty,min=1,max=150"`
	UnidadeMedida *string          `json:"unidade_medida" validate:"omitempty,min=1,max=20"`
	CustoUnitario *decimal.Decimal `json:"custo_unitario"`
	EstoqueAtual  *decimal.Decimal `json:"estoque_atual"`
	EstoqueMinimo *decimal.Decimal `json:"estoque_minimo"`
	Rendimento    *decimal.Decimal `json:"rendimento"`
	Componentes   []ComponenteRequest `json:"componentes" validate:"omitempty,dive"`
}

type ComponenteRequest struct {
	InsumoID   string          `json:"insumo_id"  validate:"required,uuid"`
	Quantidade decimal.Decimal `json:"quantidade" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InsumoResponse struct {
	ID            uuid.UUID           `json:"id"`
	Nome          string              `json:"nome"`
	UnidadeMedida string              `json:"unidade_medida"`
	CustoUnitario decimal.Decimal     `json:"custo_unitario"`
	EstoqueAtual  decimal.Decimal     `json:"estoque_atual"`
	EstoqueMinimo decimal.Decimal     `json:"estoque_minimo"`
	Composto      bool                `json:"composto"`
	Rendimento    decimal.Decimal     `json:"rendimento"`
	Componentes   []ComponenteResponse `json:"componentes,omitempty"`
}

type ComponenteResponse struct {
	InsumoID   uuid.UUID       `json:"insumo_id"`
	Nome       string          `json:"nome"`
	Quantidade decimal.Decimal `json:"quantidade"`
}
