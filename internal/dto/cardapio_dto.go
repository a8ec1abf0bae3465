package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CardapioResponse is the public digital-menu read model: active produtos of
// one empresa grouped with their per-channel prices. Served without
// authentication and cached in Redis.
type CardapioResponse struct {
	EmpresaID uuid.UUID      `json:"empresa_id"`
	Empresa   string         `json:"empresa"`
	Itens     []CardapioItem `json:"itens"`
}

type CardapioItem struct {
	ProdutoID  uuid.UUID            `json:"produto_id"`
	Nome       string               `json:"nome"`
	Categoria  string               `json:"categoria"`
	PrecoVenda decimal.Decimal      `json:"preco_venda"`
	ImagemURL  *string              `json:"imagem_url,omitempty"`
	Precos     []PrecoCanalResponse `json:"precos,omitempty"`
}
