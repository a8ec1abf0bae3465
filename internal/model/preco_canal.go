package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PrecoCanal is a produto's price override for one sales channel
// (e.g. "balcao", "ifood", "delivery"). Uniqueness key: (produto_id, canal) —
// enforced by a partial index in the schema patches.
type PrecoCanal struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpresaID uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProdutoID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Canal     string          `gorm:"not null"`
	Preco     decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (PrecoCanal) TableName() string { return "precos_canais" }
