package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FichaTecnica is one bill-of-materials line of a produto: one batch consumes
// Quantidade units of Insumo. Lines are owned by their produto and replaced
// wholesale (delete then insert) whenever that produto is re-migrated.
type FichaTecnica struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProdutoID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	InsumoID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantidade decimal.Decimal `gorm:"type:decimal(12,3);not null"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
	Insumo  *Insumo  `gorm:"foreignKey:InsumoID"`
}

func (FichaTecnica) TableName() string { return "fichas_tecnicas" }
