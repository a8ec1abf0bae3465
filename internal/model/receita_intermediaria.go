package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceitaIntermediaria is one bill-of-materials line of a composite insumo:
// producing InsumoComposto consumes Quantidade units of InsumoComponente.
// Lines are owned by their composite insumo and replaced wholesale whenever
// that insumo is re-migrated.
type ReceitaIntermediaria struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InsumoCompostoID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	InsumoComponenteID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantidade         decimal.Decimal `gorm:"type:decimal(12,3);not null"`

	InsumoComposto   *Insumo `gorm:"foreignKey:InsumoCompostoID"`
	InsumoComponente *Insumo `gorm:"foreignKey:InsumoComponenteID"`
}

func (ReceitaIntermediaria) TableName() string { return "receitas_intermediarias" }
