package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Insumo represents both purchased raw ingredients and internally produced
// sub-recipes. Composto=true means the insumo is produced from other insumos
// via ReceitaIntermediaria lines; its Rendimento is the batch yield.
//
// Nome is unique per empresa by convention only — duplicate detection across
// tenants compares normalized names, not ids.
type Insumo struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpresaID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	Nome          string          `gorm:"index;not null"`
	UnidadeMedida string          `gorm:"not null;default:'un'"`
	CustoUnitario decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	// EstoqueAtual is tenant-local operational state — never copied between tenants.
	EstoqueAtual  decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	EstoqueMinimo decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	Composto      bool            `gorm:"not null;default:false"`
	// Rendimento is the quantity produced by one batch of a composite insumo.
	Rendimento decimal.Decimal `gorm:"type:decimal(12,3);not null;default:1"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Empresa *Empresa `gorm:"foreignKey:EmpresaID"`
}

func (Insumo) TableName() string { return "insumos" }
