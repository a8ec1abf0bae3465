package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Produto is a sellable finished item with its own bill-of-materials
// (FichaTecnica lines) and per-channel price overrides (PrecoCanal).
type Produto struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpresaID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Nome       string          `gorm:"index;not null"`
	PrecoVenda decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Categoria  string          `gorm:"not null;default:''"`
	// RendimentoPadrao is how many portions one batch of the recipe produces.
	RendimentoPadrao decimal.Decimal `gorm:"type:decimal(12,3);not null;default:1"`
	Observacoes      *string
	Ativo            bool    `gorm:"not null;default:true"`
	ImagemURL        *string `gorm:"column:imagem_url"`
	// EstoquePronto is finished-goods stock, tenant-local operational state —
	// never copied between tenants.
	EstoquePronto decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Empresa *Empresa `gorm:"foreignKey:EmpresaID"`
}

func (Produto) TableName() string { return "produtos" }
