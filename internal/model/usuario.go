package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario is an authenticated account. Papel is the role checked by the
// authorization middleware; "admin" is required for cross-tenant operations.
type Usuario struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpresaID uuid.UUID `gorm:"type:uuid;index;not null"`
	Nome      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	SenhaHash string    `gorm:"not null"`
	Papel     string    `gorm:"not null;default:'operador'"` // admin | operador
	Ativo     bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Empresa *Empresa `gorm:"foreignKey:EmpresaID"`
}

func (Usuario) TableName() string { return "usuarios" }
