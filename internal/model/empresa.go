package model

import (
	"time"

	"github.com/google/uuid"
)

// Empresa is a tenant: an isolated customer account. Every business row in the
// system carries an empresa_id and is only visible inside that tenant, except
// to the migration engine, which runs with service credentials.
type Empresa struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"not null"`
	Ativo     bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default singular → plural logic for Portuguese names.
func (Empresa) TableName() string { return "empresas" }
