package repository

import (
	"context"

	"tempero/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmpresaRepository defines data access for tenants.
type EmpresaRepository interface {
	Criar(ctx context.Context, e *model.Empresa) error
	ObterPorID(ctx context.Context, id uuid.UUID) (*model.Empresa, error)
	Listar(ctx context.Context) ([]model.Empresa, error)
}

type empresaRepo struct{ db *gorm.DB }

func NewEmpresaRepository(db *gorm.DB) EmpresaRepository { return &empresaRepo{db: db} }

func (r *empresaRepo) Criar(ctx context.Context, e *model.Empresa) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *empresaRepo) ObterPorID(ctx context.Context, id uuid.UUID) (*model.Empresa, error) {
	var e model.Empresa
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empresaRepo) Listar(ctx context.Context) ([]model.Empresa, error) {
	var list []model.Empresa
	err := r.db.WithContext(ctx).Order("nome asc").Find(&list).Error
	return list, err
}
