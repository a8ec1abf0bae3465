package repository

import (
	"context"

	"tempero/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReceitaRepository defines data access for composite-ingredient recipe lines.
type ReceitaRepository interface {
	Criar(ctx context.Context, l *model.ReceitaIntermediaria) error
	ListarPorComposto(ctx context.Context, insumoCompostoID uuid.UUID) ([]model.ReceitaIntermediaria, error)
	// ExcluirPorComposto removes every line owned by the composite insumo —
	// the wholesale-replace step of re-migration and recipe edits.
	ExcluirPorComposto(ctx context.Context, insumoCompostoID uuid.UUID) error
}

type receitaRepo struct{ db *gorm.DB }

func NewReceitaRepository(db *gorm.DB) ReceitaRepository { return &receitaRepo{db: db} }

func (r *receitaRepo) Criar(ctx context.Context, l *model.ReceitaIntermediaria) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *receitaRepo) ListarPorComposto(ctx context.Context, insumoCompostoID uuid.UUID) ([]model.ReceitaIntermediaria, error) {
	var list []model.ReceitaIntermediaria
	err := r.db.WithContext(ctx).Where("insumo_composto_id = ?", insumoCompostoID).Find(&list).Error
	return list, err
}

func (r *receitaRepo) ExcluirPorComposto(ctx context.Context, insumoCompostoID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&model.ReceitaIntermediaria{}, "insumo_composto_id = ?", insumoCompostoID).Error
}
