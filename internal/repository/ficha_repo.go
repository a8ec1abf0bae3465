package repository

import (
	"context"

	"tempero/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FichaRepository defines data access for product recipe lines.
type FichaRepository interface {
	Criar(ctx context.Context, l *model.FichaTecnica) error
	ListarPorProduto(ctx context.Context, produtoID uuid.UUID) ([]model.FichaTecnica, error)
	// ExcluirPorProduto removes every line owned by the produto — the
	// wholesale-replace step of re-migration and recipe edits.
	ExcluirPorProduto(ctx context.Context, produtoID uuid.UUID) error
	// ContarPorEmpresa counts lines whose produto belongs to the empresa.
	ContarPorEmpresa(ctx context.Context, empresaID uuid.UUID) (int64, error)
}

type fichaRepo struct{ db *gorm.DB }

func NewFichaRepository(db *gorm.DB) FichaRepository { return &fichaRepo{db: db} }

func (r *fichaRepo) Criar(ctx context.Context, l *model.FichaTecnica) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *fichaRepo) ListarPorProduto(ctx context.Context, produtoID uuid.UUID) ([]model.FichaTecnica, error) {
	var list []model.FichaTecnica
	err := r.db.WithContext(ctx).Where("produto_id = ?", produtoID).Find(&list).Error
	return list, err
}

func (r *fichaRepo) ExcluirPorProduto(ctx context.Context, produtoID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FichaTecnica{}, "produto_id = ?", produtoID).Error
}

func (r *fichaRepo) ContarPorEmpresa(ctx context.Context, empresaID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.FichaTecnica{}).
		Joins("JOIN produtos ON produtos.id = fichas_tecnicas.produto_id").
		Where("produtos.empresa_id = ?", empresaID).
		Count(&total).Error
	return total, err
}
