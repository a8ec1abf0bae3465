package repository

import (
	"context"

	"tempero/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PrecoCanalRepository defines data access for per-channel price overrides.
type PrecoCanalRepository interface {
	Criar(ctx context.Context, p *model.PrecoCanal) error
	ListarPorProduto(ctx context.Context, produtoID uuid.UUID) ([]model.PrecoCanal, error)
	// ObterPorProdutoCanal looks up the (produto_id, canal) uniqueness key.
	ObterPorProdutoCanal(ctx context.Context, produtoID uuid.UUID, canal string) (*model.PrecoCanal, error)
	AtualizarPreco(ctx context.Context, id uuid.UUID, preco decimal.Decimal) error
	ContarPorEmpresa(ctx context.Context, empresaID uuid.UUID) (int64, error)
}

type precoCanalRepo struct{ db *gorm.DB }

func NewPrecoCanalRepository(db *gorm.DB) PrecoCanalRepository { return &precoCanalRepo{db: db} }

func (r *precoCanalRepo) Criar(ctx context.Context, p *model.PrecoCanal) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *precoCanalRepo) ListarPorProduto(ctx context.Context, produtoID uuid.UUID) ([]model.PrecoCanal, error) {
	var list []model.PrecoCanal
	err := r.db.WithContext(ctx).Where("produto_id = ?", produtoID).Order("canal asc").Find(&list).Error
	return list, err
}

func (r *precoCanalRepo) ObterPorProdutoCanal(ctx context.Context, produtoID uuid.UUID, canal string) (*model.PrecoCanal, error) {
	var p model.PrecoCanal
	err := r.db.WithContext(ctx).Where("produto_id = ? AND canal = ?", produtoID, canal).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *precoCanalRepo) AtualizarPreco(ctx context.Context, id uuid.UUID, preco decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.PrecoCanal{}).Where("id = ?", id).Update("preco", preco).Error
}

func (r *precoCanalRepo) ContarPorEmpresa(ctx context.Context, empresaID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.PrecoCanal{}).
		Where("empresa_id = ?", empresaID).Count(&total).Error
	return total, err
}
