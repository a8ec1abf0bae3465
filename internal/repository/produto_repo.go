package repository

import (
	"context"

	"tempero/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProdutoRepository defines data access for products.
type ProdutoRepository interface {
	Criar(ctx context.Context, p *model.Produto) error
	ObterPorID(ctx context.Context, id uuid.UUID) (*model.Produto, error)
	ListarPorEmpresa(ctx context.Context, empresaID uuid.UUID) ([]model.Produto, error)
	ListarAtivosPorEmpresa(ctx context.Context, empresaID uuid.UUID) ([]model.Produto, error)
	ContarPorEmpresa(ctx context.Context, empresaID uuid.UUID) (int64, error)
	Atualizar(ctx context.Context, p *model.Produto) error
	// AtualizarCampos writes only the given columns, leaving the rest (notably
	// estoque_pronto) untouched.
	AtualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error
	Desativar(ctx context.Context, id uuid.UUID) error
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Criar(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) ObterPorID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *produtoRepo) ListarPorEmpresa(ctx context.Context, empresaID uuid.UUID) ([]model.Produto, error) {
	var list []model.Produto
	err := r.db.WithContext(ctx).Where("empresa_id = ?", empresaID).Order("nome asc").Find(&list).Error
	return list, err
}

func (r *produtoRepo) ListarAtivosPorEmpresa(ctx context.Context, empresaID uuid.UUID) ([]model.Produto, error) {
	var list []model.Produto
	err := r.db.WithContext(ctx).
		Where("empresa_id = ? AND ativo = true", empresaID).
		Order("categoria asc, nome asc").Find(&list).Error
	return list, err
}

func (r *produtoRepo) ContarPorEmpresa(ctx context.Context, empresaID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Produto{}).
		Where("empresa_id = ?", empresaID).Count(&total).Error
	return total, err
}

func (r *produtoRepo) Atualizar(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *produtoRepo) AtualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Produto{}).Where("id = ?", id).Updates(campos).Error
}

func (r *produtoRepo) Desativar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Produto{}).Where("id = ?", id).Update("ativo", false).Error
}
