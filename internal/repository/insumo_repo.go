package repository

import (
	"context"

	"tempero/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InsumoRepository defines data access for ingredients. ListarPorEmpresa and
// ContarPorEmpresa take an explicit empresa id because the migration engine
// reads across tenants; tenant-scoped callers pass the id from their claims.
type InsumoRepository interface {
	Criar(ctx context.Context, i *model.Insumo) error
	ObterPorID(ctx context.Context, id uuid.UUID) (*model.Insumo, error)
	// ListarPorEmpresa returns the empresa's insumos; composto=nil lists all,
	// otherwise filters by the composite flag.
	ListarPorEmpresa(ctx context.Context, empresaID uuid.UUID, composto *bool) ([]model.Insumo, error)
	ContarPorEmpresa(ctx context.Context, empresaID uuid.UUID, composto bool) (int64, error)
	Atualizar(ctx context.Context, i *model.Insumo) error
	// AtualizarCampos writes only the given columns, leaving the rest (notably
	// estoque_atual) untouched.
	AtualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error
	Excluir(ctx context.Context, id uuid.UUID) error
}

type insumoRepo struct{ db *gorm.DB }

func NewInsumoRepository(db *gorm.DB) InsumoRepository { return &insumoRepo{db: db} }

func (r *insumoRepo) Criar(ctx context.Context, i *model.Insumo) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *insumoRepo) ObterPorID(ctx context.Context, id uuid.UUID) (*model.Insumo, error) {
	var i model.Insumo
	err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *insumoRepo) ListarPorEmpresa(ctx context.Context, empresaID uuid.UUID, composto *bool) ([]model.Insumo, error) {
	q := r.db.WithContext(ctx).Where("empresa_id = ?", empresaID)
	if composto != nil {
		q = q.Where("composto = ?", *composto)
	}
	var list []model.Insumo
	err := q.Order("nome asc").Find(&list).Error
	return list, err
}

func (r *insumoRepo) ContarPorEmpresa(ctx context.Context, empresaID uuid.UUID, composto bool) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Insumo{}).
		Where("empresa_id = ? AND composto = ?", empresaID, composto).
		Count(&total).Error
	return total, err
}

func (r *insumoRepo) Atualizar(ctx context.Context, i *model.Insumo) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *insumoRepo) AtualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Insumo{}).Where("id = ?", id).Updates(campos).Error
}

func (r *insumoRepo) Excluir(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Insumo{}, "id = ?", id).Error
}
