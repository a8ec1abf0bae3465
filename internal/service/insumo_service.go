package service

import (
	"context"
	"errors"

	"tempero/internal/dto"
	"tempero/internal/model"
	"tempero/internal/repository"

	"github.com/google/uuid"
)

var ErrInsumoNaoEncontrado = errors.New("insumo não encontrado")

// InsumoService handles tenant-scoped CRUD for ingredients, including the
// wholesale replacement of a composite insumo's recipe lines.
type InsumoService interface {
	Criar(ctx context.Context, empresaID uuid.UUID, req dto.CriarInsumoRequest) (*dto.InsumoResponse, error)
	Listar(ctx context.Context, empresaID uuid.UUID) ([]dto.InsumoResponse, error)
	ObterPorID(ctx context.Context, empresaID, id uuid.UUID) (*dto.InsumoResponse, error)
	Atualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.AtualizarInsumoRequest) (*dto.InsumoResponse, error)
	Excluir(ctx context.Context, empresaID, id uuid.UUID) error
}

type insumoService struct {
	repo     repository.InsumoRepository
	receitas repository.ReceitaRepository
}

func NewInsumoService(repo repository.InsumoRepository, receitas repository.ReceitaRepository) InsumoService {
	return &insumoService{repo: repo, receitas: receitas}
}

func (s *insumoService) Criar(ctx context.Context, empresaID uuid.UUID, req dto.CriarInsumoRequest) (*dto.InsumoResponse, error) {
	i := &model.Insumo{
		EmpresaID:     empresaID,
		Nome:          req.Nome,
		UnidadeMedida: req.UnidadeMedida,
		CustoUnitario: req.CustoUnitario,
		EstoqueAtual:  req.EstoqueAtual,
		EstoqueMinimo: req.EstoqueMinimo,
		Composto:      req.Composto,
		Rendimento:    req.Rendimento,
	}
	if err := s.repo.Criar(ctx, i); err != nil {
		return nil, err
	}

	if i.Composto && len(req.Componentes) > 0 {
		if err := s.substituirComponentes(ctx, empresaID, i.ID, req.Componentes); err != nil {
			return nil, err
		}
	}
	return s.ObterPorID(ctx, empresaID, i.ID)
}

func (s *insumoService) Listar(ctx context.Context, empresaID uuid.UUID) ([]dto.InsumoResponse, error) {
	list, err := s.repo.ListarPorEmpresa(ctx, empresaID, nil)
	if err != nil {
		return nil, err
	}
	result := make([]dto.InsumoResponse, 0, len(list))
	for i := range list {
		result = append(result, insumoToResponse(&list[i], nil))
	}
	return result, nil
}

func (s *insumoService) ObterPorID(ctx context.Context, empresaID, id uuid.UUID) (*dto.InsumoResponse, error) {
	i, err := s.obterDaEmpresa(ctx, empresaID, id)
	if err != nil {
		return nil, err
	}

	var componentes []dto.ComponenteResponse
	if i.Composto {
		linhas, err := s.receitas.ListarPorComposto(ctx, i.ID)
		if err != nil {
			return nil, err
		}
		for _, linha := range linhas {
			comp, err := s.repo.ObterPorID(ctx, linha.InsumoComponenteID)
			nome := ""
			if err == nil {
				nome = comp.Nome
			}
			componentes = append(componentes, dto.ComponenteResponse{
				InsumoID:   linha.InsumoComponenteID,
				Nome:       nome,
				Quantidade: linha.Quantidade,
			})
		}
	}

	resp := insumoToResponse(i, componentes)
	return &resp, nil
}

func (s *insumoService) Atualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.AtualizarInsumoRequest) (*dto.InsumoResponse, error) {
	i, err := s.obterDaEmpresa(ctx, empresaID, id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		i.Nome = *req.Nome
	}
	if req.UnidadeMedida != nil {
		i.UnidadeMedida = *req.UnidadeMedida
	}
	if req.CustoUnitario != nil {
		i.CustoUnitario = *req.CustoUnitario
	}
	if req.EstoqueAtual != nil {
		i.EstoqueAtual = *req.EstoqueAtual
	}
	if req.EstoqueMinimo != nil {
		i.EstoqueMinimo = *req.EstoqueMinimo
	}
	if req.Rendimento != nil {
		i.Rendimento = *req.Rendimento
	}
	if err := s.repo.Atualizar(ctx, i); err != nil {
		return nil, err
	}

	if i.Composto && req.Componentes != nil {
		if err := s.substituirComponentes(ctx, empresaID, i.ID, req.Componentes); err != nil {
			return nil, err
		}
	}
	return s.ObterPorID(ctx, empresaID, id)
}

func (s *insumoService) Excluir(ctx context.Context, empresaID, id uuid.UUID) error {
	i, err := s.obterDaEmpresa(ctx, empresaID, id)
	if err != nil {
		return err
	}
	if i.Composto {
		if err := s.receitas.ExcluirPorComposto(ctx, i.ID); err != nil {
			return err
		}
	}
	return s.repo.Excluir(ctx, i.ID)
}

// substituirComponentes replaces the whole recipe of a composite insumo.
// Every referenced component must exist in the same empresa.
func (s *insumoService) substituirComponentes(ctx context.Context, empresaID, compostoID uuid.UUID, componentes []dto.ComponenteRequest) error {
	if err := s.receitas.ExcluirPorComposto(ctx, compostoID); err != nil {
		return err
	}
	for _, c := range componentes {
		cid, err := uuid.Parse(c.InsumoID)
		if err != nil {
			return errors.New("componente com id inválido")
		}
		if _, err := s.obterDaEmpresa(ctx, empresaID, cid); err != nil {
			return errors.New("componente não encontrado na empresa")
		}
		linha := &model.ReceitaIntermediaria{
			InsumoCompostoID:   compostoID,
			InsumoComponenteID: cid,
			Quantidade:         c.Quantidade,
		}
		if err := s.receitas.Criar(ctx, linha); err != nil {
			return err
		}
	}
	return nil
}

// obterDaEmpresa enforces tenant isolation for normal API access.
func (s *insumoService) obterDaEmpresa(ctx context.Context, empresaID, id uuid.UUID) (*model.Insumo, error) {
	i, err := s.repo.ObterPorID(ctx, id)
	if err != nil || i.EmpresaID != empresaID {
		return nil, ErrInsumoNaoEncontrado
	}
	return i, nil
}

func insumoToResponse(i *model.Insumo, componentes []dto.ComponenteResponse) dto.InsumoResponse {
	return dto.InsumoResponse{
		ID:            i.ID,
		Nome:          i.Nome,
		UnidadeMedida: i.UnidadeMedida,
		CustoUnitario: i.CustoUnitario,
		EstoqueAtual:  i.EstoqueAtual,
		EstoqueMinimo: i.EstoqueMinimo,
		Composto:      i.Composto,
		Rendimento:    i.Rendimento,
		Componentes:   componentes,
	}
}
