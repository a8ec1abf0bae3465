package service

import (
	"context"
	"errors"

	"tempero/internal/dto"
	"tempero/internal/model"
	"tempero/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrProdutoNaoEncontrado = errors.New("produto não encontrado")

// ProdutoService handles tenant-scoped CRUD for products, their recipe lines,
// their per-channel prices, and the recipe-costing read model.
type ProdutoService interface {
	Criar(ctx context.Context, empresaID uuid.UUID, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context, empresaID uuid.UUID) ([]dto.ProdutoResponse, error)
	ObterPorID(ctx context.Context, empresaID, id uuid.UUID) (*dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	Desativar(ctx context.Context, empresaID, id uuid.UUID) error

	SubstituirFicha(ctx context.Context, empresaID, id uuid.UUID, req dto.SubstituirFichaRequest) ([]dto.FichaLinhaResponse, error)
	ListarFicha(ctx context.Context, empresaID, id uuid.UUID) ([]dto.FichaLinhaResponse, error)
	SubstituirPrecos(ctx context.Context, empresaID, id uuid.UUID, req dto.SubstituirPrecosRequest) ([]dto.PrecoCanalResponse, error)
	ListarPrecos(ctx context.Context, empresaID, id uuid.UUID) ([]dto.PrecoCanalResponse, error)
	Custo(ctx context.Context, empresaID, id uuid.UUID) (*dto.CustoProdutoResponse, error)
}

type produtoService struct {
	repo     repository.ProdutoRepository
	insumos  repository.InsumoRepository
	receitas repository.ReceitaRepository
	fichas   repository.FichaRepository
	precos   repository.PrecoCanalRepository
}

func NewProdutoService(
	repo repository.ProdutoRepository,
	insumos repository.InsumoRepository,
	receitas repository.ReceitaRepository,
	fichas repository.FichaRepository,
	precos repository.PrecoCanalRepository,
) ProdutoService {
	return &produtoService{repo: repo, insumos: insumos, receitas: receitas, fichas: fichas, precos: precos}
}

func (s *produtoService) Criar(ctx context.Context, empresaID uuid.UUID, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	p := &model.Produto{
		EmpresaID:        empresaID,
		Nome:             req.Nome,
		PrecoVenda:       req.PrecoVenda,
		Categoria:        req.Categoria,
		RendimentoPadrao: req.RendimentoPadrao,
		Observacoes:      req.Observacoes,
		Ativo:            true,
		ImagemURL:        req.ImagemURL,
		EstoquePronto:    decimal.Zero,
	}
	if err := s.repo.Criar(ctx, p); err != nil {
		return nil, err
	}
	resp := produtoToResponse(p)
	return &resp, nil
}

func (s *produtoService) Listar(ctx context.Context, empresaID uuid.UUID) ([]dto.ProdutoResponse, error) {
	list, err := s.repo.ListarPorEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProdutoResponse, 0, len(list))
	for i := range list {
		result = append(result, produtoToResponse(&list[i]))
	}
	return result, nil
}

func (s *produtoService) ObterPorID(ctx context.Context, empresaID, id uuid.UUID) (*dto.ProdutoResponse, error) {
	p, err := s.obterDaEmpresa(ctx, empresaID, id)
	if err != nil {
		return nil, err
	}
	resp := produtoToResponse(p)
	return &resp, nil
}

func (s *produtoService) Atualizar(ctx context.Context, empresaID, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := s.obterDaEmpresa(ctx, empresaID, id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		p.Nome = *req.Nome
	}
	if req.PrecoVenda != nil {
		p.PrecoVenda = *req.PrecoVenda
	}
	if req.Categoria != nil {
		p.Categoria = *req.Categoria
	}
	if req.RendimentoPadrao != nil {
		p.RendimentoPadrao = *req.RendimentoPadrao
	}
	if req.Observacoes != nil {
		p.Observacoes = req.Observacoes
	}
	if req.Ativo != nil {
		p.Ativo = *req.Ativo
	}
	if req.ImagemURL != nil {
		p.ImagemURL = req.ImagemURL
	}

	if err := s.repo.Atualizar(ctx, p); err != nil {
		return nil, err
	}
	resp := produtoToResponse(p)
	return &resp, nil
}

func (s *produtoService) Desativar(ctx context.Context, empresaID, id uuid.UUID) error {
	p, err := s.obterDaEmpresa(ctx, empresaID, id)
	if err != nil {
		return err
	}
	return s.repo.Desativar(ctx, p.ID)
}

// SubstituirFicha replaces the produto's whole bill-of-materials. Every
// referenced insumo must exist in the same empresa — no dangling references.
func (s *produtoService) SubstituirFicha(ctx context.Context, empresaID, id uuid.UUID, req dto.SubstituirFichaRequest) ([]dto.FichaLinhaResponse, error) {
	p, err := s.obterDaEmpresa(ctx, empresaID, id)
	if err != nil {
		return nil, err
	}

	linhas := make([]model.FichaTecnica, 0, len(req.Linhas))
	for _, l := range req.Linhas {
		iid, err := uuid.Parse(l.InsumoID)
		if err != nil {
			return nil, errors.New("linha com insumo_id inválido")
		}
		ins, err := s.insumos.ObterPorID(ctx, iid)
		if err != nil || ins.EmpresaID != empresaID {
			return nil, ErrInsumoNaoEncontrado
		}
		linhas = append(linhas, model.FichaTecnica{
			ProdutoID:  p.ID,
			InsumoID:   iid,
			Quantidade: l.Quantidade,
		})
	}

	if err := s.fichas.ExcluirPorProduto(ctx, p.ID); err != nil {
		return nil, err
	}
	for i := range linhas {
		if err := s.fichas.Criar(ctx, &linhas[i]); err != nil {
			return nil, err
		}
	}
	return s.ListarFicha(ctx, empresaID, id)
}

func (s *produtoService) ListarFicha(ctx context.Context, empresaID, id uuid.UUID) ([]dto.FichaLinhaResponse, error) {
	p, err := s.obterDaEmpresa(ctx, empresaID, id)
	if err != nil {
		return nil, err
	}
	linhas, err := s.fichas.ListarPorProduto(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.FichaLinhaResponse, 0, len(linhas))
	for _, l := range linhas {
		nome := ""
		if ins, err := s.insumos.ObterPorID(ctx, l.InsumoID); err == nil {
			nome = ins.Nome
		}
		result = append(result, dto.FichaLinhaResponse{
			InsumoID:   l.InsumoID,
			Nome:       nome,
			Quantidade: l.Quantidade,
		})
	}
	return result, nil
}

// SubstituirPrecos upserts channel prices by the (produto, canal) key.
func (s *produtoService) SubstituirPrecos(ctx context.Context, empresaID, id uuid.UUID, req dto.SubstituirPrecosRequest) ([]dto.PrecoCanalResponse, error) {
	p, err := s.obterDaEmpresa(ctx, empresaID, id)
	if err != nil {
		return nil, err
	}
	for _, preco := range req.Precos {
		existente, err := s.precos.ObterPorProdutoCanal(ctx, p.ID, preco.Canal)
		switch {
		case err == nil:
			if uerr := s.precos.AtualizarPreco(ctx, existente.ID, preco.Preco); uerr != nil {
				return nil, uerr
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			novo := &model.PrecoCanal{
				EmpresaID: empresaID,
				ProdutoID: p.ID,
				Canal:     preco.Canal,
				Preco:     preco.Preco,
			}
			if cerr := s.precos.Criar(ctx, novo); cerr != nil {
				return nil, cerr
			}
		default:
			return nil, err
		}
	}
	return s.ListarPrecos(ctx, empresaID, id)
}

func (s *produtoService) ListarPrecos(ctx context.Context, empresaID, id uuid.UUID) ([]dto.PrecoCanalResponse, error) {
	p, err := s.obterDaEmpresa(ctx, empresaID, id)
	if err != nil {
		return nil, err
	}
	precos, err := s.precos.ListarPorProduto(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PrecoCanalResponse, 0, len(precos))
	for _, preco := range precos {
		result = append(result, dto.PrecoCanalResponse{Canal: preco.Canal, Preco: preco.Preco})
	}
	return result, nil
}

// Custo computes the recipe cost of one batch of the produto and derives the
// per-portion cost and the margin against the base sale price.
//
// A composite insumo costs the sum of its components (at their stored unit
// costs) divided by its batch yield; deeper nesting falls back to the stored
// unit cost, so cycles cannot recurse.
func (s *produtoService) Custo(ctx context.Context, empresaID, id uuid.UUID) (*dto.CustoProdutoResponse, error) {
	p, err := s.obterDaEmpresa(ctx, empresaID, id)
	if err != nil {
		return nil, err
	}
	linhas, err := s.fichas.ListarPorProduto(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	custoBatch := decimal.Zero
	for _, linha := range linhas {
		ins, err := s.insumos.ObterPorID(ctx, linha.InsumoID)
		if err != nil {
			continue
		}
		custoBatch = custoBatch.Add(linha.Quantidade.Mul(s.custoUnitario(ctx, ins)))
	}

	custoPorcao := custoBatch
	if p.RendimentoPadrao.IsPositive() {
		custoPorcao = custoBatch.Div(p.RendimentoPadrao)
	}

	margem := decimal.Zero
	if custoPorcao.IsPositive() {
		margem = p.PrecoVenda.Sub(custoPorcao).Div(custoPorcao).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return &dto.CustoProdutoResponse{
		ProdutoID:   p.ID,
		Nome:        p.Nome,
		CustoBatch:  custoBatch.Round(4),
		CustoPorcao: custoPorcao.Round(4),
		PrecoVenda:  p.PrecoVenda,
		MargemPct:   margem,
	}, nil
}

// custoUnitario resolves the effective unit cost of an insumo. For a composite
// it derives from the current recipe; components use their stored custo
// directly (one level deep).
func (s *produtoService) custoUnitario(ctx context.Context, ins *model.Insumo) decimal.Decimal {
	if !ins.Composto || !ins.Rendimento.IsPositive() {
		return ins.CustoUnitario
	}
	linhas, err := s.receitas.ListarPorComposto(ctx, ins.ID)
	if err != nil || len(linhas) == 0 {
		return ins.CustoUnitario
	}
	total := decimal.Zero
	for _, linha := range linhas {
		comp, err := s.insumos.ObterPorID(ctx, linha.InsumoComponenteID)
		if err != nil {
			continue
		}
		total = total.Add(linha.Quantidade.Mul(comp.CustoUnitario))
	}
	return total.Div(ins.Rendimento)
}

func (s *produtoService) obterDaEmpresa(ctx context.Context, empresaID, id uuid.UUID) (*model.Produto, error) {
	p, err := s.repo.ObterPorID(ctx, id)
	if err != nil || p.EmpresaID != empresaID {
		return nil, ErrProdutoNaoEncontrado
	}
	return p, nil
}

func produtoToResponse(p *model.Produto) dto.ProdutoResponse {
	return dto.ProdutoResponse{
		ID:               p.ID,
		Nome:             p.Nome,
		PrecoVenda:       p.PrecoVenda,
		Categoria:        p.Categoria,
		RendimentoPadrao: p.RendimentoPadrao,
		Observacoes:      p.Observacoes,
		Ativo:            p.Ativo,
		ImagemURL:        p.ImagemURL,
		EstoquePronto:    p.EstoquePronto,
	}
}
