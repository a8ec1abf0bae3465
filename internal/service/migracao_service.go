package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tempero/internal/dto"
	"tempero/internal/model"
	"tempero/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrMesmaEmpresa         = errors.New("empresa de origem e destino devem ser diferentes")
	ErrEmpresaNaoEncontrada = errors.New("empresa não encontrada")
	ErrMigracaoEmAndamento  = errors.New("já existe uma migração em andamento para a empresa de destino")
)

// MigracaoService copies the catalog of one empresa into another.
//
// Migrar runs five ordered stages — insumos simples, insumos compostos,
// produtos, fichas técnicas, preços por canal — each stage completing fully
// before the next starts, because later stages re-point foreign keys through
// the id maps built by earlier ones. Records are matched by normalized name
// (match → update, no match → insert), so re-running a migration is the
// documented recovery path after a partial failure: already-copied records
// turn into updates instead of duplicates.
//
// The service performs no authorization; callers must gate it behind the
// admin role.
type MigracaoService interface {
	Preview(ctx context.Context, origemID, destinoID uuid.UUID) (*dto.MigracaoPreview, error)
	Migrar(ctx context.Context, origemID, destinoID uuid.UUID) (*dto.MigracaoResult, error)
}

type migracaoService struct {
	empresas repository.EmpresaRepository
	insumos  repository.InsumoRepository
	receitas repository.ReceitaRepository
	produtos repository.ProdutoRepository
	fichas   repository.FichaRepository
	precos   repository.PrecoCanalRepository
	rdb      *redis.Client
	lockTTL  time.Duration
}

func NewMigracaoService(
	empresas repository.EmpresaRepository,
	insumos repository.InsumoRepository,
	receitas repository.ReceitaRepository,
	produtos repository.ProdutoRepository,
	fichas repository.FichaRepository,
	precos repository.PrecoCanalRepository,
	rdb *redis.Client,
	lockTTL time.Duration,
) MigracaoService {
	return &migracaoService{
		empresas: empresas,
		insumos:  insumos,
		receitas: receitas,
		produtos: produtos,
		fichas:   fichas,
		precos:   precos,
		rdb:      rdb,
		lockTTL:  lockTTL,
	}
}

// migracaoContexto is the per-invocation state threaded through the stages.
// The id maps translate source-tenant ids into destination-tenant ids; they
// are built fresh per call and never shared across invocations.
type migracaoContexto struct {
	origemID  uuid.UUID
	destinoID uuid.UUID

	mapaInsumos  map[uuid.UUID]uuid.UUID // insumo origem → destino (etapas 1 e 2)
	mapaProdutos map[uuid.UUID]uuid.UUID // produto origem → destino (etapa 3)

	// produtosOrigem is the source snapshot captured in etapa 3; etapas 4 and 5
	// iterate it to pair each source produto with its destination row.
	produtosOrigem []model.Produto

	resultado dto.MigracaoResult
}

// ── Preview ──────────────────────────────────────────────────────────────────

// Preview counts what a migration would touch, without writing anything.
// Safe to call repeatedly; offers no snapshot isolation beyond the store's.
func (s *migracaoService) Preview(ctx context.Context, origemID, destinoID uuid.UUID) (*dto.MigracaoPreview, error) {
	if err := s.validarEmpresas(ctx, origemID, destinoID); err != nil {
		return nil, err
	}

	insumos, err := s.insumos.ContarPorEmpresa(ctx, origemID, false)
	if err != nil {
		return nil, err
	}
	receitas, err := s.insumos.ContarPorEmpresa(ctx, origemID, true)
	if err != nil {
		return nil, err
	}
	produtos, err := s.produtos.ContarPorEmpresa(ctx, origemID)
	if err != nil {
		return nil, err
	}
	fichas, err := s.fichas.ContarPorEmpresa(ctx, origemID)
	if err != nil {
		return nil, err
	}
	precos, err := s.precos.ContarPorEmpresa(ctx, origemID)
	if err != nil {
		return nil, err
	}

	return &dto.MigracaoPreview{
		Insumos:                insumos,
		ReceitasIntermediarias: receitas,
		Produtos:               produtos,
		FichasTecnicas:         fichas,
		PrecosCanais:           precos,
	}, nil
}

// ── Migrar ───────────────────────────────────────────────────────────────────

// Migrar executes the five-stage pipeline. Stages are not transactional as a
// whole: an unhandled error aborts the remaining stages and leaves the
// destination partially migrated — the caller re-runs Migrar to finish.
func (s *migracaoService) Migrar(ctx context.Context, origemID, destinoID uuid.UUID) (*dto.MigracaoResult, error) {
	if err := s.validarEmpresas(ctx, origemID, destinoID); err != nil {
		return nil, err
	}

	destravar, err := s.travarDestino(ctx, destinoID)
	if err != nil {
		return nil, err
	}
	defer destravar()

	mc := &migracaoContexto{
		origemID:     origemID,
		destinoID:    destinoID,
		mapaInsumos:  make(map[uuid.UUID]uuid.UUID),
		mapaProdutos: make(map[uuid.UUID]uuid.UUID),
	}

	etapas := []func(context.Context, *migracaoContexto) error{
		s.etapaInsumosSimples,
		s.etapaInsumosCompostos,
		s.etapaProdutos,
		s.etapaFichasTecnicas,
		s.etapaPrecosCanais,
	}
	for _, etapa := range etapas {
		if err := etapa(ctx, mc); err != nil {
			return nil, err
		}
	}

	log.Info().
		Str("origem", origemID.String()).
		Str("destino", destinoID.String()).
		Interface("resultado", mc.resultado).
		Msg("migração concluída")
	return &mc.resultado, nil
}

func (s *migracaoService) validarEmpresas(ctx context.Context, origemID, destinoID uuid.UUID) error {
	if origemID == destinoID {
		return ErrMesmaEmpresa
	}
	if _, err := s.empresas.ObterPorID(ctx, origemID); err != nil {
		return fmt.Errorf("origem %s: %w", origemID, ErrEmpresaNaoEncontrada)
	}
	if _, err := s.empresas.ObterPorID(ctx, destinoID); err != nil {
		return fmt.Errorf("destino %s: %w", destinoID, ErrEmpresaNaoEncontrada)
	}
	return nil
}

// travarDestino takes a per-destination lock in Redis so two concurrent
// migrations into the same empresa cannot race the name snapshots. Best
// effort: without Redis (unit tests) or with Redis down, the migration
// proceeds unlocked — it is an administrator-only, low-frequency operation.
func (s *migracaoService) travarDestino(ctx context.Context, destinoID uuid.UUID) (func(), error) {
	if s.rdb == nil {
		return func() {}, nil
	}

	chave := "migracao:lock:" + destinoID.String()
	ok, err := s.rdb.SetNX(ctx, chave, "1", s.lockTTL).Result()
	if err != nil {
		log.Warn().Err(err).Msg("migração sem trava: redis indisponível")
		return func() {}, nil
	}
	if !ok {
		return nil, ErrMigracaoEmAndamento
	}
	return func() { s.rdb.Del(context.Background(), chave) }, nil
}

// ── Etapa 1: insumos simples ─────────────────────────────────────────────────

func (s *migracaoService) etapaInsumosSimples(ctx context.Context, mc *migracaoContexto) error {
	composto := false
	origem, err := s.insumos.ListarPorEmpresa(ctx, mc.origemID, &composto)
	if err != nil {
		return err
	}
	// Snapshot of destination names, taken once before the loop. Matching
	// never crosses the composto flag boundary.
	existentes, err := s.insumos.ListarPorEmpresa(ctx, mc.destinoID, &composto)
	if err != nil {
		return err
	}
	idx := indiceDeNomes(nomesDeInsumos(existentes))

	for i := range origem {
		s.migrarInsumo(ctx, mc, &origem[i], idx, &mc.resultado.Insumos)
	}
	return nil
}

// migrarInsumo applies match-or-create to a single source insumo and records
// the id mapping. Estoque is tenant-local: matched rows keep their
// estoque_atual, inserted rows start at zero. Returns the destination id, or
// ok=false when the record failed and was left out of the map.
func (s *migracaoService) migrarInsumo(
	ctx context.Context,
	mc *migracaoContexto,
	ins *model.Insumo,
	idx map[string]uuid.UUID,
	tally *dto.Contagem,
) (uuid.UUID, bool) {
	if existenteID, ok := idx[NormalizarNome(ins.Nome)]; ok {
		campos := map[string]interface{}{
			"unidade_medida": ins.UnidadeMedida,
			"custo_unitario": ins.CustoUnitario,
			"estoque_minimo": ins.EstoqueMinimo,
		}
		if ins.Composto {
			campos["rendimento"] = ins.Rendimento
		}
		if err := s.insumos.AtualizarCampos(ctx, existenteID, campos); err != nil {
			tally.Errors++
			log.Warn().Err(err).Str("insumo", ins.Nome).Msg("migração: falha ao atualizar insumo")
			return uuid.Nil, false
		}
		mc.mapaInsumos[ins.ID] = existenteID
		tally.Updated++
		return existenteID, true
	}

	novo := model.Insumo{
		EmpresaID:     mc.destinoID,
		Nome:          ins.Nome,
		UnidadeMedida: ins.UnidadeMedida,
		CustoUnitario: ins.CustoUnitario,
		EstoqueAtual:  decimal.Zero,
		EstoqueMinimo: ins.EstoqueMinimo,
		Composto:      ins.Composto,
		Rendimento:    ins.Rendimento,
	}
	if err := s.insumos.Criar(ctx, &novo); err != nil {
		tally.Errors++
		log.Warn().Err(err).Str("insumo", ins.Nome).Msg("migração: falha ao criar insumo")
		return uuid.Nil, false
	}
	mc.mapaInsumos[ins.ID] = novo.ID
	tally.Copied++
	return novo.ID, true
}

// ── Etapa 2: insumos compostos e suas receitas ───────────────────────────────

func (s *migracaoService) etapaInsumosCompostos(ctx context.Context, mc *migracaoContexto) error {
	composto := true
	origem, err := s.insumos.ListarPorEmpresa(ctx, mc.origemID, &composto)
	if err != nil {
		return err
	}
	existentes, err := s.insumos.ListarPorEmpresa(ctx, mc.destinoID, &composto)
	if err != nil {
		return err
	}
	idx := indiceDeNomes(nomesDeInsumos(existentes))
	tally := &mc.resultado.ReceitasIntermediarias

	for i := range origem {
		ins := &origem[i]
		destinoID, ok := s.migrarInsumo(ctx, mc, ins, idx, tally)
		if !ok {
			continue
		}

		// Wholesale replace: delete every existing line of the destination
		// composto before re-inserting, so re-migration never accumulates
		// duplicate lines.
		if err := s.receitas.ExcluirPorComposto(ctx, destinoID); err != nil {
			tally.Errors++
			log.Warn().Err(err).Str("insumo", ins.Nome).Msg("migração: falha ao limpar receita")
			continue
		}

		linhas, err := s.receitas.ListarPorComposto(ctx, ins.ID)
		if err != nil {
			tally.Errors++
			continue
		}
		for _, linha := range linhas {
			// One composto may reference another migrated earlier in this same
			// loop — the map grows as the stage advances.
			componenteID, ok := mc.mapaInsumos[linha.InsumoComponenteID]
			if !ok {
				// Component never migrated: the line is dropped and counted,
				// never inserted with a dangling reference.
				tally.Skipped++
				continue
			}
			nova := model.ReceitaIntermediaria{
				InsumoCompostoID:   destinoID,
				InsumoComponenteID: componenteID,
				Quantidade:         linha.Quantidade,
			}
			if err := s.receitas.Criar(ctx, &nova); err != nil {
				tally.Errors++
			}
		}
	}
	return nil
}

// ── Etapa 3: produtos ────────────────────────────────────────────────────────

func (s *migracaoService) etapaProdutos(ctx context.Context, mc *migracaoContexto) error {
	origem, err := s.produtos.ListarPorEmpresa(ctx, mc.origemID)
	if err != nil {
		return err
	}
	existentes, err := s.produtos.ListarPorEmpresa(ctx, mc.destinoID)
	if err != nil {
		return err
	}
	idx := indiceDeNomes(nomesDeProdutos(existentes))
	tally := &mc.resultado.Produtos

	for i := range origem {
		p := &origem[i]
		if existenteID, ok := idx[NormalizarNome(p.Nome)]; ok {
			// estoque_pronto stays untouched — finished-goods stock is
			// tenant-local.
			err := s.produtos.AtualizarCampos(ctx, existenteID, map[string]interface{}{
				"preco_venda":       p.PrecoVenda,
				"categoria":         p.Categoria,
				"rendimento_padrao": p.RendimentoPadrao,
				"observacoes":       p.Observacoes,
				"ativo":             p.Ativo,
				"imagem_url":        p.ImagemURL,
			})
			if err != nil {
				tally.Errors++
				log.Warn().Err(err).Str("produto", p.Nome).Msg("migração: falha ao atualizar produto")
				continue
			}
			mc.mapaProdutos[p.ID] = existenteID
			tally.Updated++
			continue
		}

		novo := model.Produto{
			EmpresaID:        mc.destinoID,
			Nome:             p.Nome,
			PrecoVenda:       p.PrecoVenda,
			Categoria:        p.Categoria,
			RendimentoPadrao: p.RendimentoPadrao,
			Observacoes:      p.Observacoes,
			Ativo:            p.Ativo,
			ImagemURL:        p.ImagemURL,
			EstoquePronto:    decimal.Zero,
		}
		if err := s.produtos.Criar(ctx, &novo); err != nil {
			tally.Errors++
			log.Warn().Err(err).Str("produto", p.Nome).Msg("migração: falha ao criar produto")
			continue
		}
		mc.mapaProdutos[p.ID] = novo.ID
		tally.Copied++
	}

	mc.produtosOrigem = origem
	return nil
}

// ── Etapa 4: fichas técnicas ─────────────────────────────────────────────────

func (s *migracaoService) etapaFichasTecnicas(ctx context.Context, mc *migracaoContexto) error {
	tally := &mc.resultado.FichasTecnicas

	for i := range mc.produtosOrigem {
		p := &mc.produtosOrigem[i]
		destinoID, ok := mc.mapaProdutos[p.ID]
		if !ok {
			// produto failed in etapa 3; its lines have nowhere to point
			continue
		}

		if err := s.fichas.ExcluirPorProduto(ctx, destinoID); err != nil {
			tally.Errors++
			log.Warn().Err(err).Str("produto", p.Nome).Msg("migração: falha ao limpar ficha técnica")
			continue
		}

		linhas, err := s.fichas.ListarPorProduto(ctx, p.ID)
		if err != nil {
			tally.Errors++
			continue
		}
		for _, linha := range linhas {
			insumoID, ok := mc.mapaInsumos[linha.InsumoID]
			if !ok {
				tally.Skipped++
				continue
			}
			nova := model.FichaTecnica{
				ProdutoID:  destinoID,
				InsumoID:   insumoID,
				Quantidade: linha.Quantidade,
			}
			if err := s.fichas.Criar(ctx, &nova); err != nil {
				tally.Errors++
				continue
			}
			tally.Copied++
		}
	}
	return nil
}

// ── Etapa 5: preços por canal ────────────────────────────────────────────────

func (s *migracaoService) etapaPrecosCanais(ctx context.Context, mc *migracaoContexto) error {
	tally := &mc.resultado.PrecosCanais

	for i := range mc.produtosOrigem {
		p := &mc.produtosOrigem[i]
		destinoID, ok := mc.mapaProdutos[p.ID]
		if !ok {
			continue
		}

		precos, err := s.precos.ListarPorProduto(ctx, p.ID)
		if err != nil {
			tally.Errors++
			continue
		}
		for _, preco := range precos {
			existente, err := s.precos.ObterPorProdutoCanal(ctx, destinoID, preco.Canal)
			switch {
			case err == nil:
				if uerr := s.precos.AtualizarPreco(ctx, existente.ID, preco.Preco); uerr != nil {
					tally.Errors++
					continue
				}
				tally.Updated++
			case errors.Is(err, gorm.ErrRecordNotFound):
				novo := model.PrecoCanal{
					EmpresaID: mc.destinoID,
					ProdutoID: destinoID,
					Canal:     preco.Canal,
					Preco:     preco.Preco,
				}
				if cerr := s.precos.Criar(ctx, &novo); cerr != nil {
					tally.Errors++
					continue
				}
				tally.Copied++
			default:
				tally.Errors++
			}
		}
	}
	return nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func nomesDeInsumos(itens []model.Insumo) []nomeado {
	pares := make([]nomeado, 0, len(itens))
	for _, i := range itens {
		pares = append(pares, nomeado{id: i.ID, nome: i.Nome})
	}
	return pares
}

func nomesDeProdutos(itens []model.Produto) []nomeado {
	pares := make([]nomeado, 0, len(itens))
	for _, p := range itens {
		pares = append(pares, nomeado{id: p.ID, nome: p.Nome})
	}
	return pares
}
