package service

import (
	"context"
	"encoding/json"
	"time"

	"tempero/internal/dto"
	"tempero/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CardapioService builds the public digital-menu read model: the empresa's
// active produtos with their per-channel prices. Responses are cached in
// Redis because the storefront polls this endpoint unauthenticated.
type CardapioService interface {
	Obter(ctx context.Context, empresaID uuid.UUID) (*dto.CardapioResponse, error)
}

type cardapioService struct {
	empresas repository.EmpresaRepository
	produtos repository.ProdutoRepository
	precos   repository.PrecoCanalRepository
	rdb      *redis.Client
	ttl      time.Duration
}

func NewCardapioService(
	empresas repository.EmpresaRepository,
	produtos repository.ProdutoRepository,
	precos repository.PrecoCanalRepository,
	rdb *redis.Client,
	ttl time.Duration,
) CardapioService {
	return &cardapioService{empresas: empresas, produtos: produtos, precos: precos, rdb: rdb, ttl: ttl}
}

func (s *cardapioService) Obter(ctx context.Context, empresaID uuid.UUID) (*dto.CardapioResponse, error) {
	cacheKey := "cardapio:" + empresaID.String()

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.CardapioResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	empresa, err := s.empresas.ObterPorID(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	produtos, err := s.produtos.ListarAtivosPorEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}

	itens := make([]dto.CardapioItem, 0, len(produtos))
	for i := range produtos {
		p := &produtos[i]
		item := dto.CardapioItem{
			ProdutoID:  p.ID,
			Nome:       p.Nome,
			Categoria:  p.Categoria,
			PrecoVenda: p.PrecoVenda,
			ImagemURL:  p.ImagemURL,
		}
		if precos, err := s.precos.ListarPorProduto(ctx, p.ID); err == nil {
			for _, preco := range precos {
				item.Precos = append(item.Precos, dto.PrecoCanalResponse{Canal: preco.Canal, Preco: preco.Preco})
			}
		}
		itens = append(itens, item)
	}

	resp := &dto.CardapioResponse{
		EmpresaID: empresa.ID,
		Empresa:   empresa.Nome,
		Itens:     itens,
	}

	// Populate cache — best effort, ignore errors
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(context.Background(), cacheKey, b, s.ttl).Err()
		}
	}
	return resp, nil
}
