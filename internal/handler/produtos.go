package handler

import (
	"errors"
	"net/http"

	"tempero/internal/apierror"
	"tempero/internal/dto"
	"tempero/internal/service"

	"github.com/gin-gonic/gin"
)

type ProdutosHandler struct{ svc service.ProdutoService }

func NewProdutosHandler(svc service.ProdutoService) *ProdutosHandler {
	return &ProdutosHandler{svc: svc}
}

func (h *ProdutosHandler) Criar(c *gin.Context) {
	empresaID, ok := empresaDoToken(c)
	if !ok {
		return
	}
	var req dto.CriarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), empresaID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProdutosHandler) Listar(c *gin.Context) {
	empresaID, ok := empresaDoToken(c)
	if !ok {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), empresaID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar produtos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProdutosHandler) ObterPorID(c *gin.Context) {
	empresaID, ok := empresaDoToken(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), empresaID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Produto não encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProdutosHandler) Atualizar(c *gin.Context) {
	empresaID, ok := empresaDoToken(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), empresaID, id, req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrProdutoNaoEncontrado) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProdutosHandler) Desativar(c *gin.Context) {
	empresaID, ok := empresaDoToken(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Desativar(c.Request.Context(), empresaID, id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Ficha técnica ────────────────────────────────────────────────────────────

func (h *ProdutosHandler) ListarFicha(c *gin.Context) {
	empresaID, ok := empresaDoToken(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListarFicha(c.Request.Context(), empresaID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProdutosHandler) SubstituirFicha(c *gin.Context) {
	empresaID, ok := empresaDoToken(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.SubstituirFichaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SubstituirFicha(c.Request.Context(), empresaID, id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Preços por canal ─────────────────────────────────────────────────────────

func (h *ProdutosHandler) ListarPrecos(c *gin.Context) {
	empresaID, ok := empresaDoToken(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListarPrecos(c.Request.Context(), empresaID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProdutosHandler) SubstituirPrecos(c *gin.Context) {
	empresaID, ok := empresaDoToken(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.SubstituirPrecosRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SubstituirPrecos(c.Request.Context(), empresaID, id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Custo ────────────────────────────────────────────────────────────────────

func (h *ProdutosHandler) Custo(c *gin.Context) {
	empresaID, ok := empresaDoToken(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Custo(c.Request.Context(), empresaID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
