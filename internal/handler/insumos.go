package handler

import (
	"errors"
	"net/http"

	"tempero/internal/apierror"
	"tempero/internal/dto"
	"tempero/internal/service"

	"github.com/gin-gonic/gin"
)

type InsumosHandler struct{ svc service.InsumoService }

func NewInsumosHandler(svc service.InsumoService) *InsumosHandler {
	return &InsumosHandler{svc: svc}
}

func (h *InsumosHandler) Criar(c *gin.Context) {
	empresaID, ok := empresaDoToken(c)
	if !ok {
		return
	}
	var req dto.CriarInsumoRequest
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

func (h *InsumosHandler) Listar(c *gin.Context) {
	empresaID, ok := empresaDoToken(c)
	if !ok {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), empresaID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar insumos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InsumosHandler) ObterPorID(c *gin.Context) {
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
		c.JSON(http.StatusNotFound, apierror.New("Insumo não encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InsumosHandler) Atualizar(c *gin.Context) {
	empresaID, ok := empresaDoToken(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarInsumoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), empresaID, id, req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrInsumoNaoEncontrado) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InsumosHandler) Excluir(c *gin.Context) {
	empresaID, ok := empresaDoToken(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), empresaID, id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
