package handler

import (
	"net/http"

	"tempero/internal/apierror"
	"tempero/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CardapioHandler serves the public digital-menu endpoint.
// No authentication required — no side effects whatsoever.
type CardapioHandler struct{ svc service.CardapioService }

func NewCardapioHandler(svc service.CardapioService) *CardapioHandler {
	return &CardapioHandler{svc: svc}
}

// Obter godoc
// @Summary Cardápio digital público de uma empresa
// @Tags cardapio
// @Produce json
// @Param empresaId path string true "ID da empresa"
// @Success 200 {object} dto.CardapioResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/cardapio/{empresaId} [get]
func (h *CardapioHandler) Obter(c *gin.Context) {
	empresaID, err := uuid.Parse(c.Param("empresaId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Obter(c.Request.Context(), empresaID)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Empresa não encontrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
