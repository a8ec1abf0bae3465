package handler

import (
	"errors"
	"net/http"

	"tempero/internal/apierror"
	"tempero/internal/dto"
	"tempero/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MigracaoHandler exposes the cross-tenant catalog migration. The route is
// gated behind the admin role by the router; responses follow the admin SPA
// contract ({preview}, {success, result}, {error}).
type MigracaoHandler struct{ svc service.MigracaoService }

func NewMigracaoHandler(svc service.MigracaoService) *MigracaoHandler {
	return &MigracaoHandler{svc: svc}
}

// Executar godoc
// @Summary Migra o catálogo entre empresas (preview ou migrate)
// @Tags migracao
// @Accept json
// @Produce json
// @Param body body dto.MigracaoRequest true "Ação e empresas"
// @Success 200 {object} dto.MigracaoResponse
// @Failure 400 {object} apierror.Generic
// @Failure 409 {object} apierror.Generic
// @Failure 500 {object} apierror.Generic
// @Router /v1/migracao [post]
func (h *MigracaoHandler) Executar(c *gin.Context) {
	var req dto.MigracaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewGeneric("JSON inválido"))
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewGeneric("empresaOrigemId e empresaDestinoId são obrigatórios"))
		return
	}

	origemID, err := uuid.Parse(req.EmpresaOrigemID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewGeneric("empresaOrigemId inválido"))
		return
	}
	destinoID, err := uuid.Parse(req.EmpresaDestinoID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewGeneric("empresaDestinoId inválido"))
		return
	}

	ctx := c.Request.Context()
	switch req.Action {
	case "preview":
		preview, err := h.svc.Preview(ctx, origemID, destinoID)
		if err != nil {
			h.responderErro(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MigracaoPreviewResponse{Preview: *preview})

	case "migrate":
		result, err := h.svc.Migrar(ctx, origemID, destinoID)
		if err != nil {
			h.responderErro(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MigracaoResponse{Success: true, Result: *result})

	default:
		c.JSON(http.StatusBadRequest, apierror.NewGeneric("invalid action"))
	}
}

func (h *MigracaoHandler) responderErro(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMesmaEmpresa), errors.Is(err, service.ErrEmpresaNaoEncontrada):
		c.JSON(http.StatusBadRequest, apierror.NewGeneric(err.Error()))
	case errors.Is(err, service.ErrMigracaoEmAndamento):
		c.JSON(http.StatusConflict, apierror.NewGeneric(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, apierror.NewGeneric(err.Error()))
	}
}
