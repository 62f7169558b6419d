package handler

import (
	"net/http"

	"pontodevalor/internal/dto"
	"pontodevalor/internal/service"

	"github.com/gin-gonic/gin"
)

type AjustesHandler struct{ svc service.AjustesService }

func NewAjustesHandler(svc service.AjustesService) *AjustesHandler {
	return &AjustesHandler{svc: svc}
}

func (h *AjustesHandler) Obter(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Obter(c.Request.Context()))
}

// Salvar sobrescreve os ajustes por inteiro.
func (h *AjustesHandler) Salvar(c *gin.Context) {
	var req dto.SalvarAjustesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.Salvar(c.Request.Context(), req))
}
