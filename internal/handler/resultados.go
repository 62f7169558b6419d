package handler

import (
	"net/http"

	"pontodevalor/internal/apierror"
	"pontodevalor/internal/dto"
	"pontodevalor/internal/service"

	"github.com/gin-gonic/gin"
)

type ResultadosHandler struct{ svc service.ResultadoService }

func NewResultadosHandler(svc service.ResultadoService) *ResultadosHandler {
	return &ResultadosHandler{svc: svc}
}

// Computar agrega as vendas da janela pedida (?periodo=week|month|year,
// default month). Janela sem vendas responde 200 com totais zerados.
func (h *ResultadosHandler) Computar(c *gin.Context) {
	var filter dto.ResultadoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("periodo deve ser week, month ou year"))
		return
	}
	c.JSON(http.StatusOK, h.svc.Computar(c.Request.Context(), service.Periodo(filter.Periodo)))
}
