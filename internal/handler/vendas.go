package handler

import (
	"errors"
	"net/http"

	"pontodevalor/internal/apierror"
	"pontodevalor/internal/dto"
	"pontodevalor/internal/service"

	"github.com/gin-gonic/gin"
)

type VendasHandler struct{ svc service.VendaService }

func NewVendasHandler(svc service.VendaService) *VendasHandler { return &VendasHandler{svc: svc} }

// Registrar cria a venda e dá baixa no estoque em um único passo.
func (h *VendasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	venda, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrPecaNaoEncontrada) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, venda)
}

// Listar retorna o histórico de vendas, mais recente primeiro.
func (h *VendasHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Listar(c.Request.Context()))
}
