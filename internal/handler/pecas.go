package handler

import (
	"net/http"

	"pontodevalor/internal/dto"
	"pontodevalor/internal/service"

	"github.com/gin-gonic/gin"
)

type PecasHandler struct{ svc service.PecaService }

func NewPecasHandler(svc service.PecaService) *PecasHandler { return &PecasHandler{svc: svc} }

// Listar retorna o catálogo filtrado, cada peça enriquecida com a
// precificação vigente (custo base e preço sugerido).
func (h *PecasHandler) Listar(c *gin.Context) {
	var filter dto.PecaFilter
	_ = c.ShouldBindQuery(&filter)
	c.JSON(http.StatusOK, h.svc.Listar(c.Request.Context(), filter))
}

// Salvar cria (sem id) ou edita (com id) uma peça. A exigência de nome e ao
// menos uma foto vive aqui, na borda — o motor aceita qualquer entrada.
func (h *PecasHandler) Salvar(c *gin.Context) {
	var req dto.SalvarPecaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	peca := h.svc.Salvar(c.Request.Context(), req)
	status := http.StatusCreated
	if req.ID == peca.ID {
		status = http.StatusOK // edição em vigor
	}
	c.JSON(status, peca)
}

// Apagar remove a peça incondicionalmente — sem cascata em vendas/encomendas.
func (h *PecasHandler) Apagar(c *gin.Context) {
	h.svc.Apagar(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// SimularPreco recalcula o preço de um rascunho enquanto a usuária edita o
// formulário — nenhum estado é tocado.
func (h *PecasHandler) SimularPreco(c *gin.Context) {
	var req dto.SimularPrecoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.SimularPreco(c.Request.Context(), req))
}
