package handler

import (
	"net/http"

	"pontodevalor/internal/dto"
	"pontodevalor/internal/service"

	"github.com/gin-gonic/gin"
)

type EncomendasHandler struct{ svc service.EncomendaService }

func NewEncomendasHandler(svc service.EncomendaService) *EncomendasHandler {
	return &EncomendasHandler{svc: svc}
}

func (h *EncomendasHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Listar(c.Request.Context()))
}

// Salvar cria (sem id, com baixa de estoque) ou edita (com id, sem mexer no
// estoque) uma encomenda. Nome do cliente e ao menos um item são exigidos
// aqui na borda. Edição de id que não resolve é no-op — 204, como nos demais
// no-ops de id desconhecido.
func (h *EncomendasHandler) Salvar(c *gin.Context) {
	var req dto.SalvarEncomendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	enc := h.svc.Salvar(c.Request.Context(), req)
	if enc.ID == "" {
		c.Status(http.StatusNoContent)
		return
	}
	status := http.StatusCreated
	if req.ID == enc.ID {
		status = http.StatusOK
	}
	c.JSON(status, enc)
}

// Apagar restaura o estoque dos itens e remove a encomenda.
// Id desconhecido é no-op — 204 nos dois casos, sem sinal de erro distinto.
func (h *EncomendasHandler) Apagar(c *gin.Context) {
	h.svc.Apagar(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// AtualizarStatus alterna pending ⇄ sent. Sem efeito no estoque; id
// desconhecido é no-op.
func (h *EncomendasHandler) AtualizarStatus(c *gin.Context) {
	var req dto.AtualizarStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	h.svc.AtualizarStatus(c.Request.Context(), c.Param("id"), req.Status)
	c.Status(http.StatusNoContent)
}
