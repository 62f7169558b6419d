package dto

import "github.com/shopspring/decimal"

// EncomendaItemRequest é uma linha da encomenda. Na criação o snapshot
// (nome, foto, preço unitário) é resolvido da peça viva quando ela existe;
// os campos enviados só são mantidos quando o pieceId não resolve mais.
type EncomendaItemRequest struct {
	PecaID        string          `json:"pieceId"  validate:"required"`
	Quantidade    int             `json:"quantity" validate:"required,min=1"`
	PecaNome      string          `json:"pieceName"`
	PecaFoto      string          `json:"piecePhoto"`
	PrecoUnitario decimal.Decimal `json:"salePricePerUnit"`
}

// SalvarEncomendaRequest — id presente = edição (substitui cliente e itens,
// sem mexer no estoque), ausente = criação (baixa de estoque por item).
type SalvarEncomendaRequest struct {
	ID      string                 `json:"id"`
	Cliente string                 `json:"clientName" validate:"required"`
	Itens   []EncomendaItemRequest `json:"items"      validate:"required,min=1,dive"`
}

// AtualizarStatusRequest alterna o status binário da encomenda.
type AtualizarStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending sent"`
}
