package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de uma encomenda — alterna entre os dois valores, sem estado terminal.
const (
	StatusPendente = "pending"
	StatusEnviada  = "sent"
)

// EncomendaItem é uma linha de encomenda com snapshot da peça no momento da
// criação (nome, foto e preço unitário congelados).
type EncomendaItem struct {
	PecaID        string          `json:"pieceId"`
	PecaNome      string          `json:"pieceName"`
	PecaFoto      string          `json:"piecePhoto"`
	Quantidade    int             `json:"quantity"`
	PrecoUnitario decimal.Decimal `json:"salePricePerUnit"`
}

// Encomenda é um compromisso de cliente, pendente ou enviado.
type Encomenda struct {
	ID       string          `json:"id"`
	Cliente  string          `json:"clientName"`
	Itens    []EncomendaItem `json:"items"`
	CriadaEm time.Time       `json:"createdAt"`
	Status   string          `json:"status"`
}

// ValorTotal soma preço unitário × quantidade de todas as linhas.
func (e Encomenda) ValorTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range e.Itens {
		total = total.Add(item.PrecoUnitario.Mul(decimal.NewFromInt(int64(item.Quantidade))))
	}
	return total
}
