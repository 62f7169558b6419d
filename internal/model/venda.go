package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venda é o registro imutável de uma transação concluída.
// Nome e foto da peça são cópias congeladas no momento da venda — edições ou
// exclusão posterior da peça não afetam o histórico.
type Venda struct {
	ID         string          `json:"id"`
	PecaID     string          `json:"pieceId"`
	PecaNome   string          `json:"pieceName"`
	PecaFoto   string          `json:"piecePhoto"`
	Quantidade int             `json:"quantity"`
	// PrecoVenda é o valor TOTAL da transação (unitário × quantidade).
	PrecoVenda decimal.Decimal `json:"salePrice"`
	// CustoBase é o custo POR UNIDADE no momento da venda.
	CustoBase decimal.Decimal `json:"baseCost"`
	Lucro     decimal.Decimal `json:"profit"`
	Data      time.Time       `json:"date"`
}
