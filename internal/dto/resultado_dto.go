package dto

import "github.com/shopspring/decimal"

// ResultadoFilter é vinculado da query string de GET /v1/resultados.
type ResultadoFilter struct {
	Periodo string `form:"periodo,default=month" validate:"oneof=week month year"`
}

// RankingItem é uma entrada do ranking de lucro por peça.
type RankingItem struct {
	Nome  string          `json:"name"`
	Lucro decimal.Decimal `json:"profit"`
}

// ResultadoResponse agrega as vendas da janela pedida. Janela vazia produz
// totais zerados e ranking vazio — o chamador distingue "sem vendas" apenas
// pela contagem, nunca por um erro.
type ResultadoResponse struct {
	LucroTotal      decimal.Decimal `json:"totalProfit"`
	ReceitaTotal    decimal.Decimal `json:"totalRevenue"`
	CustoTotal      decimal.Decimal `json:"totalCost"`
	Ranking         []RankingItem   `json:"topPieces"`
	VendasNoPeriodo int             `json:"salesInPeriod"`
}
