package dto

import (
	"pontodevalor/internal/model"

	"github.com/shopspring/decimal"
)

// PecaFilter é vinculado da query string de GET /v1/pecas.
type PecaFilter struct {
	Categoria string `form:"categoria"`
	Busca     string `form:"busca"`      // substring do nome, sem caixa
	EmEstoque bool   `form:"em_estoque"` // true = apenas estoque > 0
}

// SalvarPecaRequest carrega todos os campos da peça exceto id/criadaEm;
// id presente = edição, ausente = criação. Nome e ao menos uma foto são
// exigidos na borda HTTP — o core em si aplica apenas os defaults de criação.
type SalvarPecaRequest struct {
	ID              string          `json:"id"`
	Nome            string          `json:"name"      validate:"required"`
	Categoria       string          `json:"category"`
	Fotos           []string        `json:"photos"    validate:"required,min=1"`
	CustoFio        decimal.Decimal `json:"yarnCost"        validate:"min=0"`
	CustoAviamentos decimal.Decimal `json:"accessoriesCost" validate:"min=0"`
	OutrosCustos    decimal.Decimal `json:"otherCosts"      validate:"min=0"`
	TempoHoras      int             `json:"timeHours"   validate:"min=0"`
	TempoMinutos    int             `json:"timeMinutes" validate:"min=0"`
	Estoque         int             `json:"stock"`
	PrecoVenda      decimal.Decimal `json:"salePrice" validate:"min=0"`
}

// PecaResponse é a peça persistida enriquecida com a precificação atual.
type PecaResponse struct {
	model.Peca
	CustoBase     decimal.Decimal `json:"baseCost"`
	PrecoSugerido decimal.Decimal `json:"suggestedPrice"`
}

// SimularPrecoRequest é o rascunho de peça usado pelo cálculo ao vivo —
// nenhum campo é obrigatório, o motor tolera zeros.
type SimularPrecoRequest struct {
	CustoFio        decimal.Decimal `json:"yarnCost"`
	CustoAviamentos decimal.Decimal `json:"accessoriesCost"`
	OutrosCustos    decimal.Decimal `json:"otherCosts"`
	TempoHoras      int             `json:"timeHours"`
	TempoMinutos    int             `json:"timeMinutes"`
}
