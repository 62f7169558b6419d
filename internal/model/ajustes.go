package model

import "github.com/shopspring/decimal"

// Ajustes é a configuração global do ateliê — singleton persistido.
// Salvar sobrescreve o registro inteiro; não existe merge parcial.
type Ajustes struct {
	NomeAtelie  string          `json:"atelierName"`
	ValorHora   decimal.Decimal `json:"hourlyRate"`
	MargemLucro decimal.Decimal `json:"profitMargin"` // em percentual, ex.: 100
}

// AjustesPadrao são os valores aplicados na primeira execução.
func AjustesPadrao() Ajustes {
	return Ajustes{
		NomeAtelie:  "Meu Ateliê",
		ValorHora:   decimal.NewFromInt(20),
		MargemLucro: decimal.NewFromInt(100),
	}
}
