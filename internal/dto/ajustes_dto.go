package dto

import "github.com/shopspring/decimal"

// SalvarAjustesRequest sobrescreve os ajustes por inteiro — sem merge parcial.
type SalvarAjustesRequest struct {
	NomeAtelie  string          `json:"atelierName" validate:"required"`
	ValorHora   decimal.Decimal `json:"hourlyRate"   validate:"min=0"`
	MargemLucro decimal.Decimal `json:"profitMargin" validate:"min=0"`
}
