package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Peca é um item vendável do estoque do ateliê.
// ID e CriadaEm são imutáveis após a criação; o estoque pode ficar negativo
// quando o chamador ignora a pré-condição de venda (sem clamp no core).
type Peca struct {
	ID              string          `json:"id"`
	Nome            string          `json:"name"`
	Categoria       string          `json:"category"`
	Fotos           []string        `json:"photos"`
	CustoFio        decimal.Decimal `json:"yarnCost"`
	CustoAviamentos decimal.Decimal `json:"accessoriesCost"`
	OutrosCustos    decimal.Decimal `json:"otherCosts"`
	TempoHoras      int             `json:"timeHours"`
	TempoMinutos    int             `json:"timeMinutes"`
	Estoque         int             `json:"stock"`
	PrecoVenda      decimal.Decimal `json:"salePrice"`
	CriadaEm        time.Time       `json:"createdAt"`
}

// NomePadraoPeca é usado quando uma peça é salva sem nome.
const NomePadraoPeca = "Nova Peça"

// FotoPrincipal retorna a primeira foto da peça, ou "" quando não há fotos.
// É o valor congelado em Venda.PecaFoto e EncomendaItem.PecaFoto.
func (p Peca) FotoPrincipal() string {
	if len(p.Fotos) == 0 {
		return ""
	}
	return p.Fotos[0]
}
