// Package pricing é o motor de precificação: funções puras que derivam custo
// base e preço sugerido de uma peça a partir dos ajustes do ateliê.
// Não há validação — valores negativos ou zero são tolerados (garbage in,
// garbage out) e o resultado é recalculado ao vivo enquanto o rascunho é
// editado, antes de salvar.
package pricing

import (
	"pontodevalor/internal/model"

	"github.com/shopspring/decimal"
)

var (
	sessenta = decimal.NewFromInt(60)
	cem      = decimal.NewFromInt(100)
)

// Detalhe é o resultado decomposto do cálculo de preço de uma peça.
type Detalhe struct {
	CustoMaterial decimal.Decimal `json:"materialCost"`
	CustoTempo    decimal.Decimal `json:"timeCost"`
	CustoBase     decimal.Decimal `json:"baseCost"`
	PrecoSugerido decimal.Decimal `json:"suggestedPrice"`
}

// CustoTempo = (horas + minutos/60) × valor-hora.
func CustoTempo(p model.Peca, a model.Ajustes) decimal.Decimal {
	minutosTotais := decimal.NewFromInt(int64(p.TempoHoras*60 + p.TempoMinutos))
	return minutosTotais.Div(sessenta).Mul(a.ValorHora)
}

// CustoMaterial = fio + aviamentos + outros custos.
func CustoMaterial(p model.Peca) decimal.Decimal {
	return p.CustoFio.Add(p.CustoAviamentos).Add(p.OutrosCustos)
}

// CustoBase é o custo por unidade: material + tempo.
func CustoBase(p model.Peca, a model.Ajustes) decimal.Decimal {
	return CustoMaterial(p).Add(CustoTempo(p, a))
}

// PrecoSugerido = custo base × (1 + margem/100).
func PrecoSugerido(p model.Peca, a model.Ajustes) decimal.Decimal {
	return CustoBase(p, a).Mul(decimal.NewFromInt(1).Add(a.MargemLucro.Div(cem)))
}

// Calcular retorna a decomposição completa em uma passada.
func Calcular(p model.Peca, a model.Ajustes) Detalhe {
	material := CustoMaterial(p)
	tempo := CustoTempo(p, a)
	base := material.Add(tempo)
	return Detalhe{
		CustoMaterial: material,
		CustoTempo:    tempo,
		CustoBase:     base,
		PrecoSugerido: base.Mul(decimal.NewFromInt(1).Add(a.MargemLucro.Div(cem))),
	}
}
