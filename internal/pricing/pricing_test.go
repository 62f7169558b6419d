package pricing

import (
	"testing"

	"pontodevalor/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func TestCalcular_ExemploReferencia(t *testing.T) {
	// fio 10 + aviamentos 2, 1h30 a R$20/h, margem 100%
	p := model.Peca{
		CustoFio:        d(10),
		CustoAviamentos: d(2),
		OutrosCustos:    d(0),
		TempoHoras:      1,
		TempoMinutos:    30,
	}
	a := model.Ajustes{ValorHora: d(20), MargemLucro: d(100)}

	det := Calcular(p, a)
	assert.True(t, det.CustoMaterial.Equal(d(12)), "material = %s", det.CustoMaterial)
	assert.True(t, det.CustoTempo.Equal(d(30)), "tempo = %s", det.CustoTempo)
	assert.True(t, det.CustoBase.Equal(d(42)), "base = %s", det.CustoBase)
	assert.True(t, det.PrecoSugerido.Equal(d(84)), "sugerido = %s", det.PrecoSugerido)
}

func TestCustoTempo_SomenteMinutos(t *testing.T) {
	p := model.Peca{TempoMinutos: 45}
	a := model.Ajustes{ValorHora: d(40)}
	assert.True(t, CustoTempo(p, a).Equal(d(30)))
}

func TestCalcular_ZerosToleram(t *testing.T) {
	det := Calcular(model.Peca{}, model.Ajustes{})
	assert.True(t, det.CustoBase.IsZero())
	assert.True(t, det.PrecoSugerido.IsZero())
}

func TestCalcular_SemValidacao_ValoresNegativos(t *testing.T) {
	// O core não valida: entrada negativa produz saída negativa.
	p := model.Peca{CustoFio: d(-5)}
	a := model.Ajustes{MargemLucro: d(100)}
	det := Calcular(p, a)
	assert.True(t, det.PrecoSugerido.Equal(d(-10)))
}

func TestPrecoSugerido_MargemZero(t *testing.T) {
	p := model.Peca{CustoFio: d(33.5)}
	a := model.Ajustes{MargemLucro: decimal.Zero}
	assert.True(t, PrecoSugerido(p, a).Equal(d(33.5)))
}
