package service

import (
	"context"
	"testing"

	"pontodevalor/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAjustesObter_Padroes(t *testing.T) {
	st := novoStoreTeste(t)

	aj := NewAjustesService(st).Obter(context.Background())

	assert.Equal(t, "Meu Ateliê", aj.NomeAtelie)
	assert.True(t, aj.ValorHora.Equal(d(20)))
	assert.True(t, aj.MargemLucro.Equal(d(100)))
}

func TestAjustesSalvar_SobrescreveEAfetaPrecificacao(t *testing.T) {
	st := novoStoreTeste(t)
	svc := NewAjustesService(st)

	svc.Salvar(context.Background(), dto.SalvarAjustesRequest{
		NomeAtelie:  "Ateliê da Ana",
		ValorHora:   d(40),
		MargemLucro: d(50),
	})

	aj := svc.Obter(context.Background())
	assert.Equal(t, "Ateliê da Ana", aj.NomeAtelie)

	// valor-hora 40: 12 de material + 60 de tempo = 72; margem 50% → 108.
	det := NewPecaService(st).SimularPreco(context.Background(), dto.SimularPrecoRequest{
		CustoFio:        d(10),
		CustoAviamentos: d(2),
		TempoHoras:      1,
		TempoMinutos:    30,
	})
	require.True(t, det.CustoBase.Equal(d(72)), "custo base %s", det.CustoBase)
	assert.True(t, det.PrecoSugerido.Equal(d(108)), "sugerido %s", det.PrecoSugerido)
}
