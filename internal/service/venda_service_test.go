package service

import (
	"context"
	"testing"

	"pontodevalor/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendaRegistrar_CongelaValoresEDaBaixa(t *testing.T) {
	st := novoStoreTeste(t)
	svc := NewVendaService(st)

	p := seedPeca(t, st, "Touca", 5)

	venda, err := svc.Registrar(context.Background(), dto.RegistrarVendaRequest{PecaID: p.ID, Quantidade: 2})
	require.NoError(t, err)

	assert.Equal(t, p.ID, venda.PecaID)
	assert.Equal(t, "Touca", venda.PecaNome)
	assert.Equal(t, 2, venda.Quantidade)
	// preço de venda 50 × 2; custo base 42 por unidade; lucro 100 − 84.
	assert.True(t, venda.PrecoVenda.Equal(d(100)), "total %s", venda.PrecoVenda)
	assert.True(t, venda.CustoBase.Equal(d(42)), "custo base %s", venda.CustoBase)
	assert.True(t, venda.Lucro.Equal(d(16)), "lucro %s", venda.Lucro)

	depois, ok := pecaPorID(st, p.ID)
	require.True(t, ok)
	assert.Equal(t, 3, depois.Estoque)
}

func TestVendaRegistrar_PecaInexistente(t *testing.T) {
	st := novoStoreTeste(t)
	svc := NewVendaService(st)

	_, err := svc.Registrar(context.Background(), dto.RegistrarVendaRequest{PecaID: "piece-nada", Quantidade: 1})

	assert.ErrorIs(t, err, ErrPecaNaoEncontrada)
	assert.Empty(t, st.Vendas())
}

func TestVendaRegistrar_SemClampDeEstoque(t *testing.T) {
	st := novoStoreTeste(t)
	svc := NewVendaService(st)

	p := seedPeca(t, st, "Touca", 1)

	_, err := svc.Registrar(context.Background(), dto.RegistrarVendaRequest{PecaID: p.ID, Quantidade: 3})
	require.NoError(t, err)

	depois, ok := pecaPorID(st, p.ID)
	require.True(t, ok)
	assert.Equal(t, -2, depois.Estoque)
}

func TestVendaRegistrar_MaisRecentePrimeiro(t *testing.T) {
	st := novoStoreTeste(t)
	svc := NewVendaService(st)

	p := seedPeca(t, st, "Touca", 10)

	primeira, err := svc.Registrar(context.Background(), dto.RegistrarVendaRequest{PecaID: p.ID, Quantidade: 1})
	require.NoError(t, err)
	segunda, err := svc.Registrar(context.Background(), dto.RegistrarVendaRequest{PecaID: p.ID, Quantidade: 1})
	require.NoError(t, err)

	vendas := svc.Listar(context.Background())
	require.Len(t, vendas, 2)
	assert.Equal(t, segunda.ID, vendas[0].ID)
	assert.Equal(t, primeira.ID, vendas[1].ID)
}

func TestVendaRegistrar_SnapshotSobreviveEdicaoDaPeca(t *testing.T) {
	st := novoStoreTeste(t)
	vendas := NewVendaService(st)
	pecas := NewPecaService(st)

	p := seedPeca(t, st, "Touca", 5)
	venda, err := vendas.Registrar(context.Background(), dto.RegistrarVendaRequest{PecaID: p.ID, Quantidade: 1})
	require.NoError(t, err)

	pecas.Salvar(context.Background(), dto.SalvarPecaRequest{
		ID:         p.ID,
		Nome:       "Touca renomeada",
		Fotos:      p.Fotos,
		PrecoVenda: d(999),
	})

	registradas := vendas.Listar(context.Background())
	require.Len(t, registradas, 1)
	assert.Equal(t, venda.ID, registradas[0].ID)
	assert.Equal(t, "Touca", registradas[0].PecaNome)
	assert.True(t, registradas[0].PrecoVenda.Equal(d(50)))
}
