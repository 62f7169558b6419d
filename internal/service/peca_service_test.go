package service

import (
	"context"
	"testing"

	"pontodevalor/internal/dto"
	"pontodevalor/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPecaSalvar_CriaComPadroes(t *testing.T) {
	st := novoStoreTeste(t)
	svc := NewPecaService(st)

	p := svc.Salvar(context.Background(), dto.SalvarPecaRequest{})

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, model.NomePadraoPeca, p.Nome)
	assert.NotNil(t, p.Fotos)
	assert.Empty(t, p.Fotos)
	assert.True(t, p.CustoFio.IsZero())
	assert.Zero(t, p.Estoque)
	assert.False(t, p.CriadaEm.IsZero())
}

func TestPecaSalvar_PrependMaisRecentePrimeiro(t *testing.T) {
	st := novoStoreTeste(t)

	primeira := seedPeca(t, st, "Touca", 1)
	segunda := seedPeca(t, st, "Cachecol", 1)

	pecas := st.Pecas()
	require.Len(t, pecas, 2)
	assert.Equal(t, segunda.ID, pecas[0].ID)
	assert.Equal(t, primeira.ID, pecas[1].ID)
}

func TestPecaSalvar_EdicaoPreservaIdentidadeEPosicao(t *testing.T) {
	st := novoStoreTeste(t)
	svc := NewPecaService(st)

	antiga := seedPeca(t, st, "Touca", 5)
	seedPeca(t, st, "Cachecol", 1)

	editada := svc.Salvar(context.Background(), dto.SalvarPecaRequest{
		ID:         antiga.ID,
		Nome:       "Touca de lã",
		Fotos:      []string{"nova.png"},
		CustoFio:   d(15),
		Estoque:    7,
		PrecoVenda: d(60),
	})

	assert.Equal(t, antiga.ID, editada.ID)
	assert.Equal(t, antiga.CriadaEm, editada.CriadaEm)
	assert.Equal(t, "Touca de lã", editada.Nome)
	assert.Equal(t, 7, editada.Estoque)

	pecas := st.Pecas()
	require.Len(t, pecas, 2)
	// a peça editada permanece na posição original (aqui, a mais antiga).
	assert.Equal(t, antiga.ID, pecas[1].ID)
	assert.Equal(t, "Touca de lã", pecas[1].Nome)
}

func TestPecaSalvar_IdDesconhecidoCaiNaCriacao(t *testing.T) {
	st := novoStoreTeste(t)
	svc := NewPecaService(st)

	p := svc.Salvar(context.Background(), dto.SalvarPecaRequest{
		ID:   "piece-inexistente",
		Nome: "Amigurumi",
	})

	assert.NotEqual(t, "piece-inexistente", p.ID)
	assert.Len(t, st.Pecas(), 1)
}

func TestPecaApagar_SemCascata(t *testing.T) {
	st := novoStoreTeste(t)
	pecas := NewPecaService(st)
	vendas := NewVendaService(st)

	p := seedPeca(t, st, "Touca", 5)
	venda, err := vendas.Registrar(context.Background(), dto.RegistrarVendaRequest{PecaID: p.ID, Quantidade: 1})
	require.NoError(t, err)

	pecas.Apagar(context.Background(), p.ID)

	assert.Empty(t, st.Pecas())
	// o histórico sobrevive pela desnormalização.
	sobreviventes := st.Vendas()
	require.Len(t, sobreviventes, 1)
	assert.Equal(t, venda.ID, sobreviventes[0].ID)
	assert.Equal(t, "Touca", sobreviventes[0].PecaNome)
}

func TestPecaApagar_IdDesconhecidoNoOp(t *testing.T) {
	st := novoStoreTeste(t)
	seedPeca(t, st, "Touca", 1)

	NewPecaService(st).Apagar(context.Background(), "piece-nada")

	assert.Len(t, st.Pecas(), 1)
}

func TestPecaListar_FiltrosEPrecificacao(t *testing.T) {
	st := novoStoreTeste(t)
	svc := NewPecaService(st)

	seedPeca(t, st, "Touca infantil", 0)
	seedPeca(t, st, "Cachecol", 3)

	todas := svc.Listar(context.Background(), dto.PecaFilter{})
	require.Len(t, todas, 2)
	// ajustes padrão: custo base 42, sugerido 84.
	assert.True(t, todas[0].CustoBase.Equal(d(42)), "custo base %s", todas[0].CustoBase)
	assert.True(t, todas[0].PrecoSugerido.Equal(d(84)), "sugerido %s", todas[0].PrecoSugerido)

	porBusca := svc.Listar(context.Background(), dto.PecaFilter{Busca: "touca"})
	require.Len(t, porBusca, 1)
	assert.Equal(t, "Touca infantil", porBusca[0].Nome)

	emEstoque := svc.Listar(context.Background(), dto.PecaFilter{EmEstoque: true})
	require.Len(t, emEstoque, 1)
	assert.Equal(t, "Cachecol", emEstoque[0].Nome)
}

func TestPecaSimularPreco_SemEfeitoColateral(t *testing.T) {
	st := novoStoreTeste(t)
	svc := NewPecaService(st)

	det := svc.SimularPreco(context.Background(), dto.SimularPrecoRequest{
		CustoFio:        d(10),
		CustoAviamentos: d(2),
		TempoHoras:      1,
		TempoMinutos:    30,
	})

	assert.True(t, det.CustoBase.Equal(d(42)))
	assert.True(t, det.PrecoSugerido.Equal(d(84)))
	assert.Empty(t, st.Pecas())
}
