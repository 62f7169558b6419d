package store

import (
	"context"
	"testing"

	"pontodevalor/internal/model"
	"pontodevalor/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoStore(t *testing.T) (*Store, *repository.MemoryKV) {
	t.Helper()
	kv := repository.NewMemoryKV()
	return Carregar(context.Background(), repository.NewEstadoRepository(kv)), kv
}

func TestCarregar_PrimeiraExecucao(t *testing.T) {
	st, _ := novoStore(t)
	assert.Equal(t, "Meu Ateliê", st.Ajustes().NomeAtelie)
	assert.Empty(t, st.Pecas())
	assert.Empty(t, st.Vendas())
	assert.Empty(t, st.Encomendas())
}

func TestAtualizar_EspelhaNoStorage(t *testing.T) {
	ctx := context.Background()
	st, kv := novoStore(t)

	st.Atualizar(ctx, func(e *Estado) {
		e.Pecas = append(e.Pecas, model.Peca{ID: "piece-1", Nome: "Touca"})
	})

	// Um segundo Store sobre o mesmo KV enxerga a mutação espelhada.
	reaberto := Carregar(ctx, repository.NewEstadoRepository(kv))
	require.Len(t, reaberto.Pecas(), 1)
	assert.Equal(t, "Touca", reaberto.Pecas()[0].Nome)
}

func TestAtualizar_FalhaDeEscritaNaoDesfazMemoria(t *testing.T) {
	ctx := context.Background()
	st, kv := novoStore(t)
	kv.FalharEscrita = true

	st.Atualizar(ctx, func(e *Estado) {
		e.Pecas = append(e.Pecas, model.Peca{ID: "piece-1"})
	})

	// O estado em memória segue autoritativo mesmo com o espelho perdido.
	assert.Len(t, st.Pecas(), 1)
}

func TestSnapshots_SaoCopias(t *testing.T) {
	ctx := context.Background()
	st, _ := novoStore(t)
	st.Atualizar(ctx, func(e *Estado) {
		e.Pecas = []model.Peca{{ID: "piece-1", Nome: "Bolsa", Fotos: []string{"a"}}}
		e.Encomendas = []model.Encomenda{{ID: "order-1", Itens: []model.EncomendaItem{{PecaID: "piece-1", Quantidade: 1}}}}
	})

	pecas := st.Pecas()
	pecas[0].Nome = "Mutada"
	pecas[0].Fotos[0] = "mutada"
	encomendas := st.Encomendas()
	encomendas[0].Itens[0].Quantidade = 99

	assert.Equal(t, "Bolsa", st.Pecas()[0].Nome)
	assert.Equal(t, "a", st.Pecas()[0].Fotos[0])
	assert.Equal(t, 1, st.Encomendas()[0].Itens[0].Quantidade)
}
