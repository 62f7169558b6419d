package service

import (
	"context"
	"testing"

	"pontodevalor/internal/dto"
	"pontodevalor/internal/model"
	"pontodevalor/internal/repository"
	"pontodevalor/internal/store"

	"github.com/shopspring/decimal"
)

// ── Helpers compartilhados pelos testes do pacote ────────────────────────────

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func novoStoreTeste(t *testing.T) *store.Store {
	t.Helper()
	kv := repository.NewMemoryKV()
	return store.Carregar(context.Background(), repository.NewEstadoRepository(kv))
}

// seedPeca cria a peça de referência dos exemplos: fio 10, aviamentos 2,
// 1h30 de trabalho, estoque 5, preço de venda 50. Com os ajustes padrão
// (valor-hora 20, margem 100) o custo base é 42 e o sugerido 84.
func seedPeca(t *testing.T, st *store.Store, nome string, estoque int) model.Peca {
	t.Helper()
	return NewPecaService(st).Salvar(context.Background(), dto.SalvarPecaRequest{
		Nome:            nome,
		Fotos:           []string{"data:image/png;base64,xxx"},
		CustoFio:        d(10),
		CustoAviamentos: d(2),
		TempoHoras:      1,
		TempoMinutos:    30,
		Estoque:         estoque,
		PrecoVenda:      d(50),
	})
}

func pecaPorID(st *store.Store, id string) (model.Peca, bool) {
	for _, p := range st.Pecas() {
		if p.ID == id {
			return p, true
		}
	}
	return model.Peca{}, false
}
