package service

import (
	"context"
	"errors"
	"time"

	"pontodevalor/internal/dto"
	"pontodevalor/internal/model"
	"pontodevalor/internal/pricing"
	"pontodevalor/internal/store"

	"github.com/shopspring/decimal"
)

// ErrPecaNaoEncontrada: a venda exige a peça viva para congelar custo e
// snapshot — sem ela não há o que registrar.
var ErrPecaNaoEncontrada = errors.New("peça não encontrada")

// VendaService registra transações concluídas. Vendas são imutáveis: nenhuma
// operação em escopo as altera ou remove depois de criadas.
type VendaService interface {
	Registrar(ctx context.Context, req dto.RegistrarVendaRequest) (model.Venda, error)
	Listar(ctx context.Context) []model.Venda
}

type vendaService struct {
	store *store.Store
}

func NewVendaService(st *store.Store) VendaService { return &vendaService{store: st} }

// Registrar congela custo base por unidade (precificação com o valor-hora
// vigente), calcula total e lucro, insere a venda no topo da coleção e dá
// baixa no estoque — tudo dentro do mesmo passo do store, de modo que o
// espelho persistido nunca observa venda sem baixa (nem o inverso).
// Sem clamp de estoque: quantidade acima do disponível deixa o saldo negativo.
func (s *vendaService) Registrar(ctx context.Context, req dto.RegistrarVendaRequest) (model.Venda, error) {
	var venda model.Venda
	var err error
	s.store.Atualizar(ctx, func(e *store.Estado) {
		idx := -1
		for i := range e.Pecas {
			if e.Pecas[i].ID == req.PecaID {
				idx = i
				break
			}
		}
		if idx < 0 {
			err = ErrPecaNaoEncontrada
			return
		}
		peca := e.Pecas[idx]

		custoBase := pricing.CustoBase(peca, e.Ajustes)
		qtd := decimal.NewFromInt(int64(req.Quantidade))
		total := peca.PrecoVenda.Mul(qtd)

		venda = model.Venda{
			ID:         model.NovoID("sale"),
			PecaID:     peca.ID,
			PecaNome:   peca.Nome,
			PecaFoto:   peca.FotoPrincipal(),
			Quantidade: req.Quantidade,
			PrecoVenda: total,
			CustoBase:  custoBase,
			Lucro:      total.Sub(custoBase.Mul(qtd)),
			Data:       time.Now().UTC(),
		}

		e.Vendas = append([]model.Venda{venda}, e.Vendas...)
		e.Pecas[idx].Estoque -= req.Quantidade
	})
	if err != nil {
		return model.Venda{}, err
	}
	return venda, nil
}

func (s *vendaService) Listar(ctx context.Context) []model.Venda {
	return s.store.Vendas()
}
