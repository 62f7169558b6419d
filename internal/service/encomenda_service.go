package service

import (
	"context"
	"time"

	"pontodevalor/internal/dto"
	"pontodevalor/internal/model"
	"pontodevalor/internal/store"
)

// EncomendaService gerencia compromissos de cliente e seus efeitos no estoque.
// Máquina de estados por encomenda: pending ⇄ sent (alternância binária, sem
// estado terminal).
type EncomendaService interface {
	Salvar(ctx context.Context, req dto.SalvarEncomendaRequest) model.Encomenda
	Apagar(ctx context.Context, id string)
	AtualizarStatus(ctx context.Context, id, status string)
	Listar(ctx context.Context) []model.Encomenda
}

type encomendaService struct {
	store *store.Store
}

func NewEncomendaService(st *store.Store) EncomendaService {
	return &encomendaService{store: st}
}

// Salvar com id presente substitui cliente e itens em vigor e NÃO reajusta o
// estoque — limitação documentada do sistema, não um bug a corrigir em
// silêncio. Id presente que não resolve é no-op: nunca cai na criação (uma
// edição atrasada após o delete não pode ressuscitar a encomenda nem dar
// baixa de novo no estoque). Sem id, cria a encomenda (status pending,
// prepend) e dá uma baixa de estoque por item, aplicada de forma
// independente: ids de peça que não resolvem são pulados em silêncio, sem
// rollback das demais.
func (s *encomendaService) Salvar(ctx context.Context, req dto.SalvarEncomendaRequest) model.Encomenda {
	var salva model.Encomenda
	s.store.Atualizar(ctx, func(e *store.Estado) {
		if req.ID != "" {
			for i := range e.Encomendas {
				if e.Encomendas[i].ID != req.ID {
					continue
				}
				enc := &e.Encomendas[i]
				enc.Cliente = req.Cliente
				enc.Itens = itensComoEnviados(req.Itens)
				salva = *enc
				return
			}
			return
		}

		nova := model.Encomenda{
			ID:       model.NovoID("order"),
			Cliente:  req.Cliente,
			Itens:    itensComSnapshot(e.Pecas, req.Itens),
			CriadaEm: time.Now().UTC(),
			Status:   model.StatusPendente,
		}
		e.Encomendas = append([]model.Encomenda{nova}, e.Encomendas...)

		for _, item := range nova.Itens {
			if idx := indicePeca(e.Pecas, item.PecaID); idx >= 0 {
				e.Pecas[idx].Estoque -= item.Quantidade
			}
		}
		salva = nova
	})
	return salva
}

// itensComSnapshot materializa as linhas da criação: cópia de valor do nome,
// foto e preço unitário da peça viva; quando o id não resolve, a linha é
// mantida com os valores enviados (snapshot de quem chamou).
func itensComSnapshot(pecas []model.Peca, itens []dto.EncomendaItemRequest) []model.EncomendaItem {
	out := make([]model.EncomendaItem, 0, len(itens))
	for _, item := range itens {
		materializado := model.EncomendaItem{
			PecaID:        item.PecaID,
			PecaNome:      item.PecaNome,
			PecaFoto:      item.PecaFoto,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
		}
		if idx := indicePeca(pecas, item.PecaID); idx >= 0 {
			p := pecas[idx]
			materializado.PecaNome = p.Nome
			materializado.PecaFoto = p.FotoPrincipal()
			materializado.PrecoUnitario = p.PrecoVenda
		}
		out = append(out, materializado)
	}
	return out
}

// itensComoEnviados preserva os snapshots que a UI já carrega — na edição o
// preço congelado no momento da criação não é recalculado.
func itensComoEnviados(itens []dto.EncomendaItemRequest) []model.EncomendaItem {
	out := make([]model.EncomendaItem, 0, len(itens))
	for _, item := range itens {
		out = append(out, model.EncomendaItem{
			PecaID:        item.PecaID,
			PecaNome:      item.PecaNome,
			PecaFoto:      item.PecaFoto,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
		})
	}
	return out
}

// Apagar restaura o estoque de cada peça referenciada (inverso exato da baixa
// de criação) e então remove a encomenda. Id desconhecido é no-op.
func (s *encomendaService) Apagar(ctx context.Context, id string) {
	s.store.Atualizar(ctx, func(e *store.Estado) {
		alvo := -1
		for i := range e.Encomendas {
			if e.Encomendas[i].ID == id {
				alvo = i
				break
			}
		}
		if alvo < 0 {
			return
		}
		for _, item := range e.Encomendas[alvo].Itens {
			if idx := indicePeca(e.Pecas, item.PecaID); idx >= 0 {
				e.Pecas[idx].Estoque += item.Quantidade
			}
		}
		e.Encomendas = append(e.Encomendas[:alvo], e.Encomendas[alvo+1:]...)
	})
}

// AtualizarStatus alterna o status da encomenda, sem efeito no estoque.
// Id desconhecido é no-op.
func (s *encomendaService) AtualizarStatus(ctx context.Context, id, status string) {
	s.store.Atualizar(ctx, func(e *store.Estado) {
		for i := range e.Encomendas {
			if e.Encomendas[i].ID == id {
				e.Encomendas[i].Status = status
				return
			}
		}
	})
}

func (s *encomendaService) Listar(ctx context.Context) []model.Encomenda {
	return s.store.Encomendas()
}

func indicePeca(pecas []model.Peca, id string) int {
	for i := range pecas {
		if pecas[i].ID == id {
			return i
		}
	}
	return -1
}

// ── Montagem interativa de itens (política da UI de encomendas) ──────────────

// AdicionarItemRascunho adiciona a peça ao rascunho de itens: se a linha já
// existe, incrementa a quantidade em vez de duplicar; caso contrário cria a
// linha com quantidade 1 e snapshot da peça. reservada é a quantidade desta
// peça já gravada na encomenda em edição (0 para encomenda nova) — ela conta
// como disponível no teto do incremento, como em AjustarQuantidadeRascunho.
func AdicionarItemRascunho(itens []model.EncomendaItem, peca model.Peca, reservada int) []model.EncomendaItem {
	for i := range itens {
		if itens[i].PecaID == peca.ID {
			return AjustarQuantidadeRascunho(itens, peca, reservada, itens[i].Quantidade+1)
		}
	}
	return append(itens, model.EncomendaItem{
		PecaID:        peca.ID,
		PecaNome:      peca.Nome,
		PecaFoto:      peca.FotoPrincipal(),
		Quantidade:    1,
		PrecoUnitario: peca.PrecoVenda,
	})
}

// AjustarQuantidadeRascunho fixa a quantidade da linha da peça, limitada a
// [1, estoque + quantidade já reservada por esta mesma encomenda] — a reserva
// própria conta como disponível para não travar a edição.
func AjustarQuantidadeRascunho(itens []model.EncomendaItem, peca model.Peca, reservada, quantidade int) []model.EncomendaItem {
	limite := peca.Estoque + reservada
	if quantidade > limite {
		quantidade = limite
	}
	if quantidade < 1 {
		quantidade = 1
	}
	out := make([]model.EncomendaItem, len(itens))
	copy(out, itens)
	for i := range out {
		if out[i].PecaID == peca.ID {
			out[i].Quantidade = quantidade
		}
	}
	return out
}
