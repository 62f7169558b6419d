// Package store é o dono único do estado da aplicação: as três coleções e os
// ajustes vivem em memória sob um único escritor lógico e são espelhados no
// adaptador de persistência a cada mutação (best-effort — uma falha de escrita
// não desfaz o estado em memória).
package store

import (
	"context"
	"sync"

	"pontodevalor/internal/model"
	"pontodevalor/internal/repository"
)

// Estado agrupa as coleções possuídas pelo Store. Coleções em ordem
// "mais recente primeiro" (prepend na criação).
type Estado struct {
	Ajustes    model.Ajustes
	Pecas      []model.Peca
	Vendas     []model.Venda
	Encomendas []model.Encomenda
}

// Store serializa toda mutação: ler-modificar-escrever-espelhar em um único
// passo lógico. O mutex protege contra chamadas HTTP acidentalmente
// concorrentes; não há controle otimista de concorrência (mono-usuário).
type Store struct {
	mu     sync.Mutex
	estado Estado
	repo   *repository.EstadoRepository
}

// Carregar constrói o Store lendo as quatro chaves do adaptador; qualquer
// falha de leitura cai nos valores iniciais (ajustes padrão, coleções vazias).
func Carregar(ctx context.Context, repo *repository.EstadoRepository) *Store {
	return &Store{
		estado: Estado{
			Ajustes:    repo.CarregarAjustes(ctx),
			Pecas:      repo.CarregarPecas(ctx),
			Vendas:     repo.CarregarVendas(ctx),
			Encomendas: repo.CarregarEncomendas(ctx),
		},
		repo: repo,
	}
}

// Atualizar roda fn sob o lock e espelha as coleções em seguida. As duas
// mutações de uma venda (registro + baixa de estoque) acontecem dentro do
// mesmo fn, então o espelho nunca observa um estado parcial.
func (s *Store) Atualizar(ctx context.Context, fn func(e *Estado)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.estado)
	s.repo.EspelharAjustes(ctx, s.estado.Ajustes)
	s.repo.EspelharPecas(ctx, s.estado.Pecas)
	s.repo.EspelharVendas(ctx, s.estado.Vendas)
	s.repo.EspelharEncomendas(ctx, s.estado.Encomendas)
}

// ── Snapshots de leitura (cópias profundas — nunca referências vivas) ────────

func (s *Store) Ajustes() model.Ajustes {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.estado.Ajustes
}

func (s *Store) Pecas() []model.Peca {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonarPecas(s.estado.Pecas)
}

func (s *Store) Vendas() []model.Venda {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Venda, len(s.estado.Vendas))
	copy(out, s.estado.Vendas)
	return out
}

func (s *Store) Encomendas() []model.Encomenda {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonarEncomendas(s.estado.Encomendas)
}

func clonarPecas(pecas []model.Peca) []model.Peca {
	out := make([]model.Peca, len(pecas))
	for i, p := range pecas {
		fotos := make([]string, len(p.Fotos))
		copy(fotos, p.Fotos)
		p.Fotos = fotos
		out[i] = p
	}
	return out
}

func clonarEncomendas(encomendas []model.Encomenda) []model.Encomenda {
	out := make([]model.Encomenda, len(encomendas))
	for i, e := range encomendas {
		itens := make([]model.EncomendaItem, len(e.Itens))
		copy(itens, e.Itens)
		e.Itens = itens
		out[i] = e
	}
	return out
}
