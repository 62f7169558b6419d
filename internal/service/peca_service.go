package service

import (
	"context"
	"strings"
	"time"

	"pontodevalor/internal/dto"
	"pontodevalor/internal/model"
	"pontodevalor/internal/pricing"
	"pontodevalor/internal/store"
)

// PecaService é o motor de mutação do catálogo de peças.
type PecaService interface {
	Salvar(ctx context.Context, req dto.SalvarPecaRequest) model.Peca
	Apagar(ctx context.Context, id string)
	Listar(ctx context.Context, filter dto.PecaFilter) []dto.PecaResponse
	SimularPreco(ctx context.Context, req dto.SimularPrecoRequest) pricing.Detalhe
}

type pecaService struct {
	store *store.Store
}

func NewPecaService(st *store.Store) PecaService { return &pecaService{store: st} }

// Salvar tem dois caminhos explícitos:
//   - id casa com uma peça existente → edição: os campos de atributo são
//     sobrescritos em vigor, identidade, criadaEm e posição preservadas;
//   - caso contrário → criação: defaults aplicados, id e timestamp novos,
//     prepend na coleção (mais recente primeiro). Um id enviado que não
//     resolve também cai na criação, com id novo.
func (s *pecaService) Salvar(ctx context.Context, req dto.SalvarPecaRequest) model.Peca {
	var salva model.Peca
	s.store.Atualizar(ctx, func(e *store.Estado) {
		if req.ID != "" {
			for i := range e.Pecas {
				if e.Pecas[i].ID != req.ID {
					continue
				}
				p := &e.Pecas[i]
				p.Nome = req.Nome
				p.Categoria = req.Categoria
				p.Fotos = req.Fotos
				p.CustoFio = req.CustoFio
				p.CustoAviamentos = req.CustoAviamentos
				p.OutrosCustos = req.OutrosCustos
				p.TempoHoras = req.TempoHoras
				p.TempoMinutos = req.TempoMinutos
				p.Estoque = req.Estoque
				p.PrecoVenda = req.PrecoVenda
				salva = *p
				return
			}
		}
		salva = novaPecaComPadroes(req)
		e.Pecas = append([]model.Peca{salva}, e.Pecas...)
	})
	return salva
}

// novaPecaComPadroes materializa o registro completo antes da inserção:
// nome placeholder quando omitido, lista de fotos vazia (nunca nil) e campos
// numéricos já zerados pelo zero value.
func novaPecaComPadroes(req dto.SalvarPecaRequest) model.Peca {
	nome := req.Nome
	if nome == "" {
		nome = model.NomePadraoPeca
	}
	fotos := req.Fotos
	if fotos == nil {
		fotos = []string{}
	}
	return model.Peca{
		ID:              model.NovoID("piece"),
		Nome:            nome,
		Categoria:       req.Categoria,
		Fotos:           fotos,
		CustoFio:        req.CustoFio,
		CustoAviamentos: req.CustoAviamentos,
		OutrosCustos:    req.OutrosCustos,
		TempoHoras:      req.TempoHoras,
		TempoMinutos:    req.TempoMinutos,
		Estoque:         req.Estoque,
		PrecoVenda:      req.PrecoVenda,
		CriadaEm:        time.Now().UTC(),
	}
}

// Apagar remove a peça incondicionalmente. Vendas e encomendas que a
// referenciam ficam intactas — os snapshots desnormalizados preservam a
// exibição; o estoque não é ajustado em lugar nenhum.
func (s *pecaService) Apagar(ctx context.Context, id string) {
	s.store.Atualizar(ctx, func(e *store.Estado) {
		restantes := e.Pecas[:0]
		for _, p := range e.Pecas {
			if p.ID != id {
				restantes = append(restantes, p)
			}
		}
		e.Pecas = restantes
	})
}

func (s *pecaService) Listar(ctx context.Context, filter dto.PecaFilter) []dto.PecaResponse {
	ajustes := s.store.Ajustes()
	busca := strings.ToLower(filter.Busca)

	out := []dto.PecaResponse{}
	for _, p := range s.store.Pecas() {
		if filter.Categoria != "" && p.Categoria != filter.Categoria {
			continue
		}
		if busca != "" && !strings.Contains(strings.ToLower(p.Nome), busca) {
			continue
		}
		if filter.EmEstoque && p.Estoque <= 0 {
			continue
		}
		det := pricing.Calcular(p, ajustes)
		out = append(out, dto.PecaResponse{
			Peca:          p,
			CustoBase:     det.CustoBase,
			PrecoSugerido: det.PrecoSugerido,
		})
	}
	return out
}

// SimularPreco recalcula a precificação de um rascunho ainda não salvo,
// com os ajustes vigentes. Puro — nenhum efeito colateral.
func (s *pecaService) SimularPreco(ctx context.Context, req dto.SimularPrecoRequest) pricing.Detalhe {
	rascunho := model.Peca{
		CustoFio:        req.CustoFio,
		CustoAviamentos: req.CustoAviamentos,
		OutrosCustos:    req.OutrosCustos,
		TempoHoras:      req.TempoHoras,
		TempoMinutos:    req.TempoMinutos,
	}
	return pricing.Calcular(rascunho, s.store.Ajustes())
}
