package service

import (
	"context"

	"pontodevalor/internal/dto"
	"pontodevalor/internal/model"
	"pontodevalor/internal/store"
)

// AjustesService lê e sobrescreve a configuração global do ateliê.
type AjustesService interface {
	Obter(ctx context.Context) model.Ajustes
	Salvar(ctx context.Context, req dto.SalvarAjustesRequest) model.Ajustes
}

type ajustesService struct {
	store *store.Store
}

func NewAjustesService(st *store.Store) AjustesService { return &ajustesService{store: st} }

func (s *ajustesService) Obter(ctx context.Context) model.Ajustes {
	return s.store.Ajustes()
}

// Salvar substitui o registro inteiro — não existe merge de campos.
func (s *ajustesService) Salvar(ctx context.Context, req dto.SalvarAjustesRequest) model.Ajustes {
	novo := model.Ajustes{
		NomeAtelie:  req.NomeAtelie,
		ValorHora:   req.ValorHora,
		MargemLucro: req.MargemLucro,
	}
	s.store.Atualizar(ctx, func(e *store.Estado) {
		e.Ajustes = novo
	})
	return novo
}
