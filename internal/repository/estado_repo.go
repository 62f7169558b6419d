package repository

import (
	"context"
	"encoding/json"

	"pontodevalor/internal/model"

	"github.com/rs/zerolog/log"
)

// Chaves do layout persistido. Mudá-las (ou mudar os nomes de campo JSON)
// tornaria ilegíveis os dados já gravados.
const (
	ChaveAjustes    = "ponto-de-valor-settings"
	ChavePecas      = "ponto-de-valor-pieces"
	ChaveVendas     = "ponto-de-valor-sales"
	ChaveEncomendas = "ponto-de-valor-orders"
)

// EstadoRepository lê e espelha as quatro coleções no KV.
// Leitura com falha (chave ausente, driver fora do ar, JSON corrompido)
// devolve o valor inicial; escrita com falha é logada e descartada.
type EstadoRepository struct {
	kv KV
}

func NewEstadoRepository(kv KV) *EstadoRepository {
	return &EstadoRepository{kv: kv}
}

// carregar decodifica a chave em T, caindo em inicial quando algo falha.
func carregar[T any](ctx context.Context, kv KV, chave string, inicial T) T {
	b, err := kv.Get(ctx, chave)
	if err != nil {
		if err != ErrNaoEncontrado {
			log.Warn().Str("chave", chave).Err(err).Msg("falha ao ler do storage — usando valor inicial")
		}
		return inicial
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		log.Warn().Str("chave", chave).Err(err).Msg("registro corrompido no storage — usando valor inicial")
		return inicial
	}
	return v
}

// espelhar grava a chave best-effort: erro é logado, nunca propagado.
func espelhar(ctx context.Context, kv KV, chave string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Str("chave", chave).Err(err).Msg("falha ao serializar estado")
		return
	}
	if err := kv.Set(ctx, chave, b); err != nil {
		log.Error().Str("chave", chave).Err(err).Msg("falha ao espelhar estado no storage")
	}
}

func (r *EstadoRepository) CarregarAjustes(ctx context.Context) model.Ajustes {
	return carregar(ctx, r.kv, ChaveAjustes, model.AjustesPadrao())
}

func (r *EstadoRepository) CarregarPecas(ctx context.Context) []model.Peca {
	return carregar(ctx, r.kv, ChavePecas, []model.Peca{})
}

func (r *EstadoRepository) CarregarVendas(ctx context.Context) []model.Venda {
	return carregar(ctx, r.kv, ChaveVendas, []model.Venda{})
}

func (r *EstadoRepository) CarregarEncomendas(ctx context.Context) []model.Encomenda {
	return carregar(ctx, r.kv, ChaveEncomendas, []model.Encomenda{})
}

func (r *EstadoRepository) EspelharAjustes(ctx context.Context, a model.Ajustes) {
	espelhar(ctx, r.kv, ChaveAjustes, a)
}

func (r *EstadoRepository) EspelharPecas(ctx context.Context, pecas []model.Peca) {
	espelhar(ctx, r.kv, ChavePecas, pecas)
}

func (r *EstadoRepository) EspelharVendas(ctx context.Context, vendas []model.Venda) {
	espelhar(ctx, r.kv, ChaveVendas, vendas)
}

func (r *EstadoRepository) EspelharEncomendas(ctx context.Context, encomendas []model.Encomenda) {
	espelhar(ctx, r.kv, ChaveEncomendas, encomendas)
}
