package service

import (
	"context"
	"sort"
	"time"

	"pontodevalor/internal/dto"
	"pontodevalor/internal/model"
	"pontodevalor/internal/store"

	"github.com/shopspring/decimal"
)

// Periodo é a janela de agregação dos resultados.
type Periodo string

const (
	PeriodoSemana Periodo = "week"
	PeriodoMes    Periodo = "month"
	PeriodoAno    Periodo = "year"
)

// RotuloPecaDesconhecida agrupa vendas cujo snapshot perdeu o nome da peça.
const RotuloPecaDesconhecida = "Peça desconhecida"

// ResultadoService agrega as vendas por janela de tempo.
type ResultadoService interface {
	Computar(ctx context.Context, periodo Periodo) dto.ResultadoResponse
}

type resultadoService struct {
	store *store.Store
	agora func() time.Time
}

func NewResultadoService(st *store.Store) ResultadoService {
	return &resultadoService{store: st, agora: time.Now}
}

func (s *resultadoService) Computar(ctx context.Context, periodo Periodo) dto.ResultadoResponse {
	return Computar(s.store.Vendas(), periodo, s.agora())
}

// Computar é o núcleo puro da agregação, parametrizado pelo instante de
// referência. Janelas: "week" = vendas a partir do início da semana corrente
// (semana começa no DOMINGO, truncado à meia-noite, inclusivo); "month" e
// "year" = mesmo mês/ano-calendário de agora. Quantidade zerada no registro
// conta como 1 no custo total — compatível com históricos antigos sem o campo.
func Computar(vendas []model.Venda, periodo Periodo, agora time.Time) dto.ResultadoResponse {
	inicioSemana := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location()).
		AddDate(0, 0, -int(agora.Weekday()))

	var filtradas []model.Venda
	for _, v := range vendas {
		data := v.Data.In(agora.Location())
		switch periodo {
		case PeriodoSemana:
			if !data.Before(inicioSemana) {
				filtradas = append(filtradas, v)
			}
		case PeriodoAno:
			if data.Year() == agora.Year() {
				filtradas = append(filtradas, v)
			}
		default: // mês
			if data.Year() == agora.Year() && data.Month() == agora.Month() {
				filtradas = append(filtradas, v)
			}
		}
	}

	lucro := decimal.Zero
	receita := decimal.Zero
	custo := decimal.Zero
	for _, v := range filtradas {
		lucro = lucro.Add(v.Lucro)
		receita = receita.Add(v.PrecoVenda)
		qtd := v.Quantidade
		if qtd == 0 {
			qtd = 1
		}
		custo = custo.Add(v.CustoBase.Mul(decimal.NewFromInt(int64(qtd))))
	}

	return dto.ResultadoResponse{
		LucroTotal:      lucro,
		ReceitaTotal:    receita,
		CustoTotal:      custo,
		Ranking:         rankingPorPeca(filtradas),
		VendasNoPeriodo: len(filtradas),
	}
}

// rankingPorPeca agrupa pelo nome desnormalizado da peça, soma lucro por
// grupo e retorna o top 5 em ordem decrescente. Empates mantêm a ordem de
// inserção dos grupos (sort estável).
func rankingPorPeca(vendas []model.Venda) []dto.RankingItem {
	indice := make(map[string]int)
	grupos := []dto.RankingItem{}
	for _, v := range vendas {
		nome := v.PecaNome
		if nome == "" {
			nome = RotuloPecaDesconhecida
		}
		i, ok := indice[nome]
		if !ok {
			i = len(grupos)
			indice[nome] = i
			grupos = append(grupos, dto.RankingItem{Nome: nome, Lucro: decimal.Zero})
		}
		grupos[i].Lucro = grupos[i].Lucro.Add(v.Lucro)
	}

	sort.SliceStable(grupos, func(i, j int) bool {
		return grupos[i].Lucro.GreaterThan(grupos[j].Lucro)
	})
	if len(grupos) > 5 {
		grupos = grupos[:5]
	}
	return grupos
}
