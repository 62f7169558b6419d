package router

import (
	"time"

	"pontodevalor/internal/config"
	"pontodevalor/internal/handler"
	"pontodevalor/internal/middleware"
	"pontodevalor/internal/repository"
	"pontodevalor/internal/service"
	"pontodevalor/internal/store"

	"github.com/gin-gonic/gin"
)

// New liga todas as dependências e retorna a engine Gin configurada.
// Grafo: Handler ← Service ← Store ← EstadoRepository ← KV
func New(cfg *config.Config, kv repository.KV, st *store.Store) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Cadeia global de middleware (a ordem importa)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Services ─────────────────────────────────────────────────────────────
	pecaSvc := service.NewPecaService(st)
	vendaSvc := service.NewVendaService(st)
	encomendaSvc := service.NewEncomendaService(st)
	resultadoSvc := service.NewResultadoService(st)
	ajustesSvc := service.NewAjustesService(st)

	// ── Handlers ─────────────────────────────────────────────────────────────
	pecasH := handler.NewPecasHandler(pecaSvc)
	vendasH := handler.NewVendasHandler(vendaSvc)
	encomendasH := handler.NewEncomendasHandler(encomendaSvc)
	resultadosH := handler.NewResultadosHandler(resultadoSvc)
	ajustesH := handler.NewAjustesHandler(ajustesSvc)

	// ── Rotas ────────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(kv))

	v1 := r.Group("/v1")
	{
		v1.GET("/ajustes", ajustesH.Obter)
		v1.PUT("/ajustes", ajustesH.Salvar)

		v1.GET("/pecas", pecasH.Listar)
		v1.POST("/pecas", pecasH.Salvar)
		v1.DELETE("/pecas/:id", pecasH.Apagar)
		v1.POST("/precos/simular", pecasH.SimularPreco)

		v1.GET("/vendas", vendasH.Listar)
		v1.POST("/vendas", vendasH.Registrar)

		v1.GET("/encomendas", encomendasH.Listar)
		v1.POST("/encomendas", encomendasH.Salvar)
		v1.DELETE("/encomendas/:id", encomendasH.Apagar)
		v1.PATCH("/encomendas/:id/status", encomendasH.AtualizarStatus)

		v1.GET("/resultados", resultadosH.Computar)
	}

	return r
}
