package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pontodevalor/internal/config"
	"pontodevalor/internal/infra"
	"pontodevalor/internal/repository"
	"pontodevalor/internal/router"
	"pontodevalor/internal/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Logger estruturado — dev: console, prod: JSON
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao carregar configuração")
	}
	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	kv, err := novoKV(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("falha ao abrir o storage")
	}

	// Carga inicial: falha de leitura cai nos valores padrão — nunca aborta.
	ctx := context.Background()
	st := store.Carregar(ctx, repository.NewEstadoRepository(kv))

	r := router.New(cfg, kv, st)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Desligamento gracioso em SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Ponto de Valor escutando em :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("erro do servidor")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("desligando o servidor…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("desligamento forçado")
	}
	log.Info().Msg("servidor encerrado")
}

// novoKV seleciona o driver de persistência pelo STORAGE_DRIVER.
func novoKV(cfg *config.Config) (repository.KV, error) {
	switch cfg.StorageDriver {
	case "file":
		return repository.NewFileKV(cfg.StoragePath)
	case "memory":
		log.Warn().Msg("driver memory: nada será persistido entre execuções")
		return repository.NewMemoryKV(), nil
	default:
		rdb, err := infra.NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisKV(rdb), nil
	}
}
