package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pontodevalor/internal/repository"

	"github.com/gin-gonic/gin"
)

// Health responde o estado do processo e a conectividade com o storage.
// Storage fora do ar não derruba o serviço (o estado em memória segue
// autoritativo), mas é reportado para o operador.
func Health(kv repository.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		storageStatus := "connected"
		if _, err := kv.Get(ctx, repository.ChaveAjustes); err != nil && !errors.Is(err, repository.ErrNaoEncontrado) {
			storageStatus = "error"
		}

		status := http.StatusOK
		if storageStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":      status == http.StatusOK,
			"storage": storageStatus,
		})
	}
}
