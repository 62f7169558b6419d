// Package repository é o adaptador de persistência: get/set de um valor
// tipado sob uma chave string em um armazenamento durável. Leituras que
// falham caem no valor inicial; escritas que falham são logadas e engolidas —
// o estado em memória permanece autoritativo pelo resto da sessão.
package repository

import (
	"context"
	"errors"
)

// ErrNaoEncontrado indica que a chave não existe no armazenamento.
// Não é um erro fatal: o leitor cai no valor inicial.
var ErrNaoEncontrado = errors.New("chave não encontrada")

// KV é o contrato mínimo do armazenamento chave-valor durável.
// Implementações: redis (padrão), arquivo local e memória (testes).
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
