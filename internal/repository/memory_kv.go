package repository

import (
	"context"
	"errors"
	"sync"
)

// MemoryKV é um KV em memória, usado nos testes e no driver "memory"
// (modo demonstração — nada sobrevive ao restart).
type MemoryKV struct {
	mu    sync.Mutex
	dados map[string][]byte

	// FalharEscrita força erro em Set — exercita o caminho best-effort.
	FalharEscrita bool
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{dados: make(map[string][]byte)}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.dados[key]
	if !ok {
		return nil, ErrNaoEncontrado
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp, nil
}

func (m *MemoryKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FalharEscrita {
		return errors.New("escrita indisponível")
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	m.dados[key] = cp
	return nil
}
