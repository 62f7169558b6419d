package repository

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

type fileKV struct{ dir string }

// NewFileKV persiste cada chave como um arquivo JSON em dir — modo local
// mono-usuário, sem Redis. A escrita é atômica (arquivo temporário + rename).
func NewFileKV(dir string) (KV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &fileKV{dir: dir}, nil
}

func (f *fileKV) caminho(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *fileKV) Get(_ context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(f.caminho(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNaoEncontrado
	}
	return b, err
}

func (f *fileKV) Set(_ context.Context, key string, value []byte) error {
	destino := f.caminho(key)
	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), destino)
}
