package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileKV persiste cada clave como <key>.json dentro de un directorio.
// Escritor único por proceso; entre procesos aplica last-write-wins,
// limitación aceptada del modelo.
type FileKV struct {
	mu  sync.Mutex
	dir string
}

func NewFileKV(dir string) (*FileKV, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("localstore: data dir required")
	}
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("localstore: mkdir %s: %w", dir, err)
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) Save(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("localstore: marshal %s: %w", key, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// escritura vía archivo temporal + rename para no dejar blobs a medias
	path := f.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o660); err != nil {
		return fmt.Errorf("localstore: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("localstore: rename %s: %w", key, err)
	}
	return nil
}

func (f *FileKV) Load(ctx context.Context, key string, dst any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("localstore: read %s: %w", key, err)
	}

	if err := json.Unmarshal(b, dst); err != nil {
		// blob corrupto: se descarta y se reporta ausente
		_ = os.Remove(f.path(key))
		return false, nil
	}
	return true, nil
}

func (f *FileKV) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("localstore: remove %s: %w", key, err)
	}
	return nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}
