package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"personajes-api/internal/adapters/storage/memory"
	"personajes-api/internal/domain/personajes"
	"personajes-api/internal/platform/logger"

	"github.com/google/uuid"
)

// Open carga el archivo una sola vez y devuelve un repo en memoria que
// reescribe el archivo completo después de cada mutación.
func Open(path string, log logger.Logger) (*memory.PersonajesRepo, error) {
	items, err := Load(path)
	if err != nil {
		return nil, err
	}

	log = log.With(map[string]any{"component": "store", "path": path})
	log.Info("personajes loaded", map[string]any{"count": len(items)})

	persist := func(ctx context.Context, items []personajes.Personaje) error {
		if err := Write(path, items); err != nil {
			log.Error("persist failed", map[string]any{"err": err.Error()})
			return err
		}
		return nil
	}
	return memory.NewPersonajesRepo(items, persist), nil
}

// Load lee y parsea la colección. Un archivo ausente, ilegible, con JSON
// inválido o con ids repetidos es ErrStoreInit.
func Load(path string) ([]personajes.Personaje, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", personajes.ErrStoreInit, path, err)
	}

	var items []personajes.Personaje
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", personajes.ErrStoreInit, path, err)
	}
	if items == nil {
		items = []personajes.Personaje{}
	}

	seen := make(map[int]struct{}, len(items))
	for _, p := range items {
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d in %s", personajes.ErrStoreInit, p.ID, path)
		}
		seen[p.ID] = struct{}{}
	}
	return items, nil
}

// Write serializa la colección indentada a un temporal en el mismo
// directorio, lo sincroniza a disco y lo renombra sobre path. El archivo
// final conserva los permisos que tenía path.
func Write(path string, items []personajes.Personaje) error {
	if items == nil {
		items = []personajes.Personaje{}
	}

	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", personajes.ErrStoreIO, err)
	}

	perm := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		perm = fi.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"-"+uuid.NewString()+".tmp")

	// O_EXCL: el nombre es único, nunca pisamos un temporal ajeno.
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", personajes.ErrStoreIO, tmp, err)
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: write %s: %w", personajes.ErrStoreIO, tmp, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: sync %s: %w", personajes.ErrStoreIO, tmp, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: close %s: %w", personajes.ErrStoreIO, tmp, err)
	}
	// OpenFile aplica umask; Chmod deja exactamente los permisos previos.
	if err := os.Chmod(tmp, perm); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: chmod %s: %w", personajes.ErrStoreIO, tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: replace %s: %w", personajes.ErrStoreIO, path, err)
	}
	return nil
}
