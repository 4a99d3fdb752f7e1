package memory

import (
	"context"
	"sync"

	"personajes-api/internal/domain/personajes"
)

// PersistFunc recibe la colección completa después de cada mutación.
type PersistFunc func(ctx context.Context, items []personajes.Personaje) error

// PersonajesRepo guarda la colección en orden de inserción. Toda mutación
// toma el lock de escritura y lo mantiene mientras persiste, así dos
// escrituras concurrentes no pueden pisarse en disco.
type PersonajesRepo struct {
	mu      sync.RWMutex
	items   []personajes.Personaje
	persist PersistFunc
}

// NewPersonajesRepo arma el repo a partir de seed. persist puede ser nil
// (solo memoria, útil en dev y tests).
func NewPersonajesRepo(seed []personajes.Personaje, persist PersistFunc) *PersonajesRepo {
	items := make([]personajes.Personaje, len(seed))
	copy(items, seed)
	return &PersonajesRepo{
		items:   items,
		persist: persist,
	}
}

func (r *PersonajesRepo) LoadAll(ctx context.Context) ([]personajes.Personaje, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]personajes.Personaje, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *PersonajesRepo) FindByID(ctx context.Context, id int) (personajes.Personaje, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return personajes.Personaje{}, &personajes.NotFoundError{ID: id}
	}
	return r.items[i], nil
}

func (r *PersonajesRepo) Exists(ctx context.Context, id int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.indexOf(id) >= 0, nil
}

func (r *PersonajesRepo) Insert(ctx context.Context, p personajes.Personaje) (personajes.Personaje, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Service ya lo validó, pero entre Exists e Insert pudo colarse otro request.
	if r.indexOf(p.ID) >= 0 {
		return personajes.Personaje{}, personajes.ErrConflict
	}

	r.items = append(r.items, p)
	if err := r.persistLocked(ctx); err != nil {
		return personajes.Personaje{}, err
	}
	return p, nil
}

func (r *PersonajesRepo) Replace(ctx context.Context, id int, p personajes.Personaje) (personajes.Personaje, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return personajes.Personaje{}, &personajes.NotFoundError{ID: id}
	}

	r.items[i] = p
	if err := r.persistLocked(ctx); err != nil {
		return personajes.Personaje{}, err
	}
	return p, nil
}

func (r *PersonajesRepo) Remove(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return &personajes.NotFoundError{ID: id}
	}

	r.items = append(r.items[:i], r.items[i+1:]...)

	return r.persistLocked(ctx)
}

func (r *PersonajesRepo) Persist(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.persistLocked(ctx)
}

// persistLocked no revierte la mutación en memoria si falla la escritura:
// memoria y disco quedan distintos hasta la próxima escritura exitosa.
func (r *PersonajesRepo) persistLocked(ctx context.Context) error {
	if r.persist == nil {
		return nil
	}
	return r.persist(ctx, r.items)
}

func (r *PersonajesRepo) indexOf(id int) int {
	for i, p := range r.items {
		if p.ID == id {
			return i
		}
	}
	return -1
}
