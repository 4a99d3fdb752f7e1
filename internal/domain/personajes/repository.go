package personajes

import "context"

// Repository es el store de personajes. Las implementaciones deben
// persistir la colección completa antes de devolver éxito en cualquier
// mutación, y reportar un id inexistente con *NotFoundError.
type Repository interface {
	LoadAll(ctx context.Context) ([]Personaje, error)
	FindByID(ctx context.Context, id int) (Personaje, error)
	Exists(ctx context.Context, id int) (bool, error)
	Insert(ctx context.Context, p Personaje) (Personaje, error)
	Replace(ctx context.Context, id int, p Personaje) (Personaje, error)
	Remove(ctx context.Context, id int) error
	Persist(ctx context.Context) error
}
