package personajes

import (
	"context"
	"strconv"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput / UpdateInput llevan el id como texto crudo: la validación
// del id es parte del caso de uso, no del transporte.
type CreateInput struct {
	ID     string
	Nombre string
	Edad   *float64
	Genero string
	Raza   string
	Clase  string
}

type UpdateInput = CreateInput

// ParseID acepta solo enteros en base 10.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ValidationError{Msg: MsgIDNoEntero}
	}
	return id, nil
}

func (s *Service) List(ctx context.Context) ([]Personaje, error) {
	return s.repo.LoadAll(ctx)
}

func (s *Service) ListSorted(ctx context.Context) ([]Personaje, error) {
	items, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return SortByNombre(items), nil
}

// GetByID devuelve el personaje ya formateado.
func (s *Service) GetByID(ctx context.Context, rawID string) (*PersonajeFormateado, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return Format(&p), nil
}

// Create valida en orden (id entero, id libre, campos obligatorios) y
// corta en la primera falla; nada se muta hasta que todo pasó.
func (s *Service) Create(ctx context.Context, in CreateInput) (Personaje, error) {
	id, err := ParseID(in.ID)
	if err != nil {
		return Personaje{}, err
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return Personaje{}, err
	}
	if exists {
		return Personaje{}, ErrConflict
	}

	if in.Nombre == "" || in.Edad == nil || *in.Edad == 0 ||
		in.Genero == "" || in.Raza == "" || in.Clase == "" {
		return Personaje{}, &ValidationError{Msg: MsgFaltanDatos}
	}

	return s.repo.Insert(ctx, fromInput(id, in))
}

// Update reemplaza el documento completo: lo que no viene en el input se pierde.
func (s *Service) Update(ctx context.Context, in UpdateInput) (Personaje, error) {
	id, err := ParseID(in.ID)
	if err != nil {
		return Personaje{}, err
	}
	return s.repo.Replace(ctx, id, fromInput(id, in))
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := ParseID(rawID)
	if err != nil {
		return err
	}
	return s.repo.Remove(ctx, id)
}

func fromInput(id int, in CreateInput) Personaje {
	return Personaje{
		ID:     id,
		Nombre: in.Nombre,
		Edad:   in.Edad,
		Genero: in.Genero,
		Raza:   in.Raza,
		Clase:  in.Clase,
	}
}
