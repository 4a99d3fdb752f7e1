package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"personajes-api/internal/domain/personajes"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// PersonajesRepo guarda cada personaje como documento JSONB. Cada sentencia
// es durable por sí sola, así que Persist no tiene nada que hacer.
type PersonajesRepo struct {
	db *sql.DB
}

func NewPersonajesRepo(db *sql.DB) *PersonajesRepo {
	return &PersonajesRepo{db: db}
}

func (r *PersonajesRepo) LoadAll(ctx context.Context) ([]personajes.Personaje, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT doc FROM personajes ORDER BY pos ASC`)
	if err != nil {
		return nil, storeErr("list", err)
	}
	defer rows.Close()

	out := make([]personajes.Personaje, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, storeErr("scan", err)
		}
		var p personajes.Personaje
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, storeErr("decode", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list", err)
	}
	return out, nil
}

func (r *PersonajesRepo) FindByID(ctx context.Context, id int) (personajes.Personaje, error) {
	var doc []byte
	err := r.db.QueryRowContext(ctx, `SELECT doc FROM personajes WHERE id = $1`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return personajes.Personaje{}, &personajes.NotFoundError{ID: id}
		}
		return personajes.Personaje{}, storeErr("get", err)
	}

	var p personajes.Personaje
	if err := json.Unmarshal(doc, &p); err != nil {
		return personajes.Personaje{}, storeErr("decode", err)
	}
	return p, nil
}

func (r *PersonajesRepo) Exists(ctx context.Context, id int) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM personajes WHERE id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, storeErr("exists", err)
	}
	return ok, nil
}

func (r *PersonajesRepo) Insert(ctx context.Context, p personajes.Personaje) (personajes.Personaje, error) {
	doc, err := json.Marshal(p)
	if err != nil {
		return personajes.Personaje{}, storeErr("encode", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO personajes (id, doc) VALUES ($1, $2)`, p.ID, doc)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return personajes.Personaje{}, personajes.ErrConflict
		}
		return personajes.Personaje{}, storeErr("insert", err)
	}
	return p, nil
}

func (r *PersonajesRepo) Replace(ctx context.Context, id int, p personajes.Personaje) (personajes.Personaje, error) {
	doc, err := json.Marshal(p)
	if err != nil {
		return personajes.Personaje{}, storeErr("encode", err)
	}

	res, err := r.db.ExecContext(ctx, `UPDATE personajes SET doc = $2 WHERE id = $1`, id, doc)
	if err != nil {
		return personajes.Personaje{}, storeErr("update", err)
	}
	if err := mustAffect(res, id); err != nil {
		return personajes.Personaje{}, err
	}
	return p, nil
}

func (r *PersonajesRepo) Remove(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM personajes WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete", err)
	}
	return mustAffect(res, id)
}

func (r *PersonajesRepo) Persist(ctx context.Context) error {
	return nil
}

func mustAffect(res sql.Result, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr("rows affected", err)
	}
	if n == 0 {
		return &personajes.NotFoundError{ID: id}
	}
	return nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", personajes.ErrStoreIO, op, err)
}
