package postgres

import (
	"context"
	"os"
	"testing"

	"personajes-api/internal/domain/personajes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requiere una base descartable: TEST_DB_DSN=postgres://... go test ./...
func TestPersonajesRepo_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	ctx := context.Background()

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, EnsureSchema(ctx, db))
	_, err = db.ExecContext(ctx, `TRUNCATE personajes`)
	require.NoError(t, err)

	repo := NewPersonajesRepo(db)

	_, err = repo.Insert(ctx, personajes.Personaje{ID: 2, Nombre: "Zuko"})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, personajes.Personaje{ID: 1, Nombre: "Aang", Frase: "Yip yip"})
	require.NoError(t, err)

	_, err = repo.Insert(ctx, personajes.Personaje{ID: 1, Nombre: "Otro"})
	assert.ErrorIs(t, err, personajes.ErrConflict)

	items, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].ID)

	_, err = repo.Replace(ctx, 1, personajes.Personaje{ID: 1, Nombre: "Aang Avatar"})
	require.NoError(t, err)
	p, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, personajes.Personaje{ID: 1, Nombre: "Aang Avatar"}, p)

	require.NoError(t, repo.Remove(ctx, 2))
	assert.ErrorIs(t, repo.Remove(ctx, 2), personajes.ErrNotFound)

	ok, err := repo.Exists(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}
