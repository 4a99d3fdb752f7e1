package personajes_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"personajes-api/internal/adapters/storage/memory"
	"personajes-api/internal/domain/personajes"
	"personajes-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) (http.Handler, *memory.PersonajesRepo) {
	t.Helper()
	repo := memory.NewPersonajesRepo(nil, nil)
	r := chi.NewRouter()
	personajes.RegisterRoutes(r, personajes.NewService(repo), logger.Nop())
	return r, repo
}

func TestCreateHandler_RejectsOversizedBody(t *testing.T) {
	h, repo := newHandler(t)

	var body bytes.Buffer
	body.WriteString(`{"id": 1, "nombre": "`)
	body.WriteString(strings.Repeat("a", 2<<20))
	body.WriteString(`", "edad": 12, "genero": "F", "raza": "Agua", "clase": "Maestra"}`)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/personajes", &body))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	items, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateHandler_AcceptsNormalBody(t *testing.T) {
	h, repo := newHandler(t)

	body := strings.NewReader(`{"id": "1", "nombre": "Katara", "edad": 14, "genero": "F", "raza": "Agua", "clase": "Maestra"}`)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/personajes", body))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	ok, err := repo.Exists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)
}
