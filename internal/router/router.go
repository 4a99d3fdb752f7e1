package router

import (
	"net/http"

	"personajes-api/internal/domain/personajes"
	"personajes-api/internal/middleware"
	"personajes-api/internal/platform/logger"

	_ "personajes-api/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Repo es obligatorio; ver OpenRepository.
	Repo personajes.Repository

	// Logger opcional; si es nil no se loguea nada.
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	svc := personajes.NewService(opts.Repo)
	personajes.RegisterRoutes(r, svc, log)

	return r
}
