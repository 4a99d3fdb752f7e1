package router

import (
	"context"
	"fmt"

	"personajes-api/internal/adapters/storage/jsonfile"
	mem "personajes-api/internal/adapters/storage/memory"
	pg "personajes-api/internal/adapters/storage/postgres"
	"personajes-api/internal/domain/personajes"
	"personajes-api/internal/platform/config"
	"personajes-api/internal/platform/logger"
)

// OpenRepository elige el store según cfg.Store. El close devuelto nunca es nil.
func OpenRepository(ctx context.Context, cfg config.Config, log logger.Logger) (personajes.Repository, func(), error) {
	noop := func() {}

	switch cfg.Store {
	case config.StoreMemory:
		log.Warn("using in-memory store, changes are not persisted", nil)
		return mem.NewPersonajesRepo(nil, nil), noop, nil

	case config.StorePostgres:
		db, err := pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			return nil, noop, fmt.Errorf("%w: %w", personajes.ErrStoreInit, err)
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("%w: %w", personajes.ErrStoreInit, err)
		}
		return pg.NewPersonajesRepo(db), func() { _ = db.Close() }, nil

	default:
		repo, err := jsonfile.Open(cfg.DataFile, log)
		if err != nil {
			return nil, noop, err
		}
		return repo, noop, nil
	}
}
