package repository

import (
	"context"
	"log/slog"
	"sync"

	"wallet_api/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TypePGRepository serves the closed transaction-type table. The table is
// read once and held as an immutable map; it is never mutated after load.
type TypePGRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger

	mu    sync.RWMutex
	types map[int64]models.Type
}

func NewTypePGRepository(pool *pgxpool.Pool, logger *slog.Logger) *TypePGRepository {
	return &TypePGRepository{
		pool:   pool,
		logger: logger,
	}
}

// Preload reads the whole type table. Called once at startup, before any
// lookup.
func (r *TypePGRepository) Preload(ctx context.Context) error {
	rows, err := r.pool.Query(ctx, "SELECT id, name FROM types ORDER BY id")
	if err != nil {
		r.logger.Error("Failed to load transaction types", slog.Any("err", err))
		return err
	}
	defer rows.Close()

	types := make(map[int64]models.Type)
	for rows.Next() {
		var t models.Type
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return err
		}
		types[t.ID] = t
	}
	if err := rows.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	r.types = types
	r.mu.Unlock()
	return nil
}

func (r *TypePGRepository) FindByID(ctx context.Context, id int64) (*models.Type, error) {
	r.mu.RLock()
	t, ok := r.types[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrTypeNotFound
	}
	return &t, nil
}
