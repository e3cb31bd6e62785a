package postgres

import (
	"context"
	"log/slog"

	"fireReport/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS form_storage (
		key text PRIMARY KEY,
		value jsonb NOT NULL,
		updated_at timestamptz NOT NULL DEFAULT now()
	);
`

// FormStorage keeps each persisted blob as one jsonb row keyed by name.
type FormStorage struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewFormStorage(pool *pgxpool.Pool, logger *slog.Logger) *FormStorage {
	return &FormStorage{pool: pool, logger: logger}
}

func (s *FormStorage) EnsureSchema(ctx context.Context) error {
	const op = "postgres.FormStorage.EnsureSchema"

	if _, err := s.pool.Exec(ctx, schema); err != nil {
		s.logger.Error("schema setup failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (s *FormStorage) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "postgres.FormStorage.Get"

	query := `SELECT value FROM form_storage WHERE key = $1`

	var value []byte
	if err := s.pool.QueryRow(ctx, query, key).Scan(&value); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return value, nil
}

func (s *FormStorage) Set(ctx context.Context, key string, value []byte) error {
	const op = "postgres.FormStorage.Set"

	query := `
		INSERT INTO form_storage (key, value, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	if _, err := s.pool.Exec(ctx, query, key, string(value)); err != nil {
		s.logger.Error("db exec failed",
			slog.String("op", op),
			slog.String("key", key),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}
	return nil
}
