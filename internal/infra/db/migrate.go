package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Statements are idempotent so the migrator can run on every startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		nombre VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		contrasena_hash TEXT NOT NULL,
		rol TEXT NOT NULL DEFAULT 'user',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		id BIGSERIAL PRIMARY KEY,
		nombre VARCHAR(255) NOT NULL,
		sede TEXT NOT NULL,
		capacidad INT NOT NULL CHECK (capacidad > 0),
		recursos TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id BIGSERIAL PRIMARY KEY,
		usuario_id BIGINT NOT NULL,
		sala_id BIGINT NOT NULL,
		fecha DATE NOT NULL,
		hora_inicio TIME NOT NULL,
		hora_fin TIME NOT NULL,
		estado TEXT NOT NULL DEFAULT 'pendiente',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_usuario_id ON reservations (usuario_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_sala_id ON reservations (sala_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_fecha ON reservations (fecha)`,
}

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
