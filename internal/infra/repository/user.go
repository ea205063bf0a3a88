package repository

import (
	"context"
	"time"

	"geresaco/internal/domain/user"
	"geresaco/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

type userRow struct {
	ID           int64
	Nombre       string
	Email        string
	PasswordHash string
	Rol          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	var row userRow
	err := r.pool.QueryRow(ctx,
		`SELECT id, nombre, email, contrasena_hash, rol, created_at, updated_at
		 FROM users WHERE id = $1`, id,
	).Scan(&row.ID, &row.Nombre, &row.Email, &row.PasswordHash, &row.Rol, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find user by id", err)
	}
	return rowToUser(row), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var row userRow
	err := r.pool.QueryRow(ctx,
		`SELECT id, nombre, email, contrasena_hash, rol, created_at, updated_at
		 FROM users WHERE email = $1`, email,
	).Scan(&row.ID, &row.Nombre, &row.Email, &row.PasswordHash, &row.Rol, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find user by email", err)
	}
	return rowToUser(row), nil
}

func (r *UserRepository) List(ctx context.Context, offset, limit int32) ([]*user.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, nombre, email, contrasena_hash, rol, created_at, updated_at
		 FROM users ORDER BY id OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list users", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		var row userRow
		if err := rows.Scan(&row.ID, &row.Nombre, &row.Email, &row.PasswordHash, &row.Rol, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan user row", err)
		}
		users = append(users, rowToUser(row))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate user rows", err)
	}
	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	var row userRow
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (nombre, email, contrasena_hash, rol)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, nombre, email, contrasena_hash, rol, created_at, updated_at`,
		u.Name().Value(), u.Email().Value(), u.PasswordHash(), u.Role().String(),
	).Scan(&row.ID, &row.Nombre, &row.Email, &row.PasswordHash, &row.Rol, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to create user", err)
	}
	return rowToUser(row), nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) (*user.User, error) {
	var row userRow
	err := r.pool.QueryRow(ctx,
		`UPDATE users
		 SET nombre = $2, email = $3, contrasena_hash = $4, rol = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING id, nombre, email, contrasena_hash, rol, created_at, updated_at`,
		u.ID(), u.Name().Value(), u.Email().Value(), u.PasswordHash(), u.Role().String(),
	).Scan(&row.ID, &row.Nombre, &row.Email, &row.PasswordHash, &row.Rol, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to update user", err)
	}
	return rowToUser(row), nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return infra.ClassifyPgErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return nil
}

func rowToUser(row userRow) *user.User {
	// Stored rows already passed validation at write time; rehydrate without
	// re-running the value object checks.
	return user.Reconstruct(
		row.ID,
		user.ReconstructName(row.Nombre),
		user.ReconstructEmail(row.Email),
		row.PasswordHash,
		user.Role(row.Rol),
		row.CreatedAt,
		row.UpdatedAt,
	)
}
