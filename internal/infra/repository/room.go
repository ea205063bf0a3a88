package repository

import (
	"context"
	"fmt"
	"time"

	"geresaco/internal/domain/room"
	"geresaco/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomFilter struct {
	Campus   *room.Campus
	Resource *room.ResourceTag
	Offset   int32
	Limit    int32
}

type RoomRepository struct {
	pool *pgxpool.Pool
}

func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{pool: pool}
}

type roomRow struct {
	ID        int64
	Nombre    string
	Sede      string
	Capacidad int
	Recursos  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

const roomColumns = `id, nombre, sede, capacidad, recursos, created_at, updated_at`

func (r *RoomRepository) FindByID(ctx context.Context, id int64) (*room.Room, error) {
	var row roomRow
	err := r.pool.QueryRow(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id,
	).Scan(&row.ID, &row.Nombre, &row.Sede, &row.Capacidad, &row.Recursos, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find room by id", err)
	}
	return rowToRoom(row), nil
}

func (r *RoomRepository) List(ctx context.Context, filter RoomFilter) ([]*room.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms`
	var conds []string
	var args []any

	if filter.Campus != nil {
		args = append(args, filter.Campus.String())
		conds = append(conds, fmt.Sprintf("sede = $%d", len(args)))
	}
	if filter.Resource != nil {
		// recursos is stored canonically, so substring match is exact enough
		args = append(args, "%"+filter.Resource.String()+"%")
		conds = append(conds, fmt.Sprintf("recursos LIKE $%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" ORDER BY id OFFSET $%d", len(args))
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list rooms", err)
	}
	defer rows.Close()

	var rooms []*room.Room
	for rows.Next() {
		var row roomRow
		if err := rows.Scan(&row.ID, &row.Nombre, &row.Sede, &row.Capacidad, &row.Recursos, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan room row", err)
		}
		rooms = append(rooms, rowToRoom(row))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate room rows", err)
	}
	return rooms, nil
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) (*room.Room, error) {
	var row roomRow
	err := r.pool.QueryRow(ctx,
		`INSERT INTO rooms (nombre, sede, capacidad, recursos)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+roomColumns,
		rm.Name(), rm.Campus().String(), rm.Capacity(), rm.Resources().String(),
	).Scan(&row.ID, &row.Nombre, &row.Sede, &row.Capacidad, &row.Recursos, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to create room", err)
	}
	return rowToRoom(row), nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) (*room.Room, error) {
	var row roomRow
	err := r.pool.QueryRow(ctx,
		`UPDATE rooms
		 SET nombre = $2, sede = $3, capacidad = $4, recursos = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING `+roomColumns,
		rm.ID(), rm.Name(), rm.Campus().String(), rm.Capacity(), rm.Resources().String(),
	).Scan(&row.ID, &row.Nombre, &row.Sede, &row.Capacidad, &row.Recursos, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to update room", err)
	}
	return rowToRoom(row), nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return infra.ClassifyPgErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "room not found", nil)
	}
	return nil
}

func rowToRoom(row roomRow) *room.Room {
	return room.Reconstruct(row.ID, row.Nombre, room.Campus(row.Sede), row.Capacidad,
		room.ReconstructResources(row.Recursos), row.CreatedAt, row.UpdatedAt)
}
